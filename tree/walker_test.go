package tree

import (
	"errors"
	"sort"
	"sync"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree creates a tree
//
//	        1
//	     /  |  \
//	    2   3   4
//	   / \      |
//	  5   6     7
//	            |
//	            8
func buildTree() (*Node[int], map[int]*Node[int]) {
	nodes := make(map[int]*Node[int])
	for i := 1; i <= 8; i++ {
		nodes[i] = NewNode(i)
	}
	nodes[1].AddChild(nodes[2]).AddChild(nodes[3]).AddChild(nodes[4])
	nodes[2].AddChild(nodes[5]).AddChild(nodes[6])
	nodes[4].AddChild(nodes[7])
	nodes[7].AddChild(nodes[8])
	return nodes[1], nodes
}

func payloads(nodes []*Node[int]) []int {
	r := make([]int, len(nodes))
	for i, n := range nodes {
		r[i] = n.Payload
	}
	return r
}

func TestEmptyWalker(t *testing.T) {
	w := NewWalker[int](nil)
	nodes, err := w.TopDown(CalcRank[int]).Promise()()
	assert.Nil(t, nodes)
	assert.ErrorIs(t, err, ErrEmptyTree)
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.tree")
	defer teardown()
	//
	root, _ := buildTree()
	var mx sync.Mutex
	done := make(map[int]bool)
	nodes, err := NewWalker(root).WithWorkers(4).TopDown(func(n, parent *Node[int], pos int) (*Node[int], error) {
		mx.Lock()
		defer mx.Unlock()
		if parent != nil && !done[parent.Payload] {
			t.Errorf("node %d processed before its parent %d", n.Payload, parent.Payload)
		}
		if parent != nil && parent.IndexOfChild(n) != pos {
			t.Errorf("wrong position %d for node %d", pos, n.Payload)
		}
		done[n.Payload] = true
		return n, nil
	}).Promise()()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, payloads(nodes))
}

func TestTopDownError(t *testing.T) {
	root, _ := buildTree()
	errStop := errors.New("stop")
	nodes, err := NewWalker(root).TopDown(func(n, parent *Node[int], pos int) (*Node[int], error) {
		if n.Payload == 4 {
			return nil, errStop
		}
		return n, nil
	}).Promise()()
	assert.ErrorIs(t, err, errStop)
	assert.Equal(t, []int{1, 2, 3, 5, 6}, payloads(nodes), "no descent below node 4")
}

func TestBottomUpOrder(t *testing.T) {
	root, all := buildTree()
	var mx sync.Mutex
	done := make(map[int]bool)
	errLeaf := errors.New("leaf error")
	nodes, err := NewWalker(root).BottomUp(func(n, parent *Node[int], pos int) (*Node[int], error) {
		mx.Lock()
		defer mx.Unlock()
		for _, ch := range n.Children(true) {
			if !done[ch.Payload] {
				t.Errorf("node %d processed before its child %d", n.Payload, ch.Payload)
			}
		}
		done[n.Payload] = true
		if n.Payload == 8 {
			return nil, errLeaf
		}
		return n, nil
	}).Promise()()
	assert.ErrorIs(t, err, errLeaf)
	assert.Len(t, done, 8, "parents are processed regardless of errors")
	assert.Equal(t, 7, len(nodes))
	assert.Equal(t, 1, nodes[len(nodes)-1].Payload, "root comes last")
	//
	_, err = NewWalker(root).BottomUp(CalcRank[int]).Promise()()
	require.NoError(t, err)
	assert.Equal(t, uint32(8), root.Rank)
	assert.Equal(t, uint32(3), all[4].Rank)
	assert.Equal(t, uint32(1), all[5].Rank)
}

func TestDescendentsWith(t *testing.T) {
	root, all := buildTree()
	leaves, err := NewWalker(root).DescendentsWith(NodeIsLeaf[int]()).Promise()()
	require.NoError(t, err)
	got := payloads(leaves)
	sort.Ints(got)
	assert.Equal(t, []int{3, 5, 6, 8}, got)
	//
	nodes, err := NewWalker(all[4]).AllDescendents().Promise()()
	require.NoError(t, err)
	assert.Equal(t, []int{7, 8}, payloads(nodes))
	//
	var origins sync.Map
	_, err = NewWalker(root).DescendentsWith(func(test, origin *Node[int]) (*Node[int], error) {
		origins.Store(test.Payload, origin)
		return nil, nil
	}).Promise()()
	require.NoError(t, err)
	o, _ := origins.Load(8)
	assert.Equal(t, root, o.(*Node[int]))
}

func TestFilterAndParent(t *testing.T) {
	root, all := buildTree()
	even := func(test, _ *Node[int]) (*Node[int], error) {
		if test.Payload%2 == 0 {
			return test, nil
		}
		return nil, nil
	}
	nodes, err := NewWalker(root).AllDescendents().Filter(even).Parent().Promise()()
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2, 7}, payloads(nodes))
	//
	nodes, err = NewWalker(all[8]).AncestorWith(func(test, _ *Node[int]) (*Node[int], error) {
		if test.ChildCount() > 1 {
			return test, nil
		}
		return nil, nil
	}).Promise()()
	require.NoError(t, err)
	assert.Equal(t, []int{1}, payloads(nodes))
	//
	_, err = NewWalker(root).Filter(nil).Promise()()
	assert.ErrorIs(t, err, ErrInvalidFilter)
}
