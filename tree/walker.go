package tree

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ErrInvalidFilter is returned if a walker step is defunct, e.g. if it has
// been called with a nil predicate.
var ErrInvalidFilter = errors.New("filter stage is invalid")

// ErrEmptyTree is returned if a Walker is called with an empty tree. Refer to
// the documentation of NewWalker() for details about this scenario.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Walker holds information for operating on trees: finding nodes and
// doing work on them. Clients usually create a Walker for a (sub-)tree
// to search for a selection of nodes matching certain criteria, and
// then perform some operation on this selection.
//
// A Walker will eventually return two client-level values:
// A slice of tree nodes and the last error occured.
// These fields are accessed through a
// Promise-object, which represents future values for the two fields.
//
// A typical usage of a Walker looks like this ("FindNodesAndDoSomething()" is
// a placeholder for a sequence of function calls, see below):
//
//    w := NewWalker(node)
//    futureResult := w.FindNodesAndDoSomething(...).Promise()
//    nodes, err := futureResult()
//
// Walker support a set of search & filter functions. Clients will chain
// some of these to perform tasks on tree nodes (see examples).
// You may think of the set of operations to form a small
// Domain Specific Language (DSL), similar in concept to JQuery.
//
// Every step of the chain operates on the selection of nodes produced by
// the previous step. The initial selection is the node the walker has been
// created for. Nodes of a selection are kept in the order they have been
// found, i.e. level by level and, within a level, in child order.
type Walker[T comparable] struct {
	initial   *Node[T]   // initial node of (sub-)tree
	selection []*Node[T] // current selection of nodes
	lasterror error      // last error occured
	workers   int        // maximum number of concurrent workers per level
}

// Minimum number of concurrent workers for a tree operation.
const minWorkerCount int = 3

// NewWalker creates a Walker for the initial node of a (sub-)tree.
// The first subsequent call to a node filter function will have this
// initial node as input.
//
// If initial is nil, NewWalker will return a nil-Walker, resulting
// in a NOP-pipeline of operations, resulting in an empty set of nodes
// and an error (ErrEmptyTree).
func NewWalker[T comparable](initial *Node[T]) *Walker[T] {
	if initial == nil {
		return nil
	}
	tracer().Debugf("new tree-walker, initial node = %v", initial)
	w := &Walker[T]{
		initial:   initial,
		selection: []*Node[T]{initial},
		workers:   max(minWorkerCount, runtime.NumCPU()),
	}
	return w
}

// WithWorkers sets the maximum number of nodes processed concurrently.
// n < 1 is treated as 1.
func (w *Walker[T]) WithWorkers(n int) *Walker[T] {
	if w == nil {
		return nil
	}
	w.workers = max(1, n)
	return w
}

// Promise is a future synchronisation point.
// Clients will call the Promise (which is of function type) to receive a
// slice of nodes and a possible error value, which is the last error
// occured during any of the walker's steps.
//
// A nil Walker will return a nil set and ErrEmptyTree.
func (w *Walker[T]) Promise() func() ([]*Node[T], error) {
	if w == nil {
		// empty Walker => return nil set and an error
		return func() ([]*Node[T], error) {
			return nil, ErrEmptyTree
		}
	}
	selection, lasterror := w.selection, w.lasterror
	return func() ([]*Node[T], error) {
		return selection, lasterror
	}
}

func (w *Walker[T]) fail(err error) *Walker[T] {
	tracer().Errorf("tree walker: %v", err)
	w.lasterror = err
	return w
}

// forEach calls f for every node of a level, concurrently, with at most
// w.workers goroutines. Results and errors are stored at the index of
// their node.
func forEach[T comparable](w *Walker[T], level []*Node[T],
	f func(int, *Node[T]) (*Node[T], error)) ([]*Node[T], []error) {
	//
	results := make([]*Node[T], len(level))
	errs := make([]error, len(level))
	var g errgroup.Group
	g.SetLimit(w.workers)
	for i, node := range level {
		g.Go(func() error {
			results[i], errs[i] = f(i, node)
			return nil // errors of a node must not stop the level
		})
	}
	_ = g.Wait()
	return results, errs
}

// unseen returns the nodes not yet in seen, and adds them to seen.
func unseen[T comparable](seen map[*Node[T]]struct{}, nodes []*Node[T]) []*Node[T] {
	r := make([]*Node[T], 0, len(nodes))
	for _, n := range nodes {
		if _, ok := seen[n]; !ok && n != nil {
			seen[n] = struct{}{}
			r = append(r, n)
		}
	}
	return r
}

func (w *Walker[T]) collect(results []*Node[T], errs []error, dest *[]*Node[T]) {
	for i, n := range results {
		if errs[i] != nil {
			w.lasterror = errs[i]
			continue
		}
		if n != nil {
			*dest = append(*dest, n)
		}
	}
}

func childrenOf[T comparable](node *Node[T]) []*Node[T] {
	return node.Children(true)
}

func positionOf[T comparable](node *Node[T]) (*Node[T], int) {
	parent := node.Parent()
	if parent == nil {
		return nil, 0
	}
	return parent, parent.IndexOfChild(node)
}

// levels groups the nodes of a selection by depth. Duplicates are removed.
func levels[T comparable](selection []*Node[T]) (map[int][]*Node[T], int, int) {
	seen := make(map[*Node[T]]struct{}, len(selection))
	byDepth := make(map[int][]*Node[T])
	mindepth, maxdepth := -1, -1
	for _, n := range selection {
		if _, ok := seen[n]; ok || n == nil {
			continue
		}
		seen[n] = struct{}{}
		d := n.Depth()
		byDepth[d] = append(byDepth[d], n)
		if mindepth < 0 || d < mindepth {
			mindepth = d
		}
		if d > maxdepth {
			maxdepth = d
		}
	}
	return byDepth, mindepth, maxdepth
}

// ----------------------------------------------------------------------

// Predicate is a function type to match against nodes of a tree.
// Is is used as an argument for various Walker functions to
// collect a selection of nodes.
// test is the node under test, node is the input node.
type Predicate[T comparable] func(test *Node[T], node *Node[T]) (match *Node[T], err error)

// Whatever is a predicate to match anything (see type Predicate).
// It is useful to match the first node in a given direction.
func Whatever[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (*Node[T], error) {
		return test, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T], node *Node[T]) (match *Node[T], err error) {
		if test.ChildCount() == 0 {
			return test, nil
		}
		return nil, nil
	}
}

// ----------------------------------------------------------------------

// Parent replaces every node of the selection by its parent.
// The root node of a tree will not produce a result.
//
// If w is nil, Parent will return nil.
func (w *Walker[T]) Parent() *Walker[T] {
	if w == nil {
		return nil
	}
	seen := make(map[*Node[T]]struct{})
	var parents []*Node[T]
	for _, n := range w.selection {
		if p := n.Parent(); p != nil {
			if _, ok := seen[p]; !ok {
				seen[p] = struct{}{}
				parents = append(parents, p)
			}
		}
	}
	w.selection = parents
	return w
}

// AncestorWith finds an ancestor matching the given predicate.
// The search does not include the start node.
//
// If w is nil, AncestorWith will return nil.
func (w *Walker[T]) AncestorWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	results, errs := forEach(w, w.selection, func(_ int, node *Node[T]) (*Node[T], error) {
		for anc := node.Parent(); anc != nil; anc = anc.Parent() {
			matched, err := predicate(anc, node)
			if err != nil || matched != nil {
				return matched, err
			}
		}
		return nil, nil // no matching ancestor found, not an error
	})
	w.selection = nil
	w.collect(results, errs, &w.selection)
	return w
}

// DescendentsWith finds descendents matching a predicate.
// The search does not include the start node. If the predicate returns an
// error for a node, the search will not descend below this node.
//
// If w is nil, DescendentsWith will return nil.
func (w *Walker[T]) DescendentsWith(predicate Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if predicate == nil {
		return w.fail(ErrInvalidFilter)
	}
	var level, origins []*Node[T]
	for _, n := range w.selection {
		for _, ch := range childrenOf(n) {
			level = append(level, ch)
			origins = append(origins, n)
		}
	}
	var matches []*Node[T]
	for len(level) > 0 {
		results, errs := forEach(w, level, func(i int, node *Node[T]) (*Node[T], error) {
			return predicate(node, origins[i])
		})
		w.collect(results, errs, &matches)
		var next, nextOrigins []*Node[T]
		for i, node := range level {
			if errs[i] != nil {
				continue // do not descend further
			}
			for _, ch := range childrenOf(node) {
				next = append(next, ch)
				nextOrigins = append(nextOrigins, origins[i])
			}
		}
		level, origins = next, nextOrigins
	}
	w.selection = matches
	return w
}

// AllDescendents traverses all descendents.
// The traversal does not include the start node.
// This is just a wrapper around `w.DescendentsWith(Whatever)`.
//
// If w is nil, AllDescendents will return nil.
func (w *Walker[T]) AllDescendents() *Walker[T] {
	return w.DescendentsWith(Whatever[T]())
}

// Filter calls a client-provided function on each node of the selection.
// The user function should return the input node if it is accepted and
// nil otherwise.
//
// If w is nil, Filter will return nil.
func (w *Walker[T]) Filter(f Predicate[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if f == nil {
		return w.fail(ErrInvalidFilter)
	}
	results, errs := forEach(w, w.selection, func(_ int, node *Node[T]) (*Node[T], error) {
		return f(node, node)
	})
	w.selection = nil
	w.collect(results, errs, &w.selection)
	return w
}

// Action is a function type to operate on tree nodes.
// Resulting nodes will become the selection of the walker, if
// no error occured.
type Action[T comparable] func(n *Node[T], parent *Node[T], position int) (*Node[T], error)

// TopDown traverses the sub-trees of the selection, starting at (and
// including) the selected nodes. The traversal guarantees that parents
// are always processed before their children.
//
// If the action function returns an error for a node,
// descending the branch below this node is aborted.
//
// If w is nil, TopDown will return nil.
func (w *Walker[T]) TopDown(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	byDepth, d, maxdepth := levels(w.selection)
	seen := make(map[*Node[T]]struct{})
	var level, selection []*Node[T]
	for ; d >= 0 && (d <= maxdepth || len(level) > 0); d++ {
		level = unseen(seen, append(level, byDepth[d]...))
		results, errs := forEach(w, level, func(_ int, node *Node[T]) (*Node[T], error) {
			parent, position := positionOf(node)
			return action(node, parent, position)
		})
		w.collect(results, errs, &selection)
		var next []*Node[T]
		for i, node := range level {
			if errs[i] == nil {
				next = append(next, childrenOf(node)...)
			}
		}
		level = next
	}
	tracer().Debugf("top-down traversal selected %d nodes", len(selection))
	w.selection = selection
	return w
}

// BottomUp traverses the sub-trees of the selection, including the selected
// nodes. The traversal guarantees that parents are not processed before
// all of their children.
//
// If the action function returns an error for a node,
// the parent is processed regardless.
//
// If w is nil, BottomUp will return nil.
func (w *Walker[T]) BottomUp(action Action[T]) *Walker[T] {
	if w == nil {
		return nil
	}
	if action == nil {
		return w.fail(ErrInvalidFilter)
	}
	// collect all nodes by depth, top-down
	byDepth, d, maxdepth := levels(w.selection)
	seen := make(map[*Node[T]]struct{})
	var all [][]*Node[T]
	var level []*Node[T]
	for ; d >= 0 && (d <= maxdepth || len(level) > 0); d++ {
		level = unseen(seen, append(level, byDepth[d]...))
		all = append(all, level)
		var next []*Node[T]
		for _, n := range level {
			next = append(next, childrenOf(n)...)
		}
		level = next
	}
	// process levels from the deepest one up
	var selection []*Node[T]
	for i := len(all) - 1; i >= 0; i-- {
		results, errs := forEach(w, all[i], func(_ int, node *Node[T]) (*Node[T], error) {
			parent, position := positionOf(node)
			return action(node, parent, position)
		})
		w.collect(results, errs, &selection)
	}
	tracer().Debugf("bottom-up traversal selected %d nodes", len(selection))
	w.selection = selection
	return w
}

// CalcRank is an action for bottom-up processing. It Calculates the 'rank'-member
// for each node, meaning: the number of child-nodes + 1.
// The root node will hold the number of nodes in the entire tree.
// Leaf nodes will have a rank of 1.
func CalcRank[T comparable](n *Node[T], parent *Node[T], position int) (*Node[T], error) {
	//
	r := uint32(1)
	for i := 0; i < n.ChildCount(); i++ {
		ch, ok := n.Child(i)
		if ok {
			r += ch.Rank
		}
	}
	n.Rank = r
	return n, nil
}
