package dom

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/restyle/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/tree"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var myhtml = `<html><body>
<div id="outer"><p id="p1">a <span id="s">b</span></p><p id="p2">c</p></div>
<div id="other">d</div>
</body></html>`

const (
	oldcss = `#p1 { color: red; } #s { margin-left: 1pt; } #other { width: 10pt; }`
	newcss = `#p1 { color: blue; } #s { margin-left: 2pt; } #other { width: 10pt; }`
)

func sheet(t *testing.T, text string) cssom.StyleSheet {
	t.Helper()
	s, err := douceuradapter.Parse(text)
	require.NoError(t, err)
	return s
}

func styledDoc(t *testing.T, css string) (*html.Node, *StyledNode) {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(myhtml))
	require.NoError(t, err)
	root, err := cssom.Style(doc, sheet(t, css))
	require.NoError(t, err)
	return doc, root
}

func find(t *testing.T, doc *html.Node, root *StyledNode, selector string) *styledtree.StyNode {
	t.Helper()
	h := cascadia.MustCompile(selector).MatchFirst(doc)
	require.NotNil(t, h, "no HTML node for %q", selector)
	n := styledtree.FindNodeFor(root, h)
	require.NotNil(t, n, "no styled node for %q", selector)
	return styledtree.Node(n)
}

func TestRestyleDamage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	doc, root := styledDoc(t, oldcss)
	summary, err := Restyle(root, nil, sheet(t, newcss))
	require.NoError(t, err)
	t.Logf("summary: %v", summary)
	//
	own := map[string]damage.Damage{
		"html": damage.NoDamage, "body": damage.NoDamage, "#outer": damage.NoDamage,
		"#p1": damage.Repaint, "#s": damage.Rebuild, "#p2": damage.NoDamage,
		"#other": damage.NoDamage,
	}
	effective := map[string]damage.Damage{
		"html":   damage.Repaint | damage.Repair,
		"body":   damage.Repaint | damage.Repair,
		"#outer": damage.Repaint | damage.Repair,
		"#p1":    damage.Repaint | damage.Repair,
		"#s":     damage.Repaint | damage.Rebuild,
		"#p2":    damage.Repaint,
		"#other": damage.Repaint,
	}
	for sel, d := range own {
		assert.Equal(t, d, find(t, doc, root, sel).OwnDamage(), "own damage of %s", sel)
	}
	for sel, d := range effective {
		assert.Equal(t, d, find(t, doc, root, sel).Damage(), "effective damage of %s", sel)
	}
	assert.Equal(t, 8, summary.Nodes) // including <head>
	assert.Equal(t, 8, summary.Damaged)
	assert.Equal(t, 8, summary.Flags[damage.Repaint])
	assert.Equal(t, 4, summary.Flags[damage.Repair])
	assert.Equal(t, 1, summary.Flags[damage.Rebuild])
	assert.Equal(t, 0, summary.Flags[damage.Reflow])
	assert.Equal(t, 5, summary.BoxSubtree)
	assert.Equal(t, "8 nodes, 8 damaged (Repaint 8, Repair 4, Rebuild 1), 5 box sub-trees changing",
		summary.String())
	//
	boxes, err := tree.NewWalker(root).TopDown(identity).Filter(NodeWillChangeBoxSubtree).Promise()()
	require.NoError(t, err)
	assert.Len(t, boxes, 5)
}

func TestRestyleUnchanged(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	_, root := styledDoc(t, oldcss)
	summary, err := Restyle(root, nil, sheet(t, oldcss))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Damaged)
	damaged, err := DamagedNodes(root)
	require.NoError(t, err)
	assert.Empty(t, damaged)
	// restyling again with another sheet must only depend on the last run
	_, err = Restyle(root, nil, sheet(t, newcss))
	require.NoError(t, err)
	summary, err = Restyle(root, nil, sheet(t, newcss))
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Damaged, "second restyle with equal sheet")
}

func TestRestyleInsertAndRemove(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	doc, root := styledDoc(t, oldcss)
	hother := cascadia.MustCompile("#other").MatchFirst(doc)
	require.NotNil(t, hother)
	hother.AppendChild(&html.Node{Type: html.ElementNode, Data: "em"})
	houter := cascadia.MustCompile("#outer").MatchFirst(doc)
	hp2 := cascadia.MustCompile("#p2").MatchFirst(doc)
	houter.RemoveChild(hp2)
	//
	_, err := Restyle(root, nil, sheet(t, oldcss))
	require.NoError(t, err)
	em := find(t, doc, root, "em")
	assert.Equal(t, damage.Rebuild, em.OwnDamage(), "inserted node has to be re-constructed")
	assert.Equal(t, damage.Repair, find(t, doc, root, "#other").Damage())
	assert.Equal(t, damage.Repair, find(t, doc, root, "#outer").OwnDamage(), "child has been removed")
	assert.Equal(t, damage.Repair, find(t, doc, root, "body").Damage())
	assert.Equal(t, damage.NoDamage, find(t, doc, root, "#p1").Damage())
}

func TestComputeDamageFresh(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	_, root := styledDoc(t, oldcss)
	require.NoError(t, ComputeDamage(root, nil))
	nodes, err := AllNodes(root)
	require.NoError(t, err)
	for _, n := range nodes {
		assert.Equal(t, damage.Reconstruct(), styledtree.Node(n).OwnDamage())
	}
	assert.Error(t, ComputeDamage(nil, nil))
	_, err = Restyle(nil, nil)
	assert.ErrorIs(t, err, cssom.ErrNoDocument)
}

// Propagation on a bare tree:
//
//	a ── b ── d
//	  └─ c
func TestPropagateDamage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.dom")
	defer teardown()
	//
	a, b, c, d := bare(), bare(), bare(), bare()
	a.AddChild(b).AddChild(c)
	b.AddChild(d)
	styledtree.Node(d).SetOwnDamage(damage.Rebuild | damage.Reflow)
	styledtree.Node(c).SetOwnDamage(damage.Repaint)
	require.NoError(t, PropagateDamage(a))
	assert.Equal(t, damage.Repaint|damage.Reflow|damage.Repair, styledtree.Node(a).Damage())
	assert.Equal(t, damage.Repaint|damage.Reflow|damage.Repair, styledtree.Node(b).Damage())
	assert.Equal(t, damage.Repaint|damage.Reflow, styledtree.Node(c).Damage())
	assert.Equal(t, damage.Repaint|damage.Reflow|damage.Rebuild, styledtree.Node(d).Damage())
	// own damage is untouched
	assert.Equal(t, damage.NoDamage, styledtree.Node(a).OwnDamage())
	//
	nodes, err := DamagedNodes(a)
	require.NoError(t, err)
	assert.Len(t, nodes, 4)
	assert.Same(t, a, nodes[0], "damaged nodes should be in level order")
}

func TestNodeIsElement(t *testing.T) {
	nodes := []struct {
		n        *StyledNode
		expected bool
	}{
		{bare(), true},
		{styledtree.NewNodeForHTMLNode(&html.Node{Type: html.ElementNode}), true},
		{styledtree.NewNodeForHTMLNode(&html.Node{Type: html.TextNode, Data: "x"}), false},
		{styledtree.NewNodeForHTMLNode(&html.Node{Type: html.DocumentNode}), false},
		{styledtree.NewNodeForHTMLNode(nil), false},
	}
	for i, c := range nodes {
		match, err := NodeIsElement(c.n, nil)
		require.NoError(t, err)
		assert.Equal(t, c.expected, match != nil, "node #%d (%v)", i, styledtree.Node(c.n))
	}
}

func bare() *StyledNode {
	return styledtree.NewNodeForHTMLNode(&html.Node{Type: html.ElementNode, Data: "div"})
}
