package styledtree

import (
	"testing"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(tag atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: tag, Data: tag.String()}
}

func TestStyNodeSetStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.styledtree")
	defer teardown()
	//
	h := element(atom.Div)
	n := NewNodeForHTMLNode(h)
	sn := Node(n)
	require.NotNil(t, sn)
	assert.Same(t, h, sn.HTMLNode())
	assert.Equal(t, "div", sn.Name())
	assert.Nil(t, sn.Styles())
	assert.Nil(t, sn.PreviousStyles())
	//
	s1, err := computed.FromDeclarations("width: 10pt")
	require.NoError(t, err)
	s2, err := computed.FromDeclarations("width: 20pt")
	require.NoError(t, err)
	sn.SetStyles(s1)
	assert.Same(t, s1, sn.Styles())
	assert.Nil(t, sn.PreviousStyles())
	sn.SetStyles(s2)
	assert.Same(t, s2, sn.Styles())
	assert.Same(t, s1, sn.PreviousStyles(), "current styles should have been shifted")
	assert.Equal(t, style.Property("20pt"), sn.GetPropertyValue("width"))
}

func TestStyNodeDamage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.styledtree")
	defer teardown()
	//
	sn := Node(NewNodeForHTMLNode(element(atom.P)))
	assert.True(t, sn.OwnDamage().IsEmpty())
	sn.SetOwnDamage(damage.Rebuild)
	sn.SetDamage(damage.Rebuild | damage.Reflow)
	assert.Equal(t, damage.Rebuild, sn.OwnDamage())
	assert.Equal(t, damage.Rebuild|damage.Reflow, sn.Damage())
	assert.Equal(t, "<p Rebuild/Reflow | Rebuild>", sn.String())
	sn.ResetDamage()
	assert.True(t, sn.Damage().IsEmpty())
	assert.False(t, sn.TakeChildrenChanged())
	sn.MarkChildrenChanged()
	assert.True(t, sn.TakeChildrenChanged())
	assert.False(t, sn.TakeChildrenChanged(), "flag should have been cleared")
	var none *StyNode
	assert.Equal(t, damage.NoDamage, none.Damage())
	assert.Nil(t, Node(nil))
}

func TestFindNodeFor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.styledtree")
	defer teardown()
	//
	hbody, hp := element(atom.Body), element(atom.P)
	root := NewNodeForHTMLNode(hbody)
	p := NewNodeForHTMLNode(hp)
	root.AddChild(NewNodeForHTMLNode(element(atom.Div)))
	root.AddChild(p)
	assert.Same(t, p, FindNodeFor(root, hp))
	assert.Same(t, root, FindNodeFor(root, hbody))
	assert.Nil(t, FindNodeFor(root, element(atom.Span)))
	assert.Same(t, root, p.Parent())
}
