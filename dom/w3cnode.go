package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/dom/w3cdom"
	"golang.org/x/net/html"
)

// W3CNode is the type for representing a W3C-like DOM node for a
// styled tree node.
type W3CNode struct {
	stylednode *StyledNode
}

var _ w3cdom.Node = &W3CNode{}

// ErrNotAStyledNode is returned for tree nodes which are not part of a
// styled tree.
var ErrNotAStyledNode = errors.New("tree node is not a styled node")

// FromTreeNode returns a W3C node for a styled tree node.
// Will return nil if n is nil.
func FromTreeNode(n *StyledNode) *W3CNode {
	if n == nil || n.Payload == nil {
		return nil
	}
	return &W3CNode{n}
}

// NodeFromTreeNode returns a W3C node for a styled tree node, or an error
// for an empty node.
func NodeFromTreeNode(n *StyledNode) (*W3CNode, error) {
	w := FromTreeNode(n)
	if w == nil {
		return nil, ErrNotAStyledNode
	}
	return w, nil
}

// TreeNode returns the underlying styled tree node.
func (w *W3CNode) TreeNode() *StyledNode {
	if w == nil {
		return nil
	}
	return w.stylednode
}

func (w *W3CNode) styled() *styledtree.StyNode {
	return styledtree.Node(w.TreeNode())
}

// HTMLNode returns the HTML parse node this DOM node is derived from.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.styled().HTMLNode()
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	if h := w.HTMLNode(); h != nil {
		return h.Type
	}
	return html.ErrorNode
}

// NodeName returns the element name for element nodes and "#text",
// "#document" etc. for other node types.
func (w *W3CNode) NodeName() string {
	return w.styled().Name()
}

// HasAttributes is part of interface w3cdom.Node.
func (w *W3CNode) HasAttributes() bool {
	h := w.HTMLNode()
	return h != nil && len(h.Attr) > 0
}

// ParentNode returns the parent node or nil for the root of the tree.
func (w *W3CNode) ParentNode() w3cdom.Node {
	if p := FromTreeNode(w.TreeNode().Parent()); p != nil {
		return p
	}
	return nil
}

// HasChildNodes is part of interface w3cdom.Node.
func (w *W3CNode) HasChildNodes() bool {
	return len(w.TreeNode().Children(true)) > 0
}

// ChildNodes returns a list of all children of this node.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	children := w.TreeNode().Children(true)
	list := &DomNodeList{nodes: make([]*W3CNode, 0, len(children))}
	for _, ch := range children {
		list.nodes = append(list.nodes, FromTreeNode(ch))
	}
	return list
}

// FirstChild returns the first child node, or nil.
func (w *W3CNode) FirstChild() w3cdom.Node {
	children := w.TreeNode().Children(true)
	if len(children) == 0 {
		return nil
	}
	return FromTreeNode(children[0])
}

// NextSibling returns the next sibling of this node, or nil.
func (w *W3CNode) NextSibling() w3cdom.Node {
	parent := w.TreeNode().Parent()
	if parent == nil {
		return nil
	}
	siblings := parent.Children(true)
	for i, s := range siblings {
		if s == w.stylednode && i+1 < len(siblings) {
			return FromTreeNode(siblings[i+1])
		}
	}
	return nil
}

// Attributes returns the attributes of the underlying HTML node.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	h := w.HTMLNode()
	if h == nil {
		return emptyNodeMap
	}
	return nodeMap(h.Attr)
}

// TextContent returns the text of all text nodes below the underlying
// HTML node, concatenated.
func (w *W3CNode) TextContent() (string, error) {
	h := w.HTMLNode()
	if h == nil {
		return "", ErrNotAStyledNode
	}
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			collect(ch)
		}
	}
	collect(h)
	return b.String(), nil
}

// ComputedStyles returns the current computed styles of this node.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	return computedStyles{w.styled()}
}

// RestyleDamage returns the damage of the last restyle for this node.
func (w *W3CNode) RestyleDamage() w3cdom.RestyleDamage {
	return restyleDamage{w.styled()}
}

func (w *W3CNode) String() string {
	if w == nil {
		return "<nil DOM node>"
	}
	return fmt.Sprintf("<%s %v>", w.NodeName(), w.styled().Damage())
}

// --- Styles and damage -----------------------------------------------------

type computedStyles struct {
	sn *styledtree.StyNode
}

func (cs computedStyles) GetPropertyValue(key string) style.Property {
	return cs.sn.GetPropertyValue(key)
}

func (cs computedStyles) Styles() *style.PropertyMap {
	return cs.sn.Styles().PropertyMap()
}

type restyleDamage struct {
	sn *styledtree.StyNode
}

func (rd restyleDamage) Own() damage.Damage       { return rd.sn.OwnDamage() }
func (rd restyleDamage) Effective() damage.Damage { return rd.sn.Damage() }

// --- Node lists and attributes ---------------------------------------------

// DomNodeList is a type for a list of DOM nodes.
type DomNodeList struct {
	nodes []*W3CNode
}

var _ w3cdom.NodeList = &DomNodeList{}

// Length returns the number of DOM nodes in a list.
func (l *DomNodeList) Length() int {
	if l == nil {
		return 0
	}
	return len(l.nodes)
}

// Item returns the DOM node at position i, or nil.
func (l *DomNodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= l.Length() {
		return nil
	}
	return l.nodes[i]
}

func (l *DomNodeList) String() string {
	names := make([]string, l.Length())
	for i, n := range l.nodes {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, " ") + "]"
}

type nodeMap []html.Attribute

var emptyNodeMap = nodeMap(nil)

func (m nodeMap) Length() int {
	return len(m)
}

func (m nodeMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m nodeMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }
