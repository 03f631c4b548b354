package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/npillmayer/restyle/tree"
	"golang.org/x/net/html"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	htmlNode            *html.Node
	mx                  sync.RWMutex
	prev, cur           *computed.Style // styles of previous and current styling run
	own                 damage.Damage   // damage from the node's own style change
	effective           damage.Damage   // damage after propagation
	childrenChanged     bool            // children have been inserted or removed
}

// NewNodeForHTMLNode creates a new styled node linked to an HTML node.
func NewNodeForHTMLNode(html *html.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.htmlNode = html
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	if sn == nil {
		return nil
	}
	return sn.htmlNode
}

// Name returns the element name of the underlying HTML node, or "#text",
// "#document" etc. for other node types.
func (sn *StyNode) Name() string {
	h := sn.HTMLNode()
	if h == nil {
		return "#none"
	}
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	}
	return "#node"
}

func (sn *StyNode) String() string {
	return fmt.Sprintf("<%s %s/%s>", sn.Name(), sn.OwnDamage(), sn.Damage())
}

// Styles returns the current computed styles of a node.
// It is nil before the first styling run.
func (sn *StyNode) Styles() *computed.Style {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.cur
}

// PreviousStyles returns the computed styles of the previous styling run.
// It is nil for nodes which have been styled no more than once.
func (sn *StyNode) PreviousStyles() *computed.Style {
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.prev
}

// SetStyles sets the computed styles of a styled node. The current styles
// become the previous ones.
func (sn *StyNode) SetStyles(styles *computed.Style) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.prev, sn.cur = sn.cur, styles
}

// GetPropertyValue returns the current computed value of a property.
// Computed styles are complete, i.e. inherited values have already been
// resolved while computing them.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	return sn.Styles().Get(key)
}

// OwnDamage returns the damage caused by the node's own style change.
func (sn *StyNode) OwnDamage() damage.Damage {
	if sn == nil {
		return damage.NoDamage
	}
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.own
}

// SetOwnDamage sets the damage caused by the node's own style change.
func (sn *StyNode) SetOwnDamage(d damage.Damage) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.own = d
}

// Damage returns the node's effective damage, i.e. the damage after
// propagation through the tree.
func (sn *StyNode) Damage() damage.Damage {
	if sn == nil {
		return damage.NoDamage
	}
	sn.mx.RLock()
	defer sn.mx.RUnlock()
	return sn.effective
}

// SetDamage sets the node's effective damage.
func (sn *StyNode) SetDamage(d damage.Damage) {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.effective = d
}

// ResetDamage clears own and effective damage.
func (sn *StyNode) ResetDamage() {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.own, sn.effective = damage.NoDamage, damage.NoDamage
}

// MarkChildrenChanged flags a node whose list of children has been changed
// by inserting or removing styled nodes.
func (sn *StyNode) MarkChildrenChanged() {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	sn.childrenChanged = true
}

// TakeChildrenChanged returns true if the list of children of the node has
// changed since the last call. The flag is cleared.
func (sn *StyNode) TakeChildrenChanged() bool {
	sn.mx.Lock()
	defer sn.mx.Unlock()
	changed := sn.childrenChanged
	sn.childrenChanged = false
	return changed
}

// FindNodeFor searches the styled tree below (and including) root for the
// styled node linked to an HTML node.
func FindNodeFor(root *tree.Node[*StyNode], h *html.Node) *tree.Node[*StyNode] {
	if root == nil || h == nil {
		return nil
	}
	if Node(root).HTMLNode() == h {
		return root
	}
	for _, ch := range root.Children(true) {
		if n := FindNodeFor(ch, h); n != nil {
			return n
		}
	}
	return nil
}
