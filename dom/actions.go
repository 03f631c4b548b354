package dom

import (
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/tree"
	"golang.org/x/net/html"
)

// StyledNode is the type of nodes of a styled tree.
type StyledNode = tree.Node[*styledtree.StyNode]

// NodeIsDamaged is a predicate to match nodes with non-empty effective damage.
// It is intended to be used in a tree.Walker.
var NodeIsDamaged = func(n *StyledNode, unused *StyledNode) (
	match *StyledNode, err error) {
	//
	if !styledtree.Node(n).Damage().IsEmpty() {
		return n, nil
	}
	return nil, nil
}

// NodeWillChangeBoxSubtree is a predicate to match nodes whose box sub-tree
// will be changed by re-building or repairing layout boxes.
// It is intended to be used in a tree.Walker.
var NodeWillChangeBoxSubtree = func(n *StyledNode, unused *StyledNode) (
	match *StyledNode, err error) {
	//
	if styledtree.Node(n).Damage().WillChangeBoxSubtree() {
		return n, nil
	}
	return nil, nil
}

// NodeIsElement is a predicate to match styled nodes of HTML elements.
var NodeIsElement = func(n *StyledNode, unused *StyledNode) (
	match *StyledNode, err error) {
	//
	if h := styledtree.Node(n).HTMLNode(); h != nil && h.Type == html.ElementNode {
		return n, nil
	}
	return nil, nil
}

// identity is an action selecting every node it is called for.
func identity(n, parent *StyledNode, position int) (*StyledNode, error) {
	return n, nil
}

// AllNodes returns all nodes of the tree below and including root, level
// by level.
func AllNodes(root *StyledNode) ([]*StyledNode, error) {
	return tree.NewWalker(root).TopDown(identity).Promise()()
}

// DamagedNodes returns all nodes of the tree below and including root with
// non-empty effective damage, level by level.
func DamagedNodes(root *StyledNode) ([]*StyledNode, error) {
	return tree.NewWalker(root).TopDown(identity).Filter(NodeIsDamaged).Promise()()
}
