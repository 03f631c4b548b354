package dom

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/npillmayer/restyle/dom/style/cssom"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/restyle"
	"github.com/npillmayer/restyle/tree"
)

// Classifier is the damage classifier for computed styles.
type Classifier = restyle.Classifier[*computed.Style]

// ComputeDamage sets the own damage of every node of the tree below and
// including root. Nodes without previous styles have been inserted and
// have to be re-constructed. Nodes without current styles are not damaged.
// For all other nodes the damage is classified from the style change.
// Nodes whose children have been inserted or removed get Repair damage.
//
// If classifier is nil, computed.DefaultClassifier() is used.
func ComputeDamage(root *StyledNode, classifier *Classifier) error {
	if classifier == nil {
		classifier = computed.DefaultClassifier()
	}
	action := func(n, parent *StyledNode, position int) (*StyledNode, error) {
		sn := styledtree.Node(n)
		prev, cur := sn.PreviousStyles(), sn.Styles()
		var d damage.Damage
		switch {
		case cur == nil:
		case prev == nil:
			d = damage.Reconstruct()
		default:
			d = classifier.Classify(prev, cur)
		}
		if sn.TakeChildrenChanged() {
			d.Insert(damage.RepairDamage())
		}
		sn.SetOwnDamage(d)
		return n, nil
	}
	nodes, err := tree.NewWalker(root).TopDown(action).Promise()()
	if err != nil {
		return fmt.Errorf("computing damage: %w", err)
	}
	tracer().Infof("classified style changes of %d nodes", len(nodes))
	return nil
}

// PropagateDamage computes the effective damage of every node of the tree
// below and including root, given the nodes' own damage.
//
// First, damage is folded bottom-up: a node accumulates its own damage and
// the damage of its children, propagated up (see damage.Damage.PropagateUp).
// Then the accumulated damage is folded top-down: a node gets its accumulated
// damage plus the effective damage of its parent, propagated down (see
// damage.Damage.PropagateDown).
func PropagateDamage(root *StyledNode) error {
	up := func(n, parent *StyledNode, position int) (*StyledNode, error) {
		sn := styledtree.Node(n)
		acc := sn.OwnDamage()
		for _, ch := range n.Children(true) {
			acc = acc.Union(styledtree.Node(ch).Damage().PropagateUp())
		}
		sn.SetDamage(acc)
		return n, nil
	}
	if _, err := tree.NewWalker(root).BottomUp(up).Promise()(); err != nil {
		return fmt.Errorf("propagating damage up: %w", err)
	}
	down := func(n, parent *StyledNode, position int) (*StyledNode, error) {
		if parent == nil || n == root {
			return n, nil
		}
		sn := styledtree.Node(n)
		sn.SetDamage(sn.Damage().Union(styledtree.Node(parent).Damage().PropagateDown()))
		return n, nil
	}
	if _, err := tree.NewWalker(root).TopDown(down).Promise()(); err != nil {
		return fmt.Errorf("propagating damage down: %w", err)
	}
	return nil
}

// Restyle re-styles a styled tree with a list of stylesheets, then computes
// and propagates the restyle damage. It returns a summary of the damage.
//
// If classifier is nil, computed.DefaultClassifier() is used.
func Restyle(root *StyledNode, classifier *Classifier, sheets ...cssom.StyleSheet) (Summary, error) {
	if err := cssom.Restyle(root, sheets...); err != nil {
		return Summary{}, err
	}
	if err := ComputeDamage(root, classifier); err != nil {
		return Summary{}, err
	}
	if err := PropagateDamage(root); err != nil {
		return Summary{}, err
	}
	s, err := Summarize(root)
	if err == nil {
		tracer().Infof("restyle: %v", s)
	}
	return s, err
}

// --- Summary ---------------------------------------------------------------

// Summary counts the damage of the nodes of a styled tree.
type Summary struct {
	Nodes      int                   // number of nodes in the tree
	Damaged    int                   // number of nodes with non-empty effective damage
	Flags      map[damage.Damage]int // number of nodes per damage flag
	BoxSubtree int                   // number of nodes whose box sub-tree will change
}

// Summarize counts the effective damage of the nodes of a styled tree.
func Summarize(root *StyledNode) (Summary, error) {
	nodes, err := AllNodes(root)
	if err != nil {
		return Summary{}, err
	}
	s := Summary{Nodes: len(nodes), Flags: make(map[damage.Damage]int)}
	for _, n := range nodes {
		d := styledtree.Node(n).Damage()
		if d.IsEmpty() {
			continue
		}
		s.Damaged++
		for _, f := range d.Flags() {
			s.Flags[f]++
		}
		if d.WillChangeBoxSubtree() {
			s.BoxSubtree++
		}
	}
	return s, nil
}

var allDamage = damage.Repaint | damage.Reflow | damage.Repair | damage.Rebuild

func (s Summary) String() string {
	var flags []string
	for _, f := range allDamage.Flags() {
		if c := s.Flags[f]; c > 0 {
			flags = append(flags, fmt.Sprintf("%v %d", f, c))
		}
	}
	str := fmt.Sprintf("%d nodes, %d damaged", s.Nodes, s.Damaged)
	if len(flags) > 0 {
		str += " (" + strings.Join(flags, ", ") + ")"
	}
	return str + fmt.Sprintf(", %d box sub-trees changing", s.BoxSubtree)
}
