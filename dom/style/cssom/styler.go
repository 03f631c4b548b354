package cssom

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/computed"
	"github.com/npillmayer/restyle/dom/styledtree"
	"github.com/npillmayer/restyle/tree"
	"golang.org/x/net/html"
)

// ErrNoDocument is returned when styling an empty document.
var ErrNoDocument = errors.New("no document to style")

// compiledRule is a rule of a stylesheet with its selectors compiled.
type compiledRule struct {
	selectors cascadia.SelectorGroup
	rule      Rule
	order     int // source order across all stylesheets
}

// declaration is a single property declaration matching an element.
type declaration struct {
	key         string
	value       style.Property
	important   bool
	specificity cascadia.Specificity
	order       int
}

func compile(sheets []StyleSheet) ([]compiledRule, error) {
	var rules []compiledRule
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, r := range sheet.Rules() {
			sel, err := cascadia.ParseGroup(r.Selector())
			if err != nil {
				return nil, fmt.Errorf("invalid selector %q: %w", r.Selector(), err)
			}
			rules = append(rules, compiledRule{selectors: sel, rule: r, order: len(rules)})
		}
	}
	tracer().Debugf("compiled %d style rules", len(rules))
	return rules, nil
}

// matches returns the highest specificity of the selectors of r matching h.
func (r compiledRule) matches(h *html.Node) (cascadia.Specificity, bool) {
	var spec cascadia.Specificity
	matched := false
	for _, sel := range r.selectors {
		if sel.Match(h) {
			if s := sel.Specificity(); !matched || spec.Less(s) {
				spec = s
			}
			matched = true
		}
	}
	return spec, matched
}

// localProperties computes the cascaded properties of an element, i.e. the
// properties set by matching rules and by the element's style attribute.
// Declarations apply in order of specificity, then source order, with
// !important declarations last. Declarations of the style attribute win
// over the stylesheets.
func localProperties(h *html.Node, rules []compiledRule) (*style.PropertyMap, error) {
	var decls []declaration
	for _, r := range rules {
		spec, ok := r.matches(h)
		if !ok {
			continue
		}
		for _, key := range r.rule.Properties() {
			decls = append(decls, declaration{
				key:         key,
				value:       r.rule.Value(key),
				important:   r.rule.IsImportant(key),
				specificity: spec,
				order:       r.order,
			})
		}
	}
	sort.SliceStable(decls, func(i, j int) bool {
		di, dj := decls[i], decls[j]
		if di.important != dj.important {
			return dj.important
		}
		if di.specificity != dj.specificity {
			return di.specificity.Less(dj.specificity)
		}
		return di.order < dj.order
	})
	pmap := style.NewPropertyMap()
	for _, d := range decls {
		key := d.key
		if !style.IsCustomProperty(key) {
			key = strings.ToLower(key)
		}
		if !style.IsCompoundProperty(key) {
			pmap.Add(key, d.value)
			continue
		}
		kvs, err := style.SplitCompoundProperty(key, d.value)
		if err != nil {
			return nil, err
		}
		for _, kv := range kvs {
			pmap.Add(kv.Key, kv.Value)
		}
	}
	if attr, ok := styleAttribute(h); ok {
		inline, err := computed.ParseDeclarations(attr)
		if err != nil {
			return nil, fmt.Errorf("style attribute of <%s>: %w", h.Data, err)
		}
		for _, name := range inline.GroupNames() {
			pmap.AddAllFromGroup(inline.Group(name), true)
		}
	}
	return pmap, nil
}

func styleAttribute(h *html.Node) (string, bool) {
	for _, a := range h.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, "style") {
			return a.Val, true
		}
	}
	return "", false
}

// elementChildren returns the child element nodes of h.
func elementChildren(h *html.Node) []*html.Node {
	var children []*html.Node
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.ElementNode {
			children = append(children, ch)
		}
	}
	return children
}

// rootElement finds the outermost element of a document.
func rootElement(doc *html.Node) *html.Node {
	if doc == nil {
		return nil
	}
	if doc.Type == html.ElementNode {
		return doc
	}
	for ch := doc.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := rootElement(ch); r != nil {
			return r
		}
	}
	return nil
}

// --- Styling ---------------------------------------------------------------

// Style creates a styled tree for an HTML document. Every element node
// below doc gets a styled node with computed styles from the stylesheets.
// Stylesheets are applied in order, thus rules of later sheets win over
// rules of earlier sheets with equal specificity.
//
// Style returns ErrNoDocument if doc does not contain any element.
func Style(doc *html.Node, sheets ...StyleSheet) (*tree.Node[*styledtree.StyNode], error) {
	h := rootElement(doc)
	if h == nil {
		return nil, ErrNoDocument
	}
	root := styledtree.NewNodeForHTMLNode(h)
	if err := Restyle(root, sheets...); err != nil {
		return nil, err
	}
	return root, nil
}

// Restyle re-computes the styles of an existing styled tree, given the
// root of the tree. For every node the current styles become the previous
// styles (see styledtree.StyNode.SetStyles).
//
// The styled tree is synchronized with the underlying HTML tree: elements
// which have been inserted into the HTML tree get new styled nodes (without
// previous styles), styled nodes of removed elements are isolated. Nodes
// whose list of children changed are marked as such.
func Restyle(root *tree.Node[*styledtree.StyNode], sheets ...StyleSheet) error {
	if root == nil || styledtree.Node(root).HTMLNode() == nil {
		return ErrNoDocument
	}
	rules, err := compile(sheets)
	if err != nil {
		return err
	}
	action := func(n, parent *tree.Node[*styledtree.StyNode], _ int) (*tree.Node[*styledtree.StyNode], error) {
		sn := styledtree.Node(n)
		local, err := localProperties(sn.HTMLNode(), rules)
		if err != nil {
			return nil, err
		}
		var parentStyle *computed.Style
		if parent != nil {
			parentStyle = styledtree.Node(parent).Styles()
		}
		sn.SetStyles(computed.Compute(local, parentStyle, sn.HTMLNode()))
		syncChildren(n)
		return n, nil
	}
	nodes, err := tree.NewWalker(root).TopDown(action).Promise()()
	if err != nil {
		return err
	}
	tracer().Infof("styled %d nodes", len(nodes))
	return nil
}

// syncChildren makes the styled children of n mirror the child elements
// of its HTML node.
func syncChildren(n *tree.Node[*styledtree.StyNode]) {
	sn := styledtree.Node(n)
	current := n.Children(true)
	existing := make(map[*html.Node]*tree.Node[*styledtree.StyNode], len(current))
	for _, ch := range current {
		existing[styledtree.Node(ch).HTMLNode()] = ch
	}
	elements := elementChildren(sn.HTMLNode())
	wanted := make([]*tree.Node[*styledtree.StyNode], len(elements))
	inSync := len(elements) == len(current)
	for i, e := range elements {
		if ch, ok := existing[e]; ok {
			wanted[i] = ch
		} else {
			wanted[i] = styledtree.NewNodeForHTMLNode(e)
		}
		inSync = inSync && i < len(current) && current[i] == wanted[i]
	}
	if inSync {
		return
	}
	// a freshly created node has no children yet and is not marked
	if len(current) > 0 {
		sn.MarkChildrenChanged()
	}
	for _, ch := range current {
		ch.Isolate()
	}
	for _, ch := range wanted {
		n.AddChild(ch)
	}
}
