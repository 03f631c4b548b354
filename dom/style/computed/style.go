package computed

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/css"
	"github.com/npillmayer/restyle/restyle"
	"golang.org/x/net/html"
)

// Style is a computed style snapshot for a node.
type Style struct {
	pmap *style.PropertyMap
	box  restyle.BoxStyle
}

var _ restyle.ComputedStyle[*Style] = (*Style)(nil)

// New creates a style snapshot from a property map of computed values.
// The property map is copied.
//
// The original display mode is taken from property "display". The used
// display mode is blockified for floats and absolutely positioned boxes.
// A display value which cannot be parsed is treated as the initial value
// "inline" for the used display mode, but is kept for comparison.
func New(pmap *style.PropertyMap) *Style {
	s := &Style{pmap: pmap.Clone()}
	disp, _ := s.pmap.Property("display")
	mode, err := css.ParseDisplay(disp.String())
	if err != nil {
		tracer().Errorf("computed style: %v", err)
		mode = css.DisplayInline
		s.box.UnknownDisplay = disp.String()
	}
	s.box.OriginalDisplay = mode
	s.box.Display = mode
	float, _ := s.pmap.Property("float")
	pos, _ := s.pmap.Property("position")
	if position := css.Position(pos); (!float.IsEmpty() && float != "none") || position.IsOutOfFlow() {
		s.box.Display = mode.Blockify()
		tracer().Debugf("display %v blockified to %v (float=%s, position=%v)", mode,
			s.box.Display, float, position)
	}
	return s
}

// Compute creates the computed style for an HTML node h, given the node's
// cascaded local properties and the computed style of its parent. parent
// may be nil for the root element.
//
// Every property known to the user-agent defaults gets a value, as do
// all custom properties set locally or inherited from the parent.
func Compute(local *style.PropertyMap, parent *Style, h *html.Node) *Style {
	var ppmap *style.PropertyMap
	if parent != nil {
		ppmap = parent.pmap
	}
	pmap := style.NewPropertyMap()
	for _, key := range propertyKeys(local, ppmap) {
		if p := css.ComputeProperty(local, ppmap, h, key); !p.IsEmpty() {
			pmap.Add(key, p)
		}
	}
	return New(pmap)
}

var uaKeys []string

func init() {
	ua := style.InitializeDefaultPropertyValues(nil)
	for _, name := range ua.GroupNames() {
		for _, kv := range ua.Group(name).Properties() {
			uaKeys = append(uaKeys, kv.Key)
		}
	}
	uaKeys = append(uaKeys, "display")
}

// propertyKeys collects all keys to compute for a node.
func propertyKeys(local, parent *style.PropertyMap) []string {
	seen := make(map[string]struct{}, len(uaKeys))
	keys := make([]string, 0, len(uaKeys))
	add := func(k string) {
		if _, ok := seen[k]; !ok {
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
	}
	for _, k := range uaKeys {
		add(k)
	}
	for _, name := range local.GroupNames() {
		for _, kv := range local.Group(name).Properties() {
			add(kv.Key)
		}
	}
	for _, kv := range parent.Group(style.PGCustom).Properties() {
		add(kv.Key)
	}
	return keys
}

// Box is part of interface restyle.ComputedStyle.
func (s *Style) Box() restyle.BoxStyle {
	return s.box
}

// Get returns the computed value of a property.
func (s *Style) Get(key string) style.Property {
	if s == nil {
		return style.NullStyle
	}
	p, _ := s.pmap.Property(key)
	return p
}

// Group returns a property group of the style, or nil.
// Clients must not modify the group.
func (s *Style) Group(name string) *style.PropertyGroup {
	if s == nil {
		return nil
	}
	return s.pmap.Group(name)
}

// PropertyMap returns a copy of the properties of s.
func (s *Style) PropertyMap() *style.PropertyMap {
	if s == nil {
		return style.NewPropertyMap()
	}
	return s.pmap.Clone()
}

// CustomProperties returns all custom properties, sorted by name.
func (s *Style) CustomProperties() []style.KeyValue {
	return s.Group(style.PGCustom).Properties()
}

// CustomPropertiesEqual is part of interface restyle.ComputedStyle.
func (s *Style) CustomPropertiesEqual(other *Style) bool {
	return s.Group(style.PGCustom).Equal(other.Group(style.PGCustom))
}

func (s *Style) String() string {
	if s == nil {
		return "<no style>"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "style{display=%v, original=%v", s.box.Display, s.box.OriginalDisplay)
	var props []string
	for _, name := range s.pmap.GroupNames() {
		for _, kv := range s.pmap.Group(name).Properties() {
			props = append(props, kv.Key+"="+kv.Value.String())
		}
	}
	sort.Strings(props)
	if len(props) > 0 {
		b.WriteString(", ")
		b.WriteString(strings.Join(props, ", "))
	}
	b.WriteString("}")
	return b.String()
}
