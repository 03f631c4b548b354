package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'restyle.style'
func tracer() tracing.Trace {
	return tracing.Select("restyle.style")
}

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- CSS Property Groups ----------------------------------------------
//
// Caching is currently not implemented.

// PropertyGroup is a collection of propertes sharing a common topic.
// CSS knows a whole lot of properties. We split them up into organisatorial
// groups.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	Parent    *PropertyGroup
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	s := "[" + pg.name + "] =\n"
	for _, kv := range pg.Properties() {
		s += fmt.Sprintf("  %s = %s\n", kv.Key, kv.Value)
	}
	return s
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	if pg == nil {
		return nil
	}
	i := 0
	r := make([]KeyValue, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r[i] = KeyValue{k, v}
		i++
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// Equal compares two property groups, ignoring ancestor links: groups are
// equal if they set the same keys to the same values. Properties set to
// NullStyle count as not set. nil is equal to an empty group.
func (pg *PropertyGroup) Equal(other *PropertyGroup) bool {
	a, b := pg.setProperties(), other.setProperties()
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if w, ok := b[k]; !ok || w != v {
			return false
		}
	}
	return true
}

func (pg *PropertyGroup) setProperties() map[string]Property {
	if pg == nil {
		return nil
	}
	m := make(map[string]Property, len(pg.propsDict))
	for k, v := range pg.propsDict {
		if !v.IsEmpty() {
			m[k] = v
		}
	}
	return m
}

// Clone creates a copy of a property group. The copy shares the parent link
// with pg.
func (pg *PropertyGroup) Clone() *PropertyGroup {
	if pg == nil {
		return nil
	}
	npg := NewPropertyGroup(pg.name)
	npg.Parent = pg.Parent
	if pg.propsDict != nil {
		npg.propsDict = make(map[string]Property, len(pg.propsDict))
		for k, v := range pg.propsDict {
			npg.propsDict[k] = v
		}
	}
	return npg
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are converted to lower case, except for
// custom properties, which are kept verbatim. Quoted strings and the
// arguments of url(…) are case-sensitive and are kept as well.
func (pg *PropertyGroup) Set(key string, p Property) {
	if !IsCustomProperty(key) {
		p = Property(lowerValue(strings.TrimSpace(string(p))))
	}
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// lowerValue converts a property value to lower case, skipping quoted
// strings and unquoted url(…) arguments.
func lowerValue(v string) string {
	var b strings.Builder
	b.Grow(len(v))
	for i := 0; i < len(v); {
		c := v[i]
		switch {
		case c == '"' || c == '\'':
			end := closingQuote(v, i)
			b.WriteString(v[i:end])
			i = end
		case len(v)-i >= 4 && strings.EqualFold(v[i:i+4], "url("):
			b.WriteString("url(")
			i += 4
			rest := strings.TrimLeft(v[i:], " \t")
			if rest != "" && (rest[0] == '"' || rest[0] == '\'') {
				continue
			}
			end := strings.IndexByte(v[i:], ')')
			if end < 0 {
				end = len(v) - i
			}
			b.WriteString(v[i : i+end])
			i += end
		default:
			if 'A' <= c && c <= 'Z' {
				c += 'a' - 'A'
			}
			b.WriteByte(c)
			i++
		}
	}
	return b.String()
}

// closingQuote returns the index after the string starting at v[start].
// Unterminated strings extend to the end of v.
func closingQuote(v string, start int) int {
	quote := v[start]
	for i := start + 1; i < len(v); i++ {
		switch v[i] {
		case '\\':
			i++
		case quote:
			return i + 1
		}
	}
	return len(v)
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	_, exists := pg.propsDict[key]
	if !exists {
		pg.propsDict[key] = p
	}
}

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("margin-top") => "Margins"
//
// Custom properties (`--*`) belong to group "Custom".
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if IsCustomProperty(key) {
		return PGCustom
	}
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		if strings.HasPrefix(key, "background-") {
			return PGBackground
		}
		groupname = PGX
	}
	return groupname
}

// IsCustomProperty is true for author-defined custom properties
// (CSS variables), which start with two dashes.
func IsCustomProperty(key string) bool {
	return len(key) > 2 && strings.HasPrefix(key, "--")
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGMargins    = "Margins"
	PGPadding    = "Padding"
	PGBorder     = "Border"
	PGDimension  = "Dimension"
	PGOffsets    = "Offsets"
	PGDisplay    = "Display"
	PGRegion     = "Region"
	PGColor      = "Color"
	PGBackground = "Background"
	PGText       = "Text"
	PGFont       = "Font"
	PGTable      = "Table"
	PGList       = "List"
	PGOutline    = "Outline"
	PGEffects    = "Effects"
	PGCustom     = "Custom"
	PGX          = "X"
)

var groupNameFromPropertyKey = map[string]string{
	"margin-top":                 PGMargins, // Margins
	"margin-left":                PGMargins,
	"margin-right":               PGMargins,
	"margin-bottom":              PGMargins,
	"padding-top":                PGPadding, // Padding
	"padding-left":               PGPadding,
	"padding-right":              PGPadding,
	"padding-bottom":             PGPadding,
	"border-top-color":           PGBorder, // Border
	"border-left-color":          PGBorder,
	"border-right-color":         PGBorder,
	"border-bottom-color":        PGBorder,
	"border-top-width":           PGBorder,
	"border-left-width":          PGBorder,
	"border-right-width":         PGBorder,
	"border-bottom-width":        PGBorder,
	"border-top-style":           PGBorder,
	"border-left-style":          PGBorder,
	"border-right-style":         PGBorder,
	"border-bottom-style":        PGBorder,
	"border-top-left-radius":     PGBorder,
	"border-top-right-radius":    PGBorder,
	"border-bottom-left-radius":  PGBorder,
	"border-bottom-right-radius": PGBorder,
	"width":                      PGDimension, // Dimension
	"height":                     PGDimension,
	"min-width":                  PGDimension,
	"min-height":                 PGDimension,
	"max-width":                  PGDimension,
	"max-height":                 PGDimension,
	"top":                        PGOffsets, // Offsets
	"right":                      PGOffsets,
	"bottom":                     PGOffsets,
	"left":                       PGOffsets,
	"display":                    PGDisplay, // Display
	"float":                      PGDisplay,
	"visibility":                 PGDisplay,
	"position":                   PGDisplay,
	"flow-into":                  PGRegion,
	"flow-from":                  PGRegion,
	"color":                      PGColor,
	"background-color":           PGBackground, // Background
	"background-image":           PGBackground,
	"background-position-x":      PGBackground,
	"background-position-y":      PGBackground,
	"background-repeat":          PGBackground,
	"background-attachment":      PGBackground,
	"background-clip":            PGBackground,
	"background-origin":          PGBackground,
	"background-size":            PGBackground,
	"direction":                  PGText, // Text
	"white-space":                PGText,
	"word-spacing":               PGText,
	"letter-spacing":             PGText,
	"word-break":                 PGText,
	"word-wrap":                  PGText,
	"overflow-wrap":              PGText,
	"hyphens":                    PGText,
	"text-align":                 PGText,
	"text-indent":                PGText,
	"text-transform":             PGText,
	"line-height":                PGText,
	"vertical-align":             PGText,
	"font-family":                PGFont, // Font
	"font-size":                  PGFont,
	"font-style":                 PGFont,
	"font-weight":                PGFont,
	"font-variant":               PGFont,
	"font-stretch":               PGFont,
	"table-layout":               PGTable, // Table
	"border-collapse":            PGTable,
	"border-spacing":             PGTable,
	"caption-side":               PGTable,
	"empty-cells":                PGTable,
	"list-style-type":            PGList, // List
	"list-style-position":        PGList,
	"list-style-image":           PGList,
	"outline-color":              PGOutline, // Outline
	"outline-style":              PGOutline,
	"outline-width":              PGOutline,
	"outline-offset":             PGOutline,
	"opacity":                    PGEffects, // Effects
	"z-index":                    PGEffects,
	"box-shadow":                 PGEffects,
	"transform":                  PGEffects,
	"filter":                     PGEffects,
	"mix-blend-mode":             PGEffects,
}

// IsCascading returns wether the standard behaviour for a propery is to be
// inherited or not, i.e., a call to retrieve its value will cascade.
//
// Custom properties are always inherited.
func IsCascading(key string) bool {
	if strings.HasPrefix(key, "list-style") || strings.HasPrefix(key, "font-") {
		return true
	}
	if IsCustomProperty(key) {
		return true
	}
	switch key {
	case "color", "cursor", "direction", "flow-into", "flow-from":
		return true
	case "letter-spacing", "line-height", "quotes", "visibility", "white-space":
		return true
	case "word-spacing", "word-break", "word-wrap", "overflow-wrap", "hyphens":
		return true
	case "text-align", "text-indent", "text-transform":
		return true
	case "border-collapse", "border-spacing", "caption-side", "empty-cells":
		return true
	}
	return false
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin", "margins":
		return feazeCompound4("margin", "", fourDirs, fields)
	case "padding":
		return feazeCompound4("padding", "", fourDirs, fields)
	case "border-color":
		return feazeCompound4("border", "color", fourDirs, fields)
	case "border-width":
		return feazeCompound4("border", "width", fourDirs, fields)
	case "border-style":
		return feazeCompound4("border", "style", fourDirs, fields)
	case "border-radius":
		return feazeCompound4("border", "radius", fourCorners, fields)
	case "inset":
		return feazeCompound4("", "", fourDirs, fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// IsCompoundProperty returns true if key is a shortcut property understood
// by SplitCompoundProperty.
func IsCompoundProperty(key string) bool {
	switch key {
	case "margin", "margins", "padding", "border-color", "border-width",
		"border-style", "border-radius", "inset":
		return true
	}
	return false
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: https://www.w3schools.com/css/css_border.asp
func feazeCompound4(pre string, suf string, dirs [4]string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s-%s", pre, suf)
	}
	r := make([]KeyValue, 4)
	r[0] = KeyValue{p(pre, suf, dirs[0]), Property(fields[0])}
	if l >= 2 {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[1])}
		if l >= 3 {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[2])}
			if l == 4 {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[3])}
			} else {
				r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
			}
		} else {
			r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
			r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[1])}
		}
	} else {
		r[1] = KeyValue{p(pre, suf, dirs[1]), Property(fields[0])}
		r[2] = KeyValue{p(pre, suf, dirs[2]), Property(fields[0])}
		r[3] = KeyValue{p(pre, suf, dirs[3]), Property(fields[0])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

func p(prefix string, suffix string, tag string) string {
	if prefix == "" && suffix == "" {
		return tag
	}
	if suffix == "" {
		return prefix + "-" + tag
	}
	if prefix == "" {
		return tag + "-" + suffix
	}
	return prefix + "-" + tag + "-" + suffix
}

// --- Property Map -----------------------------------------------------

// PropertyMap holds CSS properties. nil is a legal (empty) property map.
// A property map is the entity styling a DOM node: a DOM node links to a property map,
// which contains zero or more property groups. Property maps may share property groups.
type PropertyMap struct {
	// As CSS defines a whole lot of properties, we segment them into logical groups.
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{m: make(map[string]*PropertyGroup)}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {\n"
	for _, name := range pmap.GroupNames() {
		s += pmap.m[name].String()
	}
	s += "}"
	return s
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// GroupNames returns the names of all property groups of a map, sorted.
func (pmap *PropertyMap) GroupNames() []string {
	if pmap == nil {
		return nil
	}
	names := make([]string, 0, len(pmap.m))
	for name := range pmap.m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	group := pmap.m[groupname]
	return group
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
// No cascading is performed
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	groupname := GroupNameFromPropertyKey(key)
	group := pmap.Group(groupname)
	if group == nil {
		return NullStyle, false
	}
	return group.Get(key)
}

// AddAllFromGroup transfers all style properties from a property group
// to a property map. If overwrite is set, existing style property values
// will be overwritten, otherwise only new values are set.
//
// If the property map does not yet contain a group of this kind, it will
// simply set this group (instead of copying values).
func (pmap *PropertyMap) AddAllFromGroup(group *PropertyGroup, overwrite bool) *PropertyMap {
	if pmap == nil {
		pmap = NewPropertyMap()
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	g := pmap.Group(group.name)
	if g == nil {
		pmap.m[group.name] = group
	} else {
		for k, v := range group.propsDict {
			if overwrite {
				g.Set(k, v)
			} else {
				g.Add(k, v)
			}
		}
	}
	return pmap
}

// Add adds a property to this property map, e.g.,
//
//    pm.Add("funny-margin", "big")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Equal compares two property maps group by group. Groups missing in one of
// the maps compare equal to empty groups.
func (pmap *PropertyMap) Equal(other *PropertyMap) bool {
	names := make(map[string]struct{})
	for _, n := range pmap.GroupNames() {
		names[n] = struct{}{}
	}
	for _, n := range other.GroupNames() {
		names[n] = struct{}{}
	}
	for n := range names {
		if !pmap.Group(n).Equal(other.Group(n)) {
			return false
		}
	}
	return true
}

// Clone creates a deep copy of a property map. Groups are copied, but
// parent links of groups are shared.
func (pmap *PropertyMap) Clone() *PropertyMap {
	c := NewPropertyMap()
	if pmap == nil {
		return c
	}
	for name, g := range pmap.m {
		c.m[name] = g.Clone()
	}
	return c
}
