package computed

import (
	"errors"
	"fmt"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/css"
	"github.com/npillmayer/restyle/restyle"
)

// Comparison selects how property values are compared by a catalog entry.
type Comparison string

// Comparisons known to catalog entries.
const (
	CompareValue        Comparison = "value"         // raw property values
	CompareDimen        Comparison = "dimen"         // as CSS dimensions, e.g. 16px = 12pt
	CompareColor        Comparison = "color"         // as RGBA colors, e.g. red = #f00
	CompareCounterStyle Comparison = "counter-style" // as counter styles, unknown = decimal
)

// ErrInvalidEntry is returned for catalog entries which cannot be turned
// into restyle rules.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Entry is a catalog entry, mapping either a single property or a whole
// property group onto a restyle category.
type Entry struct {
	Name     string           // name of the rule; defaults to Property or Group
	Group    string           // property group to compare
	Property string           // single property to compare
	Category restyle.Category // restyle category of the rule
	Compare  Comparison       // comparison; defaults to CompareValue
}

// Rule converts a catalog entry to a restyle rule.
func (e Entry) Rule() (restyle.Rule[*Style], error) {
	r := restyle.Rule[*Style]{Name: e.Name, Category: e.Category}
	if !e.Category.IsValid() {
		return r, fmt.Errorf("%w: unknown category %v", ErrInvalidEntry, e.Category)
	}
	eq, err := equality(e.Compare)
	if err != nil {
		return r, err
	}
	switch {
	case e.Property != "" && e.Group != "":
		return r, fmt.Errorf("%w: entry names both property %q and group %q", ErrInvalidEntry,
			e.Property, e.Group)
	case e.Property != "":
		if r.Name == "" {
			r.Name = e.Property
		}
		key := e.Property
		r.Changed = func(old, new *Style) bool {
			return !eq(old.Get(key), new.Get(key))
		}
	case e.Group != "":
		if r.Name == "" {
			r.Name = e.Group
		}
		group := e.Group
		if e.Compare == "" || e.Compare == CompareValue {
			r.Changed = func(old, new *Style) bool {
				return !old.Group(group).Equal(new.Group(group))
			}
		} else {
			r.Changed = func(old, new *Style) bool {
				return !groupEqual(old.Group(group), new.Group(group), eq)
			}
		}
	default:
		return r, fmt.Errorf("%w: entry names neither property nor group", ErrInvalidEntry)
	}
	return r, nil
}

func equality(c Comparison) (func(a, b style.Property) bool, error) {
	switch c {
	case "", CompareValue:
		return func(a, b style.Property) bool { return a == b }, nil
	case CompareDimen:
		return dimenEqual, nil
	case CompareColor:
		return style.ColorEqual, nil
	case CompareCounterStyle:
		return func(a, b style.Property) bool {
			return style.NormalizeCounterStyle(a.String()) == style.NormalizeCounterStyle(b.String())
		}, nil
	}
	return nil, fmt.Errorf("%w: unknown comparison %q", ErrInvalidEntry, c)
}

// dimenEqual compares dimensions by length. Values which are not
// dimensions, such as "medium", are compared as strings.
func dimenEqual(a, b style.Property) bool {
	if a == b {
		return true
	}
	da, erra := css.ParseDimen(a)
	db, errb := css.ParseDimen(b)
	if erra != nil || errb != nil {
		return false
	}
	return da.Equal(db)
}

func groupEqual(a, b *style.PropertyGroup, eq func(a, b style.Property) bool) bool {
	values := make(map[string]style.Property)
	for _, kv := range a.Properties() {
		values[kv.Key] = kv.Value
	}
	for _, kv := range b.Properties() {
		if !eq(values[kv.Key], kv.Value) {
			return false
		}
		delete(values, kv.Key)
	}
	for _, v := range values {
		if !eq(v, style.NullStyle) {
			return false
		}
	}
	return true
}

// NewCatalog creates a restyle catalog from a list of entries.
func NewCatalog(entries []Entry) (*restyle.Catalog[*Style], error) {
	rules := make([]restyle.Rule[*Style], 0, len(entries))
	for i, e := range entries {
		r, err := e.Rule()
		if err != nil {
			return nil, fmt.Errorf("catalog entry #%d: %w", i, err)
		}
		rules = append(rules, r)
	}
	return restyle.NewCatalog(rules...)
}

// DefaultCatalog creates a restyle catalog from DefaultEntries.
func DefaultCatalog() *restyle.Catalog[*Style] {
	cat, err := NewCatalog(DefaultEntries())
	if err != nil {
		panic(fmt.Sprintf("default restyle catalog is broken: %v", err))
	}
	return cat
}

// DefaultClassifier returns a classifier for the default catalog.
func DefaultClassifier() *restyle.Classifier[*Style] {
	return restyle.NewClassifier(DefaultCatalog())
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}
var fourCorners = [4]string{"top-left", "top-right", "bottom-right", "bottom-left"}

// DefaultEntries returns the built-in catalog entries.
func DefaultEntries() []Entry {
	prop := func(key string, cat restyle.Category, cmp Comparison) Entry {
		return Entry{Property: key, Category: cat, Compare: cmp}
	}
	group := func(name string, cat restyle.Category, cmp Comparison) Entry {
		return Entry{Group: name, Category: cat, Compare: cmp}
	}
	borderWidths := func(cat restyle.Category) []Entry {
		var e []Entry
		for _, dir := range fourDirs {
			e = append(e, prop("border-"+dir+"-width", cat, CompareDimen))
		}
		return e
	}
	entries := []Entry{
		prop("table-layout", restyle.RebuildBox, CompareValue),
		prop("float", restyle.RebuildBox, CompareValue),
		prop("position", restyle.RebuildBox, CompareValue),
		prop("flow-into", restyle.RebuildBox, CompareValue),
		prop("flow-from", restyle.RebuildBox, CompareValue),
		prop("list-style-position", restyle.RebuildBox, CompareValue),
		//
		group(style.PGMargins, restyle.RebuildInline, CompareDimen),
		group(style.PGPadding, restyle.RebuildInline, CompareDimen),
	}
	entries = append(entries, borderWidths(restyle.RebuildInline)...)
	entries = append(entries,
		prop("white-space", restyle.RebuildInline, CompareValue),
		//
		group(style.PGDimension, restyle.Reflow, CompareDimen),
		group(style.PGMargins, restyle.Reflow, CompareDimen),
		group(style.PGPadding, restyle.Reflow, CompareDimen),
	)
	entries = append(entries, borderWidths(restyle.Reflow)...)
	entries = append(entries,
		prop("line-height", restyle.Reflow, CompareDimen),
		prop("vertical-align", restyle.Reflow, CompareDimen),
		group(style.PGText, restyle.Reflow, CompareValue),
		group(style.PGFont, restyle.Reflow, CompareDimen),
		prop("list-style-type", restyle.Reflow, CompareCounterStyle),
		prop("border-collapse", restyle.Reflow, CompareValue),
		prop("border-spacing", restyle.Reflow, CompareDimen),
		prop("caption-side", restyle.Reflow, CompareValue),
		//
		group(style.PGOffsets, restyle.ReflowOutOfFlow, CompareDimen),
		//
		prop("color", restyle.Repaint, CompareColor),
		group(style.PGBackground, restyle.Repaint, CompareColor),
	)
	for _, dir := range fourDirs {
		entries = append(entries,
			prop("border-"+dir+"-color", restyle.Repaint, CompareColor),
			prop("border-"+dir+"-style", restyle.Repaint, CompareValue))
	}
	for _, corner := range fourCorners {
		entries = append(entries, prop("border-"+corner+"-radius", restyle.Repaint, CompareDimen))
	}
	entries = append(entries,
		group(style.PGOutline, restyle.Repaint, CompareColor),
		group(style.PGEffects, restyle.Repaint, CompareValue),
		prop("visibility", restyle.Repaint, CompareValue),
		prop("list-style-image", restyle.Repaint, CompareValue),
		prop("empty-cells", restyle.Repaint, CompareValue),
	)
	return entries
}
