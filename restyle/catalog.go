package restyle

import (
	"errors"
	"fmt"

	"github.com/npillmayer/restyle/dom/style/css"
)

// BoxStyle holds the box properties of a computed style which are relevant
// for restyle classification.
//
// OriginalDisplay is the display mode as specified, Display is the display
// mode actually used, which may differ, e.g., for floats (see
// css.DisplayMode.Blockify).
//
// UnknownDisplay keeps a display value which css.ParseDisplay does not
// understand, so that two different unknown values never compare equal.
type BoxStyle struct {
	Display         css.DisplayMode
	OriginalDisplay css.DisplayMode
	UnknownDisplay  string
}

// sameOriginalDisplay is true if a and b have been specified with the same
// display mode.
func (a BoxStyle) sameOriginalDisplay(b BoxStyle) bool {
	return a.OriginalDisplay == b.OriginalDisplay && a.UnknownDisplay == b.UnknownDisplay
}

// ComputedStyle is a style snapshot which a Classifier is able to compare.
// Type parameter S is the concrete snapshot type, usually a pointer type.
type ComputedStyle[S any] interface {
	Box() BoxStyle
	CustomPropertiesEqual(other S) bool
}

// Predicate reports if a change from old to new is relevant for a rule.
// Predicates must be pure functions.
type Predicate[S any] func(old, new S) bool

// Rule is an entry of a restyle catalog.
type Rule[S any] struct {
	Name     string       // name of the rule, for diagnostics
	Category Category     // the category the rule belongs to
	Changed  Predicate[S] // true if the rule detects a relevant change
}

// ErrInvalidRule is returned by NewCatalog for malformed rules.
var ErrInvalidRule = errors.New("invalid restyle rule")

// Catalog is an immutable, categorized table of rules. Create catalogs with
// NewCatalog.
type Catalog[S any] struct {
	rules [categoryCount][]Rule[S]
}

// NewCatalog creates a catalog from a list of rules. Rules keep their
// relative order within their category. Rules without a name, without
// a predicate or with an unknown category are rejected with ErrInvalidRule.
func NewCatalog[S any](rules ...Rule[S]) (*Catalog[S], error) {
	cat := &Catalog[S]{}
	for i, r := range rules {
		switch {
		case r.Name == "":
			return nil, fmt.Errorf("%w: rule #%d has no name", ErrInvalidRule, i)
		case r.Changed == nil:
			return nil, fmt.Errorf("%w: rule %q has no predicate", ErrInvalidRule, r.Name)
		case !r.Category.IsValid():
			return nil, fmt.Errorf("%w: rule %q has unknown category %v", ErrInvalidRule, r.Name, r.Category)
		}
		cat.rules[r.Category] = append(cat.rules[r.Category], r)
	}
	tracer().Debugf("restyle catalog with %d rules", len(rules))
	return cat, nil
}

// Rules returns a copy of the rules of a category.
func (cat *Catalog[S]) Rules(c Category) []Rule[S] {
	if cat == nil || !c.IsValid() {
		return nil
	}
	rules := make([]Rule[S], len(cat.rules[c]))
	copy(rules, cat.rules[c])
	return rules
}

// Len returns the number of rules in a catalog.
func (cat *Catalog[S]) Len() int {
	if cat == nil {
		return 0
	}
	n := 0
	for _, rules := range cat.rules {
		n += len(rules)
	}
	return n
}

func (cat *Catalog[S]) match(c Category, old, new S) (string, bool) {
	if cat == nil {
		return "", false
	}
	for _, r := range cat.rules[c] {
		if r.Changed(old, new) {
			return r.Name, true
		}
	}
	return "", false
}
