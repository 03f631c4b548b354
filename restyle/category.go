package restyle

import (
	"fmt"
	"strings"

	"github.com/npillmayer/restyle/damage"
)

// Category is the class of a classification rule. Categories are evaluated
// in the order of their declaration.
type Category uint8

const (
	RebuildBox      Category = iota // changes force re-building the layout boxes
	RebuildInline                   // as RebuildBox, but only for inline boxes
	Reflow                          // changes affect layout geometry
	ReflowOutOfFlow                 // changes affect geometry of out-of-flow boxes
	Repaint                         // changes affect painting only
	categoryCount
)

var categoryNames = [...]string{
	"rebuild_box",
	"rebuild_inline",
	"reflow",
	"reflow_out_of_flow",
	"repaint",
}

// Categories returns all categories in evaluation order.
func Categories() []Category {
	return []Category{RebuildBox, RebuildInline, Reflow, ReflowOutOfFlow, Repaint}
}

func (c Category) String() string {
	if c < categoryCount {
		return categoryNames[c]
	}
	return fmt.Sprintf("Category(%d)", c)
}

// IsValid returns false for categories outside of the known set.
func (c Category) IsValid() bool {
	return c < categoryCount
}

// Damage returns the damage flag inserted if a rule of category c matches.
func (c Category) Damage() damage.Damage {
	switch c {
	case RebuildBox, RebuildInline:
		return damage.Rebuild
	case Reflow, ReflowOutOfFlow:
		return damage.Reflow
	case Repaint:
		return damage.Repaint
	}
	return damage.NoDamage
}

// ParseCategory returns the category for a keyword, as produced by String.
// Dashes and underscores are interchangeable, case is ignored.
func ParseCategory(s string) (Category, error) {
	s = strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	for i, name := range categoryNames {
		if s == name {
			return Category(i), nil
		}
	}
	return categoryCount, fmt.Errorf("unknown restyle category %q", s)
}

// MarshalText is part of interface encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid restyle category %d", c)
	}
	return []byte(c.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	cat, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = cat
	return nil
}
