package restyle

import (
	"fmt"

	"github.com/npillmayer/restyle/damage"
)

// StyleChange tells the cascade if a style has changed. It is either
// Unchanged or Changed(resetOnly).
//
// resetOnly is reserved to signal that only non-inherited style groups
// changed. It is not computed yet and always false for changes produced
// by a Classifier.
type StyleChange struct {
	changed   bool
	resetOnly bool
}

// Unchanged is the style change for equal styles.
var Unchanged = StyleChange{}

// Changed creates a style change for styles which differ.
func Changed(resetOnly bool) StyleChange {
	return StyleChange{changed: true, resetOnly: resetOnly}
}

// IsChanged is false for Unchanged.
func (sc StyleChange) IsChanged() bool {
	return sc.changed
}

// ResetOnly returns the reset-only flag of a change. Always false for Unchanged.
func (sc StyleChange) ResetOnly() bool {
	return sc.changed && sc.resetOnly
}

func (sc StyleChange) String() string {
	if sc.changed {
		return "Changed"
	}
	return "Unchanged"
}

// ---------------------------------------------------------------------------

func (sc StyleChange) Match() *ChangeMatcher {
	return &ChangeMatcher{change: sc}
}

type ChangeMatcher struct {
	change StyleChange
}

func (m *ChangeMatcher) Unchanged() *ChangeMatcher {
	if !m.change.changed {
		return m
	}
	return nil
}

func (m *ChangeMatcher) Changed(resetOnly *bool) *ChangeMatcher {
	if m.change.changed {
		if resetOnly != nil {
			*resetOnly = m.change.resetOnly
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

type StyleChangePatterns[T any] struct {
	Unchanged T
	Changed   T
}

func StyleChangePattern[T any](sc StyleChange) *SCMatchExpr[T] {
	return &SCMatchExpr[T]{change: sc}
}

type SCMatchExpr[T any] struct {
	change StyleChange
}

func (m *SCMatchExpr[T]) OneOf(patterns StyleChangePatterns[T]) T {
	if m.change.changed {
		return patterns.Changed
	}
	return patterns.Unchanged
}

// ---------------------------------------------------------------------------

// StyleDifference is the result of classifying a style change.
type StyleDifference struct {
	Damage damage.Damage
	Change StyleChange
}

func (diff StyleDifference) String() string {
	return fmt.Sprintf("%v (%v)", diff.Change, diff.Damage)
}
