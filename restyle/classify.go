package restyle

import (
	"github.com/npillmayer/restyle/damage"
)

// OriginalDisplayRule is the name reported by Explain if a change of the
// original display mode forces a rebuild.
const OriginalDisplayRule = "original-display"

// Classifier computes restyle damage from two style snapshots, using the
// rules of a catalog.
type Classifier[S ComputedStyle[S]] struct {
	catalog *Catalog[S]
}

// NewClassifier creates a classifier for a catalog. A nil catalog is a legal
// empty catalog; the classifier will then check display modes and custom
// properties only.
func NewClassifier[S ComputedStyle[S]](catalog *Catalog[S]) *Classifier[S] {
	return &Classifier[S]{catalog: catalog}
}

// Catalog returns the catalog of a classifier.
func (c *Classifier[S]) Catalog() *Catalog[S] {
	return c.catalog
}

// Reason tells why Explain computed a damage.
type Reason struct {
	Category         Category // category of the rule that matched, if any
	Rule             string   // name of the rule that matched, if any
	Matched          bool     // true if a rule matched
	CustomProperties bool     // true if custom properties differ
}

func (r Reason) String() string {
	s := "no rule matched"
	if r.Matched {
		s = r.Category.String() + ": " + r.Rule
	}
	if r.CustomProperties {
		s += " (+ custom properties)"
	}
	return s
}

// Classify computes the damage for a node whose style changes from old to new.
//
// Categories are evaluated most severe first. Evaluation stops at the first
// matching rule; thus Rebuild and Reflow will never both be set. Different
// custom properties will always add Repaint.
func (c *Classifier[S]) Classify(old, new S) damage.Damage {
	d, _ := c.Explain(old, new)
	return d
}

// Explain computes the same damage as Classify and additionally reports the
// rule responsible for it.
func (c *Classifier[S]) Explain(old, new S) (damage.Damage, Reason) {
	var d damage.Damage
	var reason Reason
	newbox := new.Box()
	if !old.Box().sameOriginalDisplay(newbox) {
		reason = Reason{Category: RebuildBox, Rule: OriginalDisplayRule, Matched: true}
	} else {
		for _, cat := range Categories() {
			if cat == RebuildInline && !newbox.Display.IsInline() {
				continue
			}
			if rule, ok := c.catalog.match(cat, old, new); ok {
				reason = Reason{Category: cat, Rule: rule, Matched: true}
				break
			}
		}
	}
	if reason.Matched {
		d.Insert(reason.Category.Damage())
		tracer().Debugf("restyle rule %s/%s matched", reason.Category, reason.Rule)
	}
	if !old.CustomPropertiesEqual(new) {
		reason.CustomProperties = true
		d.Insert(damage.Repaint)
	}
	return d, reason
}

// Difference classifies a style change and wraps the damage into a
// StyleDifference.
func (c *Classifier[S]) Difference(old, new S) StyleDifference {
	d := c.Classify(old, new)
	if d.IsEmpty() {
		return StyleDifference{Damage: d, Change: Unchanged}
	}
	return StyleDifference{Damage: d, Change: Changed(false)}
}

// ComputeStyleDifference computes the style difference between two snapshots,
// using classifier c.
func ComputeStyleDifference[S ComputedStyle[S]](c *Classifier[S], old, new S) StyleDifference {
	return c.Difference(old, new)
}
