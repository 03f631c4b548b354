package damage

import (
	"errors"
	"fmt"
	"strings"
)

// Damage is a set of layout actions that may be necessary after restyling.
// Single flags and sets of flags share this type, in the way css.DisplayMode
// combines atomic modes.
//
// The zero value is NoDamage, meaning no work is necessary.
type Damage uint8

// Individual layout actions. Flags are ordered by severity.
const (
	NoDamage Damage = 0x00 // no work to be done
	Repaint  Damage = 0x01 // repaint the node itself
	Reflow   Damage = 0x02 // re-compute layout geometry
	Repair   Damage = 0x04 // repair the node's box sub-tree, as descendents have been re-built or removed
	Rebuild  Damage = 0x08 // re-build all layout boxes of the node
)

// allFlags lists flags in the order used for printing. Do not re-order.
var allFlags = [...]Damage{Repaint, Reflow, Repair, Rebuild}

var flagNames = [...]string{"Repaint", "Reflow", "Repair", "Rebuild"}

const allMask = Repaint | Reflow | Repair | Rebuild

// Empty returns an empty damage set.
func Empty() Damage {
	return NoDamage
}

// Insert adds all flags of f to the damage set.
func (d *Damage) Insert(f Damage) {
	*d = (*d) | (f & allMask)
}

// Remove clears all flags of f from the damage set.
func (d *Damage) Remove(f Damage) {
	*d = (*d) &^ f
}

// Contains checks if a damage set contains all flags of f.
// Returns false for f = NoDamage.
func (d Damage) Contains(f Damage) bool {
	return f != NoDamage && d&f == f
}

// Intersects returns true if d shares at least one flag with s.
func (d Damage) Intersects(s Damage) bool {
	return d&s != 0
}

// IsEmpty is true if no work has to be done for d.
func (d Damage) IsEmpty() bool {
	return d&allMask == NoDamage
}

// Union returns a new damage set with all the flags of d and other.
func (d Damage) Union(other Damage) Damage {
	return (d | other) & allMask
}

// Flags returns the individual flags of d, in order of severity.
func (d Damage) Flags() []Damage {
	var flags []Damage
	for _, f := range allFlags {
		if d.Contains(f) {
			flags = append(flags, f)
		}
	}
	return flags
}

// String returns the flags of d, joined by " | ", or "NoDamage".
// The order of flags is always Repaint, Reflow, Repair, Rebuild.
func (d Damage) String() string {
	var b strings.Builder
	first := true
	for i, f := range allFlags {
		if d.Contains(f) {
			if !first {
				b.WriteString(" | ")
			}
			first = false
			b.WriteString(flagNames[i])
		}
	}
	if first {
		return "NoDamage"
	}
	return b.String()
}

// ErrUnknownFlag is returned when parsing a damage string with an unknown
// flag name.
var ErrUnknownFlag = errors.New("unknown damage flag")

// ParseDamage reads the textual form produced by String.
// Flag names are case-insensitive and may appear in any order.
func ParseDamage(s string) (Damage, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "NoDamage") {
		return NoDamage, nil
	}
	var d Damage
	for _, part := range strings.Split(s, "|") {
		part = strings.TrimSpace(part)
		found := false
		for i, name := range flagNames {
			if strings.EqualFold(part, name) {
				d.Insert(allFlags[i])
				found = true
				break
			}
		}
		if !found {
			return NoDamage, fmt.Errorf("%w: %q", ErrUnknownFlag, part)
		}
	}
	return d, nil
}

// MarshalText is part of interface encoding.TextMarshaler.
func (d Damage) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText is part of interface encoding.TextUnmarshaler.
func (d *Damage) UnmarshalText(text []byte) error {
	parsed, err := ParseDamage(string(text))
	if err != nil {
		tracer().Errorf("cannot unmarshal damage: %v", err)
		return err
	}
	*d = parsed
	return nil
}
