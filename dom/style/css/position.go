package css

import (
	"strings"

	"github.com/npillmayer/restyle/dom/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	positionSticky            // CSS sticky
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	kind position
}

var positionMap = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	positionSticky:   "sticky",
}

var positionStringMap = map[string]position{
	"static":   positionStatic,
	"relative": positionRelative,
	"absolute": positionAbsolute,
	"fixed":    positionFixed,
	"sticky":   positionSticky,
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	kind := positionStringMap[strings.ToLower(strings.TrimSpace(string(p)))]
	return PositionT{kind: kind}
}

// IsOutOfFlow returns true if p takes a box out of normal flow, i.e. for
// absolute and fixed positions.
func (p PositionT) IsOutOfFlow() bool {
	return p.kind == positionAbsolute || p.kind == positionFixed
}

// String returns the CSS keyword for p, or "unset".
func (p PositionT) String() string {
	if s, ok := positionMap[p.kind]; ok {
		return s
	}
	return "unset"
}
