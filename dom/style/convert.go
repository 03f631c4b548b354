package style

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var namedColors = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"red":     "#ff0000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"blue":    "#0000ff",
	"yellow":  "#ffff00",
	"cyan":    "#00ffff",
	"aqua":    "#00ffff",
	"magenta": "#ff00ff",
	"fuchsia": "#ff00ff",
	"gray":    "#808080",
	"grey":    "#808080",
	"silver":  "#c0c0c0",
	"maroon":  "#800000",
	"olive":   "#808000",
	"navy":    "#000080",
	"purple":  "#800080",
	"teal":    "#008080",
	"orange":  "#ffa500",
}

// ParseColor converts a color property to a color. It understands the basic
// CSS named colors, "transparent" and hex colors in the forms #rgb and #rrggbb.
//
// Value "default" denotes the UA default color and results in a nil color
// without an error.
func ParseColor(p Property) (color.Color, error) {
	s := strings.TrimSpace(strings.ToLower(p.String()))
	switch s {
	case "default", "":
		return nil, nil
	case "transparent":
		return color.Transparent, nil
	}
	if hex, ok := namedColors[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		return nil, fmt.Errorf("not a color: %q", p)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, fmt.Errorf("not a color: %q: %w", p, err)
	}
	return c, nil
}

// ColorEqual compares two color properties by their RGBA values, thus
// `red` and `#f00` are equal. If one of the properties is not a valid
// color, the raw values are compared.
func ColorEqual(a, b Property) bool {
	ca, erra := ParseColor(a)
	cb, errb := ParseColor(b)
	if erra != nil || errb != nil || ca == nil || cb == nil {
		return a == b
	}
	r1, g1, b1, a1 := ca.RGBA()
	r2, g2, b2, a2 := cb.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}
