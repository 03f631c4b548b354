package css

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
)

// DimenT is an option type for CSS dimensions.
//
// Absolute lengths are held as dimen.DU. Percentages and relative lengths
// are held as fixed-point numbers of units, scaled by dimen.PT, thus they
// may be fractional, negative or exceed 100%.
type DimenT struct {
	d     dimen.DU
	flags uint32
}

/*
type DimenT
	= Auto
	| Inherit
	| Initial
	| JustDimen dimen
	| Percentage float
	| ViewRel unit
	| FontRel unit
	| ContentRel Min N
	| ContentRel Max N
*/

func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

func Inherit() DimenT {
	return DimenT{flags: dimenInherit}
}

func Initial() DimenT {
	return DimenT{flags: dimenInitial}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(pcnt float64) DimenT {
	return relative(pcnt, dimenPercent)
}

// relative creates a font-, viewport- or %-relative dimension. The number of
// units is stored as a fixed-point value scaled by dimen.PT.
func relative(units float64, unit uint32) DimenT {
	return DimenT{d: dimen.DU(math.Round(units * float64(dimen.PT))), flags: unit}
}

// IsNone is true for the zero value of DimenT, which represents an
// unset or invalid dimension.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// Equal compares two dimensions. Absolute dimensions are equal if they
// denote the same length, regardless of the unit they have been specified in.
func (d DimenT) Equal(other DimenT) bool {
	return d.flags == other.flags && d.d == other.d
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
}

// ParseDimen creates a dimension from a property value. It understands
// the keywords auto, inherit, initial, min-content, max-content and
// fit-content, plain zero, absolute lengths in pt, px, in, cm and mm,
// percentages and font- or viewport-relative lengths.
//
// Keywords "none" and "normal" as well as the empty property result in an
// unset dimension without an error.
func ParseDimen(p style.Property) (DimenT, error) {
	s := strings.TrimSpace(strings.ToLower(p.String()))
	switch s {
	case "", "none", "normal":
		return DimenT{}, nil
	case "auto":
		return Auto(), nil
	case "inherit":
		return Inherit(), nil
	case "initial":
		return Initial(), nil
	case "max-content":
		return DimenT{flags: DimenContentMax}, nil
	case "min-content":
		return DimenT{flags: DimenContentMin}, nil
	case "fit-content":
		return DimenT{flags: DimenContentFit}, nil
	case "0":
		return JustDimen(0), nil
	}
	if strings.HasSuffix(s, "%") {
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 64)
		if err != nil {
			return DimenT{}, fmt.Errorf("invalid percentage %q: %w", s, err)
		}
		return Percentage(v), nil
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if i <= 0 {
		return DimenT{}, fmt.Errorf("invalid dimension %q", s)
	}
	v, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return DimenT{}, fmt.Errorf("invalid dimension %q: %w", s, err)
	}
	unit := s[i:]
	if rel, ok := relativeUnits[unit]; ok {
		return relative(v, rel), nil
	}
	var pt float64
	switch unit {
	case "pt":
		pt = v
	case "px":
		pt = v * 0.75
	case "in":
		pt = v * 72
	case "cm":
		pt = v * 72 / 2.54
	case "mm":
		pt = v * 72 / 25.4
	case "pc":
		pt = v * 12
	default:
		return DimenT{}, fmt.Errorf("unknown unit in dimension %q", s)
	}
	return JustDimen(dimen.DU(math.Round(pt * float64(dimen.PT)))), nil
}
