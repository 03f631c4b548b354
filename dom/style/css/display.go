package css

import (
	"bytes"
	"fmt"
	"strings"
)

// DisplayMode is a type for CSS property "display".
//
// The lower bits hold flags for the outer and inner display type. Layout-internal
// boxes (parts of tables and ruby) carry a role in bits 16-19 in addition.
//
type DisplayMode uint32

// Flags for box context and display mode (outer and inner).
const (
	NoMode          DisplayMode = iota   // unset or error condition
	DisplayNone     DisplayMode = 0x0001 // CSS outer display = none
	BlockMode       DisplayMode = 0x0002 // CSS block context (inner or outer)
	InlineMode      DisplayMode = 0x0004 // CSS inline context
	RunInMode       DisplayMode = 0x0008 // CSS outer display = run-in
	FlowRootMode    DisplayMode = 0x0010 // CSS flow-root display property
	ListItemMode    DisplayMode = 0x0020 // CSS list-item display
	FlexMode        DisplayMode = 0x0040 // CSS inner display = flex
	GridMode        DisplayMode = 0x0080 // CSS inner display = grid
	TableMode       DisplayMode = 0x0100 // CSS table display property (inner or outer)
	InnerBlockMode  DisplayMode = 0x0200 // CSS inner block mode (inline-block)
	InnerInlineMode DisplayMode = 0x0400 // CSS inner inline mode (paragraphs)
	ContentsMode    DisplayMode = 0x0800 // CSS display = contents, no box generated
	RubyMode        DisplayMode = 0x1000 // CSS inner display = ruby
	InternalMode    DisplayMode = 0x2000 // layout-internal box, see Role
)

// Roles of layout-internal boxes.
const (
	TableRowGroupRole     DisplayMode = (iota + 1) << 16 // CSS display = table-row-group
	TableHeaderGroupRole              // CSS display = table-header-group
	TableFooterGroupRole              // CSS display = table-footer-group
	TableRowRole                      // CSS display = table-row
	TableCellRole                     // CSS display = table-cell
	TableColumnGroupRole              // CSS display = table-column-group
	TableColumnRole                   // CSS display = table-column
	TableCaptionRole                  // CSS display = table-caption
	RubyBaseRole                      // CSS display = ruby-base
	RubyTextRole                      // CSS display = ruby-text
	RubyBaseContainerRole             // CSS display = ruby-base-container
	RubyTextContainerRole             // CSS display = ruby-text-container
)

const (
	innerMask DisplayMode = 0x37f0
	roleMask  DisplayMode = 0x000f0000
)

// Display values which are not atomic.
const (
	DisplayBlock       = BlockMode | InnerBlockMode   // CSS display: block
	DisplayInline      = InlineMode | InnerInlineMode // CSS display: inline
	DisplayInlineBlock = InlineMode | InnerBlockMode  // CSS display: inline-block
	DisplayRunIn       = RunInMode | InnerInlineMode  // CSS display: run-in
	DisplayRuby        = InlineMode | RubyMode        // CSS display: ruby
)

var allDisplayModes = []DisplayMode{
	DisplayNone, BlockMode, InlineMode, RunInMode, ListItemMode, FlowRootMode, FlexMode,
	GridMode, TableMode, InnerBlockMode, InnerInlineMode, ContentsMode, RubyMode, InternalMode,
}

// IsInline returns true if disp is exactly `display: inline`, i.e. an inline
// box participating in an inline formatting context. Atomic inlines such as
// inline-block are not inline in this sense.
func (disp DisplayMode) IsInline() bool {
	return disp == DisplayInline
}

// Role returns the role of a layout-internal box, or NoMode.
func (disp DisplayMode) Role() DisplayMode {
	return disp & roleMask
}

// Blockify returns the display mode of a box taken out of normal flow
// (floated or absolutely positioned). See CSS 2.1 §9.7 and CSS Display §2.7:
//
//     inline, inline-block, run-in  =>  block
//     inline-table                  =>  table
//     layout-internal boxes         =>  block
//     list-item, flex, grid, ...    =>  unchanged, with outer mode block
//     none, contents                =>  unchanged
//
func (disp DisplayMode) Blockify() DisplayMode {
	switch {
	case disp == NoMode || disp.Contains(DisplayNone) || disp.Contains(ContentsMode):
		return disp
	case disp.Contains(InternalMode):
		return DisplayBlock
	case disp.Contains(TableMode):
		return BlockMode | TableMode
	}
	inner := disp & innerMask
	if inner.Contains(InnerInlineMode) {
		inner = inner&^InnerInlineMode | InnerBlockMode
	}
	return BlockMode | inner
}

// Contains checks if a display mode contains a given atomic mode.
// Returns false for d = NoMode.
func (disp DisplayMode) Contains(d DisplayMode) bool {
	return d != NoMode && (disp&d > 0)
}

var displayModeNames = map[DisplayMode]string{
	NoMode:          "NoMode",
	DisplayNone:     "DisplayNone",
	BlockMode:       "BlockMode",
	InlineMode:      "InlineMode",
	RunInMode:       "RunInMode",
	FlowRootMode:    "FlowRootMode",
	ListItemMode:    "ListItemMode",
	FlexMode:        "FlexMode",
	GridMode:        "GridMode",
	TableMode:       "TableMode",
	InnerBlockMode:  "InnerBlockMode",
	InnerInlineMode: "InnerInlineMode",
	ContentsMode:    "ContentsMode",
	RubyMode:        "RubyMode",
	InternalMode:    "InternalMode",
}

var internalRoles = []struct {
	keyword string
	role    DisplayMode
}{
	{"table-row-group", TableRowGroupRole},
	{"table-header-group", TableHeaderGroupRole},
	{"table-footer-group", TableFooterGroupRole},
	{"table-row", TableRowRole},
	{"table-cell", TableCellRole},
	{"table-column-group", TableColumnGroupRole},
	{"table-column", TableColumnRole},
	{"table-caption", TableCaptionRole},
	{"ruby-base", RubyBaseRole},
	{"ruby-text", RubyTextRole},
	{"ruby-base-container", RubyBaseContainerRole},
	{"ruby-text-container", RubyTextContainerRole},
}

// String returns the name of an atomic display mode. Combined modes are
// printed as their atomic parts, separated by '|'. Roles are printed as
// their CSS keyword.
func (disp DisplayMode) String() string {
	if name, ok := displayModeNames[disp]; ok {
		return name
	}
	var b bytes.Buffer
	for _, m := range allDisplayModes {
		if disp.Contains(m) {
			if b.Len() > 0 {
				b.WriteString("|")
			}
			b.WriteString(displayModeNames[m])
		}
	}
	if r := disp.Role(); r != NoMode {
		for _, ir := range internalRoles {
			if ir.role == r {
				b.WriteString("(" + ir.keyword + ")")
			}
		}
	}
	return b.String()
}

var singleKeywords = map[string]DisplayMode{
	"none":             DisplayNone,
	"contents":         ContentsMode,
	"block":            DisplayBlock,
	"inline":           DisplayInline,
	"run-in":           DisplayRunIn,
	"flow":             DisplayBlock,
	"flow-root":        BlockMode | FlowRootMode,
	"flex":             BlockMode | FlexMode,
	"inline-flex":      InlineMode | FlexMode,
	"grid":             BlockMode | GridMode,
	"inline-grid":      InlineMode | GridMode,
	"list-item":        ListItemMode | DisplayBlock,
	"inline-list-item": ListItemMode | DisplayInline,
	"inline-block":     DisplayInlineBlock,
	"table":            BlockMode | TableMode,
	"inline-table":     InlineMode | TableMode,
	"ruby":             DisplayRuby,
}

func init() {
	for _, ir := range internalRoles {
		singleKeywords[ir.keyword] = InternalMode | ir.role
	}
}

// ParseDisplay returns mode flags from a display property string (outer and inner).
// Besides the single keywords of CSS 2.1 and CSS Display Level 3 it understands
// the multi-keyword syntax, e.g. "inline flow-root" or "block flow list-item".
//
// Different keywords result in different display modes, except for
// keywords which are synonyms (such as "inline-block" and "inline flow-root").
func ParseDisplay(display string) (DisplayMode, error) {
	display = strings.ToLower(strings.TrimSpace(display))
	if display == "" {
		return NoMode, nil
	}
	if mode, ok := singleKeywords[display]; ok {
		return mode, nil
	}
	return parseMultiKeyword(display)
}

var outerKeywords = map[string]DisplayMode{
	"block":  BlockMode,
	"inline": InlineMode,
	"run-in": RunInMode,
}

// "flow" is mapped to inner inline mode first and fixed for block containers.
var innerKeywords = map[string]DisplayMode{
	"flow":      InnerInlineMode,
	"flow-root": FlowRootMode,
	"table":     TableMode,
	"flex":      FlexMode,
	"grid":      GridMode,
	"ruby":      RubyMode,
}

func parseMultiKeyword(display string) (DisplayMode, error) {
	var outer, inner DisplayMode
	var listItem bool
	for _, kw := range strings.Fields(display) {
		switch kw {
		case "block", "inline", "run-in":
			if outer != NoMode {
				return NoMode, fmt.Errorf("unknown display mode: %s", display)
			}
			outer = outerKeywords[kw]
		case "flow", "flow-root", "table", "flex", "grid", "ruby":
			if inner != NoMode {
				return NoMode, fmt.Errorf("unknown display mode: %s", display)
			}
			inner = innerKeywords[kw]
		case "list-item":
			if listItem {
				return NoMode, fmt.Errorf("unknown display mode: %s", display)
			}
			listItem = true
		default:
			return NoMode, fmt.Errorf("unknown display mode: %s", display)
		}
	}
	if listItem && inner != NoMode && inner != InnerInlineMode && inner != FlowRootMode {
		return NoMode, fmt.Errorf("unknown display mode: %s", display)
	}
	if outer == NoMode {
		outer = BlockMode
		if inner == RubyMode {
			outer = InlineMode
		}
	}
	if inner == NoMode {
		inner = InnerInlineMode
	}
	mode := outer | inner
	switch {
	case inner == InnerInlineMode && outer != InlineMode && outer != RunInMode:
		mode = outer | InnerBlockMode // block flow
	case inner == FlowRootMode && outer == InlineMode:
		mode = DisplayInlineBlock // inline flow-root
	}
	if listItem {
		mode |= ListItemMode
	}
	return mode, nil
}
