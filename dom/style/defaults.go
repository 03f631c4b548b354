package style

import (
	"sync"

	"golang.org/x/net/html"
)

// Values "default" have the following semantics:
// Treat this as an inherent UA default, which should not be instantiated in memory,
// but rather will be treated implicitely by rendering code.
// See issure https://github.com/npillmayer/tyse/issues/8
//
var uaDefaults struct {
	once sync.Once
	pmap *PropertyMap
}

// GetUserAgentDefaultProperty returns the user-agent default property for a given key.
// Custom properties and unknown keys have no default and will return NullStyle.
func GetUserAgentDefaultProperty(node *html.Node, key string) Property {
	if key == "display" {
		return DisplayPropertyForHTMLNode(node)
	}
	uaDefaults.once.Do(func() {
		uaDefaults.pmap = InitializeDefaultPropertyValues(nil)
	})
	p, _ := uaDefaults.pmap.Property(key)
	return p
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	switch node.Data {
	case "head", "style", "script", "title", "meta", "link":
		return "none"
	case "html", "aside", "body", "div", "p", "h1", "h2", "h3",
		"h4", "h5", "h6", "it", "ol", "section", "article",
		"header", "footer", "nav", "main", "ul", "pre", "blockquote":
		return "block"
	case "li":
		return "list-item"
	case "table":
		return "table"
	case "thead":
		return "table-header-group"
	case "tbody":
		return "table-row-group"
	case "tfoot":
		return "table-footer-group"
	case "tr":
		return "table-row"
	case "td", "th":
		return "table-cell"
	case "col":
		return "table-column"
	case "colgroup":
		return "table-column-group"
	case "caption":
		return "table-caption"
	case "i", "b", "span", "strong", "em", "a", "code", "small", "sub", "sup":
		return "inline"
	case "img", "button", "input":
		return "inline-block"
	}
	tracer().Infof("unknown HTML element %s/%d will be set to display: block",
		node.Data, node.Type)
	return "block"
}

// InitializeDefaultPropertyValues creates an internal data structure to
// hold all the default values for CSS properties.
// In real-world browsers these are the user-agent CSS values.
func InitializeDefaultPropertyValues(additionalProps []KeyValue) *PropertyMap {
	m := make(map[string]*PropertyGroup, 17)
	root := NewPropertyGroup("Root")

	x := NewPropertyGroup(PGX) // special group for extension properties
	for _, kv := range additionalProps {
		x.Set(kv.Key, kv.Value)
	}
	m[PGX] = x

	margins := NewPropertyGroup(PGMargins)
	margins.Set("margin-top", "0")
	margins.Set("margin-left", "0")
	margins.Set("margin-right", "0")
	margins.Set("margin-bottom", "0")
	margins.Parent = root
	m[PGMargins] = margins

	padding := NewPropertyGroup(PGPadding)
	padding.Set("padding-top", "0")
	padding.Set("padding-left", "0")
	padding.Set("padding-right", "0")
	padding.Set("padding-bottom", "0")
	padding.Parent = root
	m[PGPadding] = padding

	border := NewPropertyGroup(PGBorder)
	border.Set("border-top-color", "black")
	border.Set("border-left-color", "black")
	border.Set("border-right-color", "black")
	border.Set("border-bottom-color", "black")
	border.Set("border-top-width", "medium")
	border.Set("border-left-width", "medium")
	border.Set("border-right-width", "medium")
	border.Set("border-bottom-width", "medium")
	border.Set("border-top-style", "none")
	border.Set("border-left-style", "none")
	border.Set("border-right-style", "none")
	border.Set("border-bottom-style", "none")
	border.Set("border-top-left-radius", "0")
	border.Set("border-top-right-radius", "0")
	border.Set("border-bottom-left-radius", "0")
	border.Set("border-bottom-right-radius", "0")
	border.Parent = root
	m[PGBorder] = border

	dimension := NewPropertyGroup(PGDimension)
	dimension.Set("width", "auto")
	dimension.Set("height", "auto")
	dimension.Set("min-width", "none")
	dimension.Set("min-height", "none")
	dimension.Set("max-width", "none")
	dimension.Set("max-height", "none")
	dimension.Parent = root
	m[PGDimension] = dimension

	offsets := NewPropertyGroup(PGOffsets)
	offsets.Set("top", "auto")
	offsets.Set("right", "auto")
	offsets.Set("bottom", "auto")
	offsets.Set("left", "auto")
	offsets.Parent = root
	m[PGOffsets] = offsets

	region := NewPropertyGroup(PGRegion)
	region.Set("flow-from", "none")
	region.Set("flow-into", "none")
	region.Parent = root
	m[PGRegion] = region

	display := NewPropertyGroup(PGDisplay)
	display.Set("display", "block")
	display.Set("float", "none")
	display.Set("visibility", "visible")
	display.Set("position", "static")
	display.Parent = root
	m[PGDisplay] = display

	color := NewPropertyGroup(PGColor)
	color.Set("color", "default")
	color.Parent = root
	m[PGColor] = color

	background := NewPropertyGroup(PGBackground)
	background.Set("background-color", "transparent")
	background.Set("background-image", "none")
	background.Set("background-position-x", "0%")
	background.Set("background-position-y", "0%")
	background.Set("background-repeat", "repeat")
	background.Set("background-attachment", "scroll")
	background.Set("background-clip", "border-box")
	background.Set("background-origin", "padding-box")
	background.Set("background-size", "auto")
	background.Parent = root
	m[PGBackground] = background

	text := NewPropertyGroup(PGText)
	text.Set("direction", "ltr")
	text.Set("white-space", "normal")
	text.Set("word-spacing", "normal")
	text.Set("letter-spacing", "normal")
	text.Set("word-break", "normal")
	text.Set("overflow-wrap", "normal")
	text.Set("hyphens", "manual")
	text.Set("text-align", "start")
	text.Set("text-indent", "0")
	text.Set("text-transform", "none")
	text.Set("line-height", "normal")
	text.Set("vertical-align", "baseline")
	text.Parent = root
	m[PGText] = text

	font := NewPropertyGroup(PGFont)
	font.Set("font-family", "serif")
	font.Set("font-size", "medium")
	font.Set("font-style", "normal")
	font.Set("font-weight", "normal")
	font.Set("font-variant", "normal")
	font.Set("font-stretch", "normal")
	font.Parent = root
	m[PGFont] = font

	table := NewPropertyGroup(PGTable)
	table.Set("table-layout", "auto")
	table.Set("border-collapse", "separate")
	table.Set("border-spacing", "0")
	table.Set("caption-side", "top")
	table.Set("empty-cells", "show")
	table.Parent = root
	m[PGTable] = table

	list := NewPropertyGroup(PGList)
	list.Set("list-style-type", "disc")
	list.Set("list-style-position", "outside")
	list.Set("list-style-image", "none")
	list.Parent = root
	m[PGList] = list

	outline := NewPropertyGroup(PGOutline)
	outline.Set("outline-color", "default")
	outline.Set("outline-style", "none")
	outline.Set("outline-width", "medium")
	outline.Set("outline-offset", "0")
	outline.Parent = root
	m[PGOutline] = outline

	effects := NewPropertyGroup(PGEffects)
	effects.Set("opacity", "1")
	effects.Set("z-index", "auto")
	effects.Set("box-shadow", "none")
	effects.Set("transform", "none")
	effects.Set("filter", "none")
	effects.Set("mix-blend-mode", "normal")
	effects.Parent = root
	m[PGEffects] = effects

	return &PropertyMap{m}
}
