package style

import "strings"

// predefinedCounterStyles lists the counter styles every user agent knows
// without an @counter-style rule.
var predefinedCounterStyles = map[string]struct{}{
	"decimal": {}, "decimal-leading-zero": {}, "arabic-indic": {},
	"armenian": {}, "upper-armenian": {}, "lower-armenian": {},
	"bengali": {}, "cambodian": {}, "khmer": {}, "cjk-decimal": {},
	"devanagari": {}, "georgian": {}, "gujarati": {}, "gurmukhi": {},
	"hebrew": {}, "kannada": {}, "lao": {}, "malayalam": {}, "mongolian": {},
	"myanmar": {}, "oriya": {}, "persian": {}, "lower-roman": {},
	"upper-roman": {}, "tamil": {}, "telugu": {}, "thai": {}, "tibetan": {},
	"lower-alpha": {}, "lower-latin": {}, "upper-alpha": {}, "upper-latin": {},
	"cjk-earthly-branch": {}, "cjk-heavenly-stem": {}, "lower-greek": {},
	"hiragana": {}, "hiragana-iroha": {}, "katakana": {}, "katakana-iroha": {},
	"disc": {}, "circle": {}, "square": {},
	"disclosure-open": {}, "disclosure-closed": {},
	"japanese-informal": {}, "japanese-formal": {},
	"korean-hangul-formal": {}, "korean-hanja-informal": {}, "korean-hanja-formal": {},
	"simp-chinese-informal": {}, "simp-chinese-formal": {},
	"trad-chinese-informal": {}, "trad-chinese-formal": {},
	"cjk-ideographic": {}, "ethiopic-numeric": {},
}

// IsPredefinedCounterStyle returns true if name is one of the counter
// styles predefined by CSS Counter Styles Level 3.
func IsPredefinedCounterStyle(name string) bool {
	_, ok := predefinedCounterStyles[strings.ToLower(name)]
	return ok
}

// NormalizeCounterStyle returns the counter style a list marker will use
// for a list-style-type value. Without support for @counter-style rules,
// unknown names fall back to "decimal". "none" is kept.
func NormalizeCounterStyle(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "none" || IsPredefinedCounterStyle(name) {
		return name
	}
	tracer().Debugf("unknown counter style %q treated as decimal", name)
	return "decimal"
}
