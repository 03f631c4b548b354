package computed

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/restyle/dom/style"
	"golang.org/x/net/html"
)

// ParseDeclarations parses a CSS declaration block, as found in an HTML
// style attribute, into a property map. Compound properties such as
// "margin" are split into their components. Declarations marked as
// !important win over later declarations which are not.
func ParseDeclarations(text string) (*style.PropertyMap, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		text += ";" // otherwise the last value would be lost
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse declarations: %w", err)
	}
	pmap := style.NewPropertyMap()
	important := make(map[string]bool)
	set := func(key string, value style.Property, imp bool) {
		if important[key] && !imp {
			return
		}
		important[key] = imp
		pmap.Add(key, value)
	}
	for _, d := range decls {
		key := d.Property
		if !style.IsCustomProperty(key) {
			key = strings.ToLower(key)
		}
		if style.IsCompoundProperty(key) {
			kvs, err := style.SplitCompoundProperty(key, style.Property(d.Value))
			if err != nil {
				return nil, err
			}
			for _, kv := range kvs {
				set(kv.Key, kv.Value, d.Important)
			}
			continue
		}
		set(key, style.Property(d.Value), d.Important)
	}
	return pmap, nil
}

// FromDeclarations creates the computed style of a root block element
// (a <div>) with properties from a CSS declaration block. Properties not
// set by the declarations get their user-agent default.
//
//     s, err := FromDeclarations("width: 10px; --accent: red")
//
func FromDeclarations(text string) (*Style, error) {
	local, err := ParseDeclarations(text)
	if err != nil {
		return nil, err
	}
	div := &html.Node{Type: html.ElementNode, Data: "div"}
	return Compute(local, nil, div), nil
}
