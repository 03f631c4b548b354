package style

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestUserAgentDefaults(t *testing.T) {
	cases := map[string]Property{
		"width":            "auto",
		"margin-top":       "0",
		"position":         "static",
		"background-color": "transparent",
		"list-style-type":  "disc",
		"table-layout":     "auto",
		"opacity":          "1",
		"--custom":         NullStyle,
		"no-such-thing":    NullStyle,
	}
	for key, expected := range cases {
		if p := GetUserAgentDefaultProperty(nil, key); p != expected {
			t.Errorf("expected UA default of %s to be %q, is %q", key, expected, p)
		}
	}
}

func TestDisplayDefaults(t *testing.T) {
	doc, err := html.Parse(strings.NewReader(`<html><body><ul><li><span>x</span></li></ul>
<p>y</p><table><caption>c</caption><tr><td>z</td></tr></table></body></html>`))
	if err != nil {
		t.Fatal(err)
	}
	if p := DisplayPropertyForHTMLNode(doc); p != "block" {
		t.Errorf("expected document to be block, is %q", p)
	}
	var find func(*html.Node, string) *html.Node
	find = func(n *html.Node, tag string) *html.Node {
		if n.Type == html.ElementNode && n.Data == tag {
			return n
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if f := find(c, tag); f != nil {
				return f
			}
		}
		return nil
	}
	expected := map[string]Property{
		"head":    "none",
		"body":    "block",
		"li":      "list-item",
		"span":    "inline",
		"p":       "block",
		"caption": "table-caption",
		"tbody":   "table-row-group",
		"tr":      "table-row",
		"td":      "table-cell",
	}
	for tag, disp := range expected {
		n := find(doc, tag)
		if n == nil {
			t.Fatalf("no element %s found", tag)
		}
		if p := GetUserAgentDefaultProperty(n, "display"); p != disp {
			t.Errorf("expected %s to have display %q, has %q", tag, disp, p)
		}
	}
	if p := DisplayPropertyForHTMLNode(nil); p != "none" {
		t.Errorf("expected nil node to have display none, has %q", p)
	}
}
