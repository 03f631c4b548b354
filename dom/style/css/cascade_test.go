package css_test

import (
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"golang.org/x/net/html"
)

func TestComputeProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.css")
	defer teardown()
	//
	parent := style.NewPropertyMap()
	parent.Add("color", "red")
	parent.Add("width", "100pt")
	parent.Add("--accent", "blue")
	local := style.NewPropertyMap()
	local.Add("height", "inherit")
	local.Add("margin-top", "initial")
	local.Add("padding-top", "3pt")
	span := &html.Node{Type: html.ElementNode, Data: "span"}
	cases := []struct {
		key      string
		expected style.Property
	}{
		{"color", "red"},       // inherited property
		{"--accent", "blue"},   // custom properties inherit
		{"width", "auto"},      // not inherited, UA default
		{"height", "auto"},     // explicit inherit, parent has UA default
		{"margin-top", "0"},    // explicit initial
		{"padding-top", "3pt"}, // local value
		{"display", "inline"},  // UA default for span
		{"position", "static"}, // position is not inherited
	}
	for _, c := range cases {
		p := css.ComputeProperty(local, parent, span, c.key)
		if p != c.expected {
			t.Errorf("expected %s to compute to %q, is %q", c.key, c.expected, p)
		}
	}
	local.Add("width", "inherit")
	if p := css.ComputeProperty(local, parent, span, "width"); p != "100pt" {
		t.Errorf("expected explicitly inherited width to be 100pt, is %q", p)
	}
	if p := css.ComputeProperty(nil, nil, span, "color"); p != "default" {
		t.Errorf("expected root color to be UA default, is %q", p)
	}
}
