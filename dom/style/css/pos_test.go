package css_test

import (
	"testing"

	"github.com/npillmayer/restyle/dom/style"
	"github.com/npillmayer/restyle/dom/style/css"
)

func TestPositionOutOfFlow(t *testing.T) {
	cases := map[style.Property]bool{
		"static":   false,
		"relative": false,
		"sticky":   false,
		"absolute": true,
		"Fixed":    true,
		"":         false,
		"nowhere":  false,
	}
	for p, expected := range cases {
		pos := css.Position(p)
		if pos.IsOutOfFlow() != expected {
			t.Errorf("expected position %q to be out-of-flow=%v, isn't", p, expected)
		}
	}
}

func TestPositionString(t *testing.T) {
	if s := css.Position("ABSOLUTE").String(); s != "absolute" {
		t.Errorf("expected position absolute, have %s", s)
	}
	if s := css.Position("nowhere").String(); s != "unset" {
		t.Errorf("expected unknown position to be unset, have %s", s)
	}
}
