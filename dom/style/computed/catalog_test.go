package computed

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/restyle"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalogScenarios(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.computed")
	defer teardown()
	//
	c := DefaultClassifier()
	cases := []struct {
		old, new string
		expected damage.Damage
	}{
		{"width: 10pt", "width: 10pt", damage.NoDamage},
		{"display: block", "display: none", damage.Rebuild},
		{"width: 10pt; --x: 1", "width: 20pt; --x: 2", damage.Reflow | damage.Repaint},
		{"width: 16px", "width: 12pt", damage.NoDamage},
		{"color: red", "color: #f00", damage.NoDamage},
		{"color: red", "color: blue", damage.Repaint},
		{"float: none", "float: left", damage.Rebuild},
		{"table-layout: auto", "table-layout: fixed", damage.Rebuild},
		{"display: inline; margin-left: 1pt", "display: inline; margin-left: 2pt", damage.Rebuild},
		{"margin-left: 1pt", "margin-left: 2pt", damage.Reflow},
		{"display: inline; white-space: normal", "display: inline; white-space: pre", damage.Rebuild},
		{"white-space: normal", "white-space: pre", damage.Reflow},
		{"top: 1pt", "top: 2pt", damage.Reflow},
		{"list-style-type: fancy", "list-style-type: decimal", damage.NoDamage},
		{"list-style-type: disc", "list-style-type: square", damage.Reflow},
		{"background-image: none", "background-image: url(x.png)", damage.Repaint},
		{"background-image: url(A.png)", "background-image: url(a.png)", damage.Repaint},
		{"background-image: URL(a.png)", "background-image: url(a.png)", damage.NoDamage},
		{"list-style-image: url(Dot.svg)", "list-style-image: url(dot.svg)", damage.Repaint},
		{"border-top-style: none", "border-top-style: solid", damage.Repaint},
		{"opacity: 1", "opacity: 0.5", damage.Repaint},
		{"--a: 1", "--a: 1", damage.NoDamage},
		{"--a: 1", "--b: 1", damage.Repaint},
		{"font-size: 12pt", "font-size: 16px", damage.NoDamage},
		{"font-family: serif", "font-family: sans-serif", damage.Reflow},
	}
	for _, tc := range cases {
		old, new := mustStyle(t, tc.old), mustStyle(t, tc.new)
		d, reason := c.Explain(old, new)
		if d != tc.expected {
			t.Errorf("[%s] -> [%s]: expected %v, got %v (%v)", tc.old, tc.new, tc.expected, d, reason)
		}
		diff := c.Difference(old, new)
		assert.Equal(t, d.IsEmpty(), diff.Change == restyle.Unchanged)
	}
}

func TestDefaultCatalogDisplayChanges(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.computed")
	defer teardown()
	//
	c := DefaultClassifier()
	pairs := [][2]string{
		{"table-row", "table-cell"},
		{"table-row-group", "table-caption"},
		{"table-header-group", "table-footer-group"},
		{"table-column", "table-column-group"},
		{"contents", "run-in"},
		{"contents", "block"},
		{"ruby-base", "ruby-text"},
		{"inline", "run-in"},
		{"block", "list-item"},
		{"sideways", "upside-down"},
		{"sideways", "inline"},
	}
	for _, p := range pairs {
		old, new := mustStyle(t, "display: "+p[0]), mustStyle(t, "display: "+p[1])
		d, reason := c.Explain(old, new)
		assert.Equal(t, damage.Rebuild, d, "display %s -> %s (%v)", p[0], p[1], reason)
	}
	same := [][2]string{
		{"inline-block", "inline flow-root"},
		{"table-cell", "TABLE-CELL"},
		{"sideways", "sideways"},
	}
	for _, p := range same {
		d := c.Classify(mustStyle(t, "display: "+p[0]), mustStyle(t, "display: "+p[1]))
		assert.Equal(t, damage.NoDamage, d, "display %s -> %s", p[0], p[1])
	}
}

func TestDefaultCatalogPercentages(t *testing.T) {
	c := DefaultClassifier()
	cases := []struct {
		old, new string
	}{
		{"width: 50%", "width: 50.4%"},
		{"width: 150%", "width: 200%"},
		{"margin-left: -10%", "margin-left: -20%"},
		{"margin-left: -10%", "margin-left: 0%"},
		{"padding-top: 100%", "padding-top: 120%"},
	}
	for _, tc := range cases {
		d := c.Classify(mustStyle(t, tc.old), mustStyle(t, tc.new))
		assert.Equal(t, damage.Reflow, d, "[%s] -> [%s]", tc.old, tc.new)
	}
	d := c.Classify(mustStyle(t, "width: 150%"), mustStyle(t, "width: 150.0%"))
	assert.Equal(t, damage.NoDamage, d)
}

func TestDefaultCatalogDisplayNone(t *testing.T) {
	c := DefaultClassifier()
	d := c.Classify(mustStyle(t, "display: block"), mustStyle(t, "display: none"))
	assert.True(t, d.WillChangeBoxSubtree())
}

func TestEntryErrors(t *testing.T) {
	_, err := Entry{Category: restyle.Reflow}.Rule()
	assert.ErrorIs(t, err, ErrInvalidEntry)
	_, err = Entry{Property: "width", Group: "Dimension", Category: restyle.Reflow}.Rule()
	assert.ErrorIs(t, err, ErrInvalidEntry)
	_, err = Entry{Property: "width", Category: restyle.Reflow, Compare: "fuzzy"}.Rule()
	assert.ErrorIs(t, err, ErrInvalidEntry)
	_, err = Entry{Property: "width", Category: restyle.Category(99)}.Rule()
	assert.ErrorIs(t, err, ErrInvalidEntry)
	r, err := Entry{Group: "Dimension", Category: restyle.Reflow}.Rule()
	require.NoError(t, err)
	assert.Equal(t, "Dimension", r.Name)
}

const testCatalogYAML = `
rules:
  - property: width
    category: reflow
    compare: dimen
  - name: paint
    group: Background
    category: repaint
    compare: color
`

func TestLoadCatalog(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.computed")
	defer teardown()
	//
	cat, err := LoadCatalog(strings.NewReader(testCatalogYAML))
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
	assert.Equal(t, "paint", cat.Rules(restyle.Repaint)[0].Name)
	c := restyle.NewClassifier(cat)
	// color is not part of this catalog
	assert.Equal(t, damage.NoDamage, c.Classify(mustStyle(t, "color: red"), mustStyle(t, "color: blue")))
	assert.Equal(t, damage.Reflow, c.Classify(mustStyle(t, "width: 1pt"), mustStyle(t, "width: 2pt")))
	assert.Equal(t, damage.Repaint, c.Classify(mustStyle(t, "background-color: red"),
		mustStyle(t, "background-color: blue")))
}

func TestLoadCatalogErrors(t *testing.T) {
	broken := []string{
		"",
		"rules:\n  - property: width\n    category: relayout\n",
		"rules:\n  - property: width\n    category: reflow\n    compare: fuzzy\n",
		"rules:\n  - category: reflow\n",
		"rules:\n  - property: width\n    category: reflow\n    weight: 3\n",
		"rules: [",
	}
	for _, y := range broken {
		_, err := LoadCatalog(strings.NewReader(y))
		assert.Error(t, err, "catalog %q", y)
	}
}

func TestCatalogRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEntries(&buf, DefaultEntries()))
	entries, err := ReadEntries(&buf)
	require.NoError(t, err)
	assert.Equal(t, DefaultEntries(), entries)
	//
	entries, err = ReadEntries(strings.NewReader("include_defaults: true\nrules:\n  - property: cursor\n    category: repaint\n"))
	require.NoError(t, err)
	assert.Len(t, entries, len(DefaultEntries())+1)
}
