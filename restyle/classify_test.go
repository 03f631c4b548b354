package restyle

import (
	"maps"
	"sync"
	"testing"

	"github.com/npillmayer/restyle/damage"
	"github.com/npillmayer/restyle/dom/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testStyle is a minimal computed style with a handful of properties.
type testStyle struct {
	box        BoxStyle
	whiteSpace string
	width      string
	top        string
	color      string
	custom     map[string]string
}

func (s *testStyle) Box() BoxStyle {
	return s.box
}

func (s *testStyle) CustomPropertiesEqual(other *testStyle) bool {
	return maps.Equal(s.custom, other.custom)
}

func block() *testStyle {
	return &testStyle{
		box:        BoxStyle{Display: css.DisplayBlock, OriginalDisplay: css.DisplayBlock},
		whiteSpace: "normal",
		width:      "auto",
		top:        "auto",
		color:      "black",
	}
}

func inline() *testStyle {
	s := block()
	s.box = BoxStyle{Display: css.DisplayInline, OriginalDisplay: css.DisplayInline}
	return s
}

// counting wraps a predicate and counts its invocations.
type counting struct {
	mx    sync.Mutex
	calls map[string]int
}

func (c *counting) rule(name string, cat Category, p Predicate[*testStyle]) Rule[*testStyle] {
	return Rule[*testStyle]{Name: name, Category: cat, Changed: func(old, new *testStyle) bool {
		c.mx.Lock()
		c.calls[name]++
		c.mx.Unlock()
		return p(old, new)
	}}
}

func testCatalog(t *testing.T) (*Catalog[*testStyle], *counting) {
	cnt := &counting{calls: make(map[string]int)}
	cat, err := NewCatalog(
		cnt.rule("white-space", RebuildInline, func(o, n *testStyle) bool { return o.whiteSpace != n.whiteSpace }),
		cnt.rule("width", Reflow, func(o, n *testStyle) bool { return o.width != n.width }),
		cnt.rule("top", ReflowOutOfFlow, func(o, n *testStyle) bool { return o.top != n.top }),
		cnt.rule("color", Repaint, func(o, n *testStyle) bool { return o.color != n.color }),
	)
	require.NoError(t, err)
	return cat, cnt
}

func TestClassifyIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.restyle")
	defer teardown()
	//
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	withCustom := block()
	withCustom.custom = map[string]string{"--x": "1"}
	for _, s := range []*testStyle{block(), inline(), withCustom} {
		if d := c.Classify(s, s); !d.IsEmpty() {
			t.Errorf("expected classify(x, x) to be empty, is %v", d)
		}
		if diff := c.Difference(s, s); diff.Change != Unchanged {
			t.Errorf("expected difference of identical styles to be Unchanged, is %v", diff)
		}
	}
}

func TestClassifyOriginalDisplay(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "restyle.restyle")
	defer teardown()
	//
	cat, cnt := testCatalog(t)
	c := NewClassifier(cat)
	old, new := block(), block()
	new.box = BoxStyle{Display: css.DisplayNone, OriginalDisplay: css.DisplayNone}
	new.color = "red"
	d := c.Classify(old, new)
	if d != damage.Rebuild {
		t.Errorf("expected display block -> none to be Rebuild, is %v", d)
	}
	if !d.WillChangeBoxSubtree() {
		t.Errorf("expected Rebuild to change the box subtree")
	}
	assert.Empty(t, cnt.calls, "no rule should be evaluated after a display change")
	_, reason := c.Explain(old, new)
	assert.Equal(t, Reason{Category: RebuildBox, Rule: OriginalDisplayRule, Matched: true}, reason)
}

func TestClassifyUsedDisplayOnly(t *testing.T) {
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	old, new := inline(), inline()
	new.box.Display = css.DisplayBlock // e.g., blockified by a float
	assert.True(t, c.Classify(old, new).IsEmpty(), "used display alone is not a rebuild trigger")
}

func TestClassifyInlineRebuild(t *testing.T) {
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	old, new := inline(), inline()
	new.whiteSpace = "pre"
	new.width = "10pt"
	assert.Equal(t, damage.Rebuild, c.Classify(old, new))
	// for block boxes the inline rule does not apply
	old, new = block(), block()
	new.whiteSpace = "pre"
	assert.Equal(t, damage.NoDamage, c.Classify(old, new))
	new.width = "10pt"
	assert.Equal(t, damage.Reflow, c.Classify(old, new))
	// inline-block is not inline
	old, new = block(), block()
	old.box = BoxStyle{Display: css.DisplayInlineBlock, OriginalDisplay: css.DisplayInlineBlock}
	new.box = old.box
	new.whiteSpace = "pre"
	assert.Equal(t, damage.NoDamage, c.Classify(old, new))
}

func TestClassifyShortCircuit(t *testing.T) {
	cat, cnt := testCatalog(t)
	c := NewClassifier(cat)
	old, new := block(), block()
	new.width = "10pt"
	new.top = "5pt"
	new.color = "red"
	d, reason := c.Explain(old, new)
	assert.Equal(t, damage.Reflow, d)
	assert.Equal(t, "width", reason.Rule)
	assert.Equal(t, Reflow, reason.Category)
	assert.Zero(t, cnt.calls["top"], "out-of-flow rules must not be evaluated")
	assert.Zero(t, cnt.calls["color"], "repaint rules must not be evaluated")
	//
	new.width = old.width
	d, reason = c.Explain(old, new)
	assert.Equal(t, damage.Reflow, d)
	assert.Equal(t, ReflowOutOfFlow, reason.Category)
	//
	new.top = old.top
	assert.Equal(t, damage.Repaint, c.Classify(old, new))
}

func TestClassifyCustomProperties(t *testing.T) {
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	old, new := block(), block()
	old.custom = map[string]string{"--accent": "red"}
	new.custom = map[string]string{"--accent": "blue"}
	assert.Equal(t, damage.Repaint, c.Classify(old, new))
	// geometry change plus custom properties
	new.width = "10pt"
	d, reason := c.Explain(old, new)
	assert.Equal(t, damage.Reflow|damage.Repaint, d)
	assert.True(t, reason.CustomProperties)
	assert.Equal(t, "reflow: width (+ custom properties)", reason.String())
	// never short-circuited by a rebuild
	new.box = BoxStyle{Display: css.DisplayNone, OriginalDisplay: css.DisplayNone}
	assert.Equal(t, damage.Rebuild|damage.Repaint, c.Classify(old, new))
}

func TestClassifyNilCatalog(t *testing.T) {
	c := NewClassifier[*testStyle](nil)
	old, new := block(), block()
	new.width = "10pt"
	assert.True(t, c.Classify(old, new).IsEmpty())
	new.box.OriginalDisplay = css.DisplayInline
	assert.Equal(t, damage.Rebuild, c.Classify(old, new))
	// unknown display values are compared verbatim
	old, new = inline(), inline()
	old.box.UnknownDisplay = "sideways"
	new.box.UnknownDisplay = "upside-down"
	assert.Equal(t, damage.Rebuild, c.Classify(old, new))
	new.box.UnknownDisplay = "sideways"
	assert.True(t, c.Classify(old, new).IsEmpty())
	_, reason := c.Explain(block(), block())
	assert.False(t, reason.Matched)
	assert.Equal(t, "no rule matched", reason.String())
}

func TestDifferenceMatchesClassify(t *testing.T) {
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	variants := []func(*testStyle){
		func(s *testStyle) {},
		func(s *testStyle) { s.width = "1pt" },
		func(s *testStyle) { s.top = "1pt" },
		func(s *testStyle) { s.color = "blue" },
		func(s *testStyle) { s.whiteSpace = "nowrap" },
		func(s *testStyle) { s.custom = map[string]string{"--y": "2"} },
		func(s *testStyle) { s.box.OriginalDisplay = css.DisplayNone },
	}
	for i, vo := range variants {
		for j, vn := range variants {
			old, new := inline(), inline()
			vo(old)
			vn(new)
			diff := ComputeStyleDifference(c, old, new)
			d := c.Classify(old, new)
			assert.Equal(t, d, diff.Damage)
			assert.Equal(t, d.IsEmpty(), diff.Change == Unchanged, "variants %d/%d", i, j)
			assert.False(t, diff.Change.ResetOnly())
			if d.Contains(damage.Rebuild) {
				assert.True(t, d.WillChangeBoxSubtree())
				assert.False(t, d.Contains(damage.Reflow), "Rebuild and Reflow are exclusive")
			}
		}
	}
}

func TestClassifyConcurrently(t *testing.T) {
	cat, _ := testCatalog(t)
	c := NewClassifier(cat)
	old, new := block(), block()
	new.width = "2pt"
	var wg sync.WaitGroup
	results := make([]damage.Damage, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Classify(old, new)
		}(i)
	}
	wg.Wait()
	for _, d := range results {
		assert.Equal(t, damage.Reflow, d)
	}
}
