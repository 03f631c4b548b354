package restyle

import (
	"testing"

	"github.com/npillmayer/restyle/damage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogErrors(t *testing.T) {
	always := func(o, n *testStyle) bool { return true }
	_, err := NewCatalog(Rule[*testStyle]{Category: Reflow, Changed: always})
	assert.ErrorIs(t, err, ErrInvalidRule)
	_, err = NewCatalog(Rule[*testStyle]{Name: "x", Category: Reflow})
	assert.ErrorIs(t, err, ErrInvalidRule)
	_, err = NewCatalog(Rule[*testStyle]{Name: "x", Category: Category(17), Changed: always})
	assert.ErrorIs(t, err, ErrInvalidRule)
}

func TestCatalogRules(t *testing.T) {
	cat, _ := testCatalog(t)
	assert.Equal(t, 4, cat.Len())
	rules := cat.Rules(Reflow)
	require.Len(t, rules, 1)
	assert.Equal(t, "width", rules[0].Name)
	rules[0].Name = "changed"
	assert.Equal(t, "width", cat.Rules(Reflow)[0].Name, "Rules must return a copy")
	assert.Empty(t, cat.Rules(RebuildBox))
	var empty *Catalog[*testStyle]
	assert.Zero(t, empty.Len())
	assert.Nil(t, empty.Rules(Repaint))
}

func TestCategories(t *testing.T) {
	expected := []damage.Damage{damage.Rebuild, damage.Rebuild, damage.Reflow, damage.Reflow, damage.Repaint}
	for i, c := range Categories() {
		assert.Equal(t, expected[i], c.Damage(), "damage of %v", c)
		parsed, err := ParseCategory(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}
	c, err := ParseCategory("Reflow-Out-Of-Flow")
	require.NoError(t, err)
	assert.Equal(t, ReflowOutOfFlow, c)
	_, err = ParseCategory("relayout")
	assert.Error(t, err)
	assert.Equal(t, damage.NoDamage, Category(42).Damage())
	text, err := Repaint.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "repaint", string(text))
	require.NoError(t, c.UnmarshalText([]byte("rebuild_box")))
	assert.Equal(t, RebuildBox, c)
}
