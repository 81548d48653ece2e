package ingredients

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_CoversEveryGroup(t *testing.T) {
	all := All()
	assert.Len(t, all, len(Meat)+len(Vegetables)+len(Others))
	assert.Equal(t, Meat[0], all[0])
	assert.Contains(t, all, "Garlic")
	assert.Contains(t, all, "Coconut Milk")
}

func TestKnown(t *testing.T) {
	canonical, ok := Known("egg")
	assert.True(t, ok)
	assert.Equal(t, "Egg", canonical)

	canonical, ok = Known("SPRING ONION")
	assert.True(t, ok)
	assert.Equal(t, "Spring Onion", canonical)

	_, ok = Known("plutonium")
	assert.False(t, ok)
}

func TestSuggest(t *testing.T) {
	t.Run("matches substrings case-insensitively", func(t *testing.T) {
		got := Suggest("mushroom", nil)
		assert.Contains(t, got, "Straw Mushroom")
		assert.Contains(t, got, "Enoki Mushroom")
	})

	t.Run("excludes already selected", func(t *testing.T) {
		got := Suggest("egg", []string{"Egg", "eggplant"})
		assert.NotContains(t, got, "Egg")
		assert.NotContains(t, got, "Eggplant")
		assert.Contains(t, got, "Quail Egg")
	})

	t.Run("empty query yields nothing", func(t *testing.T) {
		assert.Nil(t, Suggest("   ", nil))
	})

	t.Run("capped", func(t *testing.T) {
		// Single letters match broadly; the list must stay bounded.
		assert.LessOrEqual(t, len(Suggest("e", nil)), maxSuggestions)
	})
}
