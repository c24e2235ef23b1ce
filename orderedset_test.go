package brandsight_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/brandsight"
	"github.com/stretchr/testify/assert"
)

func TestOrderedSet(t *testing.T) {
	t.Parallel()

	t.Run("preserves first-seen order", func(t *testing.T) {
		t.Parallel()

		set := brandsight.NewOrderedSet(nil)
		assert.True(t, set.Add("b"))
		assert.True(t, set.Add("a"))
		assert.False(t, set.Add("b"))
		assert.Equal(t, []string{"b", "a"}, set.Values(0))
	})

	t.Run("normalizes membership with the key function", func(t *testing.T) {
		t.Parallel()

		set := brandsight.NewOrderedSet(strings.ToLower)
		assert.True(t, set.Add("Helvetica"))
		assert.False(t, set.Add("HELVETICA"))
		assert.True(t, set.Contains("helvetica"))
		assert.Equal(t, []string{"Helvetica"}, set.Values(0))
	})

	t.Run("removes while preserving order", func(t *testing.T) {
		t.Parallel()

		set := brandsight.NewOrderedSet(nil)
		set.Add("a")
		set.Add("b")
		set.Add("c")
		assert.True(t, set.Remove("b"))
		assert.False(t, set.Remove("b"))
		assert.Equal(t, []string{"a", "c"}, set.Values(0))
		assert.Equal(t, 2, set.Len())
	})

	t.Run("truncates values to max", func(t *testing.T) {
		t.Parallel()

		set := brandsight.NewOrderedSet(nil)
		set.Add("a")
		set.Add("b")
		set.Add("c")
		assert.Equal(t, []string{"a", "b"}, set.Values(2))
	})
}
