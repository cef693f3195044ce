package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("every shape yields the requested length", func(t *testing.T) {
		for _, shape := range Shapes() {
			values, err := Generate(shape, 128, 1)
			require.NoError(t, err, "shape=%s", shape)
			assert.Len(t, values, 128, "shape=%s", shape)
		}
	})

	t.Run("sorted is sorted", func(t *testing.T) {
		values, err := Generate(ShapeSorted, 100, 1)
		require.NoError(t, err)
		assert.True(t, IsSorted(values))
	})

	t.Run("reversed is strictly descending", func(t *testing.T) {
		values, err := Generate(ShapeReversed, 100, 1)
		require.NoError(t, err)
		for i := 1; i < len(values); i++ {
			assert.Greater(t, values[i-1], values[i])
		}
	})

	t.Run("two-runs is two disjoint ascending halves", func(t *testing.T) {
		values, err := Generate(ShapeTwoRuns, 100, 1)
		require.NoError(t, err)
		assert.True(t, IsSorted(values[:50]))
		assert.True(t, IsSorted(values[50:]))
		// The run boundary must be a descent or the detector fuses the
		// halves into one run and nothing ever merges.
		assert.Less(t, values[50], values[49])
	})

	t.Run("few-unique stays within its small alphabet", func(t *testing.T) {
		values, err := Generate(ShapeFewUnique, 1000, 1)
		require.NoError(t, err)
		for _, v := range values {
			assert.GreaterOrEqual(t, v, 0)
			assert.Less(t, v, 8)
		}
	})

	t.Run("same seed reproduces", func(t *testing.T) {
		a, err := Generate(ShapeRandom, 500, 42)
		require.NoError(t, err)
		b, err := Generate(ShapeRandom, 500, 42)
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})

	t.Run("unknown shape errors", func(t *testing.T) {
		_, err := Generate(Shape("bogosort"), 10, 1)
		assert.Error(t, err)
	})

	t.Run("negative size errors", func(t *testing.T) {
		_, err := Generate(ShapeRandom, -1, 1)
		assert.Error(t, err)
	})

	t.Run("zero size is fine", func(t *testing.T) {
		values, err := Generate(ShapeRandom, 0, 1)
		require.NoError(t, err)
		assert.Empty(t, values)
	})
}
