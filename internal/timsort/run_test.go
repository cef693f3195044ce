package timsort

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// newIntSorter builds a sorter over a for white-box component tests.
func newIntSorter(a []int) *sorter[int] {
	return &sorter[int]{
		a:    a,
		cmp:  intAsc,
		opts: sanitizeOptions(DefaultOptions()),
	}
}

func TestDetectRun(t *testing.T) {
	t.Run("ascending run", func(t *testing.T) {
		s := newIntSorter([]int{1, 2, 5, 9, 4, 3})
		end, desc := s.detectRun(0)
		assert.Equal(t, 3, end)
		assert.False(t, desc)
	})

	t.Run("descending run", func(t *testing.T) {
		s := newIntSorter([]int{9, 7, 4, 1, 5, 6})
		end, desc := s.detectRun(0)
		assert.Equal(t, 3, end)
		assert.True(t, desc)
	})

	t.Run("equal elements classify ascending", func(t *testing.T) {
		// Classifying equals as descending would reverse them later and
		// silently break stability.
		s := newIntSorter([]int{4, 4, 4, 2})
		end, desc := s.detectRun(0)
		assert.Equal(t, 2, end)
		assert.False(t, desc)
	})

	t.Run("descending run stops before an equal element", func(t *testing.T) {
		s := newIntSorter([]int{5, 3, 3, 1})
		end, desc := s.detectRun(0)
		assert.Equal(t, 1, end)
		assert.True(t, desc)
	})

	t.Run("last element is a run of one", func(t *testing.T) {
		s := newIntSorter([]int{1, 2, 3})
		end, desc := s.detectRun(2)
		assert.Equal(t, 2, end)
		assert.False(t, desc)
	})

	t.Run("mid-array start", func(t *testing.T) {
		s := newIntSorter([]int{9, 9, 1, 2, 3, 0})
		end, desc := s.detectRun(2)
		assert.Equal(t, 4, end)
		assert.False(t, desc)
	})
}

func TestReverseRange(t *testing.T) {
	t.Run("full range", func(t *testing.T) {
		s := newIntSorter([]int{5, 4, 3, 2, 1})
		s.reverseRange(0, 4)
		assert.Equal(t, []int{1, 2, 3, 4, 5}, s.a)
	})

	t.Run("sub range", func(t *testing.T) {
		s := newIntSorter([]int{0, 3, 2, 1, 9})
		s.reverseRange(1, 3)
		assert.Equal(t, []int{0, 1, 2, 3, 9}, s.a)
	})

	t.Run("no comparator calls", func(t *testing.T) {
		s := newIntSorter([]int{2, 1})
		s.reverseRange(0, 1)
		assert.Zero(t, s.stats.Comparisons)
	})
}

func TestExtendRun(t *testing.T) {
	t.Run("extends a sorted prefix", func(t *testing.T) {
		s := newIntSorter([]int{3, 5, 9, 4, 1, 4})
		s.extendRun(0, 2, 5)
		assert.Equal(t, []int{1, 3, 4, 4, 5, 9}, s.a)
	})

	t.Run("prefix of one", func(t *testing.T) {
		s := newIntSorter([]int{7, 2, 9, 2})
		s.extendRun(0, 0, 3)
		assert.Equal(t, []int{2, 2, 7, 9}, s.a)
	})

	t.Run("bad bounds are a defect", func(t *testing.T) {
		s := newIntSorter([]int{1, 2, 3})
		assert.Panics(t, func() { s.extendRun(2, 1, 2) })
	})
}
