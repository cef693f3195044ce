package timsort

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sortlab/internal/trace"
)

func TestMergeRuns(t *testing.T) {
	t.Run("interleaved runs", func(t *testing.T) {
		s := newIntSorter([]int{1, 3, 5, 7, 2, 4, 6, 8})
		s.mergeRuns(run{0, 4}, run{4, 4})
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, s.a)
	})

	t.Run("left run exhausts first", func(t *testing.T) {
		s := newIntSorter([]int{1, 2, 10, 11, 12, 13})
		s.mergeRuns(run{0, 2}, run{2, 4})
		assert.Equal(t, []int{1, 2, 10, 11, 12, 13}, s.a)
	})

	t.Run("right run exhausts first", func(t *testing.T) {
		s := newIntSorter([]int{10, 11, 12, 13, 1, 2})
		s.mergeRuns(run{0, 4}, run{4, 2})
		assert.Equal(t, []int{1, 2, 10, 11, 12, 13}, s.a)
	})

	t.Run("non-adjacent runs are a defect", func(t *testing.T) {
		s := newIntSorter([]int{1, 2, 3, 4})
		assert.Panics(t, func() { s.mergeRuns(run{0, 1}, run{2, 2}) })
	})
}

type taggedPair struct {
	v   int
	src string
}

func TestMergeRuns_TiesFavorLeft(t *testing.T) {
	a := []taggedPair{
		{1, "L"}, {2, "L1"}, {2, "L2"},
		{2, "R1"}, {2, "R2"}, {3, "R"},
	}
	s := &sorter[taggedPair]{
		a:    a,
		cmp:  func(x, y taggedPair) int { return intAsc(x.v, y.v) },
		opts: sanitizeOptions(DefaultOptions()),
	}
	s.mergeRuns(run{0, 3}, run{3, 3})

	var order []string
	for _, p := range a {
		order = append(order, p.src)
	}
	assert.Equal(t, []string{"L", "L1", "L2", "R1", "R2", "R"}, order)
}

func TestMergeRuns_GallopPath(t *testing.T) {
	t.Run("long same-source stretches trigger galloping", func(t *testing.T) {
		a := make([]int, 0, 400)
		for i := 0; i < 200; i++ {
			a = append(a, i)
		}
		for i := 0; i < 200; i++ {
			a = append(a, 1000+i)
		}
		s := newIntSorter(a)
		s.mergeRuns(run{0, 200}, run{200, 200})

		assert.True(t, sort.IntsAreSorted(a))
		assert.GreaterOrEqual(t, s.stats.GallopEntries, 1)
	})

	t.Run("galloping disabled never gallops", func(t *testing.T) {
		a := make([]int, 0, 400)
		for i := 0; i < 200; i++ {
			a = append(a, i)
		}
		for i := 0; i < 200; i++ {
			a = append(a, 1000+i)
		}
		s := newIntSorter(a)
		s.opts.UseGalloping = false
		s.mergeRuns(run{0, 200}, run{200, 200})

		assert.True(t, sort.IntsAreSorted(a))
		assert.Zero(t, s.stats.GallopEntries)
	})

	t.Run("gallop advance events carry counts", func(t *testing.T) {
		a := make([]int, 0, 100)
		for i := 0; i < 50; i++ {
			a = append(a, i)
		}
		for i := 0; i < 50; i++ {
			a = append(a, 500+i)
		}
		recorder := trace.NewRecorder()
		s := newIntSorter(a)
		s.opts.Sink = recorder
		s.mergeRuns(run{0, 50}, run{50, 50})

		var advanced int
		for _, ev := range recorder.Events() {
			if ev.Kind == trace.KindGallopAdvanced {
				advanced += ev.Count
			}
		}
		require.Greater(t, advanced, 0)
	})
}

func TestMergeRuns_RandomAgainstStdlib(t *testing.T) {
	rng := rand.New(rand.NewSource(37))
	for trial := 0; trial < 100; trial++ {
		n1 := 1 + rng.Intn(150)
		n2 := 1 + rng.Intn(150)
		a := make([]int, n1+n2)
		for i := range a {
			a[i] = rng.Intn(60)
		}
		sort.Ints(a[:n1])
		sort.Ints(a[n1:])

		want := make([]int, len(a))
		copy(want, a)
		sort.Ints(want)

		s := newIntSorter(a)
		s.mergeRuns(run{0, n1}, run{n1, n2})
		require.Equal(t, want, a, "trial=%d n1=%d n2=%d", trial, n1, n2)
	}
}

func TestMergeRuns_ProgressEvents(t *testing.T) {
	// Merges wider than the progress interval report their write cursor.
	a := make([]int, 0, 512)
	for i := 0; i < 256; i++ {
		a = append(a, i*2)
	}
	for i := 0; i < 256; i++ {
		a = append(a, i*2+1)
	}
	recorder := trace.NewRecorder()
	s := newIntSorter(a)
	s.opts.Sink = recorder
	s.mergeRuns(run{0, 256}, run{256, 256})

	events := recorder.Events()
	require.GreaterOrEqual(t, len(events), 3)
	assert.Equal(t, trace.KindMergeStarted, events[0].Kind)
	assert.Equal(t, trace.KindMergeCompleted, events[len(events)-1].Kind)

	var progress int
	for _, ev := range events {
		if ev.Kind == trace.KindMergeProgress {
			progress++
			assert.Greater(t, ev.Position, 0)
		}
	}
	assert.Greater(t, progress, 0)
}
