// Package timsort implements the adaptive hybrid sorting engine at the
// heart of sortlab: natural-run detection, run-length invariant
// maintenance on a pending-run stack, and galloping-mode merging.
//
// The engine is stable, runs in O(n log n) worst case and O(n) on
// already-sorted input, never mutates its input slice, and can report
// every observable step to a trace.Sink for later replay.
package timsort

import (
	"sortlab/internal/trace"
)

const (
	// minMergeThreshold is the array length below which computeMinRun
	// returns the length itself, turning the whole input into a single
	// extended run.
	minMergeThreshold = 64

	// defaultGallopThreshold is the number of consecutive wins by one
	// side of a merge before the engine switches to gallop mode.
	defaultGallopThreshold = 7

	// progressInterval is how many merged elements are written between
	// merge-progress events.
	progressInterval = 64
)

// Comparator defines a total order: negative if a precedes b, zero if the
// two are equal-order, positive otherwise. It must be consistent for the
// duration of one sort call. A panicking comparator propagates to the
// caller of Sort; no partial result is returned.
type Comparator[T any] func(a, b T) int

// Options configures one sort call. Start from DefaultOptions and adjust;
// out-of-range numeric fields fall back to their automatic values rather
// than failing.
type Options struct {
	// MinRun is the minimum run length. Values < 1 select the automatic
	// length computed from the input size (the default).
	MinRun int

	// UseGalloping enables the batched gallop copy inside merges.
	UseGalloping bool

	// UseNaturalRuns enables scanning for pre-sorted runs in the input.
	// When false every run is manufactured by binary insertion.
	UseNaturalRuns bool

	// GallopThreshold is the consecutive-win count that triggers gallop
	// mode. Values < 1 fall back to the default of 7.
	GallopThreshold int

	// Sink, when non-nil, receives one trace.Event per observable step.
	// Emission is fire-and-forget: a nil, slow or panicking sink never
	// alters the sort.
	Sink trace.Sink
}

// DefaultOptions returns the documented defaults: automatic min-run,
// galloping and natural-run detection enabled, gallop threshold 7.
func DefaultOptions() Options {
	return Options{
		MinRun:          0,
		UseGalloping:    true,
		UseNaturalRuns:  true,
		GallopThreshold: defaultGallopThreshold,
	}
}

// Stats accumulates per-call counters. It replaces ambient state: every
// call gets its own Stats, so concurrent sorts never interfere.
type Stats struct {
	Comparisons   int // comparator invocations
	Moves         int // element writes (shifts, copies, swap halves)
	RunsDetected  int // natural or manufactured runs pushed on the stack
	RunsReversed  int // descending runs normalized by reversal
	Insertions    int // binary-insertion placements by the run extender
	Merges        int // adjacent-run merges
	GallopEntries int // times a merge switched into gallop mode
	MaxStackDepth int // deepest the pending-run stack ever got
}

// Sort returns a stably sorted copy of input under cmp, using the default
// options. The input slice is never mutated.
func Sort[T any](input []T, cmp Comparator[T]) []T {
	out, _ := SortWithOptions(input, cmp, DefaultOptions())
	return out
}

// SortWithOptions returns a stably sorted copy of input under cmp along
// with the per-call Stats. The input slice is never mutated; empty and
// single-element inputs are returned (as a copy) with zero comparator
// invocations.
func SortWithOptions[T any](input []T, cmp Comparator[T], opts Options) ([]T, Stats) {
	out := make([]T, len(input))
	copy(out, input)
	if len(out) < 2 {
		return out, Stats{}
	}

	s := &sorter[T]{
		a:    out,
		cmp:  cmp,
		opts: sanitizeOptions(opts),
	}
	s.sort()
	return out, s.stats
}

// sanitizeOptions applies the fallback rules: invalid numeric fields are
// replaced by their automatic values, never rejected.
func sanitizeOptions(opts Options) Options {
	if opts.MinRun < 1 {
		opts.MinRun = 0 // automatic
	}
	if opts.GallopThreshold < 1 {
		opts.GallopThreshold = defaultGallopThreshold
	}
	return opts
}

// sorter owns the working copy of the array, the pending-run stack and the
// reusable merge buffer for the duration of one call. Nothing here is
// shared between calls.
type sorter[T any] struct {
	a     []T
	cmp   Comparator[T]
	opts  Options
	stack []run
	buf   []T // merge scratch, reused across merges
	stats Stats
}

// sort runs the engine loop: detect a run, extend it to the minimum run
// length, push it, let the stack collapse, repeat until the input is
// exhausted, then force-merge whatever remains.
func (s *sorter[T]) sort() {
	n := len(s.a)

	minRun := s.opts.MinRun
	if minRun == 0 {
		minRun = computeMinRun(n)
	}

	lo := 0
	for lo < n {
		runLen := 1
		if s.opts.UseNaturalRuns {
			end, descending := s.detectRun(lo)
			runLen = end - lo + 1
			s.emit(trace.Event{
				Kind:      trace.KindRunDetected,
				RunBounds: &trace.Bounds{Lo: lo, Hi: end},
			})
			if descending {
				s.reverseRange(lo, end)
				s.stats.RunsReversed++
				s.emit(trace.Event{
					Kind:      trace.KindRunReversed,
					RunBounds: &trace.Bounds{Lo: lo, Hi: end},
				})
			}
		} else {
			s.emit(trace.Event{
				Kind:      trace.KindRunDetected,
				RunBounds: &trace.Bounds{Lo: lo, Hi: lo},
			})
		}

		if runLen < minRun {
			target := lo + minRun - 1
			if target > n-1 {
				target = n - 1
			}
			s.extendRun(lo, lo+runLen-1, target)
			runLen = target - lo + 1
		}

		s.pushRun(run{start: lo, length: runLen})
		s.stats.RunsDetected++
		s.collapse()
		lo += runLen
	}

	s.forceCollapse()
	if len(s.stack) != 1 {
		panic("timsort: assert stack drained to exactly one run")
	}
	if s.stack[0].start != 0 || s.stack[0].length != n {
		panic("timsort: assert final run covers the whole array")
	}
}

// compare invokes the caller's comparator and counts it.
func (s *sorter[T]) compare(a, b T) int {
	s.stats.Comparisons++
	return s.cmp(a, b)
}

// emit forwards an event to the configured sink, isolating the engine
// from sink panics. Sort correctness never depends on the sink.
func (s *sorter[T]) emit(ev trace.Event) {
	sink := s.opts.Sink
	if sink == nil {
		return
	}
	defer func() { _ = recover() }()
	sink.Emit(ev)
}
