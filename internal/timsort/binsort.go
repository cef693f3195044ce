package timsort

import "sortlab/internal/trace"

// extendRun grows the known-sorted prefix a[start..sortedEnd] to cover
// a[start..targetEnd], fully sorted, by stable binary insertion. Each new
// key is placed after all existing equal keys (stable search mode), which
// is the tie-break that preserves input order for duplicates.
//
// Worst case O(k^2) moves per call, but k is bounded by the minimum run
// length, so the cost stays constant per run.
func (s *sorter[T]) extendRun(start, sortedEnd, targetEnd int) {
	if start > sortedEnd || sortedEnd > targetEnd {
		panic("timsort: assert start <= sortedEnd <= targetEnd")
	}
	for i := sortedEnd + 1; i <= targetEnd; i++ {
		key := s.a[i]
		pos := start + s.binarySearch(s.a, key, start, i-start, searchStable)

		// Shift the tail right by one and drop the key in.
		copy(s.a[pos+1:i+1], s.a[pos:i])
		s.a[pos] = key
		s.stats.Moves += i - pos + 1
		s.stats.Insertions++

		s.emit(trace.Event{
			Kind:          trace.KindInsertion,
			RunBounds:     &trace.Bounds{Lo: start, Hi: i},
			InsertedValue: key,
			Position:      pos,
		})
	}
}
