package timsort

// run denotes a contiguous, ascending, already-sorted slice
// a[start .. start+length-1] awaiting merge.
type run struct {
	start  int
	length int
}

// detectRun scans forward from start and returns the inclusive end index
// of the maximal monotonic run beginning there, plus whether the run is
// descending.
//
// Direction is fixed by the first pair: ascending on <=, descending on
// strict >. The asymmetry is deliberate and load-bearing for stability:
// a run of equal elements must classify as ascending, and a descending
// run must stop before absorbing an equal element, because the caller
// reverses descending runs in place and reversal would reorder equal keys.
func (s *sorter[T]) detectRun(start int) (end int, descending bool) {
	n := len(s.a)
	end = start
	if end == n-1 {
		return end, false
	}
	end++

	if s.compare(s.a[end], s.a[start]) < 0 {
		// Descending: extend while strictly decreasing.
		descending = true
		for end < n-1 && s.compare(s.a[end+1], s.a[end]) < 0 {
			end++
		}
	} else {
		// Ascending: extend while non-decreasing, absorbing equal keys.
		for end < n-1 && s.compare(s.a[end+1], s.a[end]) >= 0 {
			end++
		}
	}
	return end, descending
}

// reverseRange reverses a[lo..hi] in place. Pure index swaps, no
// comparator calls.
func (s *sorter[T]) reverseRange(lo, hi int) {
	for lo < hi {
		s.a[lo], s.a[hi] = s.a[hi], s.a[lo]
		s.stats.Moves += 2
		lo++
		hi--
	}
}
