package timsort

// The pending-run stack bounds total merge work to O(n log n) by keeping
// run lengths growing at least as fast as Fibonacci numbers. After every
// push the top of the stack must satisfy, for entries ..., A, B, C
// (C most recent):
//
//	length(B) > length(C)
//	length(A) > length(B) + length(C)
//
// collapse repairs violations by merging adjacent pairs until both hold.

// debugChecks, when true, re-validates the whole stack after every
// collapse and panics on violation. Tests flip it on; it is too expensive
// for release paths.
var debugChecks = false

// pushRun appends a run to the pending stack.
func (s *sorter[T]) pushRun(r run) {
	if r.length < 1 {
		panic("timsort: assert run length >= 1")
	}
	s.stack = append(s.stack, r)
	if d := len(s.stack); d > s.stats.MaxStackDepth {
		s.stats.MaxStackDepth = d
	}
}

// collapse merges adjacent runs until the stack invariants hold again.
// Invoked after every push. Each iteration re-examines the (possibly new)
// top of the stack, so one push can cascade several merges.
//
// When a merge is required and both a (B,C) and an (A,B) merge would do,
// the pair that keeps the smaller run shorter is chosen: merge A with B
// when length(A) < length(C), otherwise B with C.
func (s *sorter[T]) collapse() {
	for len(s.stack) > 1 {
		n := len(s.stack) - 2
		switch {
		// The second clause re-examines one level deeper. Without it a
		// merge can leave a violation just below the top that the
		// three-entry check never sees again, and the invariant the rest
		// of the engine relies on silently breaks.
		case n > 0 && s.stack[n-1].length <= s.stack[n].length+s.stack[n+1].length,
			n > 1 && s.stack[n-2].length <= s.stack[n-1].length+s.stack[n].length:
			if s.stack[n-1].length < s.stack[n+1].length {
				n--
			}
			s.mergeAt(n)
		case s.stack[n].length <= s.stack[n+1].length:
			s.mergeAt(n)
		default:
			if debugChecks {
				s.checkStackInvariants()
			}
			return
		}
	}
	if debugChecks {
		s.checkStackInvariants()
	}
}

// forceCollapse merges the top two runs until exactly one remains,
// regardless of invariants. Invoked once after input exhaustion.
func (s *sorter[T]) forceCollapse() {
	for len(s.stack) > 1 {
		s.mergeAt(len(s.stack) - 2)
	}
}

// mergeAt merges the stack entries at i and i+1, which must be the top two
// or the two just below the top, and replaces them with one combined entry
// before performing the actual element merge.
func (s *sorter[T]) mergeAt(i int) {
	if len(s.stack) < 2 {
		panic("timsort: assert stack depth >= 2")
	}
	if i < 0 || (i != len(s.stack)-2 && i != len(s.stack)-3) {
		panic("timsort: assert merge index is at or next to the top")
	}

	left, right := s.stack[i], s.stack[i+1]
	if left.length <= 0 || right.length <= 0 || left.start+left.length != right.start {
		panic("timsort: assert runs are non-empty and adjacent")
	}

	s.stack[i] = run{start: left.start, length: left.length + right.length}
	if i == len(s.stack)-3 {
		s.stack[i+1] = s.stack[i+2]
	}
	s.stack = s.stack[:len(s.stack)-1]

	s.mergeRuns(left, right)
	s.stats.Merges++
}

// checkStackInvariants validates every entry of the stack, not just the
// top. A violation here is a programming defect in collapse, never an
// input problem, so it fails loudly.
func (s *sorter[T]) checkStackInvariants() {
	for i := 0; i < len(s.stack)-1; i++ {
		if s.stack[i].length <= s.stack[i+1].length {
			panic("timsort: assert length(B) > length(C) on pending stack")
		}
		if i+2 < len(s.stack) && s.stack[i].length <= s.stack[i+1].length+s.stack[i+2].length {
			panic("timsort: assert length(A) > length(B)+length(C) on pending stack")
		}
		if s.stack[i].start+s.stack[i].length != s.stack[i+1].start {
			panic("timsort: assert stack runs are adjacent")
		}
	}
}
