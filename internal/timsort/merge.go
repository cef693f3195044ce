package timsort

import "sortlab/internal/trace"

// mergeState threads the cursors and win counters of one merge through the
// helpers explicitly, instead of closures over shared state. It is owned
// by exactly one mergeRuns call.
type mergeState struct {
	dest    int // next write index into a
	cursor1 int // next read index into the left-run buffer
	cursor2 int // next read index into the right run (in a)
	hi      int // last index of the right run (inclusive)
	wins1   int // consecutive wins by the left run
	wins2   int // consecutive wins by the right run
	written int // elements written since the last progress event
}

// mergeRuns merges two adjacent pre-sorted runs into one sorted run
// occupying a[left.start .. right.start+right.length-1]. Stability: on
// ties, elements from the left run are placed first.
//
// The left run is copied into the reusable scratch buffer, then the merge
// repeatedly takes the smaller of the buffer head and the right-run head.
// Once one side wins GallopThreshold times in a row the merge switches to
// gallop mode: a single gallop search locates how far the winning side
// runs ahead of the losing side's head, that stretch is bulk-copied, and
// the merge drops back to element-by-element mode.
func (s *sorter[T]) mergeRuns(left, right run) {
	lo := left.start
	mid := left.start + left.length - 1
	hi := right.start + right.length - 1
	if mid+1 != right.start {
		panic("timsort: assert merge runs are adjacent")
	}

	s.emit(trace.Event{
		Kind:        trace.KindMergeStarted,
		MergeBounds: &trace.Bounds{Lo: lo, Hi: hi},
	})

	// Copy the left run into scratch. The buffer is reused across merges
	// within one sort call; only grow it.
	if cap(s.buf) < left.length {
		s.buf = make([]T, left.length)
	}
	buf := s.buf[:left.length]
	copy(buf, s.a[lo:mid+1])
	s.stats.Moves += left.length

	m := mergeState{dest: lo, cursor1: 0, cursor2: mid + 1, hi: hi}
	threshold := s.opts.GallopThreshold

	for m.cursor1 < len(buf) && m.cursor2 <= m.hi {
		if s.compare(s.a[m.cursor2], buf[m.cursor1]) < 0 {
			// Right head strictly smaller; ties go to the buffer so the
			// left run keeps priority.
			s.a[m.dest] = s.a[m.cursor2]
			m.cursor2++
			m.wins2++
			m.wins1 = 0
		} else {
			s.a[m.dest] = buf[m.cursor1]
			m.cursor1++
			m.wins1++
			m.wins2 = 0
		}
		m.dest++
		m.written++
		s.stats.Moves++

		if m.written >= progressInterval {
			s.emitProgress(&m, lo, hi)
		}

		if !s.opts.UseGalloping {
			continue
		}
		if m.cursor1 == len(buf) || m.cursor2 > m.hi {
			break
		}
		if m.wins1 >= threshold {
			s.gallopFromLeft(buf, &m)
		} else if m.wins2 >= threshold {
			s.gallopFromRight(buf, &m)
		}
	}

	// One side is exhausted; the remainder copies over without further
	// comparisons. If the buffer emptied first, the tail of the right run
	// is already in place.
	if m.cursor1 < len(buf) {
		copy(s.a[m.dest:hi+1], buf[m.cursor1:])
		s.stats.Moves += len(buf) - m.cursor1
	}

	s.emit(trace.Event{
		Kind:        trace.KindMergeCompleted,
		MergeBounds: &trace.Bounds{Lo: lo, Hi: hi},
		Position:    hi + 1,
	})
}

// gallopFromLeft bulk-copies the stretch of buffered left-run elements
// that sort at or before the right head (stable mode: the left run owns
// ties), then resets both win counters.
func (s *sorter[T]) gallopFromLeft(buf []T, m *mergeState) {
	s.stats.GallopEntries++
	s.emit(trace.Event{
		Kind: trace.KindGallopEntered,
		Side: "left",
	})

	key := s.a[m.cursor2]
	n := s.gallopSearch(buf, key, m.cursor1, len(buf)-m.cursor1, searchStable)
	if n > 0 {
		copy(s.a[m.dest:m.dest+n], buf[m.cursor1:m.cursor1+n])
		m.dest += n
		m.cursor1 += n
		m.written += n
		s.stats.Moves += n
		s.emit(trace.Event{
			Kind:     trace.KindGallopAdvanced,
			Side:     "left",
			Count:    n,
			Position: m.dest,
		})
	}
	m.wins1, m.wins2 = 0, 0
}

// gallopFromRight bulk-copies the stretch of right-run elements that sort
// strictly before the buffered left head (strict mode: an equal right
// element must wait behind the left run).
func (s *sorter[T]) gallopFromRight(buf []T, m *mergeState) {
	s.stats.GallopEntries++
	s.emit(trace.Event{
		Kind: trace.KindGallopEntered,
		Side: "right",
	})

	key := buf[m.cursor1]
	n := s.gallopSearch(s.a, key, m.cursor2, m.hi-m.cursor2+1, searchStrict)
	if n > 0 {
		copy(s.a[m.dest:m.dest+n], s.a[m.cursor2:m.cursor2+n])
		m.dest += n
		m.cursor2 += n
		m.written += n
		s.stats.Moves += n
		s.emit(trace.Event{
			Kind:     trace.KindGallopAdvanced,
			Side:     "right",
			Count:    n,
			Position: m.dest,
		})
	}
	m.wins1, m.wins2 = 0, 0
}

// emitProgress reports the merge write cursor and resets the interval
// counter.
func (s *sorter[T]) emitProgress(m *mergeState, lo, hi int) {
	s.emit(trace.Event{
		Kind:        trace.KindMergeProgress,
		MergeBounds: &trace.Bounds{Lo: lo, Hi: hi},
		Position:    m.dest,
		Count:       m.written,
	})
	m.written = 0
}
