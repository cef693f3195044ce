package timsort

// searchMode selects the tie-break of a boundary search. Get this wrong
// and stability silently breaks for inputs with duplicate keys.
type searchMode int

const (
	// searchStrict counts elements strictly before the key (<).
	searchStrict searchMode = iota
	// searchStable counts elements at or before the key (<=). Used when
	// searching the run that receives an incoming key, so that the
	// incoming key lands after all existing equal keys.
	searchStable
)

// sortsBefore reports whether element e sorts before key under mode.
func (s *sorter[T]) sortsBefore(e, key T, mode searchMode) bool {
	c := s.compare(e, key)
	if mode == searchStrict {
		return c < 0
	}
	return c <= 0
}

// binarySearch returns the number of leading elements of
// seq[start .. start+length-1] (which must be ascending) that sort before
// key under mode. This is the "binary mode" of the gallop search, used
// directly by the run extender.
func (s *sorter[T]) binarySearch(seq []T, key T, start, length int, mode searchMode) int {
	lo, hi := 0, length
	for lo < hi {
		mid := int(uint(lo+hi) >> 1)
		if s.sortsBefore(seq[start+mid], key, mode) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// gallopSearch returns the same boundary as binarySearch but reaches it in
// O(log k) for a boundary at offset k: an exponential probe over offsets
// 1, 2, 4, 8, ... brackets the boundary, then a binary search pins it down
// inside (lastGood, probe]. This two-phase search is what gives galloping
// mode its name.
func (s *sorter[T]) gallopSearch(seq []T, key T, start, length int, mode searchMode) int {
	if length == 0 || !s.sortsBefore(seq[start], key, mode) {
		return 0
	}

	lastGood := 0
	probe := 1
	for probe < length && s.sortsBefore(seq[start+probe], key, mode) {
		lastGood = probe
		probe <<= 1
		if probe <= 0 { // overflow
			probe = length
		}
	}
	if probe > length {
		probe = length
	}

	// Boundary lies in (lastGood, probe].
	return lastGood + 1 + s.binarySearch(seq, key, start+lastGood+1, probe-lastGood-1, mode)
}
