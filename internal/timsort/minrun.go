package timsort

// computeMinRun returns the target minimum run length for an array of
// length n: n itself when n < 64, otherwise a value in [32, 64) chosen so
// that n/minRun is close to, but not below, a power of two. The low bits
// shifted out while halving are OR-accumulated and added back so that a
// slightly-over power of two does not produce one badly unbalanced final
// merge.
func computeMinRun(n int) int {
	if n < 0 {
		panic("timsort: assert n >= 0")
	}
	r := 0 // becomes 1 if any bit was shifted off
	for n >= minMergeThreshold {
		r |= n & 1
		n >>= 1
	}
	return n + r
}
