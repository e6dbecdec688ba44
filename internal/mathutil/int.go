package mathutil

// IntMin returns the smaller of two ints.
func IntMin(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// IntMax returns the larger of two ints.
func IntMax(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// IntClamp limits v to the closed range [lo, hi].
func IntClamp(v, lo, hi int) int {
	return IntMax(lo, IntMin(v, hi))
}
