// Package source is the code measured by the coverage tests.
package source

// Add returns a + b.
func Add(a, b int) int {
	return a + b
}

// Abs returns the absolute value of n.
func Abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}

// Clamp limits n to [lo, hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}

	if n > hi {
		return hi
	}

	return n
}
