// Package buf contains overflow-safe size and index arithmetic shared by the
// containers and allocators.
package buf

import "math"

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies two non-negative sizes, returning ok = false when
// either operand is negative or the product would overflow int.
func MulOverflowSafe(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt/b {
		return 0, false
	}
	return a * b, true
}

// SlotBytes returns the number of bytes needed for n slots of elemSize bytes.
// Zero-sized elements are counted as one byte each so that absurd slot counts
// are still rejected by byte limits.
func SlotBytes(n, elemSize int) (int, bool) {
	if elemSize == 0 {
		elemSize = 1
	}
	return MulOverflowSafe(n, elemSize)
}

// Double returns max(1, n*2), the capacity a full container grows to.
// ok is false when doubling would overflow int.
func Double(n int) (int, bool) {
	if n <= 0 {
		return 1, true
	}
	return MulOverflowSafe(n, 2)
}

// InRange reports whether 0 <= i < n.
func InRange(i, n int) bool {
	return uint(i) < uint(n)
}
