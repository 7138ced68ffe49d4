package utils

import (
	"golang.org/x/exp/constraints"
)

// Sign returns -1, 0 or 1.
func Sign[T constraints.Signed | constraints.Float](n T) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}
