package utils

// CopySlice returns a shallow copy of s, the copy is never nil.
func CopySlice[T any](s []T) []T {
	sliceCopy := make([]T, len(s))
	copy(sliceCopy, s)

	return sliceCopy
}

// ShrinkSliceIfWastedCapacity reallocates s if its length is at least minShrinkableLength
// and less than 1/divider of its capacity.
func ShrinkSliceIfWastedCapacity[T any](s []T, minShrinkableLength int, divider int) []T {
	if len(s) < minShrinkableLength || len(s) >= cap(s)/divider {
		return s
	}

	shrinked := make([]T, len(s), len(s)+len(s)/2)
	copy(shrinked, s)
	return shrinked
}

// RemoveIndex removes the element at index i while keeping the order of the remaining elements,
// the zeroed tail slot is released so that the removed element can be collected.
func RemoveIndex[T any](s []T, i int) []T {
	copy(s[i:], s[i+1:])

	var zero T
	s[len(s)-1] = zero
	return s[:len(s)-1]
}

// InsertAt inserts v at index i, i should be in the range [0, len(s)].
func InsertAt[T any](s []T, i int, v T) []T {
	if i == len(s) {
		return append(s, v)
	}

	var zero T
	s = append(s, zero)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}
