package util

// CloneSlice clones slice with cloneSize.
// This function will use src length as the clone size if cloneSize is 0.
func CloneSlice[T any](src []T, cloneSize int) []T {
	if cloneSize == 0 {
		cloneSize = len(src)
	}
	clone := make([]T, cloneSize)
	copy(clone, src)

	return clone
}

// ClampLen returns n limited to the range [0, size].
func ClampLen(n int, size int) int {
	switch {
	case n < 0:
		return 0
	case n > size:
		return size
	default:
		return n
	}
}
