// Package bytesutil provides ordering primitives over byte sequences: unsigned
// lexicographic comparison, binary search against a caller-supplied comparator,
// and big-integer range splitting for partitioning row key ranges.
package bytesutil

import "bytes"

// Compare returns -1, 0 or 1 comparing a and b as unsigned lexicographic byte
// sequences. A sequence that is a strict prefix of a longer one sorts smaller.
func Compare(a, b []byte) int {
	return bytes.Compare(a, b)
}

// Equal reports whether a and b hold the same bytes.
func Equal(a, b []byte) bool {
	return bytes.Equal(a, b)
}

// BinarySearch locates key in a slice sorted per cmp. If the key is present it
// returns its index; otherwise it returns -(insertionPoint)-1, where
// insertionPoint is the index at which the key would be inserted to keep the
// slice sorted.
func BinarySearch[T any](sorted []T, key T, cmp func(a, b T) int) int {
	low, high := 0, len(sorted)-1
	for low <= high {
		mid := int(uint(low+high) >> 1)
		c := cmp(sorted[mid], key)
		switch {
		case c < 0:
			low = mid + 1
		case c > 0:
			high = mid - 1
		default:
			return mid
		}
	}
	return -(low + 1)
}

// PadTail returns a new slice holding a followed by length zero bytes.
func PadTail(a []byte, length int) []byte {
	padded := make([]byte, len(a)+length)
	copy(padded, a)
	return padded
}

// Copy returns an owned copy of b. A nil input yields an empty slice.
func Copy(b []byte) []byte {
	c := make([]byte, len(b))
	copy(c, b)
	return c
}
