package seq

import "cmp"

// Compare orders two slices lexicographically. It returns -1 when a sorts
// before b, 0 when they hold the same elements in the same order and +1
// otherwise. A proper prefix sorts before the longer slice, so the empty
// slice is the smallest.
func Compare[T cmp.Ordered](a, b []T) int {
	for i := range min(len(a), len(b)) {
		if c := cmp.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}

// Less reports whether a sorts strictly before b.
func Less[T cmp.Ordered](a, b []T) bool { return Compare(a, b) < 0 }

// LessOrEqual reports whether a sorts before b or equals it.
func LessOrEqual[T cmp.Ordered](a, b []T) bool { return Compare(a, b) <= 0 }

// Greater reports whether a sorts strictly after b.
func Greater[T cmp.Ordered](a, b []T) bool { return Compare(a, b) > 0 }

// GreaterOrEqual reports whether a sorts after b or equals it.
func GreaterOrEqual[T cmp.Ordered](a, b []T) bool { return Compare(a, b) >= 0 }
