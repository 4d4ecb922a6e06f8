// Package seq offers eager helpers for Go slices, including the ordering
// and grouping utilities used alongside state threads.
package seq

// Map transforms each element using fn and returns a new slice with the same
// length as input.
func Map[A any, B any](in []A, fn func(A) B) []B {
	if len(in) == 0 {
		return []B{}
	}
	out := make([]B, len(in))
	for i, v := range in {
		out[i] = fn(v)
	}
	return out
}

// Filter keeps values satisfying predicate. The returned slice shares no
// backing array with the input.
func Filter[T any](in []T, predicate func(T) bool) []T {
	result := make([]T, 0, len(in))
	for _, v := range in {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// FoldLeft reduces the slice from left to right using the provided accumulator.
func FoldLeft[A any, B any](in []A, init B, fn func(B, A) B) B {
	acc := init
	for _, v := range in {
		acc = fn(acc, v)
	}
	return acc
}

// Reduce applies fn across elements, returning false when slice empty.
func Reduce[T any](in []T, fn func(T, T) T) (T, bool) {
	if len(in) == 0 {
		var zero T
		return zero, false
	}
	return FoldLeft(in[1:], in[0], fn), true
}

// Zip combines two slices into a slice of pairs up to the shortest length.
func Zip[A any, B any](a []A, b []B) []Pair[A, B] {
	limit := min(len(a), len(b))
	result := make([]Pair[A, B], limit)
	for i := range limit {
		result[i] = Pair[A, B]{First: a[i], Second: b[i]}
	}
	return result
}

// Pair represents two related values.
type Pair[A any, B any] struct {
	First  A
	Second B
}
