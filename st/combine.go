package st

import (
	"github.com/charmingruby/basis/fp"
	"github.com/charmingruby/basis/seq"
)

// Lift2 runs a then b and combines their results with fn.
//
// Example:
//
//	sum := Lift2(func(x, y int) int { return x + y }, readA, readB)
func Lift2[S any, A any, B any, C any](fn func(A, B) C, a ST[S, A], b ST[S, B]) ST[S, C] {
	return Ap(Map(a, fp.Curry(fn)), b)
}

// Lift3 runs a, b and c in order and combines their results with fn.
func Lift3[S any, A any, B any, C any, D any](
	fn func(A, B, C) D,
	a ST[S, A],
	b ST[S, B],
	c ST[S, C],
) ST[S, D] {
	curried := Lift2(func(x A, y B) func(C) D {
		return func(z C) D { return fn(x, y, z) }
	}, a, b)
	return Ap(curried, c)
}

// Zip runs a then b and pairs their results.
func Zip[S any, A any, B any](a ST[S, A], b ST[S, B]) ST[S, seq.Pair[A, B]] {
	return Lift2(func(x A, y B) seq.Pair[A, B] {
		return seq.Pair[A, B]{First: x, Second: y}
	}, a, b)
}

// Sequence runs the computations from first to last, threading the token,
// and collects their results in the same order.
//
// Example:
//
//	all := Sequence([]ST[S, string]{readHeader, readBody})
func Sequence[S any, A any](steps []ST[S, A]) ST[S, []A] {
	return Traverse(steps, func(m ST[S, A]) ST[S, A] { return m })
}

// Traverse maps each item to a computation with fn and runs them in item
// order.
//
// Example:
//
//	loaded := Traverse(ids, func(id int) ST[S, Row] { return load[S](id) })
func Traverse[S any, A any, B any](items []A, fn func(A) ST[S, B]) ST[S, []B] {
	return ST[S, []B]{step: func(w World[S]) (World[S], []B) {
		results := make([]B, 0, len(items))
		for _, item := range items {
			var value B
			w, value = fn(item).run(w)
			results = append(results, value)
		}
		return w, results
	}}
}
