package st

import "github.com/charmingruby/basis/lazy"

// Fix builds a computation whose result is fed back into its own
// generator. fn receives a deferred reference to the value the computation
// it returns will eventually produce; the reference becomes available once
// that computation has finished.
//
// Each execution ties a fresh knot, so running the same Fix computation
// twice yields two independent results.
//
// The generator must not force the reference before producing its result,
// neither while building the computation nor inside one of its steps.
// Doing so blocks forever: such a definition has no fixed point to compute.
//
// Example:
//
//	type node struct {
//		label string
//		next  lazy.Value[*node]
//	}
//
//	ring := Fix(func(self lazy.Value[*node]) ST[S, *node] {
//		return Pure[S](&node{label: "a", next: self})
//	})
func Fix[S any, A any](fn func(lazy.Value[A]) ST[S, A]) ST[S, A] {
	return ST[S, A]{step: func(w World[S]) (World[S], A) {
		knot := lazy.NewPromise[A]()
		next, value := fn(knot.Value()).run(w)
		knot.Resolve(value)
		return next, value
	}}
}
