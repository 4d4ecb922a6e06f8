package st

// RealWorld is the scope tag of the external world. It is the only scope
// Run accepts.
type RealWorld struct{}

// World is the token threaded through a computation anchored at scope S. It
// is zero-sized and carries no data; every token observed at runtime is the
// same sentinel.
type World[S any] struct {
	_ [0]S
}

var realWorld World[RealWorld]

// ST is a deferred computation in scope S producing a value of type A. ST
// values are immutable; combinators build new computations around existing
// ones. The zero value behaves like Pure of the zero A.
type ST[S any, A any] struct {
	step func(World[S]) (World[S], A)
}

func (m ST[S, A]) run(w World[S]) (World[S], A) {
	if m.step == nil {
		var zero A
		return w, zero
	}
	return m.step(w)
}

// New wraps a raw token-threading step into a computation. The step must
// return the token it was given, or one obtained from running another
// computation with it.
//
// Example:
//
//	tick := New(func(w World[S]) (World[S], int) {
//		counter++
//		return w, counter
//	})
func New[S any, A any](step func(World[S]) (World[S], A)) ST[S, A] {
	return ST[S, A]{step: step}
}

// Delay turns fn into a primitive step. fn runs each time the computation is
// executed, at its position in the sequence.
//
// Example:
//
//	stamp := Delay[S](time.Now)
func Delay[S any, A any](fn func() A) ST[S, A] {
	return ST[S, A]{step: func(w World[S]) (World[S], A) {
		return w, fn()
	}}
}

// Pure lifts a value into a computation that leaves the token untouched.
//
// Example:
//
//	five := Pure[RealWorld](5)
//	fmt.Println(Run(five))
func Pure[S any, A any](value A) ST[S, A] {
	return ST[S, A]{step: func(w World[S]) (World[S], A) {
		return w, value
	}}
}

// Map applies fn to the result of m.
//
// Example:
//
//	six := Map(Pure[RealWorld](5), func(n int) int { return n + 1 })
func Map[S any, A any, B any](m ST[S, A], fn func(A) B) ST[S, B] {
	return ST[S, B]{step: func(w World[S]) (World[S], B) {
		next, value := m.run(w)
		return next, fn(value)
	}}
}

// As runs m and replaces its result with value.
func As[S any, A any, B any](m ST[S, A], value B) ST[S, B] {
	return Map(m, func(A) B { return value })
}

// Ap runs mf, then runs ma from the token mf produced, and applies the
// resulting function to the resulting value.
//
// Example:
//
//	inc := Pure[S](func(n int) int { return n + 1 })
//	six := Ap(inc, Pure[S](5))
func Ap[S any, A any, B any](mf ST[S, func(A) B], ma ST[S, A]) ST[S, B] {
	return ST[S, B]{step: func(w World[S]) (World[S], B) {
		afterFn, fn := mf.run(w)
		afterArg, value := ma.run(afterFn)
		return afterArg, fn(value)
	}}
}

// FlatMap runs m, passes its result to fn and runs the computation fn
// returns from the token m produced.
//
// Example:
//
//	ten := FlatMap(Pure[S](5), func(n int) ST[S, int] {
//		return Pure[S](n * 2)
//	})
func FlatMap[S any, A any, B any](m ST[S, A], fn func(A) ST[S, B]) ST[S, B] {
	return ST[S, B]{step: func(w World[S]) (World[S], B) {
		next, value := m.run(w)
		return fn(value).run(next)
	}}
}

// Then runs a, discards its result, then runs b.
func Then[S any, A any, B any](a ST[S, A], b ST[S, B]) ST[S, B] {
	return FlatMap(a, func(A) ST[S, B] { return b })
}

// SeqRight runs a then b and keeps the result of b.
//
// Example:
//
//	greeting := SeqRight(logLine[S]("hello"), Pure[S]("done"))
func SeqRight[S any, A any, B any](a ST[S, A], b ST[S, B]) ST[S, B] {
	keepRight := Map(a, func(A) func(B) B {
		return func(value B) B { return value }
	})
	return Ap(keepRight, b)
}

// SeqLeft runs a then b and keeps the result of a.
func SeqLeft[S any, A any, B any](a ST[S, A], b ST[S, B]) ST[S, A] {
	keepLeft := Map(a, func(value A) func(B) A {
		return func(B) A { return value }
	})
	return Ap(keepLeft, b)
}
