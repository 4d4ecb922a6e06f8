// Package lazy provides explicitly deferred values for a strict language.
//
// A Value is forced on demand and memoised. A Promise is a write-once cell
// whose Value can be handed out before the cell is filled, which is what
// recursive (knot-tying) definitions need.
package lazy

import (
	"sync"
	"sync/atomic"
)

// Value is a deferred value of type T. The zero value forces to the zero T.
type Value[T any] struct {
	force func() T
}

// Of wraps an already computed value.
func Of[T any](value T) Value[T] {
	return Value[T]{force: func() T { return value }}
}

// New defers thunk until the first Force. The thunk runs at most once; later
// calls return the memoised result.
//
// Example:
//
//	cfg := lazy.New(loadConfig)
//	port := cfg.Force().Port
func New[T any](thunk func() T) Value[T] {
	return Value[T]{force: sync.OnceValue(thunk)}
}

// Force evaluates the value.
func (v Value[T]) Force() T {
	if v.force == nil {
		var zero T
		return zero
	}
	return v.force()
}

// Map defers applying fn to the forced value of v.
func Map[T any, U any](v Value[T], fn func(T) U) Value[U] {
	return New(func() U {
		return fn(v.Force())
	})
}

// Promise is a write-once cell. Its Value may be shared before Resolve is
// called; forcing it blocks until the promise is resolved.
type Promise[T any] struct {
	resolved atomic.Bool
	ready    chan struct{}
	value    T
}

// NewPromise creates an unresolved promise.
func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{ready: make(chan struct{})}
}

// Resolve stores value and releases every pending Force.
// Panics if the promise was already resolved.
func (p *Promise[T]) Resolve(value T) {
	if !p.resolved.CompareAndSwap(false, true) {
		panic("lazy: promise resolved twice")
	}
	p.value = value
	close(p.ready)
}

// Value returns a deferred reference to the promised value. Forcing it
// before Resolve blocks; forcing it on the goroutine that is expected to
// call Resolve never returns.
func (p *Promise[T]) Value() Value[T] {
	return Value[T]{force: func() T {
		<-p.ready
		return p.value
	}}
}

// Peek returns the value and true when the promise is resolved, or the zero
// value and false otherwise. It never blocks.
func (p *Promise[T]) Peek() (T, bool) {
	select {
	case <-p.ready:
		return p.value, true
	default:
		var zero T
		return zero, false
	}
}
