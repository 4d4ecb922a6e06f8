// Package task is the external effect system state threads are lifted into.
// A Task is a context-aware computation that may fail; every combinator
// checks the context before it does any work.
//
// Example:
//
//	report := st.ToTask(buildReport[st.RealWorld](rows))
//	rendered := task.Map(report, func(r Report) string { return r.String() })
//	out, err := rendered(ctx)
package task

import (
	"context"
	"errors"
)

// Task is a computation run against a context.
type Task[T any] func(ctx context.Context) (T, error)

// From adapts fn into a Task that is skipped once ctx is done.
//
// Example:
//
//	flush := From(sink.Flush)
func From[T any](fn func(ctx context.Context) (T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		return fn(ctx)
	}
}

// Pure yields value unless ctx is done.
func Pure[T any](value T) Task[T] {
	return From(func(context.Context) (T, error) {
		return value, nil
	})
}

// Fail yields err, or a generic error when err is nil. A done context wins
// over the stored error.
func Fail[T any](err error) Task[T] {
	if err == nil {
		err = errors.New("task: nil error")
	}
	return From(func(context.Context) (T, error) {
		var zero T
		return zero, err
	})
}

// FlatMap runs t and then the Task fn builds from its value.
//
// Example:
//
//	stored := FlatMap(render, func(doc string) Task[int] {
//		return write(doc)
//	})
func FlatMap[T any, U any](t Task[T], fn func(T) Task[U]) Task[U] {
	return func(ctx context.Context) (U, error) {
		val, err := t(ctx)
		if err != nil {
			var zero U
			return zero, err
		}
		return From(fn(val))(ctx)
	}
}

// Map transforms the value of a successful Task.
func Map[T any, U any](t Task[T], fn func(T) U) Task[U] {
	return FlatMap(t, func(val T) Task[U] {
		return Pure(fn(val))
	})
}

// Then runs t, drops its value and runs next.
func Then[T any, U any](t Task[T], next Task[U]) Task[U] {
	return FlatMap(t, func(T) Task[U] { return next })
}

// Tap calls fn with the value of a successful Task.
//
// Example:
//
//	logged := Tap(render, func(doc string) {
//		log.WithField("bytes", len(doc)).Info("rendered")
//	})
func Tap[T any](t Task[T], fn func(T)) Task[T] {
	return observe(t, func(val T, err error) {
		if err == nil {
			fn(val)
		}
	})
}

// TapErr calls fn with the error of a failed Task.
func TapErr[T any](t Task[T], fn func(error)) Task[T] {
	return observe(t, func(_ T, err error) {
		if err != nil {
			fn(err)
		}
	})
}

// Ensure calls fn once t has finished, whatever the outcome.
func Ensure[T any](t Task[T], fn func()) Task[T] {
	return observe(t, func(T, error) { fn() })
}

func observe[T any](t Task[T], fn func(T, error)) Task[T] {
	return func(ctx context.Context) (T, error) {
		val, err := t(ctx)
		fn(val, err)
		return val, err
	}
}

// Sequence runs tasks one after another.
func Sequence[T any](tasks []Task[T]) Task[[]T] {
	return Traverse(tasks, func(t Task[T]) Task[T] { return t })
}

// Traverse runs fn(item) for each item in order and stops at the first
// failure or cancellation.
//
// Example:
//
//	written := Traverse(docs, func(d string) Task[int] { return write(d) })
func Traverse[A any, B any](items []A, fn func(A) Task[B]) Task[[]B] {
	return func(ctx context.Context) ([]B, error) {
		results := make([]B, 0, len(items))
		for _, item := range items {
			val, err := From(fn(item))(ctx)
			if err != nil {
				return nil, err
			}
			results = append(results, val)
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return results, nil
	}
}
