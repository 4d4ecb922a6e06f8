package st

import "github.com/charmingruby/basis/task"

// Run executes m against the real world and returns its result. The final
// token is dropped. Every call is an independent, complete execution.
//
// Example:
//
//	value := Run(FlatMap(Pure[RealWorld](5), func(n int) ST[RealWorld, int] {
//		return Pure[RealWorld](n * 2)
//	}))
func Run[A any](m ST[RealWorld, A]) A {
	_, value := m.run(realWorld)
	return value
}

// ToTask extracts m immediately and lifts the value into a Task. Running the
// Task yields that value unless the context is already done.
//
// Example:
//
//	report := ToTask(buildReport[RealWorld](rows))
//	out, err := task.Map(report, render)(ctx)
func ToTask[A any](m ST[RealWorld, A]) task.Task[A] {
	return task.Pure(Run(m))
}
