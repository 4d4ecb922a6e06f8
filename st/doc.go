// Package st implements strict state threads: deferred computations that
// pass a phantom-typed world token from step to step.
//
// An ST[S, A] describes work that, once executed, produces an A. Nothing
// runs while a computation is being composed; Run supplies the world token
// and executes the whole chain left to right in a single call.
//
// The scope tag S only exists at compile time. Libraries write their
// computations over an abstract S so that they cannot be extracted early or
// mixed with another scope, and the caller unifies S with RealWorld at the
// point of extraction:
//
//	func count[S any](log *[]string) st.ST[S, int] {
//		return st.Delay[S](func() int {
//			*log = append(*log, "counted")
//			return len(*log)
//		})
//	}
//
//	n := st.Run(count[st.RealWorld](&log))
//
// Combining an ST[S1, A] with an ST[S2, B] in Ap, FlatMap or any derived
// combinator is rejected by the compiler, and Run only accepts
// computations anchored at RealWorld.
package st
