// Package fp provides the function combinators the rest of the module uses
// to state and check its laws.
//
// Example:
//
//	inc := func(n int) int { return n + 1 }
//	show := fp.Compose2(strconv.Itoa, inc)
//	fmt.Println(show(41))
package fp

// Identity returns the supplied value unchanged.
func Identity[T any](v T) T {
	return v
}

// Const returns a unary function that ignores its argument and returns v.
//
// Example:
//
//	zero := Const[string](0)
//	n := zero("ignored")
func Const[B any, A any](v A) func(B) A {
	return func(B) A {
		return v
	}
}

// Compose2 returns g after f.
//
// Example:
//
//	long := Compose2(func(n int) bool { return n > 3 }, func(s string) int { return len(s) })
//	ok := long("state")
func Compose2[A any, B any, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Curry converts a binary function into its curried form.
//
// Example:
//
//	add := func(a, b int) int { return a + b }
//	addFive := Curry(add)(5)
func Curry[A any, B any, C any](fn func(A, B) C) func(A) func(B) C {
	return func(a A) func(B) C {
		return func(b B) C {
			return fn(a, b)
		}
	}
}
