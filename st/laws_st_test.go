package st_test

import (
	"testing"
	"testing/quick"

	"github.com/charmingruby/basis/fp"
	"github.com/charmingruby/basis/st"
)

type world = st.RealWorld

// counted builds a computation that increments *calls when executed, so
// laws are checked against effectful computations as well as pure ones.
func counted(value int, calls *int) st.ST[world, int] {
	return st.Delay[world](func() int {
		*calls++
		return value + *calls
	})
}

func TestFunctorLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }
	dbl := func(x int) int { return x * 2 }

	check := func(value int) bool {
		var a, b int
		identity := st.Run(st.Map(counted(value, &a), fp.Identity[int])) == st.Run(counted(value, &b))

		a, b = 0, 0
		left := st.Run(st.Map(st.Map(counted(value, &a), inc), dbl))
		right := st.Run(st.Map(counted(value, &b), fp.Compose2(dbl, inc)))
		return identity && left == right
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("functor law failed: %v", err)
	}
}

func TestApplicativeLaws(t *testing.T) {
	inc := func(x int) int { return x + 1 }

	identity := func(value int) bool {
		var a, b int
		left := st.Run(st.Ap(st.Pure[world](fp.Identity[int]), counted(value, &a)))
		return left == st.Run(counted(value, &b))
	}
	if err := quick.Check(identity, nil); err != nil {
		t.Fatalf("applicative identity failed: %v", err)
	}

	homomorphism := func(value int) bool {
		return st.Run(st.Ap(st.Pure[world](inc), st.Pure[world](value))) == inc(value)
	}
	if err := quick.Check(homomorphism, nil); err != nil {
		t.Fatalf("homomorphism failed: %v", err)
	}

	interchange := func(value int) bool {
		left := st.Run(st.Ap(st.Pure[world](inc), st.Pure[world](value)))
		right := st.Run(st.Ap(st.Pure[world](func(f func(int) int) int { return f(value) }), st.Pure[world](inc)))
		return left == right
	}
	if err := quick.Check(interchange, nil); err != nil {
		t.Fatalf("interchange failed: %v", err)
	}
}

func TestMonadLaws(t *testing.T) {
	f := func(x int) st.ST[world, int] {
		return st.Map(st.Pure[world](x), func(v int) int { return v*3 - 1 })
	}
	g := func(x int) st.ST[world, int] {
		return st.Pure[world](x + 7)
	}

	leftIdentity := func(x int) bool {
		return st.Run(st.FlatMap(st.Pure[world](x), f)) == st.Run(f(x))
	}
	if err := quick.Check(leftIdentity, nil); err != nil {
		t.Fatalf("left identity failed: %v", err)
	}

	rightIdentity := func(x int) bool {
		var a, b int
		left := st.Run(st.FlatMap(counted(x, &a), st.Pure[world, int]))
		return left == st.Run(counted(x, &b))
	}
	if err := quick.Check(rightIdentity, nil); err != nil {
		t.Fatalf("right identity failed: %v", err)
	}

	associativity := func(x int) bool {
		var a, b int
		left := st.FlatMap(st.FlatMap(counted(x, &a), f), g)
		right := st.FlatMap(counted(x, &b), func(v int) st.ST[world, int] {
			return st.FlatMap(f(v), g)
		})
		return st.Run(left) == st.Run(right)
	}
	if err := quick.Check(associativity, nil); err != nil {
		t.Fatalf("associativity failed: %v", err)
	}
}

func TestDerivedOperatorsAgreeWithBind(t *testing.T) {
	check := func(x, y int) bool {
		a, b := st.Pure[world](x), st.Pure[world](y)
		right := st.Run(st.SeqRight(a, b)) == st.Run(st.Then(a, b))
		left := st.Run(st.SeqLeft(a, b)) == st.Run(st.FlatMap(a, func(v int) st.ST[world, int] {
			return st.As(b, v)
		}))
		return right && left
	}
	if err := quick.Check(check, nil); err != nil {
		t.Fatalf("derived operators disagree: %v", err)
	}
}
