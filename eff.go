// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// Eff is a deferred effectful computation that fails with E or produces
// A. Invoking the function runs the effect; composing with [MapEff],
// [BindEff], or [ThenEff] builds a description without running anything.
//
// Failure short-circuits: once an action returns Left, combinators never
// run the remaining actions. The sequencing functions ([SequenceSlice],
// [ReplicateEff]) rely on this for their exactly-in-order, fail-fast
// execution guarantee. An always-succeeding effect is simply one that
// never returns Left.
type Eff[E, A any] func() Either[E, A]

// Pure lifts a value into an effect that always succeeds with a.
func Pure[E, A any](a A) Eff[E, A] {
	return func() Either[E, A] {
		return Right[E, A](a)
	}
}

// Fail creates an effect that always fails with err.
func Fail[E, A any](err E) Eff[E, A] {
	return func() Either[E, A] {
		return Left[E, A](err)
	}
}

// Defer wraps a function as an effect evaluated at run time.
// Each run of the effect invokes f again.
func Defer[E, A any](f func() Either[E, A]) Eff[E, A] {
	return f
}

// Attempt adapts a plain Go fallible function to an effect with error
// as the failure type. A non-nil error becomes Left.
func Attempt[A any](f func() (A, error)) Eff[error, A] {
	return func() Either[error, A] {
		a, err := f()
		if err != nil {
			return Left[error, A](err)
		}
		return Right[error](a)
	}
}

// RunEff runs the effect and returns its Either result.
// Equivalent to calling m directly.
func RunEff[E, A any](m Eff[E, A]) Either[E, A] {
	return m()
}

// MapEff applies a pure function to the result of an effect.
func MapEff[E, A, B any](m Eff[E, A], f func(A) B) Eff[E, B] {
	return func() Either[E, B] {
		return MapEither(m(), f)
	}
}

// BindEff sequences two effects (monadic bind). It runs m, then passes
// the result to f to get the next effect. If m fails, f is never called.
func BindEff[E, A, B any](m Eff[E, A], f func(A) Eff[E, B]) Eff[E, B] {
	return func() Either[E, B] {
		return FlatMapEither(m(), func(a A) Either[E, B] {
			return f(a)()
		})
	}
}

// ThenEff sequences two effects, discarding the first result.
// If m fails, n is never run.
func ThenEff[E, A, B any](m Eff[E, A], n Eff[E, B]) Eff[E, B] {
	return func() Either[E, B] {
		if r := m(); r.IsLeft() {
			e, _ := r.GetLeft()
			return Left[E, B](e)
		}
		return n()
	}
}
