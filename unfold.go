// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// Core unfold abstraction.
// Unfolder is the per-container capability; Unfold is the typed front door.

// Erased is a type alias for any, marking type-erased unfold seeds.
// The seed type is chosen per call while a container instance is a plain
// value, so the seed crosses the Unfolder boundary type-erased. Concrete
// seed types are recovered via type assertion inside [Unfold]'s adapter.
type Erased = any

// Yield carries one generated element and the seed for the next step.
type Yield[A, B any] struct {
	Value A
	Seed  B
}

// StepFunc maps the current seed to either None (stop generating) or
// Some Yield (emit Yield.Value, continue with Yield.Seed).
//
// A step function that never returns None is valid only against a lazy
// target such as [SeqOf]; finite targets ([SliceOf], [ListOf]) require
// eventual termination. This is a caller obligation, not checked here.
type StepFunc[A, B any] func(B) Option[Yield[A, B]]

// Unfolder is the capability interface for containers that can be built
// from an ordered generating sequence. Implementations consume the step
// results strictly in generation order and perform no reordering,
// deduplication, or filtering.
//
// Instances are stateless zero-size witnesses ([SliceOf], [SingleOf],
// [ListOf], [SeqOf]); every build produces a fresh container.
type Unfolder[A, C any] interface {
	// UnfoldErased builds the container from a type-erased step and seed.
	// Call sites should prefer the typed [Unfold] front door.
	UnfoldErased(step StepFunc[A, Erased], seed Erased) C
}

// eraseStep adapts a typed step function to the erasure boundary.
// The seed is asserted back to B on each call; the emitted element
// stays fully typed.
func eraseStep[A, B any](step StepFunc[A, B]) StepFunc[A, Erased] {
	return func(s Erased) Option[Yield[A, Erased]] {
		y, ok := step(s.(B)).Get()
		if !ok {
			return None[Yield[A, Erased]]()
		}
		return Some(Yield[A, Erased]{Value: y.Value, Seed: y.Seed})
	}
}

// Unfold builds a container of A by repeated application of step to an
// evolving seed, collecting emitted elements in generation order.
//
// Type arguments are fully inferred: the container instance determines
// A and C through its UnfoldErased method, and the step function
// determines the seed type B.
//
//	digits := unfold.Unfold(unfold.SliceOf[int]{}, countdown, 3)
//	// digits == []int{3, 2, 1, 0}
//
// The engine holds no state across calls and never mutates the seed;
// each step consumes the current seed value and produces the next.
func Unfold[A, B, C any](u Unfolder[A, C], step StepFunc[A, B], seed B) C {
	return u.UnfoldErased(eraseStep(step), seed)
}
