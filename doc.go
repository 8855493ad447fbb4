// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unfold provides generic primitives for building containers
// from a seed and a step function, the dual of folding a container down
// to a value.
//
// The core operation [Unfold] repeatedly applies a step function to an
// evolving seed; each application either terminates generation (None)
// or yields one element plus the next seed (Some [Yield]). Elements are
// collected into a concrete container in generation order.
//
// # Design Philosophy
//
// unfold provides:
//   - One polymorphic generating primitive plus thin derived helpers
//   - A per-container capability interface ([Unfolder]) with zero-size
//     instance witnesses, dispatched at compile time via generics
//   - A documented type-erasure boundary for the seed, crossed via type
//     assertion in a single adapter
//
// # Capability Boundary
//
// The seed type is chosen per call while container instances are plain
// values, so the seed crosses the [Unfolder] boundary type-erased
// ([Erased]). The typed front door [Unfold] wraps the typed step at the
// boundary and recovers the seed type by assertion; callers never see
// the erasure. Go type inference resolves the element and container
// types from the instance's method set, so calls need no explicit type
// arguments:
//
//	unfold.Unfold(unfold.SliceOf[int]{}, step, seed)
//
// # Container Instances
//
//   - [SliceOf]: growable slice — the reference array-like target where
//     the real generation loop lives ([UnfoldSlice])
//   - [SingleOf]: [Option] — a 0/1-element target; evaluates the step
//     at most once ([UnfoldOption])
//   - [ListOf]: immutable singly linked [List] ([UnfoldList])
//   - [SeqOf]: lazy [iter.Seq] — the unbounded target; generation runs
//     on demand during iteration ([UnfoldSeq])
//
// # Derived Operations
//
//   - [Replicate]: value repeated max(n, 0) times
//   - [Empty]: the empty container, zero elements generated
//   - [FromOption]: zero or one element from an [Option]
//   - [ReplicateEff]: run an effectful action n times in order,
//     collecting results ([ReplicateEffSlice] for the slice target)
//
// # Effects and Sequencing
//
// [Eff] is a deferred computation that fails with E or produces A,
// built on [Either]. Effects compose with [MapEff], [BindEff], and
// [ThenEff]; failure short-circuits. Sequencing turns a container of
// effects into one effect producing a container of results, executing
// strictly in container order with fail-fast semantics:
//
//   - [SequenceSlice], [TraverseSlice]
//   - [SequenceOption]
//   - [SequenceList]
//
// # Termination
//
// The engine does not guarantee termination: an always-Some step
// against a finite target ([SliceOf], [ListOf]) loops forever. This is
// a caller obligation, not a runtime-checked precondition. The lazy
// [SeqOf] target and the 0/1-element [SingleOf] target accept
// non-terminating steps safely.
//
// # Example
//
//	countdown := func(i int) unfold.Option[unfold.Yield[int, int]] {
//		if i < 0 {
//			return unfold.None[unfold.Yield[int, int]]()
//		}
//		return unfold.Some(unfold.Yield[int, int]{Value: i, Seed: i - 1})
//	}
//
//	unfold.Unfold(unfold.SliceOf[int]{}, countdown, 3)
//	// []int{3, 2, 1, 0}
package unfold
