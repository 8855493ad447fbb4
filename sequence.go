// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// Effect sequencing: turn a container of effects into one effect that
// produces a container of results. Actions run strictly in container
// order, one at a time; the first failure aborts the remaining actions
// and becomes the overall result.

// SequenceSlice sequences a slice of effects into one effect producing
// a slice of results.
func SequenceSlice[E, A any](ms []Eff[E, A]) Eff[E, []A] {
	return func() Either[E, []A] {
		out := make([]A, 0, len(ms))
		for _, m := range ms {
			r := m()
			a, ok := r.GetRight()
			if !ok {
				e, _ := r.GetLeft()
				return Left[E, []A](e)
			}
			out = append(out, a)
		}
		return Right[E](out)
	}
}

// TraverseSlice maps each element to an effect and sequences the
// resulting effects in element order.
func TraverseSlice[E, A, B any](xs []A, f func(A) Eff[E, B]) Eff[E, []B] {
	return func() Either[E, []B] {
		out := make([]B, 0, len(xs))
		for _, x := range xs {
			r := f(x)()
			b, ok := r.GetRight()
			if !ok {
				e, _ := r.GetLeft()
				return Left[E, []B](e)
			}
			out = append(out, b)
		}
		return Right[E](out)
	}
}

// SequenceOption sequences an optional effect into an effect producing
// an optional result. An absent effect succeeds with None and runs
// nothing.
func SequenceOption[E, A any](m Option[Eff[E, A]]) Eff[E, Option[A]] {
	return func() Either[E, Option[A]] {
		eff, ok := m.Get()
		if !ok {
			return Right[E](None[A]())
		}
		return MapEither(eff(), Some[A])
	}
}

// SequenceList sequences a list of effects into an effect producing a
// list of results, in list order.
func SequenceList[E, A any](ms *List[Eff[E, A]]) Eff[E, *List[A]] {
	return func() Either[E, *List[A]] {
		var head, last *List[A]
		for node := ms; node != nil; node = node.tail {
			r := node.head()
			a, ok := r.GetRight()
			if !ok {
				e, _ := r.GetLeft()
				return Left[E, *List[A]](e)
			}
			out := &List[A]{head: a}
			if last == nil {
				head = out
			} else {
				last.tail = out
			}
			last = out
		}
		return Right[E](head)
	}
}

// ReplicateEff describes running action max(n, 0) times in order,
// collecting each run's result into the corresponding position.
//
// It composes [Replicate] over the effect-description container with
// that container's sequencing capability: u builds the container of n
// action descriptions and seq turns it into one effect. Everything is
// resolved at the call site; no reflection.
//
//	unfold.ReplicateEff(unfold.SliceOf[unfold.Eff[string, int]]{},
//		unfold.SequenceSlice[string, int], 3, action)
//
// Nothing runs until the returned effect itself is run.
func ReplicateEff[E, A, CE, C any](u Unfolder[Eff[E, A], CE], seq func(CE) Eff[E, C], n int, action Eff[E, A]) Eff[E, C] {
	return seq(Replicate(u, n, action))
}

// ReplicateEffSlice is [ReplicateEff] specialized to the slice target:
// run action max(n, 0) times in order, collecting results into a slice.
func ReplicateEffSlice[E, A any](n int, action Eff[E, A]) Eff[E, []A] {
	return ReplicateEff(SliceOf[Eff[E, A]]{}, SequenceSlice[E, A], n, action)
}
