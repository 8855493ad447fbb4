// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// Derived operations. Each is a thin composition over [Unfold]; no
// generation logic lives here beyond the step functions themselves.

// Replicate builds a container holding value exactly max(n, 0) times.
// The seed is the remaining count; generation stops once it reaches zero.
func Replicate[A, C any](u Unfolder[A, C], n int, value A) C {
	return Unfold(u, func(i int) Option[Yield[A, int]] {
		if i <= 0 {
			return None[Yield[A, int]]()
		}
		return Some(Yield[A, int]{Value: value, Seed: i - 1})
	}, n)
}

// Empty builds the empty container for the target type.
// The step terminates on its first call regardless of seed.
func Empty[A, C any](u Unfolder[A, C]) C {
	return Unfold(u, func(struct{}) Option[Yield[A, struct{}]] {
		return None[Yield[A, struct{}]]()
	}, struct{}{})
}

// FromOption builds a container holding the option's value if present,
// or the empty container otherwise. The yielded seed is None, so the
// step terminates on its second call; at most one element is ever
// emitted, making this safe for single-element targets like [SingleOf].
func FromOption[A, C any](u Unfolder[A, C], opt Option[A]) C {
	return Unfold(u, func(o Option[A]) Option[Yield[A, Option[A]]] {
		a, ok := o.Get()
		if !ok {
			return None[Yield[A, Option[A]]]()
		}
		return Some(Yield[A, Option[A]]{Value: a, Seed: None[A]()})
	}, opt)
}
