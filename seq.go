// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

import "iter"

// SeqOf is the Unfolder instance producing a lazy iter.Seq.
// This is the target for unbounded generation: elements are produced on
// demand during iteration, so an always-Some step is valid here — the
// consumer bounds the unfold by stopping early.
type SeqOf[A any] struct{}

// UnfoldErased implements Unfolder for lazy sequences.
func (SeqOf[A]) UnfoldErased(step StepFunc[A, Erased], seed Erased) iter.Seq[A] {
	return UnfoldSeq(step, seed)
}

// UnfoldSeq returns an iterator that runs the generation loop lazily.
// Each range over the sequence restarts generation from the original
// seed, so iterating twice yields the same elements (for a pure step).
func UnfoldSeq[A, B any](step StepFunc[A, B], seed B) iter.Seq[A] {
	return func(yield func(A) bool) {
		current := seed
		for {
			y, ok := step(current).Get()
			if !ok {
				return
			}
			if !yield(y.Value) {
				return
			}
			current = y.Seed
		}
	}
}
