// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// SliceOf is the Unfolder instance producing a slice.
// This is the reference array-like target: the only instance that does
// real iteration and allocation work.
type SliceOf[A any] struct{}

// UnfoldErased implements Unfolder for slices.
func (SliceOf[A]) UnfoldErased(step StepFunc[A, Erased], seed Erased) []A {
	return UnfoldSlice(step, seed)
}

// UnfoldSlice builds a slice by the direct generation loop: apply step,
// append the yielded element to a growable buffer, repeat until None.
// Returns nil when the first step call already terminates.
//
// Does not return with an always-Some step; use [UnfoldSeq] for
// unbounded generation.
func UnfoldSlice[A, B any](step StepFunc[A, B], seed B) []A {
	var out []A
	current := seed
	for {
		y, ok := step(current).Get()
		if !ok {
			return out
		}
		out = append(out, y.Value)
		current = y.Seed
	}
}
