// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold

// SingleOf is the Unfolder instance producing an Option.
// A target statically bounded at one element degenerates: the step is
// evaluated at most once and a second element is never requested, so
// an always-Some step is safe against this instance.
type SingleOf[A any] struct{}

// UnfoldErased implements Unfolder for single-element targets.
func (SingleOf[A]) UnfoldErased(step StepFunc[A, Erased], seed Erased) Option[A] {
	return UnfoldOption(step, seed)
}

// UnfoldOption builds an Option from the first step result: None if the
// step terminates immediately, Some of the first yielded element
// otherwise. The yielded seed is discarded.
func UnfoldOption[A, B any](step StepFunc[A, B], seed B) Option[A] {
	y, ok := step(seed).Get()
	if !ok {
		return None[A]()
	}
	return Some(y.Value)
}
