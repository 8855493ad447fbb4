// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold_test

import (
	"testing"

	"code.hybscloud.com/unfold"
)

func TestUnfoldAllocationsEmpty(t *testing.T) {
	step := stop[int, int]
	allocs := testing.AllocsPerRun(100, func() {
		_ = unfold.UnfoldSlice(step, 0)
	})
	if allocs > 0 {
		t.Errorf("UnfoldSlice(stop) allocs = %v; want 0", allocs)
	}
}

func TestUnfoldOptionAllocations(t *testing.T) {
	allocs := testing.AllocsPerRun(100, func() {
		_ = unfold.UnfoldOption(countdown, 5)
	})
	if allocs > 0 {
		t.Errorf("UnfoldOption allocs = %v; want 0", allocs)
	}
}
