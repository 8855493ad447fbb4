// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unfold_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/unfold"
)

func TestPureSucceeds(t *testing.T) {
	r := unfold.RunEff(unfold.Pure[string](42))
	v, ok := r.GetRight()
	if !ok || v != 42 {
		t.Fatalf("got (%d, %v), want (42, true)", v, ok)
	}
}

func TestFailFails(t *testing.T) {
	r := unfold.RunEff(unfold.Fail[string, int]("boom"))
	e, ok := r.GetLeft()
	if !ok || e != "boom" {
		t.Fatalf("got (%q, %v), want (\"boom\", true)", e, ok)
	}
}

func TestDeferRunsEachTime(t *testing.T) {
	calls := 0
	m := unfold.Defer(func() unfold.Either[string, int] {
		calls++
		return unfold.Right[string](calls)
	})
	if v, _ := m().GetRight(); v != 1 {
		t.Fatalf("first run = %d, want 1", v)
	}
	if v, _ := m().GetRight(); v != 2 {
		t.Fatalf("second run = %d, want 2", v)
	}
}

func TestAttempt(t *testing.T) {
	ok := unfold.Attempt(func() (int, error) { return 7, nil })
	if v, _ := unfold.RunEff(ok).GetRight(); v != 7 {
		t.Fatalf("got %d, want 7", v)
	}
	errBoom := errors.New("boom")
	bad := unfold.Attempt(func() (int, error) { return 0, errBoom })
	e, _ := unfold.RunEff(bad).GetLeft()
	if !errors.Is(e, errBoom) {
		t.Fatalf("got %v, want %v", e, errBoom)
	}
}

func TestMapEff(t *testing.T) {
	m := unfold.MapEff(unfold.Pure[string](21), func(x int) int { return x * 2 })
	if v, _ := unfold.RunEff(m).GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestMapEffPreservesFailure(t *testing.T) {
	m := unfold.MapEff(unfold.Fail[string, int]("boom"), func(x int) int { return x * 2 })
	if e, _ := unfold.RunEff(m).GetLeft(); e != "boom" {
		t.Fatalf("got %q, want %q", e, "boom")
	}
}

func TestBindEff(t *testing.T) {
	m := unfold.BindEff(unfold.Pure[string](20), func(x int) unfold.Eff[string, int] {
		return unfold.Pure[string](x + 22)
	})
	if v, _ := unfold.RunEff(m).GetRight(); v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestBindEffShortCircuits(t *testing.T) {
	called := false
	m := unfold.BindEff(unfold.Fail[string, int]("boom"), func(x int) unfold.Eff[string, int] {
		called = true
		return unfold.Pure[string](x)
	})
	if e, _ := unfold.RunEff(m).GetLeft(); e != "boom" {
		t.Fatalf("got %q, want %q", e, "boom")
	}
	if called {
		t.Fatal("continuation ran after failure")
	}
}

func TestThenEff(t *testing.T) {
	order := ""
	first := unfold.Defer(func() unfold.Either[string, int] {
		order += "a"
		return unfold.Right[string](1)
	})
	second := unfold.Defer(func() unfold.Either[string, string] {
		order += "b"
		return unfold.Right[string]("done")
	})
	if v, _ := unfold.RunEff(unfold.ThenEff(first, second)).GetRight(); v != "done" {
		t.Fatalf("got %q, want %q", v, "done")
	}
	if order != "ab" {
		t.Fatalf("order = %q, want %q", order, "ab")
	}
}

func TestThenEffShortCircuits(t *testing.T) {
	ran := false
	second := unfold.Defer(func() unfold.Either[string, int] {
		ran = true
		return unfold.Right[string](1)
	})
	m := unfold.ThenEff(unfold.Fail[string, int]("boom"), second)
	if e, _ := unfold.RunEff(m).GetLeft(); e != "boom" {
		t.Fatalf("got %q, want %q", e, "boom")
	}
	if ran {
		t.Fatal("second effect ran after failure")
	}
}

func TestEffIsDeferred(t *testing.T) {
	ran := false
	m := unfold.Defer(func() unfold.Either[string, int] {
		ran = true
		return unfold.Right[string](1)
	})
	composed := unfold.MapEff(m, func(x int) int { return x + 1 })
	if ran {
		t.Fatal("composition ran the effect")
	}
	_ = unfold.RunEff(composed)
	if !ran {
		t.Fatal("running the composition did not run the effect")
	}
}
