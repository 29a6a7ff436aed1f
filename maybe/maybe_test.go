package maybe_test

import (
	"testing"

	. "github.com/npillmayer/uistyle/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeZeroValueIsNothing(t *testing.T) {
	var m Maybe[string]
	if m.IsJust() {
		t.Error("expected zero value of Maybe to be Nothing, isn't")
	}
	if _, ok := m.Get(); ok {
		t.Error("expected Get() on zero value to report absence, didn't")
	}
}

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	xx := x.WithDefault(100)
	if xx != 7 {
		t.Logf("y = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}

	y := Nothing[int]()
	yy := y.WithDefault(100)
	if yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7)
	xx := x.Map(func(n int) int {
		return n * 2
	})
	if v, _ := xx.Get(); v != 14 {
		t.Logf("x * 2 = %d", v)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}

	y := Nothing[int]()
	yy := y.Map(func(n int) int {
		return n * 2
	})
	var w int
	switch m := yy.Match(); m {
	case m.Just(&w):
	case m.Nothing():
		w = 99
	}
	if w != 99 {
		t.Logf("nothing * 2 = %d", w)
		t.Error("expected Nothing.Map(…) to return 99, didn't")
	}
}

func TestMaybeAndThen(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		if n > 0 {
			return Just(true)
		}
		return Nothing[bool]()
	}

	gt := AndThen(gt0, Just(7))
	var isGreater bool
	switch m := gt.Match(); m {
	case m.Just(&isGreater):
		t.Logf("ok: 7 > 0")
	case m.Nothing():
		t.Error("expected Just(7) |> andThen(gt0) to be true, isn't")
	}
	if AndThen(gt0, Nothing[int]()).IsJust() {
		t.Error("expected Nothing |> andThen(gt0) to be Nothing, isn't")
	}
}

func TestMaybeMap2AndOr(t *testing.T) {
	add := func(a, b int) int { return a + b }
	if v := Map2(add, Just(3), Just(4)).WithDefault(0); v != 7 {
		t.Errorf("expected Map2(+, 3, 4) to be 7, is %d", v)
	}
	if Map2(add, Just(3), Nothing[int]()).IsJust() {
		t.Error("expected Map2 with a Nothing argument to be Nothing, isn't")
	}
	if v := Nothing[int]().Or(Just(5)).WithDefault(0); v != 5 {
		t.Errorf("expected Nothing.Or(Just 5) to be 5, is %d", v)
	}
	if v := Just(1).Or(Just(5)).WithDefault(0); v != 1 {
		t.Errorf("expected Just(1).Or(Just 5) to be 1, is %d", v)
	}
}
