package maybe_test

import (
	"fmt"
	"testing"

	. "github.com/npillmayer/pds/maybe"
)

func TestMaybeMatch(t *testing.T) {
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

func TestMaybeWithDefault(t *testing.T) {
	x := Just(7)
	if xx := x.WithDefault(100); xx != 7 {
		t.Logf("x = %d", xx)
		t.Error("expected Just(7) to have value 7, isn't")
	}
	y := Nothing[int]()
	if yy := y.WithDefault(100); yy != 100 {
		t.Logf("y = %d", yy)
		t.Error("expected Nothing to default to 100, isn't")
	}
}

func TestMaybeMap(t *testing.T) {
	x := Just(7).Map(func(n int) int {
		return n * 2
	})
	if xx := x.WithDefault(0); xx != 14 {
		t.Logf("x * 2 = %d", xx)
		t.Error("expected Just(7).Map(…) to return 14, didn't")
	}
	y := Map(func(n int) int {
		return n * 2
	}, Nothing[int]())
	if !IsNothing(y) {
		t.Error("expected Nothing.Map(…) to stay Nothing, didn't")
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
}

func TestMaybeString(t *testing.T) {
	if s := fmt.Sprint(Just("hello")); s != "Just(hello)" {
		t.Errorf("expected Just(hello), is %q", s)
	}
	if s := fmt.Sprint(Nothing[string]()); s != "Nothing" {
		t.Errorf("expected Nothing, is %q", s)
	}
}
