package pds

import "testing"

func TestMinMax(t *testing.T) {
	if m := Min(3, 7); m != 3 {
		t.Errorf("expected Min(3, 7) to be 3, is %d", m)
	}
	if m := Max(3, 7); m != 7 {
		t.Errorf("expected Max(3, 7) to be 7, is %d", m)
	}
	if m := Min("b", "a"); m != "a" {
		t.Errorf("expected Min(b, a) to be a, is %q", m)
	}
}
