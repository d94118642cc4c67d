package rbez

import (
	"math"
	"testing"
)

func TestPointArithmetic(t *testing.T) {
	diff(t, Pt(-10, 0), Pt(0, 0).Add(Pt(-10, 0)))
	diff(t, Pt(1, 2, 3), Pt(2, 4, 6).Mul(0.5))
	diff(t, Pt(1, 1), Pt(3, 4).Sub(Pt(2, 3)))
	diff(t, Pt(2, 3), Pt(0, 2).Lerp(Pt(4, 4), 0.5))
	diff(t, Pt(2, 3), Pt(0, 2).Midpoint(Pt(4, 4)))
}

func TestPointDistance(t *testing.T) {
	p1 := Pt(0, 10)
	p2 := Pt(0, 5)
	if d := p1.Distance(p2); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}

	p3 := Pt(-11, 1, 2)
	p4 := Pt(-7, -2, 2)
	if d := p3.Distance(p4); d != 5 {
		t.Errorf("got distance %v, want 5", d)
	}
}

func TestPointString(t *testing.T) {
	if s := Pt(1, 2.5, -3).String(); s != "(1, 2.5, -3)" {
		t.Errorf("got %q", s)
	}
}

func TestPointHomogeneous(t *testing.T) {
	h := Pt(1, 2).homogenize(4)
	diff(t, Pt(4, 8, 4), h)
	pt, w := h.dehomogenize()
	diff(t, Pt(1, 2), pt)
	if w != 4 {
		t.Errorf("got weight %g, want 4", w)
	}
}

func TestPointIsInfNaN(t *testing.T) {
	if Pt(0, 0).IsInf() || Pt(0, 0).IsNaN() {
		t.Error("finite point reported as infinite or NaN")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
	if !Pt(math.NaN(), 0).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
}
