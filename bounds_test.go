package rbez

import (
	"math/rand/v2"
	"testing"
)

func TestBoundingBox(t *testing.T) {
	r := BoundingBox([]Point{Pt(1, 5), Pt(-2, 3), Pt(4, -1)})
	diff(t, Rect{Min: Pt(-2, -1), Max: Pt(4, 5)}, r)
	diff(t, Pt(1, 2), r.Center())
	diff(t, Pt(6, 6), r.Size())
	diff(t, Rect{}, BoundingBox(nil))

	u := r.Union(Rect{Min: Pt(0, 0), Max: Pt(10, 1)})
	diff(t, Rect{Min: Pt(-2, -1), Max: Pt(10, 5)}, u)
}

func TestCurveInsideBoundingBox(t *testing.T) {
	rng := rand.New(rand.NewPCG(23, 24))
	ts := Linspace(0, 1, 101)
	for n := 1; n <= 8; n++ {
		c := randomCurve(rng, n, 3)
		box := c.BoundingBox()
		pts, err := Evaluate(ts, c)
		if err != nil {
			t.Fatal(err)
		}
		for i, pt := range pts {
			if !box.Contains(pt, 1e-9) {
				t.Errorf("curve point %s at %g lies outside of %v", pt, ts[i], box)
			}
		}
	}
}
