package rbez

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Distance(p0); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustCurve(t testing.TB, points []Point, weights []float64) Curve {
	t.Helper()
	c, err := NewCurve(points, weights)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

// randomCurve returns a curve with n control points of dimension d and
// weights in [0.5, 2).
func randomCurve(rng *rand.Rand, n, d int) Curve {
	c := Curve{
		Points:  make([]Point, n),
		Weights: make([]float64, n),
	}
	for i := range n {
		pt := make(Point, d)
		for j := range pt {
			pt[j] = rng.Float64()*20 - 10
		}
		c.Points[i] = pt
		c.Weights[i] = 0.5 + 1.5*rng.Float64()
	}
	return c
}
