package rbez

import (
	"fmt"
	"slices"
)

// Elevate returns a curve with one more control point than c. The curve must
// have at least three control points.
//
// The control points are lifted to homogeneous coordinates and every interior
// point of the result is blended from the two neighboring input points,
//
//	Q[k] = (k·P[k-1] + (m-k)·P[k]) / m
//
// where m is the number of output points. The end points don't change. The
// result always has weights. [Reduce] undoes Elevate exactly.
func Elevate(c Curve) (Curve, error) {
	if err := c.Validate(); err != nil {
		return Curve{}, reject("elevate", err)
	}
	if len(c.Points) < 3 {
		return Curve{}, reject("elevate", fmt.Errorf("%w: elevation needs at least 3 control points, got %d", ErrDegreeTooLow, len(c.Points)))
	}

	p := homogenize(c)
	m := len(p) + 1
	q := make([]Point, m)
	q[0] = p[0]
	q[m-1] = p[m-2]
	for k := 1; k < m-1; k++ {
		a := float64(k)
		b := float64(m - k)
		pt := make(Point, len(p[k]))
		for i := range pt {
			pt[i] = (a*p[k-1][i] + b*p[k][i]) / float64(m)
		}
		q[k] = pt
	}
	return dehomogenize(q), nil
}

// Reduce returns a curve with one control point less than c, approximating it.
// The curve must have at least four control points. The approximation is exact
// if c is the result of [Elevate].
//
// Two chains of control points are computed in homogeneous coordinates by
// inverting the blending of [Elevate], one from each end. They meet at a
// shared control point in the middle. If the two estimates of that point
// differ in any coordinate, including the weight, their midpoint is used.
//
// Reduce returns an error wrapping [ErrNonPositiveWeight] if the approximation
// would need a non-positive weight.
func Reduce(c Curve) (Curve, error) {
	if err := c.Validate(); err != nil {
		return Curve{}, reject("reduce", err)
	}
	if len(c.Points) < 4 {
		return Curve{}, reject("reduce", fmt.Errorf("%w: reduction needs at least 4 control points, got %d", ErrDegreeTooLow, len(c.Points)))
	}

	p := homogenize(c)
	m := len(p)
	h := m / 2
	dim := len(p[0])

	// L[k] = (1+c)·P[k] - c·L[k-1] with c = k/(m-k), computed as
	// (m·P[k] - k·L[k-1]) / (m-k).
	left := make([]Point, h)
	left[0] = p[0]
	for k := 1; k < h; k++ {
		pt := make(Point, dim)
		for i := range pt {
			pt[i] = (float64(m)*p[k][i] - float64(k)*left[k-1][i]) / float64(m-k)
		}
		left[k] = pt
	}

	// R[k-h] = c·P[k] + (1-c)·R[k-h+1] with c = m/k, computed as
	// (m·P[k] - (m-k)·R[k-h+1]) / k.
	right := make([]Point, m-h)
	right[len(right)-1] = p[m-1]
	for k := m - 2; k >= h; k-- {
		pt := make(Point, dim)
		for i := range pt {
			pt[i] = (float64(m)*p[k][i] - float64(m-k)*right[k-h+1][i]) / float64(k)
		}
		right[k-h] = pt
	}

	if shared := left[h-1]; !slices.Equal(shared, right[0]) {
		right[0] = shared.Midpoint(right[0])
	}

	q := append(left[:h-1:h-1], right...)
	for i, pt := range q {
		if w := pt[dim-1]; !(w > 0) {
			return Curve{}, reject("reduce", fmt.Errorf("%w: reduced control point %d has weight %g", ErrNonPositiveWeight, i, w))
		}
	}
	return dehomogenize(q), nil
}

// homogenize lifts the control points of c to homogeneous coordinates, with
// the weight as the last coordinate.
func homogenize(c Curve) []Point {
	out := make([]Point, len(c.Points))
	for i, pt := range c.Points {
		out[i] = pt.homogenize(c.Weight(i))
	}
	return out
}

// dehomogenize projects homogeneous points back to a curve. The last
// coordinates become the curve's weights.
func dehomogenize(pts []Point) Curve {
	out := Curve{
		Points:  make([]Point, len(pts)),
		Weights: make([]float64, len(pts)),
	}
	for i, pt := range pts {
		out.Points[i], out.Weights[i] = pt.dehomogenize()
	}
	return out
}
