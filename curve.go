package rbez

import (
	"fmt"
	"math"
	"slices"
)

// Curve is a rational Bézier curve of degree len(Points)-1.
//
// Weights holds one weight per control point. A nil Weights describes a
// polynomial (non-rational) curve, which is the same as all weights being 1.
// Points and Weights are created, grown and shrunk together; the methods of
// Curve maintain this and never modify the receiver.
type Curve struct {
	Points  []Point
	Weights []float64
}

// NewCurve returns a curve holding copies of points and weights. weights may
// be nil.
func NewCurve(points []Point, weights []float64) (Curve, error) {
	c := Curve{
		Points:  clonePoints(points),
		Weights: slices.Clone(weights),
	}
	if err := c.Validate(); err != nil {
		return Curve{}, err
	}
	return c, nil
}

// Validate checks that the curve has at least one control point, that all
// control points have the same, non-zero dimension, and that there is exactly
// one positive, finite weight per control point, if weights are present.
func (c Curve) Validate() error {
	if len(c.Points) == 0 {
		return fmt.Errorf("%w: curve has no control points", ErrInvalidShape)
	}
	d := len(c.Points[0])
	if d == 0 {
		return fmt.Errorf("%w: control points have no coordinates", ErrInvalidShape)
	}
	for i, pt := range c.Points[1:] {
		if len(pt) != d {
			return fmt.Errorf("%w: control point %d has dimension %d, want %d", ErrInvalidShape, i+1, len(pt), d)
		}
	}
	if c.Weights == nil {
		return nil
	}
	if len(c.Weights) != len(c.Points) {
		return fmt.Errorf("%w: %d weights for %d control points", ErrInvalidShape, len(c.Weights), len(c.Points))
	}
	for i, w := range c.Weights {
		// Also rejects NaN.
		if !(w > 0) || math.IsInf(w, 1) {
			return fmt.Errorf("%w: weight %d is %g", ErrNonPositiveWeight, i, w)
		}
	}
	return nil
}

// Len returns the number of control points.
func (c Curve) Len() int {
	return len(c.Points)
}

// Degree returns the degree of the curve, which is one less than the number of
// control points.
func (c Curve) Degree() int {
	return len(c.Points) - 1
}

// Dim returns the dimension of the curve's control points.
func (c Curve) Dim() int {
	if len(c.Points) == 0 {
		return 0
	}
	return len(c.Points[0])
}

// Weight returns the weight of the i-th control point.
func (c Curve) Weight(i int) float64 {
	if c.Weights == nil {
		return 1
	}
	return c.Weights[i]
}

// IsRational reports whether the curve's weights differ from each other.
// Curves whose weights are all equal describe polynomial curves.
func (c Curve) IsRational() bool {
	for _, w := range c.Weights {
		if w != c.Weights[0] {
			return true
		}
	}
	return false
}

// Start returns the first control point.
func (c Curve) Start() Point {
	return c.Points[0]
}

// End returns the last control point.
func (c Curve) End() Point {
	return c.Points[len(c.Points)-1]
}

// Clone returns a deep copy of the curve.
func (c Curve) Clone() Curve {
	return Curve{
		Points:  clonePoints(c.Points),
		Weights: slices.Clone(c.Weights),
	}
}

// Reverse returns the curve traversed from end to start. The shape of the
// curve doesn't change.
func (c Curve) Reverse() Curve {
	out := c.Clone()
	slices.Reverse(out.Points)
	slices.Reverse(out.Weights)
	return out
}

// Append returns a curve with pt appended as the new end point, with weight w.
func (c Curve) Append(pt Point, w float64) Curve {
	return c.Insert(len(c.Points), pt, w)
}

// Insert returns a curve with pt inserted as the i-th control point, with
// weight w. It panics if i is out of range.
func (c Curve) Insert(i int, pt Point, w float64) Curve {
	out := Curve{
		Points: slices.Insert(clonePoints(c.Points), i, slices.Clone(pt)),
	}
	if c.Weights != nil || w != 1 {
		out.Weights = slices.Insert(c.weightsOrOnes(), i, w)
	}
	return out
}

// Remove returns a curve without the i-th control point and its weight. It
// panics if i is out of range.
func (c Curve) Remove(i int) Curve {
	out := c.Clone()
	out.Points = slices.Delete(out.Points, i, i+1)
	if out.Weights != nil {
		out.Weights = slices.Delete(out.Weights, i, i+1)
	}
	return out
}

// SetPoint returns a curve whose i-th control point is replaced by pt.
func (c Curve) SetPoint(i int, pt Point) Curve {
	out := c.Clone()
	out.Points[i] = slices.Clone(pt)
	return out
}

// SetWeight returns a curve whose i-th weight is replaced by w.
func (c Curve) SetWeight(i int, w float64) Curve {
	out := Curve{
		Points:  clonePoints(c.Points),
		Weights: c.weightsOrOnes(),
	}
	out.Weights[i] = w
	return out
}

// Translate returns the curve moved by v. Rational Bézier curves are
// invariant under affine maps, so translating the control points translates
// the curve.
func (c Curve) Translate(v Point) Curve {
	out := c.Clone()
	for i, pt := range out.Points {
		out.Points[i] = pt.Add(v)
	}
	return out
}

// Transform returns the curve with aff applied to its control points. The
// curve must be two-dimensional.
func (c Curve) Transform(aff Affine) Curve {
	out := c.Clone()
	for i, pt := range out.Points {
		out.Points[i] = pt.Transform(aff)
	}
	return out
}

// Eval evaluates the curve at t ∈ [0, 1].
func (c Curve) Eval(t float64) (Point, error) {
	pts, err := Evaluate([]float64{t}, c)
	if err != nil {
		return nil, err
	}
	return pts[0], nil
}

// Sample evaluates the curve at n evenly spaced parameters covering [0, 1],
// producing a polyline suitable for display.
func (c Curve) Sample(n int) ([]Point, error) {
	return Evaluate(Linspace(0, 1, n), c)
}

// IsNaN reports whether any control point or weight is NaN.
func (c Curve) IsNaN() bool {
	return slices.ContainsFunc(c.Points, Point.IsNaN) || slices.ContainsFunc(c.Weights, math.IsNaN)
}

func (c Curve) weightsOrOnes() []float64 {
	if c.Weights != nil {
		return slices.Clone(c.Weights)
	}
	w := make([]float64, len(c.Points))
	for i := range w {
		w[i] = 1
	}
	return w
}

// Linspace returns n evenly spaced samples from start to stop, inclusive. The
// last sample is exactly stop.
func Linspace(start, stop float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{start}
	}
	out := make([]float64, n)
	step := (stop - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	out[n-1] = stop
	return out
}

func clonePoints(pts []Point) []Point {
	if pts == nil {
		return nil
	}
	out := make([]Point, len(pts))
	for i, pt := range pts {
		out[i] = slices.Clone(pt)
	}
	return out
}
