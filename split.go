package rbez

import (
	"slices"
)

// Split splits the curve at the parameter ts[by] into two curves of the same
// degree. Left runs from the curve's start to the split point, right from the
// split point to the curve's end. Together they trace out exactly the original
// curve.
//
// The control points of both halves are read off the de Casteljau trace of
// ts[by]: the first entry of every level belongs to the left half, the last
// entry to the right half. Both halves always have weights; if c has none, they
// are all 1.
func Split(ts []float64, c Curve, by int) (left, right Curve, err error) {
	_, tr, err := EvaluateTrace(ts, c, by)
	if err != nil {
		return Curve{}, Curve{}, err
	}

	n := c.Degree()
	left = Curve{
		Points:  make([]Point, 0, n+1),
		Weights: make([]float64, 0, n+1),
	}
	right = Curve{
		Points:  make([]Point, 0, n+1),
		Weights: make([]float64, 0, n+1),
	}
	left.Points = append(left.Points, slices.Clone(c.Start()))
	left.Weights = append(left.Weights, c.Weight(0))
	for _, level := range tr.Levels() {
		first := level[0]
		last := level[len(level)-1]
		left.Points = append(left.Points, first.Point)
		left.Weights = append(left.Weights, first.Weight)
		right.Points = append(right.Points, slices.Clone(last.Point))
		right.Weights = append(right.Weights, last.Weight)
	}
	slices.Reverse(right.Points)
	slices.Reverse(right.Weights)
	right.Points = append(right.Points, slices.Clone(c.End()))
	right.Weights = append(right.Weights, c.Weight(n))

	if c.Weights == nil {
		for i := range left.Weights {
			left.Weights[i] = 1
			right.Weights[i] = 1
		}
	}
	return left, right, nil
}

// SplitAt splits the curve at the parameter t. See [Split].
func SplitAt(c Curve, t float64) (left, right Curve, err error) {
	return Split([]float64{t}, c, 0)
}
