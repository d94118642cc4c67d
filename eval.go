package rbez

import (
	"fmt"
)

// TraceEntry is one intermediate point of the de Casteljau recursion, together
// with its weight.
type TraceEntry struct {
	Point  Point
	Weight float64
}

// Trace records every intermediate point computed by the de Casteljau
// recursion for a single parameter, level by level. For a curve of degree n,
// the levels have n, n-1, …, 1 entries.
type Trace []TraceEntry

// Levels partitions the trace into its recursion levels. It panics if the
// length of the trace isn't a triangular number.
func (tr Trace) Levels() [][]TraceEntry {
	n := 0
	for n*(n+1)/2 < len(tr) {
		n++
	}
	if n*(n+1)/2 != len(tr) {
		panic(fmt.Sprintf("rbez: trace of length %d isn't triangular", len(tr)))
	}
	out := make([][]TraceEntry, 0, n)
	for size := n; size > 0; size-- {
		out = append(out, tr[:size:size])
		tr = tr[size:]
	}
	return out
}

// Evaluate evaluates the curve at every parameter in ts, which should lie in
// [0, 1]. It returns one point per parameter.
//
// The curve is evaluated with the rational form of de Casteljau's algorithm.
// All parameters are processed together, one recursion level at a time.
// Evaluation at 0 and 1 returns the first and last control points exactly.
func Evaluate(ts []float64, c Curve) ([]Point, error) {
	if err := c.Validate(); err != nil {
		return nil, reject("evaluate", err)
	}
	pts, _ := casteljau(ts, c, option[int]{})
	return pts, nil
}

// EvaluateTrace is like [Evaluate] but additionally returns the trace of the
// recursion for the parameter ts[by].
func EvaluateTrace(ts []float64, c Curve, by int) ([]Point, Trace, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, reject("evaluate", err)
	}
	if by < 0 || by >= len(ts) {
		return nil, nil, reject("evaluate", fmt.Errorf("%w: trace index %d with %d samples", ErrIndexOutOfRange, by, len(ts)))
	}
	pts, tr := casteljau(ts, c, some(by))
	return pts, tr, nil
}

// casteljau runs the rational de Casteljau recursion on a validated curve.
//
// The working buffers have fixed shapes: b is (T, n+1, d) and holds euclidean
// points, w is (T, n+1) and holds their weights. At every level, each point is
// blended with its successor and immediately divided by the blended weight.
// Dividing once at the end instead would not produce the same points.
func casteljau(ts []float64, c Curve, by option[int]) ([]Point, Trace) {
	m := len(c.Points)
	n := m - 1
	d := c.Dim()
	nt := len(ts)

	poly := Tensor{Shape: []int{m, d}, Data: make([]float64, 0, m*d)}
	for _, pt := range c.Points {
		poly.Data = append(poly.Data, pt...)
	}
	b := Outer(Ones(nt), poly).Data
	w := Outer(Ones(nt), Vector(c.weightsOrOnes()...)).Data

	var tr Trace
	if by.isSet {
		tr = make(Trace, 0, n*(n+1)/2)
	}
	for j := range n {
		for i := range n - j {
			for s, t := range ts {
				ws := w[s*m : (s+1)*m]
				bs := b[s*m*d : (s+1)*m*d]
				wi := (1-t)*ws[i] + t*ws[i+1]
				x := (1 - t) * ws[i] / wi
				y := t * ws[i+1] / wi
				cur := bs[i*d : (i+1)*d]
				next := bs[(i+1)*d : (i+2)*d]
				for k := range cur {
					cur[k] = x*cur[k] + y*next[k]
				}
				ws[i] = wi
			}
			if by.isSet {
				s := by.unwrap()
				off := (s*m + i) * d
				tr = append(tr, TraceEntry{
					Point:  Pt(b[off : off+d]...),
					Weight: w[s*m+i],
				})
			}
		}
	}

	out := make([]Point, nt)
	for s := range out {
		off := s * m * d
		out[s] = Pt(b[off : off+d]...)
	}
	return out, tr
}
