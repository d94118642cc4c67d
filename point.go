package rbez

import (
	"fmt"
	"math"
	"slices"
	"strings"
)

// Point is a point in d-dimensional space. Most curves are two-dimensional,
// but nothing in this package depends on that except [Affine].
//
// Methods on Point never modify the receiver or their arguments.
type Point []float64

// Pt returns the point with the given coordinates.
func Pt(coords ...float64) Point {
	return Point(slices.Clone(coords))
}

// Dim returns the number of coordinates of the point.
func (pt Point) Dim() int {
	return len(pt)
}

func (pt Point) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, x := range pt {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(')')
	return sb.String()
}

// Add returns pt+o.
func (pt Point) Add(o Point) Point {
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = pt[i] + o[i]
	}
	return out
}

// Sub returns pt−o.
func (pt Point) Sub(o Point) Point {
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = pt[i] - o[i]
	}
	return out
}

// Mul scales all coordinates by f.
func (pt Point) Mul(f float64) Point {
	out := make(Point, len(pt))
	for i, x := range pt {
		out[i] = x * f
	}
	return out
}

// Lerp linearly interpolates between two points.
func (pt Point) Lerp(o Point, t float64) Point {
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = pt[i] + t*(o[i]-pt[i])
	}
	return out
}

// Midpoint returns the midpoint of two points.
func (pt Point) Midpoint(o Point) Point {
	out := make(Point, len(pt))
	for i := range pt {
		out[i] = 0.5 * (pt[i] + o[i])
	}
	return out
}

// Distance returns the euclidean distance between two points.
func (pt Point) Distance(o Point) float64 {
	return math.Sqrt(pt.DistanceSquared(o))
}

// DistanceSquared returns the squared euclidean distance between two points.
func (pt Point) DistanceSquared(o Point) float64 {
	var d float64
	for i := range pt {
		x := pt[i] - o[i]
		d += x * x
	}
	return d
}

// IsInf reports whether at least one coordinate is infinite.
func (pt Point) IsInf() bool {
	return slices.ContainsFunc(pt, func(x float64) bool { return math.IsInf(x, 0) })
}

// IsNaN reports whether at least one coordinate is NaN.
func (pt Point) IsNaN() bool {
	return slices.ContainsFunc(pt, math.IsNaN)
}

// homogenize returns (w·pt, w).
func (pt Point) homogenize(w float64) Point {
	out := make(Point, len(pt)+1)
	for i, x := range pt {
		out[i] = x * w
	}
	out[len(pt)] = w
	return out
}

// dehomogenize is the inverse of homogenize. It returns the euclidean point
// and its weight.
func (pt Point) dehomogenize() (Point, float64) {
	d := len(pt) - 1
	w := pt[d]
	out := make(Point, d)
	for i, x := range pt[:d] {
		out[i] = x / w
	}
	return out, w
}
