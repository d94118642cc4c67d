package rbez

import (
	"cmp"
	"slices"
)

// ConvexHull returns the convex hull of two-dimensional points as a closed
// polygon: the vertices in counter-clockwise order (in a y-up space), with the
// first vertex repeated at the end. Points on the hull's edges are not
// vertices. Fewer than three points are returned as they are.
//
// ConvexHull panics if a point isn't two-dimensional.
func ConvexHull(pts []Point) []Point {
	if len(pts) < 3 {
		return clonePoints(pts)
	}
	sorted := clonePoints(pts)
	for _, pt := range sorted {
		pt.splat()
	}
	slices.SortFunc(sorted, func(a, b Point) int {
		if c := cmp.Compare(a[0], b[0]); c != 0 {
			return c
		}
		return cmp.Compare(a[1], b[1])
	})

	// Andrew's monotone chain: the lower hull left to right, then the upper
	// hull right to left, ending on the first vertex.
	hull := make([]Point, 0, 2*len(sorted))
	for _, pt := range sorted {
		for len(hull) >= 2 && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	lower := len(hull) + 1
	for i := len(sorted) - 2; i >= 0; i-- {
		pt := sorted[i]
		for len(hull) >= lower && cross(hull[len(hull)-2], hull[len(hull)-1], pt) <= 0 {
			hull = hull[:len(hull)-1]
		}
		hull = append(hull, pt)
	}
	return clonePoints(hull)
}

// ConvexHull returns the convex hull of the curve's control points. See
// [ConvexHull].
func (c Curve) ConvexHull() []Point {
	return ConvexHull(c.Points)
}

// cross returns the z component of (a-o) × (b-o). It is positive if o, a, b
// turn counter-clockwise.
func cross(o, a, b Point) float64 {
	return (a[0]-o[0])*(b[1]-o[1]) - (a[1]-o[1])*(b[0]-o[0])
}
