package rbez

import "slices"

// Rect is an axis-aligned box in d-dimensional space, spanning Min to Max
// inclusive.
type Rect struct {
	Min Point
	Max Point
}

// BoundingBox returns the smallest box containing all of pts. It returns the
// zero Rect for no points.
//
// A rational Bézier curve with positive weights lies in the convex hull of its
// control points, so the bounding box of the control points contains the
// curve.
func BoundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{Min: slices.Clone(pts[0]), Max: slices.Clone(pts[0])}
	for _, pt := range pts[1:] {
		for i, x := range pt {
			r.Min[i] = min(r.Min[i], x)
			r.Max[i] = max(r.Max[i], x)
		}
	}
	return r
}

// BoundingBox returns the bounding box of the curve's control points.
func (c Curve) BoundingBox() Rect {
	return BoundingBox(c.Points)
}

// Center returns the center of the box.
func (r Rect) Center() Point {
	return r.Min.Midpoint(r.Max)
}

// Size returns the extent of the box along every axis.
func (r Rect) Size() Point {
	return r.Max.Sub(r.Min)
}

// Contains reports whether pt lies inside the box, allowing for an error of
// up to epsilon along every axis.
func (r Rect) Contains(pt Point, epsilon float64) bool {
	for i, x := range pt {
		if x < r.Min[i]-epsilon || x > r.Max[i]+epsilon {
			return false
		}
	}
	return true
}

// Union returns the smallest box containing both r and o.
func (r Rect) Union(o Rect) Rect {
	out := Rect{Min: slices.Clone(r.Min), Max: slices.Clone(r.Max)}
	for i := range out.Min {
		out.Min[i] = min(out.Min[i], o.Min[i])
		out.Max[i] = max(out.Max[i], o.Max[i])
	}
	return out
}
