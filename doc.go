// Package rbez implements the numerical core of a rational Bézier curve
// editor: evaluation, splitting, and degree elevation and reduction of curves
// of arbitrary degree and dimension.
//
// # Curves
//
// A [Curve] is a control polygon of n+1 points together with one positive
// weight per point. Curves without weights are polynomial Bézier curves; they
// behave exactly like curves whose weights are all 1. Points are slices of
// coordinates, so curves may live in any dimension, although most editors will
// use two.
//
// Curves are values. No function in this package modifies its arguments, and
// all results are freshly allocated. The editing methods of Curve, such as
// [Curve.Insert] and [Curve.Remove], return new curves and keep control points
// and weights in step.
//
// # Evaluation
//
// [Evaluate] evaluates a curve at a batch of parameters using the rational
// form of de Casteljau's algorithm. All parameters advance through the
// recursion together, over fixed-size buffers, which costs O(T·n²) for T
// parameters and a curve of degree n. [EvaluateTrace] additionally records the
// recursion for one parameter, and [EvaluateConcurrent] spreads large batches
// over multiple goroutines.
//
// # Subdivision and degree changes
//
// [Split] and [SplitAt] cut a curve in two, using the intermediate points of
// the recursion as the control points of the halves. [Elevate] adds a control
// point and [Reduce] removes one; Reduce exactly undoes Elevate.
//
// # Errors
//
// Invalid inputs are rejected before any computation takes place. The errors
// wrap one of [ErrInvalidShape], [ErrDegreeTooLow], [ErrNonPositiveWeight] and
// [ErrIndexOutOfRange].
//
// # Literature
//
//   - [A Primer on Bézier Curves]
//   - [The NURBS Book] by Piegl and Tiller, chapter 1.5 (rational Bézier curves)
//     and chapter 5.5 (degree elevation)
//
// [A Primer on Bézier Curves]: https://pomax.github.io/bezierinfo/
// [The NURBS Book]: https://doi.org/10.1007/978-3-642-59223-2
package rbez
