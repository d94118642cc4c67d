package rbez_test

import (
	"fmt"
	"math"

	"honnef.co/go/rbez"
)

func ExampleEvaluate() {
	c := rbez.Curve{Points: []rbez.Point{rbez.Pt(10, 10), rbez.Pt(20, 10), rbez.Pt(20, 20)}}
	pts, err := rbez.Evaluate(rbez.Linspace(0, 1, 5), c)
	if err != nil {
		panic(err)
	}
	fmt.Println(pts)
	// Output:
	// [(10, 10) (14.375, 10.625) (17.5, 12.5) (19.375, 15.625) (20, 20)]
}

func ExampleEvaluate_rational() {
	// A quarter of the unit circle.
	c := rbez.Curve{
		Points:  []rbez.Point{rbez.Pt(1, 0), rbez.Pt(1, 1), rbez.Pt(0, 1)},
		Weights: []float64{1, math.Sqrt2 / 2, 1},
	}
	pt, err := c.Eval(0.5)
	if err != nil {
		panic(err)
	}
	fmt.Printf("(%.6f, %.6f)\n", pt[0], pt[1])
	// Output:
	// (0.707107, 0.707107)
}

func ExampleSplit() {
	c := rbez.Curve{Points: []rbez.Point{
		rbez.Pt(0, 0), rbez.Pt(0, 1), rbez.Pt(1, 2), rbez.Pt(2, 1), rbez.Pt(2, 0),
	}}
	left, right, err := rbez.Split(rbez.Linspace(0, 1, 5), c, 2)
	if err != nil {
		panic(err)
	}
	fmt.Println(left.Points)
	fmt.Println(right.Points)
	// Output:
	// [(0, 0) (0, 0.5) (0.25, 1) (0.625, 1.25) (1, 1.25)]
	// [(1, 1.25) (1.375, 1.25) (1.75, 1) (2, 0.5) (2, 0)]
}

func ExampleElevate() {
	c := rbez.Curve{Points: []rbez.Point{rbez.Pt(0, 0), rbez.Pt(1, 1), rbez.Pt(2, 0)}}
	e, err := rbez.Elevate(c)
	if err != nil {
		panic(err)
	}
	fmt.Println(e.Points, e.Weights)

	r, err := rbez.Reduce(e)
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Points, r.Weights)
	// Output:
	// [(0, 0) (0.75, 0.75) (1.5, 0.5) (2, 0)] [1 1 1 1]
	// [(0, 0) (1, 1) (2, 0)] [1 1 1]
}
