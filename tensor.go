package rbez

import (
	"fmt"
	"slices"
)

// Prod returns the product of dims. The product of no dimensions is 1.
func Prod(dims []int) int {
	p := 1
	for _, d := range dims {
		p *= d
	}
	return p
}

// Tensor is a dense, row-major array of float64 with an explicit shape. A
// scalar has the empty shape.
//
// Nothing in this package broadcasts implicitly. Every operation documents the
// shape of its result in terms of the shapes of its operands.
type Tensor struct {
	Shape []int
	Data  []float64
}

// Scalar returns the tensor of shape () holding v.
func Scalar(v float64) Tensor {
	return Tensor{Shape: []int{}, Data: []float64{v}}
}

// Vector returns a tensor of shape (len(vs),) holding a copy of vs.
func Vector(vs ...float64) Tensor {
	return Tensor{Shape: []int{len(vs)}, Data: slices.Clone(vs)}
}

// Ones returns a tensor of the given shape with all elements set to 1.
func Ones(shape ...int) Tensor {
	data := make([]float64, Prod(shape))
	for i := range data {
		data[i] = 1
	}
	return Tensor{Shape: slices.Clone(shape), Data: data}
}

// NewTensor returns a tensor of the given shape holding a copy of data.
func NewTensor(shape []int, data []float64) (Tensor, error) {
	if n := Prod(shape); n != len(data) {
		return Tensor{}, fmt.Errorf("%w: shape %v needs %d elements, got %d", ErrInvalidShape, shape, n, len(data))
	}
	return Tensor{Shape: slices.Clone(shape), Data: slices.Clone(data)}, nil
}

// Len returns the number of elements in the tensor.
func (a Tensor) Len() int {
	return Prod(a.Shape)
}

// Reshape returns a tensor sharing a's data with a new shape. The number of
// elements must not change.
func (a Tensor) Reshape(shape ...int) (Tensor, error) {
	if Prod(shape) != a.Len() {
		return Tensor{}, fmt.Errorf("%w: cannot reshape %v to %v", ErrInvalidShape, a.Shape, shape)
	}
	return Tensor{Shape: slices.Clone(shape), Data: a.Data}, nil
}

// At returns the element at the given index. It panics if the number of
// indices doesn't match the tensor's rank or if an index is out of range.
func (a Tensor) At(idx ...int) float64 {
	if len(idx) != len(a.Shape) {
		panic(fmt.Sprintf("rbez: %d indices for tensor of rank %d", len(idx), len(a.Shape)))
	}
	off := 0
	for i, x := range idx {
		if x < 0 || x >= a.Shape[i] {
			panic(fmt.Sprintf("rbez: index %d out of range for dimension %d of size %d", x, i, a.Shape[i]))
		}
		off = off*a.Shape[i] + x
	}
	return a.Data[off]
}

// Outer computes the generalized outer product of a and b.
//
// Both tensors are flattened, to M and N elements respectively, and the M×N
// matrix product of the M×1 and 1×N reshapes is computed. The result has
// shape(a) ++ shape(b), the concatenation of the two shapes. In particular,
// the outer product of a scalar and a vector of length N is a vector of length
// N, scaled elementwise.
func Outer(a, b Tensor) Tensor {
	m := a.Len()
	n := b.Len()
	shape := make([]int, 0, len(a.Shape)+len(b.Shape))
	shape = append(shape, a.Shape...)
	shape = append(shape, b.Shape...)
	out := make([]float64, m*n)
	for i, x := range a.Data[:m] {
		row := out[i*n : (i+1)*n]
		for j, y := range b.Data[:n] {
			row[j] = x * y
		}
	}
	return Tensor{Shape: shape, Data: out}
}
