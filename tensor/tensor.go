// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"math/rand/v2"

	"github.com/born-ml/tensorized/internal/tensor"
)

// Shape represents the dimensions of a tensor.
// Example: Shape{2, 3, 4} represents a 3D tensor with dimensions 2×3×4.
type Shape = tensor.Shape

// Tensor is a dense float64 tensor bound to a backend.
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(tensor.Shape{3, 4}, backend)
//	fmt.Println(t.Shape()) // [3 4]
type Tensor = tensor.Tensor

// Selection describes how Gather treats one axis.
type Selection = tensor.Selection

// Label names one index of an Equation.
type Label = tensor.Label

// Equation is an einsum-style labelled contraction.
type Equation = tensor.Equation

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return tensor.New(raw, b)
}

// FromSlice creates a tensor from a copy of data.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	return tensor.FromSlice(data, shape, b)
}

// Zeros creates a tensor filled with zeros.
func Zeros(shape Shape, b Backend) *Tensor {
	return tensor.Zeros(shape, b)
}

// Ones creates a tensor filled with ones.
func Ones(shape Shape, b Backend) *Tensor {
	return tensor.Ones(shape, b)
}

// Full creates a tensor filled with value.
func Full(shape Shape, value float64, b Backend) *Tensor {
	return tensor.Full(shape, value, b)
}

// Scalar creates a 0-D tensor.
func Scalar(value float64, b Backend) *Tensor {
	return tensor.Scalar(value, b)
}

// Randn creates a tensor with entries drawn from N(0, std²).
func Randn(shape Shape, rng *rand.Rand, std float64, b Backend) *Tensor {
	return tensor.Randn(shape, rng, std, b)
}

// Arange creates a tensor holding 0, 1, 2, ... in row-major order.
func Arange(shape Shape, b Backend) *Tensor {
	return tensor.Arange(shape, b)
}

// All keeps an axis unchanged.
func All() Selection { return tensor.All() }

// At fixes an axis to coordinate i and removes it.
func At(i int) Selection { return tensor.At(i) }

// Pick replaces an axis by the listed coordinates.
func Pick(indices ...int) Selection { return tensor.Pick(indices...) }

// Einsum evaluates eq over the operands.
//
// Example:
//
//	eq := tensor.Equation{
//	    Inputs: [][]tensor.Label{{0, 1}, {1, 2}},
//	    Output: []tensor.Label{0, 2},
//	}
//	c := tensor.Einsum(eq, a, b) // "ab,bc->ac"
func Einsum(eq Equation, operands ...*Tensor) *Tensor {
	return tensor.Einsum(eq, operands...)
}
