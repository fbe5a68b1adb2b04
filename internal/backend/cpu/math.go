package cpu

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Mul performs element-wise multiplication of two tensors of the same shape.
func (cpu *CPUBackend) Mul(a, b *tensor.RawTensor) *tensor.RawTensor {
	if !a.Shape().Equal(b.Shape()) {
		panic(fmt.Sprintf("mul: shape mismatch %v vs %v", a.Shape(), b.Shape()))
	}

	result, err := tensor.NewRaw(a.Shape())
	if err != nil {
		panic(fmt.Sprintf("mul: failed to create result tensor: %v", err))
	}

	floats.MulTo(result.Data(), a.Data(), b.Data())
	return result
}

// Sum computes the total sum of all elements, returning a 0-D tensor.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{})
	if err != nil {
		panic(fmt.Sprintf("sum: failed to create result tensor: %v", err))
	}

	result.Data()[0] = floats.Sum(x.Data())
	return result
}
