package cpu

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/tensor"
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// Tensordot contracts the last axes dimensions of a with the first axes
// dimensions of b, like numpy.tensordot(a, b, axes).
//
// Both operands are contiguous row-major, so the contraction is a single
// matrix product [M, K] @ [K, N] computed by gonum BLAS.
//
// Example:
//
//	a: [1, 2, 4, 3], b: [3, 5, 1], axes: 1
//	output: [1, 2, 4, 5, 1]
func (cpu *CPUBackend) Tensordot(a, b *tensor.RawTensor, axes int) *tensor.RawTensor {
	aShape, bShape := a.Shape(), b.Shape()
	if axes < 0 || axes > len(aShape) || axes > len(bShape) {
		panic(fmt.Sprintf("tensordot: cannot contract %d axes of %v and %v", axes, aShape, bShape))
	}

	split := len(aShape) - axes
	for i := 0; i < axes; i++ {
		if aShape[split+i] != bShape[i] {
			panic(fmt.Sprintf("tensordot: contracted dimension mismatch %v vs %v", aShape, bShape))
		}
	}

	m := aShape[:split].NumElements()
	k := aShape[split:].NumElements()
	n := bShape[axes:].NumElements()

	outShape := make(tensor.Shape, 0, split+len(bShape)-axes)
	outShape = append(outShape, aShape[:split]...)
	outShape = append(outShape, bShape[axes:]...)

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("tensordot: failed to create result tensor: %v", err))
	}

	blas64.Gemm(blas.NoTrans, blas.NoTrans, 1,
		blas64.General{Rows: m, Cols: k, Stride: k, Data: a.Data()},
		blas64.General{Rows: k, Cols: n, Stride: n, Data: b.Data()},
		0,
		blas64.General{Rows: m, Cols: n, Stride: n, Data: result.Data()},
	)

	return result
}
