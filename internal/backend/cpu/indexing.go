package cpu

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/parallel"
	"github.com/born-ml/tensorized/internal/tensor"
)

// Gather applies one selection per axis in a single pass: All keeps the
// axis, At fixes it to one coordinate (dropping the axis), Pick replaces it
// by an explicit coordinate list. Picks on different axes are independent
// (outer indexing), unlike NumPy's broadcast advanced indexing.
//
// Example:
//
//	input: [3, 4, 5]
//	sel:   [All, Pick(3, 0), At(2)]
//	output: [3, 2] where output[i, j] = input[i, pick[j], 2]
func (cpu *CPUBackend) Gather(x *tensor.RawTensor, sel []tensor.Selection) *tensor.RawTensor {
	shape := x.Shape()
	ndim := len(shape)
	if len(sel) != ndim {
		panic(fmt.Sprintf("gather: %d selections for %dD tensor", len(sel), ndim))
	}

	strides := x.Strides()
	base := 0

	// Surviving axes: their output size, source stride and optional pick list.
	outShape := make(tensor.Shape, 0, ndim)
	outStrides := make([]int, 0, ndim)
	picks := make([][]int, 0, ndim)

	for axis, s := range sel {
		switch {
		case s.Drops():
			c := s.Coordinate()
			if c < 0 || c >= shape[axis] {
				panic(fmt.Sprintf("gather: index %d out of bounds [0, %d) at axis %d", c, shape[axis], axis))
			}
			base += c * strides[axis]
		case s.IsAll():
			outShape = append(outShape, shape[axis])
			outStrides = append(outStrides, strides[axis])
			picks = append(picks, nil)
		default:
			p := s.Picks()
			if len(p) == 0 {
				panic(fmt.Sprintf("gather: empty pick list at axis %d", axis))
			}
			for i, c := range p {
				if c < 0 || c >= shape[axis] {
					panic(fmt.Sprintf("gather: index %d out of bounds [0, %d) at axis %d, position %d",
						c, shape[axis], axis, i))
				}
			}
			outShape = append(outShape, len(p))
			outStrides = append(outStrides, strides[axis])
			picks = append(picks, p)
		}
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("gather: failed to create result tensor: %v", err))
	}

	dst, src := result.Data(), x.Data()
	parallel.ForChunks(len(dst), func(start, end int) {
		coords := make([]int, len(outShape))
		for i := start; i < end; i++ {
			outShape.UnravelInto(i, coords)
			offset := base
			for d, c := range coords {
				if picks[d] != nil {
					c = picks[d][c]
				}
				offset += c * outStrides[d]
			}
			dst[i] = src[offset]
		}
	}, cpu.cfg)

	return result
}
