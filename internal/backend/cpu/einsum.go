package cpu

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/parallel"
	"github.com/born-ml/tensorized/internal/tensor"
)

// Einsum evaluates an n-ary labelled contraction.
//
// Every output element is the sum, over all values of the contracted labels,
// of the product of the operands' entries. Labels shared between operands and
// the output are aligned (batched); a label repeated within one operand takes
// that operand's diagonal.
//
// Example:
//
//	eq:     "adb,bdc->adc"
//	inputs: [1, 4, 3], [3, 4, 1]
//	output: [1, 4, 1]
func (cpu *CPUBackend) Einsum(eq tensor.Equation, operands ...*tensor.RawTensor) *tensor.RawTensor {
	shapes := make([]tensor.Shape, len(operands))
	for i, op := range operands {
		shapes[i] = op.Shape()
	}

	sizes, err := eq.Sizes(shapes...)
	if err != nil {
		panic(err.Error())
	}

	outShape := make(tensor.Shape, len(eq.Output))
	for i, l := range eq.Output {
		outShape[i] = sizes[l]
	}

	contracted := eq.Contracted()
	conShape := make(tensor.Shape, len(contracted))
	for i, l := range contracted {
		conShape[i] = sizes[l]
	}

	// Per operand, the memory step taken when a label advances by one.
	// Repeated labels accumulate, which walks the diagonal.
	outSteps := make([][]int, len(operands))
	conSteps := make([][]int, len(operands))
	for i, op := range operands {
		steps := make(map[tensor.Label]int)
		for axis, l := range eq.Inputs[i] {
			steps[l] += op.Strides()[axis]
		}
		outSteps[i] = make([]int, len(eq.Output))
		for d, l := range eq.Output {
			outSteps[i][d] = steps[l]
		}
		conSteps[i] = make([]int, len(contracted))
		for d, l := range contracted {
			conSteps[i][d] = steps[l]
		}
	}

	result, err := tensor.NewRaw(outShape)
	if err != nil {
		panic(fmt.Sprintf("einsum: failed to create result tensor: %v", err))
	}

	data := make([][]float64, len(operands))
	for i, op := range operands {
		data[i] = op.Data()
	}

	conTotal := conShape.NumElements()
	dst := result.Data()

	parallel.ForChunks(len(dst), func(start, end int) {
		coords := make([]int, len(outShape))
		conCoords := make([]int, len(conShape))
		offsets := make([]int, len(operands))

		for o := start; o < end; o++ {
			outShape.UnravelInto(o, coords)
			for i := range operands {
				off := 0
				for d, c := range coords {
					off += c * outSteps[i][d]
				}
				offsets[i] = off
			}

			for d := range conCoords {
				conCoords[d] = 0
			}

			var sum float64
			for n := 0; n < conTotal; n++ {
				prod := 1.0
				for i := range operands {
					prod *= data[i][offsets[i]]
				}
				sum += prod

				// Advance the contracted odometer, updating offsets incrementally.
				for d := len(conCoords) - 1; d >= 0; d-- {
					conCoords[d]++
					for i := range operands {
						offsets[i] += conSteps[i][d]
					}
					if conCoords[d] < conShape[d] {
						break
					}
					for i := range operands {
						offsets[i] -= conSteps[i][d] * conShape[d]
					}
					conCoords[d] = 0
				}
			}
			dst[o] = sum
		}
	}, cpu.cfg)

	return result
}
