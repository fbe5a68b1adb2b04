package factorized

import (
	"math/rand/v2"
	"testing"

	"github.com/born-ml/tensorized/internal/backend/cpu"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

func testOptions() []Option {
	return []Option{
		WithBackend(cpu.New()),
		WithInit(rand.New(rand.NewPCG(1, 2)), 1),
	}
}

// underlying returns, per mode, the unravelled coordinates of flat position
// p of that mode.
func underlying(tshape shape.Tensorized, flat []int) [][]int {
	out := make([][]int, len(tshape))
	for m, mode := range tshape {
		out[m] = tensor.Shape(mode.Dims).Unravel(flat[m])
	}
	return out
}

// denseFrom evaluates value at every position of tshape's flat shape.
func denseFrom(t *testing.T, tshape shape.Tensorized, value func(coords [][]int) float64) *tensor.Tensor {
	t.Helper()
	s := shape.ToShape(tshape)
	out := tensor.Zeros(s, cpu.New())
	data := out.Data()
	for i := range data {
		data[i] = value(underlying(tshape, s.Unravel(i)))
	}
	return out
}

// blockTTOracle multiplies the factor slices element by element.
func blockTTOracle(t *testing.T, tt *BlockTT) *tensor.Tensor {
	t.Helper()
	return denseFrom(t, tt.tshape, func(coords [][]int) float64 {
		vec := []float64{1}
		for k, f := range tt.factors {
			r1, r2 := f.Shape()[0], f.Shape()[f.Ndim()-1]
			next := make([]float64, r2)
			at := make([]int, f.Ndim())
			for m, mode := range tt.tshape {
				if mode.Grouped {
					at[m+1] = coords[m][k]
				} else {
					at[m+1] = coords[m][0]
				}
			}
			for a := 0; a < r1; a++ {
				for b := 0; b < r2; b++ {
					at[0], at[len(at)-1] = a, b
					next[b] += vec[a] * f.At(at...)
				}
			}
			vec = next
		}
		require.Len(t, vec, 1)
		return vec[0]
	})
}

// cpOracle sums the weighted products of factor rows.
func cpOracle(t *testing.T, cp *CP) *tensor.Tensor {
	t.Helper()
	return denseFrom(t, cp.tshape, func(coords [][]int) float64 {
		var flatCoords []int
		for _, c := range coords {
			flatCoords = append(flatCoords, c...)
		}
		var sum float64
		for r := 0; r < cp.rank; r++ {
			p := cp.weights.At(r)
			for a, f := range cp.factors {
				p *= f.At(flatCoords[a], r)
			}
			sum += p
		}
		return sum
	})
}

// tuckerOracle sums core entries against factor rows.
func tuckerOracle(t *testing.T, tk *Tucker) *tensor.Tensor {
	t.Helper()
	coreShape := tk.core.Shape()
	return denseFrom(t, tk.tshape, func(coords [][]int) float64 {
		var flatCoords []int
		for _, c := range coords {
			flatCoords = append(flatCoords, c...)
		}
		var sum float64
		for i := 0; i < coreShape.NumElements(); i++ {
			r := coreShape.Unravel(i)
			p := tk.core.At(r...)
			for a, f := range tk.factors {
				p *= f.At(flatCoords[a], r[a])
			}
			sum += p
		}
		return sum
	})
}

func assertTensorsClose(t *testing.T, want, got *tensor.Tensor) {
	t.Helper()
	require.True(t, want.Shape().Equal(got.Shape()), "shape: want %v, got %v", want.Shape(), got.Shape())
	require.True(t, floats.EqualApprox(want.Data(), got.Data(), 1e-9), "data:\nwant %v\ngot  %v", want.Data(), got.Data())
}
