package cpu

import (
	"testing"

	"github.com/born-ml/tensorized/internal/parallel"
	"github.com/born-ml/tensorized/internal/tensor"
)

// TestGather1D tests advanced selection on 1D tensors.
func TestGather1D(t *testing.T) {
	backend := New()

	// Input: [10, 20, 30, 40]
	input := fromSlice(t, []float64{10, 20, 30, 40}, tensor.Shape{4})

	result := backend.Gather(input, []tensor.Selection{tensor.Pick(2, 0, 3)})
	assertData(t, "Gather1D", []float64{30, 10, 40}, result.Data())

	point := backend.Gather(input, []tensor.Selection{tensor.At(1)})
	if len(point.Shape()) != 0 || point.Data()[0] != 20 {
		t.Errorf("Gather1D At(1) = %v %v, want scalar 20", point.Shape(), point.Data())
	}
}

// TestGather2D tests row and column selection.
func TestGather2D(t *testing.T) {
	backend := New()

	// Input: [[0, 1, 2],
	//         [3, 4, 5]]
	input := arange(t, tensor.Shape{2, 3})

	rows := backend.Gather(input, []tensor.Selection{tensor.Pick(1, 1, 0), tensor.All()})
	if !rows.Shape().Equal(tensor.Shape{3, 3}) {
		t.Fatalf("rows shape = %v, want [3 3]", rows.Shape())
	}
	assertData(t, "Gather2D rows", []float64{3, 4, 5, 3, 4, 5, 0, 1, 2}, rows.Data())

	col := backend.Gather(input, []tensor.Selection{tensor.All(), tensor.At(2)})
	assertData(t, "Gather2D column", []float64{2, 5}, col.Data())
}

// TestGatherMultiAxis checks that picks on several axes are independent.
func TestGatherMultiAxis(t *testing.T) {
	backend := NewWithConfig(parallel.Sequential())
	input := arange(t, tensor.Shape{2, 3, 4})

	sel := []tensor.Selection{tensor.At(1), tensor.Pick(0, 2), tensor.Pick(3, 1)}
	result := backend.Gather(input, sel)
	if !result.Shape().Equal(tensor.Shape{2, 2}) {
		t.Fatalf("shape = %v, want [2 2]", result.Shape())
	}

	// out[j, k] = input[1, picks1[j], picks2[k]]
	expected := []float64{
		12 + 0*4 + 3, 12 + 0*4 + 1,
		12 + 2*4 + 3, 12 + 2*4 + 1,
	}
	assertData(t, "GatherMultiAxis", expected, result.Data())
}

func TestGatherOutOfBounds(t *testing.T) {
	backend := New()
	input := arange(t, tensor.Shape{2, 3})

	tests := []struct {
		name string
		sel  []tensor.Selection
	}{
		{"at", []tensor.Selection{tensor.At(2), tensor.All()}},
		{"pick", []tensor.Selection{tensor.All(), tensor.Pick(0, 3)}},
		{"negative", []tensor.Selection{tensor.At(-1), tensor.All()}},
		{"arity", []tensor.Selection{tensor.All()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("Gather(%v) should panic", tt.sel)
				}
			}()
			backend.Gather(input, tt.sel)
		})
	}
}
