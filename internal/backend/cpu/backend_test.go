package cpu

import (
	"testing"

	"github.com/born-ml/tensorized/internal/parallel"
	"github.com/born-ml/tensorized/internal/tensor"
	"gonum.org/v1/gonum/floats"
)

// Helper to create test backend.
func newTestBackend() *CPUBackend {
	return New()
}

// Helper to create a raw tensor holding 0, 1, 2, ...
func arange(t *testing.T, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRaw(shape)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	for i := range raw.Data() {
		raw.Data()[i] = float64(i)
	}
	return raw
}

func fromSlice(t *testing.T, data []float64, shape tensor.Shape) *tensor.RawTensor {
	t.Helper()
	raw, err := tensor.NewRawFrom(data, shape)
	if err != nil {
		t.Fatalf("Failed to create tensor: %v", err)
	}
	return raw
}

func assertData(t *testing.T, name string, expected, actual []float64) {
	t.Helper()
	if !floats.EqualApprox(expected, actual, 1e-9) {
		t.Errorf("%s: expected %v, got %v", name, expected, actual)
	}
}

// TestCPUBackend_New tests backend creation.
func TestCPUBackend_New(t *testing.T) {
	backend := New()
	if backend == nil {
		t.Fatal("New() returned nil")
	}
	if backend.Name() != "CPU" {
		t.Errorf("Expected name 'CPU', got '%s'", backend.Name())
	}

	seq := NewWithConfig(parallel.Sequential())
	if seq.Config().Enabled {
		t.Error("Sequential config should disable parallelism")
	}
}

func TestCPUBackend_Reshape(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, tensor.Shape{2, 3})

	y := backend.Reshape(x, tensor.Shape{3, 2})
	if !y.Shape().Equal(tensor.Shape{3, 2}) {
		t.Errorf("Reshape shape = %v, want [3 2]", y.Shape())
	}
	assertData(t, "Reshape", x.Data(), y.Data())

	defer func() {
		if recover() == nil {
			t.Error("Reshape to a different element count should panic")
		}
	}()
	backend.Reshape(x, tensor.Shape{4})
}

func TestCPUBackend_Transpose(t *testing.T) {
	backend := newTestBackend()

	// [[0, 1, 2],
	//  [3, 4, 5]]
	x := arange(t, tensor.Shape{2, 3})
	y := backend.Transpose(x)
	if !y.Shape().Equal(tensor.Shape{3, 2}) {
		t.Fatalf("Transpose shape = %v, want [3 2]", y.Shape())
	}
	assertData(t, "Transpose2D", []float64{0, 3, 1, 4, 2, 5}, y.Data())

	// 3D permutation: out[k, i, j] = x[i, j, k]
	x3 := arange(t, tensor.Shape{2, 3, 4})
	y3 := backend.Transpose(x3, 2, 0, 1)
	if !y3.Shape().Equal(tensor.Shape{4, 2, 3}) {
		t.Fatalf("Transpose3D shape = %v, want [4 2 3]", y3.Shape())
	}
	for k := 0; k < 4; k++ {
		for i := 0; i < 2; i++ {
			for j := 0; j < 3; j++ {
				got := y3.Data()[k*6+i*3+j]
				want := x3.Data()[i*12+j*4+k]
				if got != want {
					t.Fatalf("Transpose3D[%d,%d,%d] = %v, want %v", k, i, j, got, want)
				}
			}
		}
	}
}

func TestCPUBackend_TransposeInvalidAxes(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, tensor.Shape{2, 3})

	defer func() {
		if recover() == nil {
			t.Error("Transpose with duplicate axes should panic")
		}
	}()
	backend.Transpose(x, 0, 0)
}

func TestCPUBackend_Squeeze(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, tensor.Shape{1, 3, 1})

	tests := []struct {
		dim  int
		want tensor.Shape
	}{
		{0, tensor.Shape{3, 1}},
		{2, tensor.Shape{1, 3}},
		{-1, tensor.Shape{1, 3}},
	}

	for _, tt := range tests {
		got := backend.Squeeze(x, tt.dim)
		if !got.Shape().Equal(tt.want) {
			t.Errorf("Squeeze(%d) shape = %v, want %v", tt.dim, got.Shape(), tt.want)
		}
	}

	defer func() {
		if recover() == nil {
			t.Error("Squeeze of a non-unit dimension should panic")
		}
	}()
	backend.Squeeze(x, 1)
}

func TestCPUBackend_Mul(t *testing.T) {
	backend := newTestBackend()
	a := fromSlice(t, []float64{1, 2, 3}, tensor.Shape{3})
	b := fromSlice(t, []float64{4, 5, 6}, tensor.Shape{3})

	assertData(t, "Mul", []float64{4, 10, 18}, backend.Mul(a, b).Data())

	// Inputs are left untouched.
	assertData(t, "Mul input", []float64{1, 2, 3}, a.Data())
}

func TestCPUBackend_Sum(t *testing.T) {
	backend := newTestBackend()
	x := arange(t, tensor.Shape{2, 5})

	s := backend.Sum(x)
	if len(s.Shape()) != 0 {
		t.Fatalf("Sum shape = %v, want scalar", s.Shape())
	}
	if s.Data()[0] != 45 {
		t.Errorf("Sum = %v, want 45", s.Data()[0])
	}
}
