// Package tensor provides the dense tensor type used as the reference and
// result representation for factorized tensors.
package tensor

import "fmt"

// Tensor is a dense float64 tensor bound to a computation backend.
//
// Tensors are immutable once returned by an operation; every method returns
// a new tensor (possibly sharing storage with its input).
//
// Example:
//
//	backend := cpu.New()
//	t := tensor.Zeros(Shape{3, 4}, backend)
//	rows := t.Gather(tensor.Pick(0, 2), tensor.All())
type Tensor struct {
	raw     *RawTensor
	backend Backend
}

// New creates a Tensor from a RawTensor and backend.
func New(raw *RawTensor, b Backend) *Tensor {
	return &Tensor{
		raw:     raw,
		backend: b,
	}
}

// FromSlice creates a tensor from a Go slice.
// The slice is copied into the tensor's memory.
func FromSlice(data []float64, shape Shape, b Backend) (*Tensor, error) {
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	raw, err := NewRawFrom(append([]float64(nil), data...), shape)
	if err != nil {
		return nil, err
	}
	return New(raw, b), nil
}

// Shape returns the tensor's shape.
func (t *Tensor) Shape() Shape {
	return t.raw.Shape()
}

// NumElements returns the total number of elements.
func (t *Tensor) NumElements() int {
	return t.raw.NumElements()
}

// Ndim returns the number of axes.
func (t *Tensor) Ndim() int {
	return len(t.raw.Shape())
}

// Raw returns the underlying RawTensor.
// Used by backend implementations for low-level operations.
func (t *Tensor) Raw() *RawTensor {
	return t.raw
}

// Backend returns the computation backend.
func (t *Tensor) Backend() Backend {
	return t.backend
}

// Data returns the tensor's row-major data.
//
// WARNING: The slice may be shared with other tensors and must not be modified.
func (t *Tensor) Data() []float64 {
	return t.raw.Data()
}

// Item returns the scalar value of a 0-D tensor.
// Panics if the tensor is not a scalar.
func (t *Tensor) Item() float64 {
	if len(t.Shape()) != 0 || t.NumElements() != 1 {
		panic(fmt.Sprintf("Item() only works for scalar tensors, got shape %v", t.Shape()))
	}
	return t.Data()[0]
}

// At returns the element at the given indices.
// Panics if indices are out of bounds.
func (t *Tensor) At(indices ...int) float64 {
	if len(indices) != len(t.Shape()) {
		panic(fmt.Sprintf("expected %d indices, got %d", len(t.Shape()), len(indices)))
	}

	offset := 0
	strides := t.raw.Strides()
	for i, idx := range indices {
		if idx < 0 || idx >= t.Shape()[i] {
			panic(fmt.Sprintf("index %d out of bounds for dimension %d (size %d)", idx, i, t.Shape()[i]))
		}
		offset += idx * strides[i]
	}

	return t.Data()[offset]
}

// String returns a human-readable representation of the tensor.
func (t *Tensor) String() string {
	return fmt.Sprintf("Tensor%v on %s", t.raw.Shape(), t.backend.Name())
}

// Clone creates a deep copy of the tensor.
func (t *Tensor) Clone() *Tensor {
	return New(t.raw.Clone(), t.backend)
}

// Mul multiplies two tensors of identical shape element-wise.
func (t *Tensor) Mul(other *Tensor) *Tensor {
	return New(t.backend.Mul(t.raw, other.raw), t.backend)
}

// Sum returns the 0-D sum of all elements.
func (t *Tensor) Sum() *Tensor {
	return New(t.backend.Sum(t.raw), t.backend)
}

// Reshape returns a tensor with the same data and a new shape.
func (t *Tensor) Reshape(shape ...int) *Tensor {
	return New(t.backend.Reshape(t.raw, Shape(shape)), t.backend)
}

// Transpose permutes the axes. With no axes, all axes are reversed.
func (t *Tensor) Transpose(axes ...int) *Tensor {
	return New(t.backend.Transpose(t.raw, axes...), t.backend)
}

// Squeeze removes the size-1 axis dim. Negative dims count from the end.
func (t *Tensor) Squeeze(dim int) *Tensor {
	return New(t.backend.Squeeze(t.raw, dim), t.backend)
}

// Gather applies one Selection per axis (trailing axes default to All).
//
// Example:
//
//	f := tensor.Zeros(Shape{2, 5, 3}, backend)
//	g := f.Gather(tensor.All(), tensor.Pick(4, 0)) // Shape: [2, 2, 3]
//	h := f.Gather(tensor.All(), tensor.At(1))      // Shape: [2, 3]
func (t *Tensor) Gather(sel ...Selection) *Tensor {
	full := make([]Selection, t.Ndim())
	for i := range full {
		if i < len(sel) {
			full[i] = sel[i]
		} else {
			full[i] = All()
		}
	}
	return New(t.backend.Gather(t.raw, full), t.backend)
}

// Tensordot contracts the last axes dimensions of t with the first axes
// dimensions of other.
func (t *Tensor) Tensordot(other *Tensor, axes int) *Tensor {
	return New(t.backend.Tensordot(t.raw, other.raw, axes), t.backend)
}

// Einsum evaluates eq over the operands using the first operand's backend.
//
// Example:
//
//	eq := tensor.Equation{
//	    Inputs: [][]tensor.Label{{0, 1}, {1, 2}},
//	    Output: []tensor.Label{0, 2},
//	}
//	c := tensor.Einsum(eq, a, b) // matrix product, "ab,bc->ac"
func Einsum(eq Equation, operands ...*Tensor) *Tensor {
	if len(operands) == 0 {
		panic("einsum: at least one operand required")
	}

	raws := make([]*RawTensor, len(operands))
	for i, op := range operands {
		raws[i] = op.raw
	}
	b := operands[0].backend
	return New(b.Einsum(eq, raws...), b)
}
