package tensor

import "fmt"

// RawTensor is the low-level tensor representation: a contiguous row-major
// float64 buffer plus its shape.
//
// A RawTensor is never written to after a backend operation returns it, so
// buffers may be shared between tensors (Reshape and Squeeze return views).
type RawTensor struct {
	data   []float64 // Row-major storage
	shape  Shape     // Tensor dimensions
	stride []int     // Memory strides (row-major)
}

// NewRaw creates a new RawTensor with the given shape.
// Memory is allocated and zero-initialized.
func NewRaw(shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}

	return &RawTensor{
		data:   make([]float64, shape.NumElements()),
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// NewRawFrom wraps data as a RawTensor without copying.
func NewRawFrom(data []float64, shape Shape) (*RawTensor, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	if shape.NumElements() != len(data) {
		return nil, fmt.Errorf("shape %v requires %d elements, but got %d", shape, shape.NumElements(), len(data))
	}

	return &RawTensor{
		data:   data,
		shape:  shape.Clone(),
		stride: shape.ComputeStrides(),
	}, nil
}

// Shape returns the tensor's shape.
func (r *RawTensor) Shape() Shape {
	return r.shape
}

// Strides returns the tensor's memory strides.
func (r *RawTensor) Strides() []int {
	return r.stride
}

// NumElements returns the total number of elements.
func (r *RawTensor) NumElements() int {
	return r.shape.NumElements()
}

// Data returns the underlying storage.
// WARNING: Direct access to underlying memory, possibly shared with views.
func (r *RawTensor) Data() []float64 {
	return r.data
}

// View returns a RawTensor sharing r's buffer under a new shape with the same
// number of elements.
func (r *RawTensor) View(shape Shape) (*RawTensor, error) {
	if shape.NumElements() != r.NumElements() {
		return nil, fmt.Errorf("view: incompatible shapes: %v -> %v", r.shape, shape)
	}
	return NewRawFrom(r.data, shape)
}

// Clone creates a deep copy of the RawTensor.
func (r *RawTensor) Clone() *RawTensor {
	return &RawTensor{
		data:   append([]float64(nil), r.data...),
		shape:  r.shape.Clone(),
		stride: append([]int(nil), r.stride...),
	}
}
