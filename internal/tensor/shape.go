package tensor

import "fmt"

// Shape represents the dimensions of a tensor.
type Shape []int

// NumElements returns the total number of elements in the tensor.
func (s Shape) NumElements() int {
	if len(s) == 0 {
		return 1 // Scalar has 1 element
	}
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Validate checks if the shape is valid (all dimensions > 0).
func (s Shape) Validate() error {
	for i, dim := range s {
		if dim <= 0 {
			return fmt.Errorf("invalid dimension at index %d: %d (must be > 0)", i, dim)
		}
	}
	return nil
}

// Equal checks if two shapes are equal.
func (s Shape) Equal(other Shape) bool {
	if len(s) != len(other) {
		return false
	}
	for i := range s {
		if s[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns a copy of the shape.
func (s Shape) Clone() Shape {
	clone := make(Shape, len(s))
	copy(clone, s)
	return clone
}

// ComputeStrides calculates row-major strides for the shape.
// Strides define memory layout: stride[i] = product of all dimensions after i.
func (s Shape) ComputeStrides() []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}

	strides[len(s)-1] = 1
	for i := len(s) - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * s[i+1]
	}
	return strides
}

// Unravel converts a flat row-major offset into per-axis coordinates.
//
// Example:
//
//	Shape{2, 3}.Unravel(4) // [1 1]
func (s Shape) Unravel(flat int) []int {
	coords := make([]int, len(s))
	s.UnravelInto(flat, coords)
	return coords
}

// UnravelInto writes the coordinates of flat into dst, which must have len(s) entries.
func (s Shape) UnravelInto(flat int, dst []int) {
	for i := len(s) - 1; i >= 0; i-- {
		dst[i] = flat % s[i]
		flat /= s[i]
	}
}

// Ravel converts per-axis coordinates into a flat row-major offset.
func (s Shape) Ravel(coords []int) int {
	flat := 0
	for i, c := range coords {
		flat = flat*s[i] + c
	}
	return flat
}

// String renders the shape as (d0, d1, ...).
func (s Shape) String() string {
	out := "("
	for i, d := range s {
		if i > 0 {
			out += ", "
		}
		out += fmt.Sprint(d)
	}
	return out + ")"
}
