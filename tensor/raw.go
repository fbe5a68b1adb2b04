// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import (
	"github.com/born-ml/tensorized/internal/tensor"
)

// RawTensor is the low-level tensor representation used by backends.
//
// RawTensor provides:
//   - Shape and strides via Shape(), Strides()
//   - Row-major data access via Data()
//   - Views sharing the buffer via View(), deep copies via Clone()
//
// Most users should use the high-level Tensor type instead.
//
// Example:
//
//	raw, _ := tensor.NewRaw(tensor.Shape{2, 3})
//	data := raw.Data()   // len(data) == 6
//	clone := raw.Clone() // independent buffer
type RawTensor = tensor.RawTensor

// NewRaw allocates a zero-filled RawTensor.
func NewRaw(shape Shape) (*RawTensor, error) {
	return tensor.NewRaw(shape)
}

// NewRawFrom wraps data (without copying) as a RawTensor.
func NewRawFrom(data []float64, shape Shape) (*RawTensor, error) {
	return tensor.NewRawFrom(data, shape)
}
