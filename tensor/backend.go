// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/tensorized/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations and panic on
// malformed arguments.
//
// Implementations:
//   - backend/cpu: Pure Go with gonum BLAS for pairwise contractions
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorized/tensor"
//	    "github.com/born-ml/tensorized/backend/cpu"
//	)
//
//	backend := cpu.New()
//	x := tensor.Arange(tensor.Shape{2, 3}, backend)
//	y := x.Transpose() // Uses backend.Transpose under the hood
type Backend interface {
	// Element-wise operations.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication (equal shapes).

	// Reduction operations.
	Sum(x *RawTensor) *RawTensor // Total sum (0-D result).

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor // Reshape tensor (view).
	Transpose(t *RawTensor, axes ...int) *RawTensor  // Permute dimensions.
	Squeeze(x *RawTensor, dim int) *RawTensor        // Remove dimension of size 1.

	// Indexing operations.
	Gather(x *RawTensor, sel []Selection) *RawTensor // One selection per axis.

	// Contraction operations.
	Tensordot(a, b *RawTensor, axes int) *RawTensor        // Last axes of a with first axes of b.
	Einsum(eq Equation, operands ...*RawTensor) *RawTensor // N-ary labelled contraction.

	// Metadata.
	Name() string // Backend name (e.g., "CPU").
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
