// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the dense tensors that factorized tensors
// reconstruct into and are compared against.
//
// # Overview
//
// This package provides:
//   - Row-major float64 tensors (Tensor) bound to a compute Backend
//   - Shape helpers (strides, ravel and unravel of flat positions)
//   - Gather with per-axis selections (keep, fix a coordinate, pick a list)
//   - Labelled n-ary contractions (Equation, Einsum)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/tensorized/backend/cpu"
//	    "github.com/born-ml/tensorized/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    a := tensor.Arange(tensor.Shape{2, 3}, backend)
//	    b := tensor.Ones(tensor.Shape{3, 4}, backend)
//
//	    // Matrix product as a contraction over the shared axis.
//	    c := a.Tensordot(b, 1) // Shape: [2, 4]
//
//	    // Row 1, columns 0 and 2.
//	    d := a.Gather(tensor.At(1), tensor.Pick(0, 2)) // Shape: [2]
//	}
//
// # Immutability
//
// Operations never modify their inputs. Reshape returns a view sharing the
// input's buffer; every other operation allocates its result.
//
// # Thread Safety
//
// Tensors are safe for concurrent reads.
package tensor
