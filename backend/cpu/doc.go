// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides a pure Go CPU backend for tensor operations.
//
// # Overview
//
// This package implements a CPU backend with:
//   - Pure Go implementation (no CGO)
//   - gonum BLAS (Dgemm) for tensordot
//   - A single-pass multi-axis gather
//   - An n-ary einsum with batched, contracted and diagonal labels
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
//	    x := tensor.Arange(tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones(tensor.Shape{3, 4}, backend)
//	    z := x.Tensordot(y, 1)
//	}
//
// # Performance
//
// Most kernels split their output across goroutines once it exceeds
// Config.MinChunkSize per worker.
//
// # Thread Safety
//
// The CPU backend is safe for concurrent use. Each tensor operation
// is isolated and does not share mutable state.
package cpu
