// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/tensorized/internal/backend/cpu"
	"github.com/born-ml/tensorized/internal/parallel"
	"github.com/born-ml/tensorized/tensor"
)

// Backend represents the CPU backend implementation.
//
// CPU backend provides pure Go implementations of every tensor operation,
// with gonum for element-wise kernels and BLAS for tensordot.
type Backend = internalcpu.CPUBackend

// Config controls the parallelism of the CPU kernels.
type Config = parallel.Config

// Compile-time check that Backend implements tensor.Backend.
var _ tensor.Backend = (*Backend)(nil)

// New creates a new CPU backend.
//
// Example:
//
//	import (
//	    "github.com/born-ml/tensorized/backend/cpu"
//	    "github.com/born-ml/tensorized/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    x := tensor.Zeros(tensor.Shape{2, 3}, backend)
//	}
func New() *Backend {
	return internalcpu.New()
}

// NewWithConfig creates a CPU backend with explicit parallelism settings.
func NewWithConfig(cfg Config) *Backend {
	return internalcpu.NewWithConfig(cfg)
}

// DefaultConfig returns the parallelism used by New.
func DefaultConfig() Config {
	return parallel.DefaultConfig()
}
