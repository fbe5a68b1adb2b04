// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package factorized

import (
	"github.com/born-ml/tensorized/internal/factorized"
	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/tensor"
)

// Factorized is a tensor held in factorized form.
type Factorized = factorized.Factorized

// Result is the outcome of indexing a factorized tensor.
type Result = factorized.Result

// CP is a tensorized CP decomposition.
type CP = factorized.CP

// BlockTT is a block tensor-train.
type BlockTT = factorized.BlockTT

// Tucker is a tensorized Tucker decomposition.
type Tucker = factorized.Tucker

// Option configures the constructors.
type Option = factorized.Option

// IndexError reports an index outside its mode.
type IndexError = factorized.IndexError

// Error sentinels.
var (
	ErrShapeMismatch     = factorized.ErrShapeMismatch
	ErrInvalidShape      = factorized.ErrInvalidShape
	ErrIndexOutOfRange   = factorized.ErrIndexOutOfRange
	ErrInvalidIndex      = factorized.ErrInvalidIndex
	ErrTooManyIndices    = factorized.ErrTooManyIndices
	ErrInvalidBatchedDim = factorized.ErrInvalidBatchedDim
	ErrInvalidFactors    = factorized.ErrInvalidFactors
)

// Options.
var (
	WithBackend    = factorized.WithBackend
	WithLogger     = factorized.WithLogger
	WithInit       = factorized.WithInit
	WithBatchedDim = factorized.WithBatchedDim
	WithNMatrices  = factorized.WithNMatrices
)

// NewCP allocates a randomly initialised CP decomposition.
//
// Example:
//
//	cp, err := factorized.NewCP(factorized.Shape{factorized.Group(2, 3), factorized.Dim(4)}, factorized.RankInt(5))
func NewCP(tshape Shape, spec RankSpec, opts ...Option) (*CP, error) {
	return factorized.NewCP(tshape, spec, opts...)
}

// FromCPFactors wraps existing weights and factors.
func FromCPFactors(weights *tensor.Tensor, factors []*tensor.Tensor, tshape Shape) (*CP, error) {
	return factorized.FromCPFactors(weights, factors, tshape)
}

// NewBlockTT allocates a randomly initialised block tensor-train.
func NewBlockTT(tshape Shape, spec RankSpec, opts ...Option) (*BlockTT, error) {
	return factorized.NewBlockTT(tshape, spec, opts...)
}

// FromBlockTTFactors wraps existing block tensor-train factors.
func FromBlockTTFactors(factors []*tensor.Tensor, tshape Shape, ranks []int, batched []bool, opts ...Option) (*BlockTT, error) {
	return factorized.FromBlockTTFactors(factors, tshape, ranks, batched, opts...)
}

// NewTucker allocates a randomly initialised Tucker decomposition.
func NewTucker(tshape Shape, spec RankSpec, opts ...Option) (*Tucker, error) {
	return factorized.NewTucker(tshape, spec, opts...)
}

// FromTuckerFactors wraps an existing core and factors.
func FromTuckerFactors(core *tensor.Tensor, factors []*tensor.Tensor, tshape Shape) (*Tucker, error) {
	return factorized.FromTuckerFactors(core, factors, tshape)
}

// IndexDense applies an index expression to a dense tensor of flat shape
// ToShape(tshape), with the same semantics as GetItem.
func IndexDense(t *tensor.Tensor, tshape Shape, idx ...Index) (*tensor.Tensor, error) {
	return factorized.IndexDense(t, tshape, idx...)
}

// Shape is a tensorized shape.
type Shape = shape.Tensorized

// Mode is one entry of a tensorized shape.
type Mode = shape.Mode

// Dim returns a plain mode of size n.
func Dim(n int) Mode { return shape.Dim(n) }

// Group returns a grouped mode folding dims.
func Group(dims ...int) Mode { return shape.Group(dims...) }

// ParseShape reads "(2,3),4" notation.
func ParseShape(s string) (Shape, error) { return shape.Parse(s) }

// IsTensorized reports whether at least one mode is grouped.
func IsTensorized(s Shape) bool { return shape.IsTensorized(s) }

// ToShape returns the flat shape: one entry per mode.
func ToShape(s Shape) tensor.Shape { return shape.ToShape(s) }

// Index is one entry of an index expression.
type Index = index.Index

// Index kinds.
type (
	Point = index.Point
	Full  = index.Full
	Slice = index.Slice
	List  = index.List
)

// Span returns the slice start:stop.
func Span(start, stop int) Slice { return index.Span(start, stop) }

// SpanStep returns the slice start:stop:step.
func SpanStep(start, stop, step int) Slice { return index.SpanStep(start, stop, step) }

// Of returns a List of positions.
func Of(positions ...int) List { return index.Of(positions...) }

// ParseIndex reads NumPy-style notation such as "0, :, 1:3, [0,2]".
func ParseIndex(expr string) ([]Index, error) { return index.Parse(expr) }

// FormatIndex renders an index expression the way ParseIndex reads it.
func FormatIndex(idx []Index) string { return index.Format(idx) }

// RankSpec is a requested rank.
type RankSpec = rank.Spec

// Rounding modes for fractional ranks.
const (
	Round = rank.Round
	Floor = rank.Floor
	Ceil  = rank.Ceil
)

// RankSame requests as many parameters as the full tensor.
func RankSame() RankSpec { return rank.Same() }

// RankFraction requests f times the parameters of the full tensor.
func RankFraction(f float64) RankSpec { return rank.Fraction(f) }

// RankInt requests integer rank n.
func RankInt(n int) RankSpec { return rank.Int(n) }

// RankExplicit requests the exact ranks r.
func RankExplicit(r ...int) RankSpec { return rank.Explicit(r...) }

// ParseRank reads "same", "0.5", "4" or "1,3,1".
func ParseRank(s string) (RankSpec, error) { return rank.Parse(s) }

// Rank validators.
var (
	ValidateCPRank      = rank.ValidateCPRank
	ValidateTuckerRank  = rank.ValidateTuckerRank
	ValidateTTRank      = rank.ValidateTTRank
	ValidateBlockTTRank = rank.ValidateBlockTTRank
)
