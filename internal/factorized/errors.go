package factorized

import (
	"errors"
	"fmt"

	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
)

var (
	// ErrShapeMismatch is returned when shapes, ranks or factors disagree.
	ErrShapeMismatch = rank.ErrShapeMismatch
	// ErrInvalidShape is returned for malformed tensorized shapes.
	ErrInvalidShape = shape.ErrInvalidShape
	// ErrIndexOutOfRange is returned when an index lies outside its mode.
	ErrIndexOutOfRange = index.ErrOutOfRange
	// ErrInvalidIndex is returned for malformed indices.
	ErrInvalidIndex = index.ErrInvalid
	// ErrTooManyIndices is returned when an expression has more entries than modes.
	ErrTooManyIndices = errors.New("too many indices")
	// ErrInvalidBatchedDim is returned when a batched mode is not a plain axis.
	ErrInvalidBatchedDim = errors.New("invalid batched dimension")
	// ErrInvalidFactors is returned when factors do not form a valid decomposition.
	ErrInvalidFactors = errors.New("invalid factors")
)

// IndexError reports an index outside its mode.
type IndexError struct {
	Mode  int
	Index int
	Size  int
}

// Error implements error.
func (e *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for mode %d of size %d", e.Index, e.Mode, e.Size)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}
