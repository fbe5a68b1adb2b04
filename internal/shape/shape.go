// Package shape models tensorized shapes: ordered modes that are either a
// plain axis or a group of logical axes folded into one flat axis.
package shape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/born-ml/tensorized/internal/tensor"
)

// ErrInvalidShape is returned for malformed tensorized shapes.
var ErrInvalidShape = errors.New("invalid tensorized shape")

// Mode is one entry of a tensorized shape.
//
// An ungrouped mode behaves as a single plain axis of size Dims[0]; a grouped
// mode folds len(Dims) logical axes into one flat axis of size prod(Dims).
type Mode struct {
	Dims    []int
	Grouped bool
}

// Dim returns an ungrouped mode of size n.
func Dim(n int) Mode {
	return Mode{Dims: []int{n}}
}

// Group returns a grouped mode folding dims.
func Group(dims ...int) Mode {
	return Mode{Dims: append([]int(nil), dims...), Grouped: true}
}

// Size returns the flat size of the mode.
func (m Mode) Size() int {
	return tensor.Shape(m.Dims).NumElements()
}

// Len returns the number of underlying axes.
func (m Mode) Len() int {
	return len(m.Dims)
}

// Equal reports whether two modes are identical.
func (m Mode) Equal(other Mode) bool {
	return m.Grouped == other.Grouped && tensor.Shape(m.Dims).Equal(other.Dims)
}

// String renders an ungrouped mode as "n" and a grouped one as "(a,b,...)".
func (m Mode) String() string {
	if !m.Grouped {
		return strconv.Itoa(m.Dims[0])
	}
	parts := make([]string, len(m.Dims))
	for i, d := range m.Dims {
		parts[i] = strconv.Itoa(d)
	}
	if len(parts) == 1 {
		return "(" + parts[0] + ",)"
	}
	return "(" + strings.Join(parts, ",") + ")"
}

// Tensorized is an ordered sequence of modes.
type Tensorized []Mode

// Validate checks every mode has at least one positive dimension and that
// ungrouped modes have exactly one.
func (t Tensorized) Validate() error {
	for i, m := range t {
		if len(m.Dims) == 0 {
			return fmt.Errorf("%w: mode %d is empty", ErrInvalidShape, i)
		}
		if !m.Grouped && len(m.Dims) != 1 {
			return fmt.Errorf("%w: ungrouped mode %d has %d dimensions", ErrInvalidShape, i, len(m.Dims))
		}
		for _, d := range m.Dims {
			if d <= 0 {
				return fmt.Errorf("%w: mode %d has non-positive dimension %d", ErrInvalidShape, i, d)
			}
		}
	}
	return nil
}

// Clone returns a deep copy.
func (t Tensorized) Clone() Tensorized {
	out := make(Tensorized, len(t))
	for i, m := range t {
		out[i] = Mode{Dims: append([]int(nil), m.Dims...), Grouped: m.Grouped}
	}
	return out
}

// Equal reports whether two tensorized shapes are identical.
func (t Tensorized) Equal(other Tensorized) bool {
	if len(t) != len(other) {
		return false
	}
	for i := range t {
		if !t[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// String renders the shape as "(2,3),4".
func (t Tensorized) String() string {
	parts := make([]string, len(t))
	for i, m := range t {
		parts[i] = m.String()
	}
	return strings.Join(parts, ",")
}

// IsTensorized reports whether at least one mode is grouped.
func IsTensorized(t Tensorized) bool {
	for _, m := range t {
		if m.Grouped {
			return true
		}
	}
	return false
}

// ToShape returns the flat shape exposed to callers: per mode, the size of an
// ungrouped mode or the product of a grouped one.
func ToShape(t Tensorized) tensor.Shape {
	out := make(tensor.Shape, len(t))
	for i, m := range t {
		out[i] = m.Size()
	}
	return out
}

// Flatten lists every underlying axis size in order.
//
// Example:
//
//	Flatten(Tensorized{Group(2, 3), Dim(4)}) // [2 3 4]
func Flatten(t Tensorized) []int {
	var out []int
	for _, m := range t {
		out = append(out, m.Dims...)
	}
	return out
}

// MaxGroupLen returns the largest number of underlying axes of any mode.
func MaxGroupLen(t Tensorized) int {
	n := 0
	for _, m := range t {
		n = max(n, len(m.Dims))
	}
	return n
}

// FromFlat treats every dimension of a flat shape as an ungrouped mode.
func FromFlat(dims ...int) Tensorized {
	out := make(Tensorized, len(dims))
	for i, d := range dims {
		out[i] = Dim(d)
	}
	return out
}
