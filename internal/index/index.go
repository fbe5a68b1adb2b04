// Package index defines the closed set of per-mode index kinds accepted by
// factorized tensors and resolves them against a mode size.
package index

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrOutOfRange is returned when an index lies outside a mode.
	ErrOutOfRange = errors.New("index out of range")
	// ErrInvalid is returned for malformed indices (zero step, empty selections).
	ErrInvalid = errors.New("invalid index")
)

// Index is one entry of an index expression. It is one of Point, Full, Slice
// or List; no other implementations exist.
type Index interface {
	isIndex()
	String() string
}

// Point selects a single position and removes the mode. Negative values
// count from the end.
type Point int

// Full keeps the whole mode (":").
type Full struct{}

// Slice selects positions start, start+step, ... before stop, with Python
// semantics: nil bounds default to the ends, negative bounds count from the
// end, and a zero Step means 1.
type Slice struct {
	Start, Stop *int
	Step        int
}

// List selects the listed positions in order. Negative values count from the
// end.
type List []int

func (Point) isIndex() {}
func (Full) isIndex()  {}
func (Slice) isIndex() {}
func (List) isIndex()  {}

// Span returns the slice start:stop.
func Span(start, stop int) Slice {
	return Slice{Start: &start, Stop: &stop}
}

// SpanStep returns the slice start:stop:step.
func SpanStep(start, stop, step int) Slice {
	return Slice{Start: &start, Stop: &stop, Step: step}
}

// Of returns a List of the given positions.
func Of(positions ...int) List {
	return List(positions)
}

func (p Point) String() string { return strconv.Itoa(int(p)) }

func (Full) String() string { return ":" }

func (s Slice) String() string {
	var sb strings.Builder
	if s.Start != nil {
		sb.WriteString(strconv.Itoa(*s.Start))
	}
	sb.WriteByte(':')
	if s.Stop != nil {
		sb.WriteString(strconv.Itoa(*s.Stop))
	}
	if s.Step != 0 && s.Step != 1 {
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(s.Step))
	}
	return sb.String()
}

func (l List) String() string {
	parts := make([]string, len(l))
	for i, v := range l {
		parts[i] = strconv.Itoa(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

// Normalize maps a possibly negative position into [0, size).
func Normalize(i, size int) (int, error) {
	if i < 0 {
		i += size
	}
	if i < 0 || i >= size {
		return 0, fmt.Errorf("%w: %d for size %d", ErrOutOfRange, i, size)
	}
	return i, nil
}

// Positions resolves a Slice into explicit positions for a mode of the given
// size, following Python's slice.indices. An empty result is an error.
func (s Slice) Positions(size int) ([]int, error) {
	step := s.Step
	if step == 0 {
		step = 1
	}

	var start, stop int
	if step > 0 {
		start, stop = clampBound(s.Start, size, 0, 0, size), clampBound(s.Stop, size, size, 0, size)
	} else {
		start, stop = clampBound(s.Start, size, size-1, -1, size-1), clampBound(s.Stop, size, -1, -1, size-1)
	}

	var out []int
	for i := start; (step > 0 && i < stop) || (step < 0 && i > stop); i += step {
		out = append(out, i)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: slice %s selects nothing from size %d", ErrInvalid, s, size)
	}
	return out, nil
}

func clampBound(b *int, size, def, lo, hi int) int {
	if b == nil {
		return def
	}
	v := *b
	if v < 0 {
		v += size
	}
	return min(max(v, lo), hi)
}

// Positions resolves a List into normalized positions.
func (l List) Positions(size int) ([]int, error) {
	if len(l) == 0 {
		return nil, fmt.Errorf("%w: empty index list", ErrInvalid)
	}
	out := make([]int, len(l))
	for i, v := range l {
		p, err := Normalize(v, size)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}

// Range returns 0, 1, ..., size-1.
func Range(size int) []int {
	out := make([]int, size)
	for i := range out {
		out[i] = i
	}
	return out
}
