package factorized

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

type selKind int

const (
	selFull selKind = iota
	selPoint
	selList
)

// modeSel is one index resolved against its mode: the whole mode, a single
// flat position, or an ordered list of flat positions.
type modeSel struct {
	kind      selKind
	point     int
	positions []int
}

// coords unravels the flat positions of a grouped mode: one list per
// underlying axis.
func (s modeSel) coords(dims []int) [][]int {
	flat := s.positions
	if s.kind == selPoint {
		flat = []int{s.point}
	}
	out := make([][]int, len(dims))
	for k := range out {
		out[k] = make([]int, len(flat))
	}
	c := make([]int, len(dims))
	for i, p := range flat {
		tensor.Shape(dims).UnravelInto(p, c)
		for k := range dims {
			out[k][i] = c[k]
		}
	}
	return out
}

// selection returns the Gather selection for a plain axis.
func (s modeSel) selection() tensor.Selection {
	switch s.kind {
	case selPoint:
		return tensor.At(s.point)
	case selList:
		return tensor.Pick(s.positions...)
	default:
		return tensor.All()
	}
}

// resolve checks an index expression against the modes and resolves every
// entry, padding missing trailing entries with Full.
func resolve(tshape shape.Tensorized, idx []index.Index) ([]modeSel, error) {
	if len(idx) > len(tshape) {
		return nil, fmt.Errorf("%w: %d indices for %d modes", ErrTooManyIndices, len(idx), len(tshape))
	}

	out := make([]modeSel, len(tshape))
	for m, mode := range tshape {
		if m >= len(idx) {
			out[m] = modeSel{kind: selFull}
			continue
		}
		sel, err := resolveOne(m, idx[m], mode.Size())
		if err != nil {
			return nil, err
		}
		out[m] = sel
	}
	return out, nil
}

func resolveOne(m int, ix index.Index, size int) (modeSel, error) {
	switch ix := ix.(type) {
	case index.Full:
		return modeSel{kind: selFull}, nil
	case index.Point:
		p, err := index.Normalize(int(ix), size)
		if err != nil {
			return modeSel{}, &IndexError{Mode: m, Index: int(ix), Size: size}
		}
		return modeSel{kind: selPoint, point: p}, nil
	case index.Slice:
		if ix.Start == nil && ix.Stop == nil && (ix.Step == 0 || ix.Step == 1) {
			return modeSel{kind: selFull}, nil
		}
		pos, err := ix.Positions(size)
		if err != nil {
			return modeSel{}, fmt.Errorf("mode %d: slice %s: %w", m, ix, err)
		}
		return modeSel{kind: selList, positions: pos}, nil
	case index.List:
		if len(ix) == 0 {
			return modeSel{}, fmt.Errorf("mode %d: %w: empty list", m, ErrInvalidIndex)
		}
		pos := make([]int, len(ix))
		for i, v := range ix {
			p, err := index.Normalize(v, size)
			if err != nil {
				return modeSel{}, &IndexError{Mode: m, Index: v, Size: size}
			}
			pos[i] = p
		}
		return modeSel{kind: selList, positions: pos}, nil
	case nil:
		return modeSel{}, fmt.Errorf("mode %d: %w: nil index", m, ErrInvalidIndex)
	default:
		return modeSel{}, fmt.Errorf("mode %d: %w: %T", m, ErrInvalidIndex, ix)
	}
}

// IndexDense applies an index expression to a dense tensor whose flat shape
// matches tshape. Lists on different modes select independently (outer
// indexing).
func IndexDense(t *tensor.Tensor, tshape shape.Tensorized, idx ...index.Index) (*tensor.Tensor, error) {
	if !t.Shape().Equal(shape.ToShape(tshape)) {
		return nil, fmt.Errorf("%w: tensor of shape %v for tensorized shape %v", ErrShapeMismatch, t.Shape(), tshape)
	}
	sels, err := resolve(tshape, idx)
	if err != nil {
		return nil, err
	}
	gather := make([]tensor.Selection, len(sels))
	for i, s := range sels {
		gather[i] = s.selection()
	}
	return t.Gather(gather...), nil
}

