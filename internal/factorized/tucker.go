package factorized

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

// Tucker is a tensorized Tucker decomposition: a core with one axis per
// factor and one (size, rank) factor per underlying axis.
type Tucker struct {
	core    *tensor.Tensor
	factors []*tensor.Tensor
	tshape  shape.Tensorized
}

// NewTucker allocates a randomly initialised Tucker decomposition of tshape.
// WithNMatrices appends plain modes to the shape.
func NewTucker(tshape shape.Tensorized, spec rank.Spec, opts ...Option) (*Tucker, error) {
	o := buildOptions(opts)
	tshape = tshape.Clone()
	for _, s := range o.nMatrices {
		tshape = append(tshape, shape.Dim(s))
	}
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if len(tshape) == 0 {
		return nil, fmt.Errorf("%w: empty tensorized shape", ErrShapeMismatch)
	}

	flat := shape.Flatten(tshape)
	ranks, err := rank.ValidateTuckerRank(flat, spec)
	if err != nil {
		return nil, err
	}

	factors := make([]*tensor.Tensor, len(flat))
	for i, s := range flat {
		factors[i] = tensor.Randn(tensor.Shape{s, ranks[i]}, o.rng, o.std, o.backend)
	}
	return &Tucker{
		core:    tensor.Randn(tensor.Shape(ranks), o.rng, o.std, o.backend),
		factors: factors,
		tshape:  tshape,
	}, nil
}

// FromTuckerFactors wraps an existing core and factors.
func FromTuckerFactors(core *tensor.Tensor, factors []*tensor.Tensor, tshape shape.Tensorized) (*Tucker, error) {
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	flat := shape.Flatten(tshape)
	if len(factors) != len(flat) || core.Ndim() != len(flat) {
		return nil, fmt.Errorf("%w: core %v and %d factors for %d underlying axes",
			ErrInvalidFactors, core.Shape(), len(factors), len(flat))
	}
	for i, f := range factors {
		if !f.Shape().Equal(tensor.Shape{flat[i], core.Shape()[i]}) {
			return nil, fmt.Errorf("%w: Tucker factor %d has shape %v, expected (%d, %d)",
				ErrInvalidFactors, i, f.Shape(), flat[i], core.Shape()[i])
		}
	}
	return &Tucker{core: core, factors: append([]*tensor.Tensor(nil), factors...), tshape: tshape.Clone()}, nil
}

// Name implements Factorized.
func (t *Tucker) Name() string { return "Tucker" }

// Core returns the core tensor.
func (t *Tucker) Core() *tensor.Tensor { return t.core }

// Rank returns the core shape.
func (t *Tucker) Rank() []int { return t.core.Shape().Clone() }

// Factors implements Factorized.
func (t *Tucker) Factors() []*tensor.Tensor { return t.factors }

// Shape implements Factorized.
func (t *Tucker) Shape() tensor.Shape { return shape.ToShape(t.tshape) }

// TensorizedShape implements Factorized.
func (t *Tucker) TensorizedShape() shape.Tensorized { return t.tshape.Clone() }

// ToTensor implements Factorized.
func (t *Tucker) ToTensor() *tensor.Tensor {
	// Labels 0..n-1 are the core axes, n..2n-1 the underlying axes.
	n := len(t.factors)
	eq := tensor.Equation{Inputs: [][]tensor.Label{make([]tensor.Label, n)}}
	for a := range t.factors {
		eq.Inputs[0][a] = tensor.Label(a)
		eq.Inputs = append(eq.Inputs, []tensor.Label{tensor.Label(n + a), tensor.Label(a)})
		eq.Output = append(eq.Output, tensor.Label(n+a))
	}
	operands := append([]*tensor.Tensor{t.core}, t.factors...)
	return tensor.Einsum(eq, operands...).Reshape(t.Shape()...)
}

// contractAxis sums core axis a against vec.
func contractAxis(core *tensor.Tensor, a int, vec *tensor.Tensor) *tensor.Tensor {
	in := make([]tensor.Label, core.Ndim())
	out := make([]tensor.Label, 0, core.Ndim()-1)
	for i := range in {
		in[i] = tensor.Label(i)
		if i != a {
			out = append(out, tensor.Label(i))
		}
	}
	eq := tensor.Equation{Inputs: [][]tensor.Label{in, {tensor.Label(a)}}, Output: out}
	return tensor.Einsum(eq, core, vec)
}

// rowKron returns, for (L, r_j) operands, the (L, prod r_j) tensor whose
// row i is the Kronecker product of the operands' rows i.
func rowKron(rows []*tensor.Tensor) *tensor.Tensor {
	eq := tensor.Equation{Output: []tensor.Label{0}}
	width := 1
	for j, r := range rows {
		eq.Inputs = append(eq.Inputs, []tensor.Label{0, tensor.Label(j + 1)})
		eq.Output = append(eq.Output, tensor.Label(j+1))
		width *= r.Shape()[1]
	}
	return tensor.Einsum(eq, rows...).Reshape(rows[0].Shape()[0], width)
}

// GetItem implements Factorized.
//
// A point contracts the matching core axes with the selected factor rows.
// Slices and lists on a plain mode select factor rows. A grouped mode indexed
// by a list merges its core axes into one and replaces its factors by a
// single factor of row-wise Kronecker products.
func (t *Tucker) GetItem(idx ...index.Index) (Result, error) {
	sels, err := resolve(t.tshape, idx)
	if err != nil {
		return Result{}, err
	}

	var (
		core  = t.core
		kept  []*tensor.Tensor
		modes shape.Tensorized
	)
	a, axis := 0, 0
	for m, mode := range t.tshape {
		sel := sels[m]
		axes := t.factors[a : a+mode.Len()]
		a += mode.Len()

		switch {
		case sel.kind == selFull:
			kept = append(kept, axes...)
			modes = append(modes, mode)
			axis += mode.Len()

		case sel.kind == selPoint:
			coords := sel.coords(mode.Dims)
			for k, f := range axes {
				core = contractAxis(core, axis, f.Gather(tensor.At(coords[k][0])))
			}

		case !mode.Grouped:
			kept = append(kept, axes[0].Gather(sel.selection()))
			modes = append(modes, shape.Dim(len(sel.positions)))
			axis++

		default:
			coords := sel.coords(mode.Dims)
			rows := make([]*tensor.Tensor, len(axes))
			for k, f := range axes {
				rows[k] = f.Gather(tensor.Pick(coords[k]...))
			}
			kept = append(kept, rowKron(rows))
			core = mergeAxes(core, axis, len(axes))
			modes = append(modes, shape.Dim(len(sel.positions)))
			axis++
		}
	}

	if len(kept) == 0 {
		return denseResult(core), nil
	}
	return factorizedResult(&Tucker{core: core, factors: kept, tshape: modes}), nil
}

// mergeAxes reshapes count adjacent axes starting at a into one.
func mergeAxes(t *tensor.Tensor, a, count int) *tensor.Tensor {
	s := t.Shape()
	merged := make([]int, 0, len(s)-count+1)
	merged = append(merged, s[:a]...)
	merged = append(merged, tensor.Shape(s[a:a+count]).NumElements())
	merged = append(merged, s[a+count:]...)
	return t.Reshape(merged...)
}
