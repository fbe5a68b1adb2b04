package factorized

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

// CP is a tensorized CP decomposition: weights of length R and one (size, R)
// factor per underlying axis of the tensorized shape.
//
//	T[c_0, ..., c_{n-1}] = sum_r w[r] * prod_a F_a[c_a, r]
//
// where c_a are the underlying coordinates after unravelling grouped modes.
type CP struct {
	weights *tensor.Tensor
	factors []*tensor.Tensor
	tshape  shape.Tensorized
	rank    int
}

// NewCP allocates a randomly initialised CP decomposition of tshape.
func NewCP(tshape shape.Tensorized, spec rank.Spec, opts ...Option) (*CP, error) {
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if len(tshape) == 0 {
		return nil, fmt.Errorf("%w: empty tensorized shape", ErrShapeMismatch)
	}
	o := buildOptions(opts)

	flat := shape.Flatten(tshape)
	r, err := rank.ValidateCPRank(flat, spec)
	if err != nil {
		return nil, err
	}

	factors := make([]*tensor.Tensor, len(flat))
	for i, s := range flat {
		factors[i] = tensor.Randn(tensor.Shape{s, r}, o.rng, o.std, o.backend)
	}
	return &CP{
		weights: tensor.Ones(tensor.Shape{r}, o.backend),
		factors: factors,
		tshape:  tshape.Clone(),
		rank:    r,
	}, nil
}

// FromCPFactors wraps existing weights and factors.
func FromCPFactors(weights *tensor.Tensor, factors []*tensor.Tensor, tshape shape.Tensorized) (*CP, error) {
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if weights.Ndim() != 1 {
		return nil, fmt.Errorf("%w: CP weights must be 1-D, got %v", ErrInvalidFactors, weights.Shape())
	}
	r := weights.Shape()[0]

	flat := shape.Flatten(tshape)
	if len(flat) != len(factors) {
		return nil, fmt.Errorf("%w: %d factors for %d underlying axes", ErrInvalidFactors, len(factors), len(flat))
	}
	for i, f := range factors {
		if !f.Shape().Equal(tensor.Shape{flat[i], r}) {
			return nil, fmt.Errorf("%w: CP factor %d has shape %v, expected (%d, %d)",
				ErrInvalidFactors, i, f.Shape(), flat[i], r)
		}
	}
	return &CP{
		weights: weights,
		factors: append([]*tensor.Tensor(nil), factors...),
		tshape:  tshape.Clone(),
		rank:    r,
	}, nil
}

// Name implements Factorized.
func (cp *CP) Name() string { return "CP" }

// Rank returns the number of components.
func (cp *CP) Rank() int { return cp.rank }

// Weights returns the component weights.
func (cp *CP) Weights() *tensor.Tensor { return cp.weights }

// Factors implements Factorized.
func (cp *CP) Factors() []*tensor.Tensor { return cp.factors }

// Shape implements Factorized.
func (cp *CP) Shape() tensor.Shape { return shape.ToShape(cp.tshape) }

// TensorizedShape implements Factorized.
func (cp *CP) TensorizedShape() shape.Tensorized { return cp.tshape.Clone() }

// ToTensor implements Factorized.
func (cp *CP) ToTensor() *tensor.Tensor {
	// Label 0 is the rank, label a+1 the a-th underlying axis.
	eq := tensor.Equation{Inputs: [][]tensor.Label{{0}}}
	for a := range cp.factors {
		eq.Inputs = append(eq.Inputs, []tensor.Label{tensor.Label(a + 1), 0})
		eq.Output = append(eq.Output, tensor.Label(a+1))
	}
	operands := append([]*tensor.Tensor{cp.weights}, cp.factors...)
	return tensor.Einsum(eq, operands...).Reshape(cp.Shape()...)
}

// GetItem implements Factorized.
//
// Indexing a plain mode by a point folds the selected factor row into the
// weights; slices and lists keep the selected rows. A grouped mode indexed
// by anything but Full becomes one combined factor whose rows are the
// products of the per-axis rows of each unravelled position (folded into
// the weights for a point). When every mode is folded the result is the 0-D
// sum of the weights.
func (cp *CP) GetItem(idx ...index.Index) (Result, error) {
	sels, err := resolve(cp.tshape, idx)
	if err != nil {
		return Result{}, err
	}

	var (
		kept  []*tensor.Tensor
		modes shape.Tensorized
		folds []*tensor.Tensor
	)
	a := 0
	for m, mode := range cp.tshape {
		sel := sels[m]
		axes := cp.factors[a : a+mode.Len()]
		a += mode.Len()

		switch {
		case sel.kind == selFull:
			kept = append(kept, axes...)
			modes = append(modes, mode)
		case !mode.Grouped:
			row := axes[0].Gather(sel.selection())
			if sel.kind == selPoint {
				folds = append(folds, row)
			} else {
				kept = append(kept, row)
				modes = append(modes, shape.Dim(len(sel.positions)))
			}
		default:
			coords := sel.coords(mode.Dims)
			var combined *tensor.Tensor
			for k, f := range axes {
				var rows *tensor.Tensor
				if sel.kind == selPoint {
					rows = f.Gather(tensor.At(coords[k][0]))
				} else {
					rows = f.Gather(tensor.Pick(coords[k]...))
				}
				if combined == nil {
					combined = rows
				} else {
					combined = combined.Mul(rows)
				}
			}
			if sel.kind == selPoint {
				folds = append(folds, combined)
			} else {
				kept = append(kept, combined)
				modes = append(modes, shape.Dim(len(sel.positions)))
			}
		}
	}

	weights := cp.weights
	for _, row := range folds {
		weights = weights.Mul(row)
	}

	if len(kept) == 0 {
		return denseResult(weights.Sum()), nil
	}
	return factorizedResult(&CP{weights: weights, factors: kept, tshape: modes, rank: cp.rank}), nil
}
