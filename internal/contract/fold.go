package contract

import (
	"fmt"

	"github.com/born-ml/tensorized/internal/tensor"
)

// Fold contracts the factor chain left to right with the plan's step and
// returns the result with both boundary ranks still present, shaped
// (first rank, merged modes..., last rank).
func (p *Plan) Fold(factors []*tensor.Tensor) (*tensor.Tensor, error) {
	if len(factors) == 0 {
		return nil, fmt.Errorf("contract: no factors to fold")
	}

	eq := p.Equation()
	res := factors[0]
	if res.Ndim() != len(p.modes)+2 {
		return nil, fmt.Errorf("contract: factor 0 has shape %v, expected %d axes", res.Shape(), len(p.modes)+2)
	}
	for k, f := range factors[1:] {
		out, err := p.OutputShape(res.Shape(), f.Shape())
		if err != nil {
			return nil, fmt.Errorf("factor %d: %w", k+1, err)
		}
		res = tensor.Einsum(eq, res, f).Reshape(out...)
	}
	return res, nil
}

// FoldSqueezed folds the chain and drops the two boundary ranks, which must
// both be 1.
func (p *Plan) FoldSqueezed(factors []*tensor.Tensor) (*tensor.Tensor, error) {
	res, err := p.Fold(factors)
	if err != nil {
		return nil, err
	}
	s := res.Shape()
	if s[0] != 1 || s[len(s)-1] != 1 {
		return nil, fmt.Errorf("contract: boundary ranks of %v are not 1", s)
	}
	return res.Squeeze(0).Squeeze(-1), nil
}
