package factorized

import (
	"github.com/born-ml/tensorized/internal/contract"
	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

// GetItem implements Factorized.
//
// Per mode:
//
//	plain, point        the mode axis is removed from every factor
//	plain, other        rows are selected in every factor (batched)
//	grouped, Full       the mode is kept and multiplies along the chain
//	grouped, point      each factor keeps its unravelled coordinate
//	grouped, list/slice each factor keeps its unravelled coordinates (batched)
//
// If any grouped mode is indexed by something other than Full, the chain is
// folded into a dense tensor; otherwise the result is a smaller block
// tensor-train with the same ranks.
func (tt *BlockTT) GetItem(idx ...index.Index) (Result, error) {
	sels, err := resolve(tt.tshape, idx)
	if err != nil {
		return Result{}, err
	}

	n := len(tt.factors)
	gather := make([][]tensor.Selection, n)
	for k := range gather {
		gather[k] = make([]tensor.Selection, len(tt.tshape)+2)
		for a := range gather[k] {
			gather[k][a] = tensor.All()
		}
	}

	var (
		plan    = contract.New()
		dense   bool
		selects bool
		modes   shape.Tensorized
		batched []bool
	)
	for m, mode := range tt.tshape {
		sel := sels[m]
		axis := m + 1

		switch {
		case !mode.Grouped:
			if sel.kind != selFull {
				selects = true
				for k := range gather {
					gather[k][axis] = sel.selection()
				}
			}
			if sel.kind == selPoint {
				continue
			}
			plan.AddBatched()
			size := mode.Dims[0]
			if sel.kind == selList {
				size = len(sel.positions)
			}
			modes = append(modes, shape.Dim(size))
			batched = append(batched, tt.batched[m])

		case sel.kind == selFull:
			plan.AddMultiply()
			modes = append(modes, mode)
			batched = append(batched, false)

		default:
			dense, selects = true, true
			coords := sel.coords(mode.Dims)
			for k := range gather {
				if sel.kind == selPoint {
					gather[k][axis] = tensor.At(coords[k][0])
				} else {
					gather[k][axis] = tensor.Pick(coords[k]...)
				}
			}
			if sel.kind == selList {
				plan.AddBatched()
				modes = append(modes, shape.Dim(len(sel.positions)))
				batched = append(batched, false)
			}
		}
	}

	factors := tt.factors
	if selects {
		factors = make([]*tensor.Tensor, n)
		for k, f := range tt.factors {
			factors[k] = f.Gather(gather[k]...)
		}
	}

	if !dense {
		return factorizedResult(&BlockTT{
			factors: factors,
			tshape:  modes,
			rank:    tt.rank,
			batched: batched,
			logger:  tt.logger,
		}), nil
	}

	tt.logger.Debug("block tensor-train index folded", "index", index.Format(idx), "step", plan.String())
	res, err := plan.FoldSqueezed(factors)
	if err != nil {
		return Result{}, err
	}
	return denseResult(res.Reshape(shape.ToShape(modes)...)), nil
}
