package factorized

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/tensorized/internal/contract"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
)

// BlockTT is a block tensor-train over a tensorized shape whose grouped
// modes all have the same number n of underlying axes.
//
// Factor k has shape (rank[k], d_{0,k}, ..., d_{m-1,k}, rank[k+1]) with one
// axis per mode: the k-th underlying axis of a grouped mode, or the whole of
// a plain mode. Plain modes are batched along the chain: the same index is
// used in every factor.
type BlockTT struct {
	factors []*tensor.Tensor
	tshape  shape.Tensorized
	rank    []int
	batched []bool
	logger  *slog.Logger
}

// normalizeBlockTTShape turns a shape without grouped modes into a single
// grouped mode holding every axis (a tensorized vector).
func normalizeBlockTTShape(tshape shape.Tensorized, logger *slog.Logger) shape.Tensorized {
	if shape.IsTensorized(tshape) {
		return tshape.Clone()
	}
	logger.Warn("flat tensorized shape, treating it as a tensorized vector; use a tensor-train for a plain tensor",
		"shape", tshape.String())
	return shape.Tensorized{shape.Group(shape.Flatten(tshape)...)}
}

// factorShape returns the (rank[k], modes..., rank[k+1]) shape of factor k.
func factorShape(tshape shape.Tensorized, ranks []int, k int) tensor.Shape {
	s := make(tensor.Shape, 0, len(tshape)+2)
	s = append(s, ranks[k])
	for _, m := range tshape {
		if m.Grouped {
			s = append(s, m.Dims[k])
		} else {
			s = append(s, m.Dims[0])
		}
	}
	return append(s, ranks[k+1])
}

func batchedFlags(tshape shape.Tensorized, modes []int) ([]bool, error) {
	flags := make([]bool, len(tshape))
	for _, m := range modes {
		if m < 0 || m >= len(tshape) {
			return nil, fmt.Errorf("%w: mode %d not in [0, %d)", ErrInvalidBatchedDim, m, len(tshape))
		}
		if tshape[m].Grouped {
			return nil, fmt.Errorf("%w: mode %d is grouped %s", ErrInvalidBatchedDim, m, tshape[m])
		}
		flags[m] = true
	}
	return flags, nil
}

// NewBlockTT allocates a randomly initialised block tensor-train of tshape.
func NewBlockTT(tshape shape.Tensorized, spec rank.Spec, opts ...Option) (*BlockTT, error) {
	o := buildOptions(opts)
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if len(tshape) == 0 {
		return nil, fmt.Errorf("%w: empty tensorized shape", ErrShapeMismatch)
	}

	batched, err := batchedFlags(tshape, o.batched)
	if err != nil {
		return nil, err
	}
	if !shape.IsTensorized(tshape) {
		batched = []bool{false}
	}
	tshape = normalizeBlockTTShape(tshape, o.logger)

	ranks, err := rank.ValidateBlockTTRank(tshape, spec)
	if err != nil {
		return nil, err
	}

	factors := make([]*tensor.Tensor, len(ranks)-1)
	for k := range factors {
		factors[k] = tensor.Randn(factorShape(tshape, ranks, k), o.rng, o.std, o.backend)
	}
	o.logger.Debug("new block tensor-train", "shape", tshape.String(), "rank", ranks)

	return &BlockTT{factors: factors, tshape: tshape, rank: ranks, batched: batched, logger: o.logger}, nil
}

// FromBlockTTFactors wraps existing factors. Batched may be nil.
func FromBlockTTFactors(factors []*tensor.Tensor, tshape shape.Tensorized, ranks []int, batched []bool, opts ...Option) (*BlockTT, error) {
	o := buildOptions(opts)
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if batched == nil {
		batched = make([]bool, len(tshape))
	}
	if len(batched) != len(tshape) {
		return nil, fmt.Errorf("%w: %d batched flags for %d modes", ErrInvalidBatchedDim, len(batched), len(tshape))
	}
	for m, b := range batched {
		if b && tshape[m].Grouped {
			return nil, fmt.Errorf("%w: mode %d is grouped %s", ErrInvalidBatchedDim, m, tshape[m])
		}
	}
	if !shape.IsTensorized(tshape) {
		batched = []bool{false}
	}
	tshape = normalizeBlockTTShape(tshape, o.logger)

	sizes, err := rank.FactorSizes(tshape)
	if err != nil {
		return nil, err
	}
	n := len(sizes)
	if len(factors) != n {
		return nil, fmt.Errorf("%w: %d factors for %d blocks", ErrInvalidFactors, len(factors), n)
	}
	if len(ranks) != n+1 || ranks[0] != 1 || ranks[n] != 1 {
		return nil, fmt.Errorf("%w: rank %v must have %d entries with boundary ranks 1", ErrInvalidFactors, ranks, n+1)
	}
	for k, f := range factors {
		if want := factorShape(tshape, ranks, k); !f.Shape().Equal(want) {
			return nil, fmt.Errorf("%w: factor %d has shape %v, expected %v", ErrInvalidFactors, k, f.Shape(), want)
		}
	}

	return &BlockTT{
		factors: append([]*tensor.Tensor(nil), factors...),
		tshape:  tshape,
		rank:    append([]int(nil), ranks...),
		batched: append([]bool(nil), batched...),
		logger:  o.logger,
	}, nil
}

// Name implements Factorized.
func (tt *BlockTT) Name() string { return "BlockTT" }

// Rank returns the n+1 chain ranks.
func (tt *BlockTT) Rank() []int { return append([]int(nil), tt.rank...) }

// Batched returns the per-mode batched flags.
func (tt *BlockTT) Batched() []bool { return append([]bool(nil), tt.batched...) }

// Factors implements Factorized.
func (tt *BlockTT) Factors() []*tensor.Tensor { return tt.factors }

// Shape implements Factorized.
func (tt *BlockTT) Shape() tensor.Shape { return shape.ToShape(tt.tshape) }

// TensorizedShape implements Factorized.
func (tt *BlockTT) TensorizedShape() shape.Tensorized { return tt.tshape.Clone() }

// ToTensor implements Factorized.
//
// Without plain modes the chain is contracted pairwise over the shared rank
// (factor-major axes), permuted to mode-major order and reshaped. Plain modes
// are batched along the chain and go through the einsum fold instead.
func (tt *BlockTT) ToTensor() *tensor.Tensor {
	plain := false
	for _, m := range tt.tshape {
		plain = plain || !m.Grouped
	}
	if plain {
		plan := contract.New()
		for _, m := range tt.tshape {
			if m.Grouped {
				plan.AddMultiply()
			} else {
				plan.AddBatched()
			}
		}
		res, err := plan.FoldSqueezed(tt.factors)
		if err != nil {
			panic(fmt.Sprintf("blocktt: %v", err))
		}
		return res.Reshape(tt.Shape()...)
	}

	res := tt.factors[0]
	for _, f := range tt.factors[1:] {
		res = res.Tensordot(f, 1)
	}
	res = res.Squeeze(0).Squeeze(-1)

	n, m := len(tt.factors), len(tt.tshape)
	order := make([]int, 0, n*m)
	for j := 0; j < m; j++ {
		for k := 0; k < n; k++ {
			order = append(order, k*m+j)
		}
	}
	return res.Transpose(order...).Reshape(tt.Shape()...)
}
