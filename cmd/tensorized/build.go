package main

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/born-ml/tensorized/backend/cpu"
	"github.com/born-ml/tensorized/factorized"
	"github.com/born-ml/tensorized/internal/config"
)

// build allocates the decomposition described by a.
func build(a decompositionArgs) (factorized.Factorized, error) {
	opts := []factorized.Option{
		factorized.WithBackend(cpu.NewWithConfig(config.Parallel())),
		factorized.WithInit(rand.New(rand.NewPCG(a.seed, a.seed+1)), 1),
	}

	switch strings.ToLower(a.kind) {
	case "blocktt", "block-tt", "btt":
		if len(a.batched) > 0 {
			opts = append(opts, factorized.WithBatchedDim(a.batched...))
		}
		return factorized.NewBlockTT(a.tshape, a.spec, opts...)
	case "cp":
		return factorized.NewCP(a.tshape, a.spec, opts...)
	case "tucker":
		return factorized.NewTucker(a.tshape, a.spec, opts...)
	default:
		return nil, fmt.Errorf("unknown decomposition %q (want blocktt, cp or tucker)", a.kind)
	}
}

// rankOf renders the rank of f.
func rankOf(f factorized.Factorized) string {
	switch f := f.(type) {
	case *factorized.CP:
		return fmt.Sprint(f.Rank())
	case *factorized.BlockTT:
		return fmt.Sprint(f.Rank())
	case *factorized.Tucker:
		return fmt.Sprint(f.Rank())
	default:
		return "-"
	}
}
