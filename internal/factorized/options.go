package factorized

import (
	"log/slog"
	"math/rand/v2"

	"github.com/born-ml/tensorized/internal/backend/cpu"
	"github.com/born-ml/tensorized/internal/config"
	"github.com/born-ml/tensorized/internal/tensor"
)

type options struct {
	backend   tensor.Backend
	logger    *slog.Logger
	rng       *rand.Rand
	std       float64
	batched   []int
	nMatrices []int
}

// Option configures the constructors of this package.
type Option func(*options)

// WithBackend sets the backend factors are allocated on.
// Default: a CPU backend configured from the environment.
func WithBackend(b tensor.Backend) Option {
	return func(o *options) { o.backend = b }
}

// WithLogger sets the logger used for advisories and debug output.
// Default: slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithInit draws initial factor entries from N(0, std²) using rng.
// Default: std 1 and a generator seeded from TENSORIZED_SEED.
func WithInit(rng *rand.Rand, std float64) Option {
	return func(o *options) {
		o.rng = rng
		o.std = std
	}
}

// WithBatchedDim marks modes (by position) as batched.
func WithBatchedDim(modes ...int) Option {
	return func(o *options) { o.batched = append(o.batched, modes...) }
}

// WithNMatrices appends plain modes of the given sizes to a Tucker shape,
// one per stacked matrix dimension.
func WithNMatrices(sizes ...int) Option {
	return func(o *options) { o.nMatrices = append(o.nMatrices, sizes...) }
}

func buildOptions(opts []Option) *options {
	o := &options{std: 1}
	for _, opt := range opts {
		opt(o)
	}
	if o.backend == nil {
		o.backend = cpu.NewWithConfig(config.Parallel())
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.rng == nil {
		seed := config.Seed()
		o.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
	return o
}
