package rank

import (
	"fmt"
	"math"

	"github.com/born-ml/tensorized/internal/shape"
)

// ValidateCPRank returns the CP rank for a tensor of the given shape.
//
// A fraction f gives round(prod(shape) * f / sum(shape)), the rank whose
// factors hold about f times as many parameters as the full tensor.
func ValidateCPRank(shape []int, spec Spec) (int, error) {
	switch {
	case spec.isFraction():
		r := int(spec.Rounding.apply(prod(shape) * spec.fraction / sum(shape)))
		return max(r, 1), nil
	case spec.kind == kindInt:
		if spec.n <= 0 {
			return 0, fmt.Errorf("%w: CP rank %d must be positive", ErrShapeMismatch, spec.n)
		}
		return spec.n, nil
	default:
		if len(spec.explicit) != 1 {
			return 0, fmt.Errorf("%w: CP rank must be a single integer, got %v", ErrShapeMismatch, spec.explicit)
		}
		return ValidateCPRank(shape, Int(spec.explicit[0]))
	}
}

// ValidateTuckerRank returns one rank per mode of shape.
//
// A fraction f solves prod(shape)*x^N + sum(shape^2)*x = f*prod(shape) for
// the scaling x of every mode (core plus factor parameters), then rounds
// s*x per mode with a minimum of 1.
func ValidateTuckerRank(shape []int, spec Spec) ([]int, error) {
	n := len(shape)
	switch {
	case spec.isFraction():
		total := prod(shape)
		var squared float64
		for _, s := range shape {
			squared += float64(s) * float64(s)
		}
		f := func(x float64) float64 {
			return total*math.Pow(x, float64(n)) + squared*x - spec.fraction*total
		}
		x := bisect(f, 0, math.Max(spec.fraction, 1))
		out := make([]int, n)
		for i, s := range shape {
			out[i] = max(int(spec.Rounding.apply(float64(s)*x)), 1)
		}
		return out, nil
	case spec.kind == kindInt:
		out := make([]int, n)
		for i := range out {
			out[i] = spec.n
		}
		return out, checkPositive(out)
	default:
		if len(spec.explicit) != n {
			return nil, fmt.Errorf("%w: Tucker rank %v has %d entries for %d modes",
				ErrShapeMismatch, spec.explicit, len(spec.explicit), n)
		}
		return append([]int(nil), spec.explicit...), checkPositive(spec.explicit)
	}
}

// ValidateTTRank returns the len(shape)+1 tensor-train ranks, with boundary
// ranks of 1.
//
// A fraction f picks ranks proportional to the average size of the two
// neighbouring modes so the cores hold about f times the parameters of the
// full tensor.
func ValidateTTRank(shape []int, spec Spec) ([]int, error) {
	order := len(shape)
	if order == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrShapeMismatch)
	}

	switch {
	case spec.isFraction():
		if order == 1 {
			return []int{1, 1}, nil
		}
		avg := make([]float64, order-1)
		for i := range avg {
			avg[i] = float64(shape[i]+shape[i+1]) / 2
		}
		var a float64
		if len(avg) > 1 {
			for i := 1; i < order-1; i++ {
				a += avg[i-1] * float64(shape[i]) * avg[i]
			}
		} else {
			a = avg[0] * avg[0] * float64(shape[0])
		}
		b := float64(shape[0])*avg[0] + float64(shape[order-1])*avg[order-2]
		c := -prod(shape) * spec.fraction
		delta := math.Sqrt(b*b - 4*a*c)
		x := (-b + delta) / (2 * a)

		out := make([]int, order+1)
		out[0], out[order] = 1, 1
		for i, d := range avg {
			out[i+1] = max(1, int(spec.Rounding.apply(d*x)))
		}
		return out, nil
	case spec.kind == kindInt:
		out := make([]int, order+1)
		for i := range out {
			out[i] = spec.n
		}
		out[0], out[order] = 1, 1
		return out, checkPositive(out)
	default:
		r := spec.explicit
		if len(r) != order+1 {
			return nil, fmt.Errorf("%w: TT rank %v must have %d entries for %d modes",
				ErrShapeMismatch, r, order+1, order)
		}
		if r[0] != 1 || r[order] != 1 {
			return nil, fmt.Errorf("%w: TT boundary ranks must be 1, got %v", ErrShapeMismatch, r)
		}
		return append([]int(nil), r...), checkPositive(r)
	}
}

// bisect finds a root of the increasing function f on [lo, hi].
func bisect(f func(float64) float64, lo, hi float64) float64 {
	for i := 0; i < 200 && hi-lo > 1e-12; i++ {
		mid := (lo + hi) / 2
		if f(mid) > 0 {
			hi = mid
		} else {
			lo = mid
		}
	}
	return (lo + hi) / 2
}

// ValidateBlockTTRank returns the ranks of a block tensor-train over tshape.
//
// Factor k spans the k-th underlying axis of every grouped mode and the whole
// of every ungrouped mode, so the per-factor size is the product of those.
// A shape without grouped modes is treated as a single grouped mode.
func ValidateBlockTTRank(tshape shape.Tensorized, spec Spec) ([]int, error) {
	sizes, err := FactorSizes(tshape)
	if err != nil {
		return nil, err
	}
	return ValidateTTRank(sizes, spec)
}

// FactorSizes returns, per block tensor-train factor, the product of the
// sizes that factor spans.
func FactorSizes(tshape shape.Tensorized) ([]int, error) {
	if err := tshape.Validate(); err != nil {
		return nil, err
	}
	if len(tshape) == 0 {
		return nil, fmt.Errorf("%w: empty shape", ErrShapeMismatch)
	}
	if !shape.IsTensorized(tshape) {
		return shape.Flatten(tshape), nil
	}

	n := 0
	for i, m := range tshape {
		if !m.Grouped {
			continue
		}
		if n != 0 && m.Len() != n {
			return nil, fmt.Errorf("%w: grouped mode %d has %d axes, expected %d",
				ErrShapeMismatch, i, m.Len(), n)
		}
		n = m.Len()
	}

	sizes := make([]int, n)
	for k := range sizes {
		sizes[k] = 1
		for _, m := range tshape {
			if m.Grouped {
				sizes[k] *= m.Dims[k]
			} else {
				sizes[k] *= m.Dims[0]
			}
		}
	}
	return sizes, nil
}
