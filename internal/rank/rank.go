// Package rank validates rank specifications for CP, Tucker, tensor-train
// and block tensor-train decompositions, turning a requested Spec into
// concrete ranks.
package rank

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrShapeMismatch is returned when a rank is incompatible with the shape.
var ErrShapeMismatch = errors.New("rank incompatible with shape")

type kind int

const (
	kindSame kind = iota
	kindFraction
	kindInt
	kindExplicit
)

// Rounding selects how fractional ranks are turned into integers.
type Rounding int

// Supported rounding modes.
const (
	Round Rounding = iota
	Floor
	Ceil
)

func (r Rounding) apply(x float64) float64 {
	switch r {
	case Floor:
		return math.Floor(x)
	case Ceil:
		return math.Ceil(x)
	default:
		return math.Round(x)
	}
}

// Spec is a requested rank: "same" (as many parameters as the full tensor),
// a fraction of the full tensor's parameter count, a single integer, or an
// explicit per-mode list.
type Spec struct {
	kind     kind
	fraction float64
	n        int
	explicit []int

	Rounding Rounding
}

// Same requests a decomposition with roughly as many parameters as the full
// tensor. Equivalent to Fraction(1).
func Same() Spec { return Spec{kind: kindSame, fraction: 1} }

// Fraction requests roughly f times the parameters of the full tensor.
func Fraction(f float64) Spec { return Spec{kind: kindFraction, fraction: f} }

// Int requests the integer rank n (repeated per mode where needed).
func Int(n int) Spec { return Spec{kind: kindInt, n: n} }

// Explicit requests the exact ranks r.
func Explicit(r ...int) Spec { return Spec{kind: kindExplicit, explicit: append([]int(nil), r...)} }

// WithRounding returns a copy of s using the given rounding mode.
func (s Spec) WithRounding(r Rounding) Spec {
	s.Rounding = r
	return s
}

func (s Spec) isFraction() bool {
	return s.kind == kindSame || s.kind == kindFraction
}

// String renders the spec the way Parse reads it.
func (s Spec) String() string {
	switch s.kind {
	case kindSame:
		return "same"
	case kindFraction:
		return strconv.FormatFloat(s.fraction, 'g', -1, 64)
	case kindInt:
		return strconv.Itoa(s.n)
	default:
		parts := make([]string, len(s.explicit))
		for i, r := range s.explicit {
			parts[i] = strconv.Itoa(r)
		}
		return strings.Join(parts, ",")
	}
}

// Parse reads "same", a fraction ("0.5"), an integer ("4") or a comma
// separated list ("1,3,1").
func Parse(s string) (Spec, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "same":
		return Same(), nil
	case strings.Contains(s, ","):
		var r []int
		for _, field := range strings.Split(s, ",") {
			v, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil {
				return Spec{}, fmt.Errorf("rank %q: %w", s, err)
			}
			r = append(r, v)
		}
		return Explicit(r...), nil
	case strings.ContainsAny(s, ".eE"):
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Spec{}, fmt.Errorf("rank %q: %w", s, err)
		}
		return Fraction(f), nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return Spec{}, fmt.Errorf("rank %q: %w", s, err)
		}
		return Int(n), nil
	}
}

func prod(shape []int) float64 {
	p := 1.0
	for _, s := range shape {
		p *= float64(s)
	}
	return p
}

func sum(shape []int) float64 {
	var t float64
	for _, s := range shape {
		t += float64(s)
	}
	return t
}

func checkPositive(r []int) error {
	for i, v := range r {
		if v <= 0 {
			return fmt.Errorf("%w: rank %d at position %d must be positive", ErrShapeMismatch, v, i)
		}
	}
	return nil
}
