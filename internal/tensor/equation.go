package tensor

import (
	"fmt"
	"strings"
)

// Label names one index of a contraction equation. Labels are small
// non-negative integers; equal labels on different operands are the same
// index.
type Label int

// String renders the label as a letter (a-z, then A-Z) or, past the
// alphabet, as {n}.
func (l Label) String() string {
	switch {
	case l < 0:
		return fmt.Sprintf("{%d}", int(l))
	case l < 26:
		return string(rune('a' + l))
	case l < 52:
		return string(rune('A' + l - 26))
	default:
		return fmt.Sprintf("{%d}", int(l))
	}
}

// Equation is an einsum-style contraction: one label list per input operand
// and one for the output. Labels absent from Output are summed over; labels
// present in Output and in several inputs are batched (aligned).
type Equation struct {
	Inputs [][]Label
	Output []Label
}

// String renders the equation in the familiar "ab,bc->ac" notation.
func (e Equation) String() string {
	var sb strings.Builder
	for i, in := range e.Inputs {
		if i > 0 {
			sb.WriteByte(',')
		}
		for _, l := range in {
			sb.WriteString(l.String())
		}
	}
	sb.WriteString("->")
	for _, l := range e.Output {
		sb.WriteString(l.String())
	}
	return sb.String()
}

// Sizes checks the operand shapes against the equation and returns the size
// bound to every label.
func (e Equation) Sizes(shapes ...Shape) (map[Label]int, error) {
	if len(shapes) != len(e.Inputs) {
		return nil, fmt.Errorf("einsum %s: expected %d operands, got %d", e, len(e.Inputs), len(shapes))
	}

	sizes := make(map[Label]int)
	for i, labels := range e.Inputs {
		if len(labels) != len(shapes[i]) {
			return nil, fmt.Errorf("einsum %s: operand %d has %d axes, equation lists %d",
				e, i, len(shapes[i]), len(labels))
		}
		for axis, l := range labels {
			size := shapes[i][axis]
			if prev, ok := sizes[l]; ok && prev != size {
				return nil, fmt.Errorf("einsum %s: label %s bound to sizes %d and %d", e, l, prev, size)
			}
			sizes[l] = size
		}
	}

	seen := make(map[Label]bool, len(e.Output))
	for _, l := range e.Output {
		if _, ok := sizes[l]; !ok {
			return nil, fmt.Errorf("einsum %s: output label %s not present in any input", e, l)
		}
		if seen[l] {
			return nil, fmt.Errorf("einsum %s: output label %s repeated", e, l)
		}
		seen[l] = true
	}
	return sizes, nil
}

// Contracted returns the labels that are summed over, in first-seen order.
func (e Equation) Contracted() []Label {
	out := make(map[Label]bool, len(e.Output))
	for _, l := range e.Output {
		out[l] = true
	}

	var contracted []Label
	seen := make(map[Label]bool)
	for _, labels := range e.Inputs {
		for _, l := range labels {
			if !out[l] && !seen[l] {
				seen[l] = true
				contracted = append(contracted, l)
			}
		}
	}
	return contracted
}
