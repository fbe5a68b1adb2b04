// Package contract builds the einsum plan that folds a chain of block
// tensor-train factors into a dense tensor.
//
// Every fold step contracts the accumulated result (first rank, modes...,
// link rank) with the next factor (link rank, modes..., last rank). Each
// surviving mode contributes one or two labels, depending on its role:
//
//	Batched:  same label on both operands and the output (aligned axis)
//	Multiply: one label per operand, both kept in the output and merged
//	          into a single axis of size acc*cur by a reshape
//
// The link rank carries the only summed label.
package contract

import (
	"fmt"
	"strings"

	"github.com/born-ml/tensorized/internal/tensor"
)

// Role says how a mode axis behaves in a fold step.
type Role int

// Mode and rank roles.
const (
	Batched Role = iota
	Multiply
	Contracted
)

// String implements fmt.Stringer.
func (r Role) String() string {
	switch r {
	case Batched:
		return "batched"
	case Multiply:
		return "multiply"
	case Contracted:
		return "contracted"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Operand identifies one side of a fold step.
type Operand int

// Fold step operands.
const (
	Accumulated Operand = iota
	Current
	Output
)

// String implements fmt.Stringer.
func (o Operand) String() string {
	switch o {
	case Accumulated:
		return "acc"
	case Current:
		return "cur"
	case Output:
		return "out"
	default:
		return fmt.Sprintf("Operand(%d)", int(o))
	}
}

// Allocator hands out fresh labels in increasing order.
type Allocator struct {
	next tensor.Label
}

// Next returns an unused label.
func (a *Allocator) Next() tensor.Label {
	l := a.next
	a.next++
	return l
}

// Axis is one labelled axis of one operand in the plan.
type Axis struct {
	Operand  Operand
	Position int
	Label    tensor.Label
	Role     Role
}

type mode struct {
	role     Role
	acc, cur tensor.Label
}

// Plan is the fold step for a chain over a fixed sequence of surviving
// modes. The zero value is not usable; create plans with New.
type Plan struct {
	alloc             Allocator
	first, link, last tensor.Label
	modes             []mode
}

// New returns an empty plan. The three rank labels are allocated first so
// mode labels start at 'd'.
func New() *Plan {
	p := &Plan{}
	p.first = p.alloc.Next()
	p.link = p.alloc.Next()
	p.last = p.alloc.Next()
	return p
}

// AddBatched appends a mode aligned across the chain.
func (p *Plan) AddBatched() {
	l := p.alloc.Next()
	p.modes = append(p.modes, mode{role: Batched, acc: l, cur: l})
}

// AddMultiply appends a mode whose size multiplies along the chain.
func (p *Plan) AddMultiply() {
	acc := p.alloc.Next()
	cur := p.alloc.Next()
	p.modes = append(p.modes, mode{role: Multiply, acc: acc, cur: cur})
}

// NumModes returns the number of surviving modes.
func (p *Plan) NumModes() int {
	return len(p.modes)
}

// Roles returns the role of every surviving mode in order.
func (p *Plan) Roles() []Role {
	out := make([]Role, len(p.modes))
	for i, m := range p.modes {
		out[i] = m.role
	}
	return out
}

// Axes lists every (operand, axis, label, role) entry of the fold step.
func (p *Plan) Axes() []Axis {
	var axes []Axis
	eq := p.Equation()
	for op, labels := range append(eq.Inputs, eq.Output) {
		for pos, l := range labels {
			axes = append(axes, Axis{Operand: Operand(op), Position: pos, Label: l, Role: p.roleOf(l)})
		}
	}
	return axes
}

func (p *Plan) roleOf(l tensor.Label) Role {
	if l == p.link {
		return Contracted
	}
	for _, m := range p.modes {
		if m.acc == l || m.cur == l {
			return m.role
		}
	}
	return Batched
}

// Equation renders the fold step.
func (p *Plan) Equation() tensor.Equation {
	acc := []tensor.Label{p.first}
	cur := []tensor.Label{p.link}
	out := []tensor.Label{p.first}
	for _, m := range p.modes {
		acc = append(acc, m.acc)
		cur = append(cur, m.cur)
		out = append(out, m.acc)
		if m.role == Multiply {
			out = append(out, m.cur)
		}
	}
	acc = append(acc, p.link)
	cur = append(cur, p.last)
	out = append(out, p.last)
	return tensor.Equation{Inputs: [][]tensor.Label{acc, cur}, Output: out}
}

// String renders the fold step as "adb,bdc->adc".
func (p *Plan) String() string {
	return p.Equation().String()
}

// OutputShape returns the shape of a fold step's result after Multiply axes
// are merged: (acc rank, merged modes..., cur rank).
func (p *Plan) OutputShape(acc, cur tensor.Shape) (tensor.Shape, error) {
	want := len(p.modes) + 2
	if len(acc) != want || len(cur) != want {
		return nil, fmt.Errorf("contract: operands %v and %v do not have %d axes", acc, cur, want)
	}
	if acc[want-1] != cur[0] {
		return nil, fmt.Errorf("contract: link rank %d does not match %d", acc[want-1], cur[0])
	}

	out := make(tensor.Shape, want)
	out[0] = acc[0]
	for i, m := range p.modes {
		a, c := acc[i+1], cur[i+1]
		switch m.role {
		case Multiply:
			out[i+1] = a * c
		default:
			if a != c {
				return nil, fmt.Errorf("contract: batched mode %d has sizes %d and %d", i, a, c)
			}
			out[i+1] = a
		}
	}
	out[want-1] = cur[want-1]
	return out, nil
}

// Describe renders one line per mode, for debug logging.
func (p *Plan) Describe() string {
	var sb strings.Builder
	for i, m := range p.modes {
		if i > 0 {
			sb.WriteString(", ")
		}
		if m.role == Multiply {
			fmt.Fprintf(&sb, "%s%s:%s", m.acc, m.cur, m.role)
		} else {
			fmt.Fprintf(&sb, "%s:%s", m.acc, m.role)
		}
	}
	return sb.String()
}
