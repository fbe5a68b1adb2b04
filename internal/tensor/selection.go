package tensor

import "fmt"

type selectionKind int

const (
	selectAll selectionKind = iota
	selectAt
	selectPick
)

// Selection describes how Gather treats one axis of its input: keep it whole,
// drop it by fixing a single coordinate, or replace it by an explicit list of
// coordinates (advanced indexing).
type Selection struct {
	kind  selectionKind
	at    int
	picks []int
}

// All keeps the axis unchanged.
func All() Selection {
	return Selection{kind: selectAll}
}

// At fixes the axis to coordinate i and removes it from the output.
func At(i int) Selection {
	return Selection{kind: selectAt, at: i}
}

// Pick replaces the axis by the listed coordinates, in order.
func Pick(indices ...int) Selection {
	return Selection{kind: selectPick, picks: indices}
}

// IsAll reports whether the selection keeps the whole axis.
func (s Selection) IsAll() bool {
	return s.kind == selectAll
}

// Drops reports whether the selection removes the axis.
func (s Selection) Drops() bool {
	return s.kind == selectAt
}

// Coordinate returns the fixed coordinate of an At selection.
func (s Selection) Coordinate() int {
	return s.at
}

// Picks returns the coordinates of a Pick selection.
func (s Selection) Picks() []int {
	return s.picks
}

// OutputSize returns the size the axis has after the selection, or 0 if the
// axis is dropped.
func (s Selection) OutputSize(size int) int {
	switch s.kind {
	case selectAt:
		return 0
	case selectPick:
		return len(s.picks)
	default:
		return size
	}
}

// String implements fmt.Stringer.
func (s Selection) String() string {
	switch s.kind {
	case selectAt:
		return fmt.Sprint(s.at)
	case selectPick:
		return fmt.Sprint(s.picks)
	default:
		return ":"
	}
}
