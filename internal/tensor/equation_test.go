package tensor

import (
	"testing"
)

func TestLabelString(t *testing.T) {
	tests := []struct {
		label Label
		want  string
	}{
		{0, "a"},
		{3, "d"},
		{25, "z"},
		{26, "A"},
		{51, "Z"},
		{52, "{52}"},
	}

	for _, tt := range tests {
		if got := tt.label.String(); got != tt.want {
			t.Errorf("Label(%d).String() = %q, want %q", int(tt.label), got, tt.want)
		}
	}
}

func TestEquationString(t *testing.T) {
	eq := Equation{
		Inputs: [][]Label{{0, 3, 1}, {1, 3, 2}},
		Output: []Label{0, 3, 2},
	}
	if got := eq.String(); got != "adb,bdc->adc" {
		t.Errorf("String() = %q, want %q", got, "adb,bdc->adc")
	}
}

func TestEquationSizes(t *testing.T) {
	eq := Equation{
		Inputs: [][]Label{{0, 1}, {1, 2}},
		Output: []Label{0, 2},
	}

	sizes, err := eq.Sizes(Shape{2, 3}, Shape{3, 4})
	if err != nil {
		t.Fatalf("Sizes failed: %v", err)
	}
	if sizes[0] != 2 || sizes[1] != 3 || sizes[2] != 4 {
		t.Errorf("Sizes = %v, want a=2 b=3 c=4", sizes)
	}

	if _, err := eq.Sizes(Shape{2, 3}, Shape{5, 4}); err == nil {
		t.Error("Sizes with mismatched shared label should fail")
	}
	if _, err := eq.Sizes(Shape{2, 3}); err == nil {
		t.Error("Sizes with missing operand should fail")
	}
	if _, err := eq.Sizes(Shape{2, 3, 1}, Shape{3, 4}); err == nil {
		t.Error("Sizes with wrong operand rank should fail")
	}

	bad := Equation{Inputs: [][]Label{{0}}, Output: []Label{1}}
	if _, err := bad.Sizes(Shape{2}); err == nil {
		t.Error("Sizes with unknown output label should fail")
	}
}

func TestEquationContracted(t *testing.T) {
	eq := Equation{
		Inputs: [][]Label{{0, 3, 1}, {1, 3, 2}},
		Output: []Label{0, 3, 2},
	}
	got := eq.Contracted()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("Contracted() = %v, want [1]", got)
	}
}

func TestSelectionOutputSize(t *testing.T) {
	tests := []struct {
		sel  Selection
		size int
		want int
	}{
		{All(), 5, 5},
		{At(2), 5, 0},
		{Pick(0, 4, 4), 5, 3},
	}

	for _, tt := range tests {
		if got := tt.sel.OutputSize(tt.size); got != tt.want {
			t.Errorf("%v.OutputSize(%d) = %d, want %d", tt.sel, tt.size, got, tt.want)
		}
	}
}
