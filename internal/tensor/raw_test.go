package tensor

import (
	"testing"
)

func TestNewRaw(t *testing.T) {
	shape := Shape{3, 4}
	raw, err := NewRaw(shape)
	if err != nil {
		t.Fatalf("NewRaw failed: %v", err)
	}

	if !raw.Shape().Equal(shape) {
		t.Errorf("Shape = %v, want %v", raw.Shape(), shape)
	}

	if raw.NumElements() != 12 {
		t.Errorf("NumElements = %d, want 12", raw.NumElements())
	}

	for i, v := range raw.Data() {
		if v != 0 {
			t.Fatalf("Data()[%d] = %v, want 0", i, v)
		}
	}
}

func TestNewRawInvalidShape(t *testing.T) {
	if _, err := NewRaw(Shape{3, 0}); err == nil {
		t.Error("NewRaw with zero dimension should fail")
	}
}

func TestNewRawFromLengthMismatch(t *testing.T) {
	if _, err := NewRawFrom([]float64{1, 2, 3}, Shape{2, 2}); err == nil {
		t.Error("NewRawFrom with wrong element count should fail")
	}
}

func TestRawTensorView(t *testing.T) {
	raw, _ := NewRawFrom([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})

	view, err := raw.View(Shape{3, 2})
	if err != nil {
		t.Fatalf("View failed: %v", err)
	}
	assertEqualShape(t, Shape{3, 2}, view.Shape(), "View shape")

	// Views share storage.
	if &view.Data()[0] != &raw.Data()[0] {
		t.Error("View should share the underlying buffer")
	}

	if _, err := raw.View(Shape{4}); err == nil {
		t.Error("View with different element count should fail")
	}
}

func TestRawTensorClone(t *testing.T) {
	raw, _ := NewRawFrom([]float64{1, 2, 3, 4}, Shape{2, 2})

	clone := raw.Clone()
	clone.Data()[0] = 42

	if raw.Data()[0] != 1 {
		t.Error("Clone should not share storage with the original")
	}
	assertEqualShape(t, raw.Shape(), clone.Shape(), "Clone shape")
}
