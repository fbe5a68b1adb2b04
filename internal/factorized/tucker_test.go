package factorized

import (
	"testing"

	"github.com/born-ml/tensorized/internal/backend/cpu"
	"github.com/born-ml/tensorized/internal/index"
	"github.com/born-ml/tensorized/internal/rank"
	"github.com/born-ml/tensorized/internal/shape"
	"github.com/born-ml/tensorized/internal/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTucker(t *testing.T) {
	tshape := shape.Tensorized{shape.Group(2, 3), shape.Dim(4)}
	tk, err := NewTucker(tshape, rank.Explicit(2, 2, 3, 2), append(testOptions(), WithNMatrices(5))...)
	require.NoError(t, err)

	assert.True(t, tk.TensorizedShape().Equal(shape.Tensorized{shape.Group(2, 3), shape.Dim(4), shape.Dim(5)}))
	assert.Equal(t, []int{2, 2, 3, 2}, tk.Rank())
	assert.Equal(t, tensor.Shape{6, 4, 5}, tk.Shape())
	require.Len(t, tk.Factors(), 4)
	assert.Equal(t, tensor.Shape{3, 2}, tk.Factors()[1].Shape())
	assert.Equal(t, "Tucker", tk.Name())

	_, err = NewTucker(tshape, rank.Explicit(2, 2), testOptions()...)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

func TestTuckerToTensor(t *testing.T) {
	tshape := shape.Tensorized{shape.Group(2, 3), shape.Dim(4)}
	tk, err := NewTucker(tshape, rank.Explicit(2, 3, 2), testOptions()...)
	require.NoError(t, err)
	assertTensorsClose(t, tuckerOracle(t, tk), tk.ToTensor())
}

func TestTuckerGetItem(t *testing.T) {
	tshape := shape.Tensorized{shape.Group(2, 3), shape.Dim(4), shape.Group(2, 2)}
	tk, err := NewTucker(tshape, rank.Int(2), testOptions()...)
	require.NoError(t, err)
	full := tk.ToTensor()

	tests := []struct {
		name  string
		idx   []index.Index
		dense bool
	}{
		{"empty", nil, false},
		{"plain point", []index.Index{index.Full{}, index.Point(2)}, false},
		{"plain slice", []index.Index{index.Full{}, index.Span(1, 3)}, false},
		{"grouped point", []index.Index{index.Point(5)}, false},
		{"grouped list", []index.Index{index.Of(4, 0, 2)}, false},
		{"mixed", []index.Index{index.Of(1), index.Point(0), index.SpanStep(3, 0, -2)}, false},
		{"all points", []index.Index{index.Point(2), index.Point(1), index.Point(3)}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tk.GetItem(tc.idx...)
			require.NoError(t, err)

			_, isDense := res.Dense()
			assert.Equal(t, tc.dense, isDense)

			want, err := IndexDense(full, tshape, tc.idx...)
			require.NoError(t, err)
			assertTensorsClose(t, want, res.ToTensor())
		})
	}
}

func TestTuckerGroupedListMergesCore(t *testing.T) {
	tshape := shape.Tensorized{shape.Group(2, 3), shape.Dim(4)}
	tk, err := NewTucker(tshape, rank.Explicit(2, 3, 2), testOptions()...)
	require.NoError(t, err)

	res, err := tk.GetItem(index.Of(0, 5))
	require.NoError(t, err)
	f, ok := res.Factorized()
	require.True(t, ok)

	sub := f.(*Tucker)
	assert.Equal(t, []int{6, 2}, sub.Rank())
	assert.Equal(t, tensor.Shape{2, 6}, sub.Factors()[0].Shape())
	assert.True(t, sub.TensorizedShape().Equal(shape.Tensorized{shape.Dim(2), shape.Dim(4)}))
}

func TestFromTuckerFactors(t *testing.T) {
	backend := cpu.New()
	tshape := shape.FromFlat(2, 3)
	core := tensor.Arange(tensor.Shape{2, 2}, backend)
	f0 := tensor.Ones(tensor.Shape{2, 2}, backend)
	f1 := tensor.Arange(tensor.Shape{3, 2}, backend)

	tk, err := FromTuckerFactors(core, []*tensor.Tensor{f0, f1}, tshape)
	require.NoError(t, err)
	assertTensorsClose(t, tuckerOracle(t, tk), tk.ToTensor())

	_, err = FromTuckerFactors(core, []*tensor.Tensor{f1, f0}, tshape)
	assert.ErrorIs(t, err, ErrInvalidFactors)

	_, err = FromTuckerFactors(core, []*tensor.Tensor{f0}, tshape)
	assert.ErrorIs(t, err, ErrInvalidFactors)
}
