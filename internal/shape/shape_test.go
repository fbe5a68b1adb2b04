package shape

import (
	"testing"

	"github.com/born-ml/tensorized/internal/tensor"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTensorized(t *testing.T) {
	assert.False(t, IsTensorized(FromFlat(4, 5)))
	assert.True(t, IsTensorized(Tensorized{Group(2, 3), Dim(4)}))
	assert.True(t, IsTensorized(Tensorized{Group(6)}))
}

func TestToShape(t *testing.T) {
	tests := []struct {
		in   Tensorized
		want tensor.Shape
	}{
		{Tensorized{Group(2, 3), Dim(4)}, tensor.Shape{6, 4}},
		{FromFlat(4, 5), tensor.Shape{4, 5}},
		{Tensorized{Group(2, 2, 2), Group(3, 1, 5)}, tensor.Shape{8, 15}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ToShape(tt.in), "ToShape(%v)", tt.in)
	}
}

func TestFlatten(t *testing.T) {
	got := Flatten(Tensorized{Group(2, 3), Dim(4), Group(5)})
	if diff := cmp.Diff([]int{2, 3, 4, 5}, got); diff != "" {
		t.Errorf("Flatten mismatch (-want +got):\n%s", diff)
	}
}

func TestMaxGroupLen(t *testing.T) {
	assert.Equal(t, 3, MaxGroupLen(Tensorized{Group(2, 3, 4), Dim(4)}))
	assert.Equal(t, 1, MaxGroupLen(FromFlat(3, 3)))
}

func TestValidate(t *testing.T) {
	require.NoError(t, Tensorized{Group(2, 3), Dim(4)}.Validate())

	bad := []Tensorized{
		{Mode{Grouped: true}},
		{Dim(0)},
		{Group(2, -1)},
		{Mode{Dims: []int{2, 3}}},
	}
	for _, s := range bad {
		assert.ErrorIs(t, s.Validate(), ErrInvalidShape, "Validate(%#v)", s)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Tensorized
	}{
		{"(2,3),4", Tensorized{Group(2, 3), Dim(4)}},
		{" 4 , 5 ", FromFlat(4, 5)},
		{"(2,)", Tensorized{Group(2)}},
		{"3,(2, 2),(4,1)", Tensorized{Dim(3), Group(2, 2), Group(4, 1)}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.in)
		require.NoError(t, err, "Parse(%q)", tt.in)
		assert.True(t, tt.want.Equal(got), "Parse(%q) = %v, want %v", tt.in, got, tt.want)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"", "(2,3", "a,4", "(2,x)", "(2)(3)", "()", "0"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalidShape, "Parse(%q)", in)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, in := range []string{"(2,3),4", "4,5", "(2,),3"} {
		s, err := Parse(in)
		require.NoError(t, err)
		assert.Equal(t, in, s.String())
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := Tensorized{Group(2, 3)}
	c := s.Clone()
	c[0].Dims[0] = 7
	assert.Equal(t, 2, s[0].Dims[0])
}
