package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	got, err := Parse("0, :, 1:3, ::-1, [0, 2,-1], (), -2")
	require.NoError(t, err)
	require.Len(t, got, 7)

	assert.Equal(t, Point(0), got[0])
	assert.Equal(t, Full{}, got[1])
	assert.Equal(t, "1:3", got[2].String())
	assert.Equal(t, "::-1", got[3].String())
	assert.Equal(t, Of(0, 2, -1), got[4])
	assert.Equal(t, Full{}, got[5])
	assert.Equal(t, Point(-2), got[6])
}

func TestParseEmpty(t *testing.T) {
	got, err := Parse("  ")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestParseFullSliceForms(t *testing.T) {
	for _, in := range []string{":", "::", "::1", "()"} {
		got, err := Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, []Index{Full{}}, got, in)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"x", "[1,2", "[]", "1:2:3:4", "::0", "a:2", "[1,b]"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrInvalid, "Parse(%q)", in)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	in := "0, :, 1:3, [0,2]"
	got, err := Parse(in)
	require.NoError(t, err)
	assert.Equal(t, in, Format(got))
}
