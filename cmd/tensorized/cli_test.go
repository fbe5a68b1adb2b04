package main

import (
	"bytes"
	"context"
	"math/rand/v2"
	"testing"

	"github.com/born-ml/tensorized/factorized"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewCLI()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "tensorized "+version+"\n", out)
}

func TestEnv(t *testing.T) {
	t.Setenv("TENSORIZED_NUM_WORKERS", "3")
	out, err := execute(t, "env")
	require.NoError(t, err)
	assert.Contains(t, out, "TENSORIZED_NUM_WORKERS")
	assert.Contains(t, out, "TENSORIZED_SEED")
}

func TestInspect(t *testing.T) {
	out, err := execute(t, "inspect", "--shape", "(2,3),4", "--rank", "1,2,1")
	require.NoError(t, err)
	assert.Contains(t, out, "BlockTT (2,3),4")
	assert.Contains(t, out, "FACTOR")
	// (1,2,4,2) + (2,3,4,1) entries.
	assert.Contains(t, out, "40 parameters for 24 entries")
}

func TestInspectIndex(t *testing.T) {
	out, err := execute(t, "inspect", "--shape", "(2,3),4", "--rank", "2", "--index", "0, :")
	require.NoError(t, err)
	assert.Contains(t, out, "[0, :] -> dense shape (4)")

	out, err = execute(t, "inspect", "--kind", "cp", "--shape", "(2,3),4", "--rank", "2", "--index", "1, 2")
	require.NoError(t, err)
	assert.Contains(t, out, "[1, 2] -> scalar")

	out, err = execute(t, "inspect", "--kind", "tucker", "--shape", "(2,3),4", "--rank", "2", "--index", ":, [0,3]")
	require.NoError(t, err)
	assert.Contains(t, out, "-> Tucker (2,3),2")
}

func TestInspectErrors(t *testing.T) {
	_, err := execute(t, "inspect", "--kind", "hosvd")
	assert.Error(t, err)

	_, err = execute(t, "inspect", "--shape", "(2,3")
	assert.Error(t, err)

	_, err = execute(t, "inspect", "--index", "7")
	assert.ErrorIs(t, err, factorized.ErrIndexOutOfRange)
}

func TestCheck(t *testing.T) {
	for _, kind := range []string{"blocktt", "cp", "tucker"} {
		t.Run(kind, func(t *testing.T) {
			out, err := execute(t, "check", "--kind", kind, "--shape", "(2,3),4,(2,2)", "--rank", "2", "--trials", "16")
			require.NoError(t, err)
			assert.Contains(t, out, "16/16 trials within")
		})
	}
}

func TestCheckBatched(t *testing.T) {
	out, err := execute(t, "check", "--shape", "3,(2,2),4", "--rank", "2", "--batched", "0,2", "--trials", "8", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, out, "MAX ERROR")
	assert.Contains(t, out, "8/8 trials within")
}

func TestRandomIndexIsValid(t *testing.T) {
	tshape := factorized.Shape{factorized.Group(2, 3), factorized.Dim(4), factorized.Group(2, 2)}
	rng := rand.New(rand.NewPCG(1, 1))
	for range 200 {
		idx := randomIndex(rng, tshape)
		require.LessOrEqual(t, len(idx), len(tshape))

		full := factorized.ToShape(tshape)
		_, err := factorized.IndexDense(zeros(full), tshape, idx...)
		require.NoError(t, err, factorized.FormatIndex(idx))
	}
}
