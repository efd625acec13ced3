package tape

import (
	"testing"

	"github.com/stretchr/testify/require"

	"hanoi-lite/hanoi"
)

func TestGenerateRecordsFullSolve(t *testing.T) {
	tp, err := Generate(SolveSpec{Disks: 4, Label: "four"})
	require.NoError(t, err)
	require.Equal(t, TapeVersion, tp.TapeVersion)
	require.NotEmpty(t, tp.SolveID)
	require.Equal(t, "four", tp.Label)
	require.Equal(t, "forward", tp.Direction)
	require.Len(t, tp.Steps, int(hanoi.TotalMoves(4)))

	first := tp.Steps[0]
	require.Equal(t, uint64(1), first.Seq)
	require.Equal(t, "smallestDisk", first.Kind)
	require.Equal(t, "start", first.From)
	require.Equal(t, "middle", first.To)

	last := tp.Steps[len(tp.Steps)-1]
	require.Equal(t, []int{4, 3, 2, 1}, last.Poles[hanoi.PoleEnd])
	require.Zero(t, last.Gaps)
}

func TestGenerateMovesAreDeterministic(t *testing.T) {
	a, err := Generate(SolveSpec{Disks: 5})
	require.NoError(t, err)
	b, err := Generate(SolveSpec{Disks: 5})
	require.NoError(t, err)

	// Solve IDs differ per run; the recorded moves must not.
	require.NotEqual(t, a.SolveID, b.SolveID)
	require.Equal(t, a.Steps, b.Steps)
}

func TestGenerateZeroDisks(t *testing.T) {
	tp, err := Generate(SolveSpec{Disks: 0})
	require.NoError(t, err)
	require.Empty(t, tp.Steps)
	require.Equal(t, "forward", tp.Direction)
}

func TestStepAllocStaysBounded(t *testing.T) {
	require.Equal(t, 7, stepAlloc(hanoi.TotalMoves(3)))
	require.Equal(t, maxStepAlloc, stepAlloc(hanoi.TotalMoves(hanoi.MaxDisks)))
}

func TestGenerateRejectsBadSpec(t *testing.T) {
	_, err := Generate(SolveSpec{Disks: -2})
	require.Error(t, err)
	tapeErr, ok := err.(*TapeError)
	require.True(t, ok, "expected *TapeError, got %T", err)
	require.Equal(t, "engine_init_failed", tapeErr.Reason)
	require.Equal(t, -1, tapeErr.StepIndex)
}
