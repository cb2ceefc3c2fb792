package solver

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/SeamusWaldron/cubeless"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExec_EchoesState(t *testing.T) {
	requireShell(t)
	s := New("cat", nil, time.Second, zaptest.NewLogger(t))

	got, err := s.Solve(context.Background(), cubeless.SolvedString)
	require.NoError(t, err)
	assert.Equal(t, cubeless.SolvedString, got)
}

func TestExec_FirstLineOnly(t *testing.T) {
	requireShell(t)
	s := New("sh", []string{"-c", "read state; echo \"R U R'\"; echo ignored"}, time.Second, zaptest.NewLogger(t))

	got, err := s.Solve(context.Background(), cubeless.SolvedString)
	require.NoError(t, err)
	assert.Equal(t, "R U R'", got)
}

func TestExec_EmptyOutputIsNotAnError(t *testing.T) {
	requireShell(t)
	s := New("sh", []string{"-c", "cat >/dev/null"}, time.Second, zaptest.NewLogger(t))

	got, err := s.Solve(context.Background(), cubeless.SolvedString)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestExec_Failure(t *testing.T) {
	requireShell(t)
	s := New("sh", []string{"-c", "echo bad state >&2; exit 3"}, time.Second, zaptest.NewLogger(t))

	_, err := s.Solve(context.Background(), cubeless.SolvedString)
	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 3, exitErr.ExitCode())
}

func TestExec_Timeout(t *testing.T) {
	requireShell(t)
	s := New("sh", []string{"-c", "exec sleep 5"}, 50*time.Millisecond, zaptest.NewLogger(t))

	_, err := s.Solve(context.Background(), cubeless.SolvedString)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestNew_EmptyCommand(t *testing.T) {
	s := New("", nil, 0, nil)
	assert.Nil(t, s)

	_, err := s.Solve(context.Background(), cubeless.SolvedString)
	assert.ErrorIs(t, err, cubeless.ErrNoSolver)
}
