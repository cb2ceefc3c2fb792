package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/SeamusWaldron/cubeless"
	"github.com/SeamusWaldron/cubeless/internal/config"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

// resetFlags restores every flag to its default so commands run in one
// process do not see each other's flags.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

type testEnv struct {
	dir    string
	config string
	db     string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	dir := t.TempDir()
	return &testEnv{
		dir:    dir,
		config: filepath.Join(dir, "config.yaml"),
		db:     filepath.Join(dir, "cubeless.db"),
	}
}

// run executes the command line and returns stdout.
func (e *testEnv) run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(append([]string{"--config", e.config, "--db", e.db}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func (e *testEnv) mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := e.run(t, args...)
	require.NoError(t, err, "cubeless %s", strings.Join(args, " "))
	return out
}

func TestApply(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "apply", "R")
	assert.Equal(t, "State:  UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB\nSolved: false\n", out)

	out = env.mustRun(t, "apply", "--state", "UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB", "R'")
	assert.Contains(t, out, "State:  "+cubeless.SolvedString)
	assert.Contains(t, out, "Solved: true")
}

func TestApply_Orient(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "apply", "--orient", "x y")
	assert.Contains(t, out, "Orient: z' y'")
	assert.Contains(t, out, "State:  "+cubeless.SolvedString)
}

func TestApply_Net(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "apply", "--net", "R U R' U'")
	c := cubeless.NewCube()
	c.Apply(cubeless.SexyMove...)
	assert.True(t, strings.HasSuffix(out, "\n\n"+c.Net()))
}

func TestApply_BadState(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "apply", "--state", "UUU", "R")
	assert.ErrorIs(t, err, cubeless.ErrInvalidFacelets)
}

func TestCanonicalize(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "canonicalize", "R", "R", "R U x", "U'", "U")
	assert.Equal(t, "Solution: R' U x\nMoves:    2\n", out)
}

func TestOrient(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "orient", "--state", "FFFFFFFFFRRRRRRRRRDDDDDDDDDBBBBBBBBBLLLLLLLLLUUUUUUUUU")
	assert.Contains(t, out, "Orient: x'")
	assert.Contains(t, out, cubeless.SolvedString)

	out = env.mustRun(t, "orient", "--state", cubeless.SolvedString)
	assert.Contains(t, out, "Orient: (none)")
}

func TestScramble_Seeded(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "scramble", "--seed", "7", "--length", "12")
	want := cubeless.RandomScramble(rand.New(rand.NewSource(7)), 12)
	assert.Contains(t, out, "Scramble: "+want+"\n")

	c := cubeless.NewCube()
	c.ApplyAlgorithm(want)
	assert.Contains(t, out, "State:  "+c.String())
}

func TestScramble_LengthFromConfig(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "config", "set", "scramble.length", "5")

	out := env.mustRun(t, "scramble")
	line := strings.SplitN(out, "\n", 2)[0]
	assert.Len(t, strings.Fields(strings.TrimPrefix(line, "Scramble:")), 5)
}

func TestSolve_NoSolverConfigured(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "solve", "--scramble", "R")
	assert.ErrorIs(t, err, cubeless.ErrNoSolver)
}

func TestConfiguredSolver(t *testing.T) {
	s := configuredSolver(config.SolverConfig{}, zap.NewNop())
	assert.True(t, s == nil, "expected an untyped nil solver, got %T", s)

	// A nil solver is reported unwrapped by the session.
	_, err := cubeless.NewSession().Solve(context.Background(), s)
	assert.Equal(t, cubeless.ErrNoSolver, err)

	s = configuredSolver(config.SolverConfig{Command: "kociemba"}, zap.NewNop())
	assert.NotNil(t, s)
}

func TestSolve_ExternalCommand(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	env := newTestEnv(t)

	script := filepath.Join(env.dir, "solver.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nread state\necho \"R'\"\n"), 0755))
	env.mustRun(t, "config", "set", "solver.command", script)

	out := env.mustRun(t, "solve", "--scramble", "R", "--verify")
	assert.Contains(t, out, "Solution: R'\n")
	assert.Contains(t, out, "Solved:   true\n")
}

func TestConfigShow(t *testing.T) {
	env := newTestEnv(t)
	env.mustRun(t, "config", "set", "settings.cancel_solution", "false")

	out := env.mustRun(t, "config", "show")
	assert.Contains(t, out, "# "+env.config)
	assert.Contains(t, out, "settings.cancel_solution: false\n")
	assert.Contains(t, out, "scramble.length: 20\n")
}

func TestConfigSet_UnknownKey(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.run(t, "config", "set", "colors.up", "white")
	assert.ErrorContains(t, err, "unknown config key")
}

func seedSession(t *testing.T, env *testEnv) string {
	t.Helper()
	db, err := storage.Open(env.db)
	require.NoError(t, err)
	defer db.Close()

	sess := cubeless.NewSession()
	sess.ApplyScramble("R")
	start := sess.Cube().String()
	sess.SetRecording(true)
	sess.Press("R'")

	started := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)
	id, err := storage.NewSessionRepository(db).Create(storage.NewSessionRecord(sess, start, started))
	require.NoError(t, err)
	return id
}

func TestSessions_Empty(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "sessions", "list")
	assert.Equal(t, "No sessions recorded\n", out)
}

func TestSessions_ListShowDelete(t *testing.T) {
	env := newTestEnv(t)
	id := seedSession(t, env)

	out := env.mustRun(t, "sessions", "list")
	assert.Contains(t, out, id)
	assert.Contains(t, out, "true")

	out = env.mustRun(t, "sessions", "show", id)
	assert.Contains(t, out, "Scramble: R\n")
	assert.Contains(t, out, "Solution: R' (1 moves)\n")

	out = env.mustRun(t, "sessions", "delete", id)
	assert.Equal(t, "Deleted session "+id+"\n", out)

	_, err := env.run(t, "sessions", "show", id)
	assert.ErrorContains(t, err, "session not found")
	_, err = env.run(t, "sessions", "delete", id)
	assert.ErrorContains(t, err, "session not found")
}

func TestSessions_Export(t *testing.T) {
	env := newTestEnv(t)
	id := seedSession(t, env)

	out := env.mustRun(t, "sessions", "export", id)
	var rec storage.SessionRecord
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, id, rec.SessionID)
	assert.Equal(t, []string{"R'"}, rec.Moves)

	out = env.mustRun(t, "sessions", "export", id, "--format", "yaml")
	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, id, doc["session_id"])
	assert.Equal(t, "R", doc["scramble"])

	path := filepath.Join(env.dir, "out.json")
	env.mustRun(t, "sessions", "export", id, "-o", path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), id)

	_, err = env.run(t, "sessions", "export", id, "--format", "csv")
	assert.ErrorContains(t, err, "unknown format")
}

func TestSessions_Stats(t *testing.T) {
	env := newTestEnv(t)

	out := env.mustRun(t, "sessions", "stats")
	assert.Equal(t, "Sessions:    0 (0 solved, 0%)\n", out)

	id := seedSession(t, env)
	out = env.mustRun(t, "sessions", "stats")
	assert.Contains(t, out, "Sessions:    1 (1 solved, 100%)\n")
	assert.Contains(t, out, "Efficiency:  100.0% of pressed moves kept\n")
	assert.Contains(t, out, "Best:        1 moves ("+id+")\n")
}
