package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/cubeless"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.True(t, cfg.Settings.CancelSolution)
	assert.False(t, cfg.Settings.ManualScramble)
	assert.Equal(t, cubeless.DefaultScrambleLength, cfg.Scramble.Length)
	assert.Equal(t, 10*time.Second, cfg.Solver.Timeout)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte(`
logging:
  level: debug
settings:
  cancel_solution: false
scramble:
  length: 25
solver:
  command: kociemba
  args: ["--fast"]
  timeout: 3s
`)
	require.NoError(t, os.WriteFile(path, data, 0644))
	t.Setenv("CUBELESS_SCRAMBLE_LENGTH", "30")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.False(t, cfg.Settings.CancelSolution)
	assert.Equal(t, 30, cfg.Scramble.Length)
	assert.Equal(t, "kociemba", cfg.Solver.Command)
	assert.Equal(t, []string{"--fast"}, cfg.Solver.Args)
	assert.Equal(t, 3*time.Second, cfg.Solver.Timeout)
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: loud\n"), 0644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "logging.level")
}

func TestSet_PersistsTypedValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	require.NoError(t, Set(path, "settings.cancel_solution", "false"))
	require.NoError(t, Set(path, "scramble.length", "12"))
	require.NoError(t, Set(path, "solver.args", "-a  -b"))
	require.NoError(t, Set(path, "solver.timeout", "1m"))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.False(t, cfg.Settings.CancelSolution)
	assert.Equal(t, 12, cfg.Scramble.Length)
	assert.Equal(t, []string{"-a", "-b"}, cfg.Solver.Args)
	assert.Equal(t, time.Minute, cfg.Solver.Timeout)
}

func TestSet_Rejects(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	assert.ErrorContains(t, Set(path, "colors.up", "white"), "unknown config key")
	assert.Error(t, Set(path, "settings.cancel_solution", "maybe"))
	assert.Error(t, Set(path, "scramble.length", "0"))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err), "rejected values are not written")
}

func TestKeys_Sorted(t *testing.T) {
	names := Keys()
	assert.Len(t, names, len(keys))
	assert.IsNonDecreasing(t, names)
}

func TestNewLogger(t *testing.T) {
	for _, format := range []string{"console", "json"} {
		logger, err := NewLogger(LoggingConfig{Level: "error", Format: format})
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(-1), "%s logger should drop debug", format)
	}
}

func TestSessionOptions(t *testing.T) {
	cfg := Default()
	cfg.Settings.CancelSolution = false

	sess := cubeless.NewSession(cfg.SessionOptions(nil)...)
	sess.SetRecording(true)
	sess.Press("R")
	sess.Press("R'")
	assert.Equal(t, []string{"R", "R'"}, sess.Solution())
}
