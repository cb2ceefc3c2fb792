// Package solver runs an external program as a cubeless.Solver.
package solver

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeless"
)

// Exec solves by running Command with Args. The 54-character facelet
// string is written to the program's stdin followed by a newline, and the
// first line of its stdout is taken as the solution.
type Exec struct {
	Command string
	Args    []string
	Timeout time.Duration
	Logger  *zap.Logger
}

var _ cubeless.Solver = (*Exec)(nil)

// New returns an Exec solver, or nil if command is empty.
func New(command string, args []string, timeout time.Duration, logger *zap.Logger) *Exec {
	if command == "" {
		return nil
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Exec{Command: command, Args: args, Timeout: timeout, Logger: logger}
}

// Solve implements cubeless.Solver.
func (e *Exec) Solve(ctx context.Context, facelets string) (string, error) {
	if e == nil || e.Command == "" {
		return "", cubeless.ErrNoSolver
	}

	if e.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, e.Command, e.Args...)
	cmd.Stdin = strings.NewReader(facelets + "\n")
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	logger := e.logger()
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("solver %s: %w", e.Command, ctx.Err())
		}
		logger.Warn("solver failed",
			zap.String("command", e.Command),
			zap.String("stderr", strings.TrimSpace(stderr.String())),
			zap.Error(err),
		)
		return "", fmt.Errorf("solver %s: %w", e.Command, err)
	}

	line, _ := bufio.NewReader(&stdout).ReadString('\n')
	logger.Debug("solver finished",
		zap.String("command", e.Command),
		zap.Duration("elapsed", time.Since(start)),
	)
	return strings.TrimSpace(line), nil
}

func (e *Exec) logger() *zap.Logger {
	if e.Logger == nil {
		return zap.NewNop()
	}
	return e.Logger
}
