package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeless"
	"github.com/SeamusWaldron/cubeless/internal/config"
	"github.com/SeamusWaldron/cubeless/internal/solver"
)

var (
	solveState    string
	solveScramble string
	solveVerify   bool
)

var solveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Ask the configured external solver for a solution",
	Long: `Send the 54-character facelet string to the external solver configured
with solver.command and print the solution it returns.

The solver receives the state on stdin followed by a newline and must print
the solution on the first line of stdout.

Examples:
  cubeless config set solver.command kociemba
  cubeless solve --scramble "R U R' F2"
  cubeless solve --state <facelets> --verify`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveState, "state", "", "Facelet string to solve (default: solved)")
	solveCmd.Flags().StringVar(&solveScramble, "scramble", "", "Algorithm applied before solving")
	solveCmd.Flags().BoolVar(&solveVerify, "verify", false, "Apply the solution and report whether it solves the cube")
}

// configuredSolver returns the external solver, or a nil Solver when no
// command is set so the session reports ErrNoSolver itself.
func configuredSolver(sc config.SolverConfig, logger *zap.Logger) cubeless.Solver {
	if sc.Command == "" {
		return nil
	}
	return solver.New(sc.Command, sc.Args, sc.Timeout, logger)
}

func runSolve(cmd *cobra.Command, args []string) error {
	c, err := startCube(solveState)
	if err != nil {
		return err
	}
	sess, err := cubeless.RestoreSession(cubeless.Snapshot{Facelets: c.String()}, cfg.SessionOptions(logger)...)
	if err != nil {
		return err
	}
	sess.Apply(solveScramble)

	solution, err := sess.Solve(cmd.Context(), configuredSolver(cfg.Solver, logger))
	if errors.Is(err, cubeless.ErrNoSolver) {
		return fmt.Errorf("%w: set one with 'cubeless config set solver.command <program>'", err)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "State:    %s\n", sess.Cube().String())
	fmt.Fprintf(out, "Solution: %s\n", solution)

	if solveVerify {
		sess.Apply(solution)
		fmt.Fprintf(out, "Solved:   %t\n", sess.IsSolved())
	}
	return nil
}
