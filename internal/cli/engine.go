package cli

import (
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeless"
)

var (
	applyState  string
	applyOrient bool
	applyNet    bool

	orientState string

	scrambleLength int
	scrambleSeed   int64
	scrambleNet    bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <algorithm>...",
	Short: "Apply an algorithm and print the resulting state",
	Long: `Apply an algorithm to a cube and print the 54-character facelet string.

Unrecognized text between moves is skipped. The cube starts solved unless
--state gives a facelet string.

Examples:
  cubeless apply "R U R' U'"
  cubeless apply --net x2 M2 E
  cubeless apply --state UUFUUFUUFRRRRRRRRRFFDFFDFFDDDBDDBDDBLLLLLLLLLUBBUBBUBB R'`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

var canonicalizeCmd = &cobra.Command{
	Use:     "canonicalize <move>...",
	Aliases: []string{"simplify"},
	Short:   "Merge and cancel adjacent moves on the same face",
	Long: `Simplify a move list by merging neighbouring turns of the same face or
rotation axis. Moves may be given as separate arguments or one quoted string.

Example:
  cubeless canonicalize R R R U x U' U`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCanonicalize,
}

var orientCmd = &cobra.Command{
	Use:   "orient",
	Short: "Rotate a cube so white is up and green is front",
	Args:  cobra.NoArgs,
	RunE:  runOrient,
}

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a random scramble",
	Args:  cobra.NoArgs,
	RunE:  runScramble,
}

func init() {
	rootCmd.AddCommand(applyCmd)
	applyCmd.Flags().StringVar(&applyState, "state", "", "Starting facelet string (default: solved)")
	applyCmd.Flags().BoolVar(&applyOrient, "orient", false, "Normalize orientation after applying")
	applyCmd.Flags().BoolVar(&applyNet, "net", false, "Print the unfolded cube")

	rootCmd.AddCommand(canonicalizeCmd)

	rootCmd.AddCommand(orientCmd)
	orientCmd.Flags().StringVar(&orientState, "state", "", "Facelet string to orient (required)")
	orientCmd.MarkFlagRequired("state")

	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleLength, "length", "n", 0, "Number of moves (default: scramble.length from config)")
	scrambleCmd.Flags().Int64Var(&scrambleSeed, "seed", 0, "Random seed for a reproducible scramble")
	scrambleCmd.Flags().BoolVar(&scrambleNet, "net", false, "Print the unfolded scrambled cube")
}

// startCube returns a solved cube, or the cube described by state.
func startCube(state string) (*cubeless.Cube, error) {
	if state == "" {
		return cubeless.NewCube(), nil
	}
	return cubeless.ParseCube(strings.TrimSpace(state))
}

func printCube(w io.Writer, c *cubeless.Cube, net bool) {
	fmt.Fprintf(w, "State:  %s\n", c.String())
	fmt.Fprintf(w, "Solved: %t\n", c.IsSolved())
	if net {
		fmt.Fprintln(w)
		fmt.Fprint(w, c.Net())
	}
}

func runApply(cmd *cobra.Command, args []string) error {
	c, err := startCube(applyState)
	if err != nil {
		return err
	}

	alg := strings.Join(args, " ")
	moves, skipped := cubeless.Tokenize(alg)
	if len(skipped) > 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Skipped: %s\n", strings.Join(skipped, " "))
	}
	c.Apply(moves...)

	out := cmd.OutOrStdout()
	if applyOrient {
		if rotations := c.NormalizeOrientation(); rotations != "" {
			fmt.Fprintf(out, "Orient: %s\n", rotations)
		}
	}
	printCube(out, c, applyNet)
	return nil
}

func runCanonicalize(cmd *cobra.Command, args []string) error {
	var moves []string
	for _, a := range args {
		moves = append(moves, strings.Fields(a)...)
	}

	simplified := cubeless.Canonicalize(moves)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Solution: %s\n", strings.Join(simplified, " "))
	fmt.Fprintf(out, "Moves:    %d\n", cubeless.CountMoves(simplified))
	return nil
}

func runOrient(cmd *cobra.Command, args []string) error {
	c, err := startCube(orientState)
	if err != nil {
		return err
	}

	rotations := c.NormalizeOrientation()
	if rotations == "" {
		rotations = "(none)"
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Orient: %s\n", rotations)
	printCube(out, c, false)
	return nil
}

func runScramble(cmd *cobra.Command, args []string) error {
	n := scrambleLength
	if n <= 0 {
		n = cfg.Scramble.Length
	}

	seed := scrambleSeed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Int63()
	}

	alg := cubeless.RandomScramble(rand.New(rand.NewSource(seed)), n)
	c := cubeless.NewCube()
	c.ApplyAlgorithm(alg)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Scramble: %s\n", alg)
	printCube(out, c, scrambleNet)
	return nil
}
