package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubeless/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting in the config file",
	Long: `Change a setting in the config file. Known keys:

  ` + strings.Join(config.Keys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# %s\n", path)
	fmt.Fprintf(out, "logging.level: %s\n", cfg.Logging.Level)
	fmt.Fprintf(out, "logging.format: %s\n", cfg.Logging.Format)
	fmt.Fprintf(out, "settings.cancel_solution: %t\n", cfg.Settings.CancelSolution)
	fmt.Fprintf(out, "settings.manual_scramble: %t\n", cfg.Settings.ManualScramble)
	fmt.Fprintf(out, "scramble.length: %d\n", cfg.Scramble.Length)
	fmt.Fprintf(out, "storage.db_path: %s\n", cfg.Storage.DBPath)
	fmt.Fprintf(out, "storage.state_path: %s\n", cfg.Storage.StatePath)
	fmt.Fprintf(out, "solver.command: %s\n", cfg.Solver.Command)
	fmt.Fprintf(out, "solver.args: %s\n", strings.Join(cfg.Solver.Args, " "))
	fmt.Fprintf(out, "solver.timeout: %s\n", cfg.Solver.Timeout)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}
	if err := config.Set(path, args[0], args[1]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}
