// Package cli implements the command-line interface for cubeless.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/SeamusWaldron/cubeless/internal/config"
	"github.com/SeamusWaldron/cubeless/internal/storage"
)

const version = "0.1.0"

var (
	// Global flags
	configPath string
	dbPath     string
	verbose    bool

	// Set by loadConfig before any command runs.
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeless",
	Short: "3x3x3 cube simulator",
	Long: `cubeless - a 3x3x3 cube simulator for the terminal.

Apply algorithms in standard notation (face, slice and wide moves and whole
cube rotations), simplify recorded solutions, normalize orientation, and
practice solves in an interactive session that is archived when finished.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file path (default: ~/.cubeless/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Database file path (default: ~/.cubeless/cubeless.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// getConfigPath returns the config path from flag or default.
func getConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.DefaultPath()
}

func loadConfig(cmd *cobra.Command, args []string) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	cfg, err = config.Load(path)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}

	logger, err = config.NewLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger.Debug("config loaded", zap.String("path", path))
	return nil
}

// getDBPath returns the database path from flag, then config, or "" for
// the default.
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return cfg.Storage.DBPath
}

func openDB() (*storage.DB, error) {
	path := getDBPath()
	var db *storage.DB
	var err error

	if path == "" {
		db, err = storage.OpenDefault()
	} else {
		db, err = storage.Open(path)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	return db, nil
}
