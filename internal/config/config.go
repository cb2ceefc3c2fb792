// Package config loads cubeless settings from a YAML file and the
// environment, and builds the logger and session options from them.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/SeamusWaldron/cubeless"
)

// EnvPrefix prefixes environment overrides, e.g. CUBELESS_LOGGING_LEVEL.
const EnvPrefix = "CUBELESS"

// Config is the full application configuration.
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Settings SettingsConfig `mapstructure:"settings"`
	Scramble ScrambleConfig `mapstructure:"scramble"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Solver   SolverConfig   `mapstructure:"solver"`
}

// LoggingConfig selects the log level and encoding.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// SettingsConfig holds the user-facing session toggles.
type SettingsConfig struct {
	CancelSolution bool `mapstructure:"cancel_solution"`
	ManualScramble bool `mapstructure:"manual_scramble"`
}

// ScrambleConfig controls generated scrambles.
type ScrambleConfig struct {
	Length int `mapstructure:"length"`
}

// StorageConfig locates the database and state file. Empty paths mean the
// defaults under ~/.cubeless.
type StorageConfig struct {
	DBPath    string `mapstructure:"db_path"`
	StatePath string `mapstructure:"state_path"`
}

// SolverConfig describes the external solver command.
type SolverConfig struct {
	Command string        `mapstructure:"command"`
	Args    []string      `mapstructure:"args"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type keyKind int

const (
	kindString keyKind = iota
	kindBool
	kindInt
	kindDuration
	kindList
)

// keys lists every setting with its type, used by Set.
var keys = map[string]keyKind{
	"logging.level":            kindString,
	"logging.format":           kindString,
	"settings.cancel_solution": kindBool,
	"settings.manual_scramble": kindBool,
	"scramble.length":          kindInt,
	"storage.db_path":          kindString,
	"storage.state_path":       kindString,
	"solver.command":           kindString,
	"solver.args":              kindList,
	"solver.timeout":           kindDuration,
}

// Keys returns the known setting names in sorted order.
func Keys() []string {
	names := make([]string, 0, len(keys))
	for k := range keys {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "console")
	v.SetDefault("settings.cancel_solution", true)
	v.SetDefault("settings.manual_scramble", false)
	v.SetDefault("scramble.length", cubeless.DefaultScrambleLength)
	v.SetDefault("storage.db_path", "")
	v.SetDefault("storage.state_path", "")
	v.SetDefault("solver.command", "")
	v.SetDefault("solver.args", []string{})
	v.SetDefault("solver.timeout", 10*time.Second)
}

// DefaultPath returns the default config file path.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".cubeless", "config.yaml"), nil
}

// Default returns the configuration used when no file or environment
// overrides exist.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode.
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// readFile reads path into v. A missing file is not an error.
func readFile(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}
	v.SetConfigFile(path)
	err := v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if err == nil || errors.Is(err, fs.ErrNotExist) || errors.As(err, &notFound) {
		return nil
	}
	return fmt.Errorf("failed to read config %s: %w", path, err)
}

// Load reads the config file at path, applies CUBELESS_* environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, path); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("invalid logging.format %q", c.Logging.Format)
	}
	if c.Scramble.Length < 1 {
		return fmt.Errorf("invalid scramble.length %d: must be positive", c.Scramble.Length)
	}
	if c.Solver.Timeout < 0 {
		return fmt.Errorf("invalid solver.timeout %s", c.Solver.Timeout)
	}
	return nil
}

// Set parses value for key, validates the result and writes it to the
// config file at path, creating the file if needed.
func Set(path, key, value string) error {
	kind, ok := keys[key]
	if !ok {
		return fmt.Errorf("unknown config key %q", key)
	}

	var parsed any
	switch kind {
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		parsed = b
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		parsed = n
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
		parsed = d.String()
	case kindList:
		parsed = strings.Fields(value)
	default:
		parsed = value
	}

	v := viper.New()
	setDefaults(v)
	if err := readFile(v, path); err != nil {
		return err
	}
	v.Set(key, parsed)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

// SessionOptions translates the settings into engine options.
func (c *Config) SessionOptions(logger *zap.Logger) []cubeless.Option {
	return []cubeless.Option{
		cubeless.WithLogger(logger),
		cubeless.WithCancelSolution(c.Settings.CancelSolution),
		cubeless.WithScrambleLength(c.Scramble.Length),
	}
}

// NewLogger builds a zap logger for the logging section.
func NewLogger(cfg LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	switch cfg.Level {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	zapCfg.Level = zap.NewAtomicLevelAt(level)

	return zapCfg.Build()
}
