package cubeless

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// DefaultScrambleLength is the number of moves in a generated scramble.
const DefaultScrambleLength = 20

// Option configures Session behavior.
type Option func(*config)

type config struct {
	logger         *zap.Logger
	cancelSolution bool
	scrambleLength int
	rand           *rand.Rand
}

func defaultConfig() *config {
	return &config{
		logger:         zap.NewNop(),
		cancelSolution: true,
		scrambleLength: DefaultScrambleLength,
	}
}

// buildConfig applies opts over the defaults.
func buildConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.rand == nil {
		cfg.rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return cfg
}

// WithLogger sets the logger used for diagnostics such as skipped
// notation. The default logger discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithCancelSolution enables or disables simplification of the recorded
// solution. When enabled (default), Solution merges and cancels adjacent
// moves on the same face; when disabled it returns the moves as recorded.
func WithCancelSolution(enabled bool) Option {
	return func(c *config) {
		c.cancelSolution = enabled
	}
}

// WithScrambleLength sets how many moves Scramble generates.
// Values below 1 keep the default.
func WithScrambleLength(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.scrambleLength = n
		}
	}
}

// WithRand sets the random source used for scrambles.
// Pass a seeded generator for reproducible scrambles.
func WithRand(r *rand.Rand) Option {
	return func(c *config) {
		c.rand = r
	}
}
