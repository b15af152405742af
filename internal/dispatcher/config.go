package dispatcher

import (
	"github.com/dshills/jim/internal/dispatcher/execctx"
	"github.com/dshills/jim/internal/input/keymap"
)

// Config holds dispatcher configuration options.
type Config struct {
	// HistorySize is the number of recent Normal mode keys kept for
	// matching.
	HistorySize int

	// Strategy selects how mappings are matched against the history.
	Strategy keymap.Strategy

	// EnableMetrics enables per-action statistics collection.
	EnableMetrics bool

	// RecoverFromPanic wraps handler execution in panic recovery.
	RecoverFromPanic bool
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() Config {
	return Config{
		HistorySize:      execctx.DefaultHistorySize,
		Strategy:         keymap.MatchWindow,
		EnableMetrics:    false,
		RecoverFromPanic: true,
	}
}

// WithHistorySize returns a copy of the config with the history size set.
func (c Config) WithHistorySize(n int) Config {
	if n > 0 {
		c.HistorySize = n
	}
	return c
}

// WithStrategy returns a copy of the config using the given match strategy.
func (c Config) WithStrategy(s keymap.Strategy) Config {
	c.Strategy = s
	return c
}

// WithMetrics returns a copy of the config with metrics enabled.
func (c Config) WithMetrics() Config {
	c.EnableMetrics = true
	return c
}
