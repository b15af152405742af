package config

import (
	"fmt"
	"strconv"
)

// Environment variables that override file settings.
const (
	EnvLogLevel    = "JIM_LOG_LEVEL"
	EnvLogFile     = "JIM_LOG_FILE"
	EnvHistorySize = "JIM_HISTORY_SIZE"
	EnvMatch       = "JIM_MATCH"
)

// applyEnv overlays environment variables onto cfg.
// Empty values are treated as set.
func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvLogLevel); ok {
		cfg.Log.Level = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.Log.File = v
	}
	if v, ok := lookup(EnvMatch); ok {
		cfg.Editor.Match = v
	}
	if v, ok := lookup(EnvHistorySize); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not an integer", ErrTypeMismatch, EnvHistorySize, v)
		}
		cfg.Editor.HistorySize = n
	}
	return nil
}
