package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dshills/jim/internal/input/keymap"
)

// Config holds every setting.
type Config struct {
	Editor   EditorConfig    `toml:"editor"`
	Log      LogConfig       `toml:"log"`
	Nmap     []MappingConfig `toml:"nmap"`
	Commands []CommandConfig `toml:"command"`
	Lua      LuaConfig       `toml:"lua"`
}

// EditorConfig holds editing behavior settings.
type EditorConfig struct {
	// HistorySize is the number of Normal mode keys kept for matching.
	HistorySize int `toml:"history_size"`
	// Match is the mapping match strategy: "window" or "tail".
	Match string `toml:"match"`
	// TabWidth is the display width of a tab.
	TabWidth int `toml:"tab_width"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `toml:"level"`
	// File is the log file path. Empty disables logging.
	File string `toml:"file"`
}

// MappingConfig declares a Normal mode mapping.
type MappingConfig struct {
	Keys        string `toml:"keys"`
	Action      string `toml:"action"`
	Pending     bool   `toml:"pending"`
	Description string `toml:"description"`
}

// CommandConfig declares a command line binding.
type CommandConfig struct {
	Name        string `toml:"name"`
	Action      string `toml:"action"`
	Description string `toml:"description"`
}

// LuaConfig lists the Lua scripts to run at startup.
type LuaConfig struct {
	Scripts []string `toml:"scripts"`
	// TimeoutMS bounds each call into Lua. Zero keeps the runtime default.
	TimeoutMS int `toml:"timeout_ms"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Editor: EditorConfig{
			HistorySize: 16,
			Match:       keymap.MatchWindow.String(),
			TabWidth:    4,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/jim/config.toml, falling back to
// the platform's user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "jim", "config.toml")
}

// Validate checks values that cannot be represented in the type system.
func (c *Config) Validate() error {
	if c.Editor.HistorySize <= 0 {
		return fmt.Errorf("%w: editor.history_size must be positive, got %d", ErrValidationFailed, c.Editor.HistorySize)
	}
	if c.Editor.TabWidth <= 0 {
		return fmt.Errorf("%w: editor.tab_width must be positive, got %d", ErrValidationFailed, c.Editor.TabWidth)
	}
	if c.Lua.TimeoutMS < 0 {
		return fmt.Errorf("%w: lua.timeout_ms must not be negative, got %d", ErrValidationFailed, c.Lua.TimeoutMS)
	}
	if _, err := keymap.ParseStrategy(c.Editor.Match); err != nil {
		return fmt.Errorf("%w: editor.match: %w", ErrValidationFailed, err)
	}
	return nil
}

// Strategy returns the configured match strategy.
func (c *Config) Strategy() keymap.Strategy {
	s, _ := keymap.ParseStrategy(c.Editor.Match)
	return s
}

// ScriptTimeout returns the configured Lua call timeout, or zero for the
// runtime default.
func (c *Config) ScriptTimeout() time.Duration {
	return time.Duration(c.Lua.TimeoutMS) * time.Millisecond
}

// ScriptPaths returns the Lua script paths with a leading "~/" expanded.
func (c *Config) ScriptPaths() []string {
	home, _ := os.UserHomeDir()
	paths := make([]string, 0, len(c.Lua.Scripts))
	for _, p := range c.Lua.Scripts {
		if home != "" && strings.HasPrefix(p, "~/") {
			p = filepath.Join(home, p[2:])
		}
		paths = append(paths, p)
	}
	return paths
}
