// Package logger provides file-backed logging for the TUI. Output defaults to
// discard: a full-screen terminal application must never write to the screen
// it is drawing on.
package logger

import (
	"log/slog"
	"strings"
)

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is the minimum level to log ("debug", "info", "warn", "error").
	LogLevel string `toml:"log_level"`

	// LogFilePath is the path of the log file. Empty disables logging,
	// "-" writes to stderr.
	LogFilePath string `toml:"log_file"`

	// EnabledTags, when non-empty, restricts logging to records carrying one
	// of these tags. DisabledTags drops matching records and wins on overlap.
	EnabledTags  []string `toml:"enabled_tags"`
	DisabledTags []string `toml:"disabled_tags"`

	level        slog.Level
	enabledTags  map[string]struct{}
	disabledTags map[string]struct{}
}

// NewConfig returns a Config with defaults applied.
func NewConfig() Config {
	return Config{LogLevel: "info"}
}

// process parses the string level and converts filter lists into sets.
func (c *Config) process() {
	c.level = slog.LevelInfo
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		c.level = slog.LevelDebug
	case "info":
		c.level = slog.LevelInfo
	case "warn", "warning":
		c.level = slog.LevelWarn
	case "error", "err":
		c.level = slog.LevelError
	}

	c.enabledTags = sliceToSet(c.EnabledTags)
	c.disabledTags = sliceToSet(c.DisabledTags)
}

// sliceToSet lowercases entries for case-insensitive matching; nil when empty
// so callers can treat "no filter" as a single nil check.
func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
