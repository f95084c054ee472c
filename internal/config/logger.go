package config

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Log encodings accepted by LOG_FORMAT.
const (
	LogFormatJSON    = "json"
	LogFormatConsole = "console"
)

// LoggerConfig holds logger configuration.
type LoggerConfig struct {
	// Level is a zap level name (debug, info, warn, error).
	Level string
	// Format is the log encoding (json, console).
	Format string
	// Output is stdout, stderr, or a file path.
	Output string
}

// LoadLoggerConfigFromEnv loads logger configuration from environment variables.
func LoadLoggerConfigFromEnv() LoggerConfig {
	return LoggerConfig{
		Level:  GetEnv("LOG_LEVEL", "info"),
		Format: GetEnv("LOG_FORMAT", LogFormatJSON),
		Output: GetEnv("LOG_OUTPUT", "stdout"),
	}
}

// Validate validates logger configuration.
func (c LoggerConfig) Validate() error {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil || level > zapcore.ErrorLevel {
		return fmt.Errorf("invalid log level: %q (must be: debug, info, warn, error)", c.Level)
	}

	if c.Format != LogFormatJSON && c.Format != LogFormatConsole {
		return fmt.Errorf("invalid log format: %q (must be: json, console)", c.Format)
	}

	return nil
}

// ZapLevel returns the configured level, or info when Level is not recognised.
func (c LoggerConfig) ZapLevel() zapcore.Level {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return level
}

// IsProduction reports whether the production zap preset applies.
func (c LoggerConfig) IsProduction() bool {
	return c.Format == LogFormatJSON && c.ZapLevel() != zapcore.DebugLevel
}
