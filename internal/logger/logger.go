package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogConfig holds logging configuration
type LogConfig struct {
	Level      string // trace, debug, info, warn, error, fatal, panic
	Format     string // json, console
	TimeFormat string // RFC3339, Unix, or custom format
	Output     string // stdout, stderr, or file path
}

// DefaultConfig returns the default logging configuration. Output goes to
// stderr because stdout carries the tool protocol when serving over stdio.
func DefaultConfig() LogConfig {
	return LogConfig{
		Level:      "info",
		Format:     "console",
		TimeFormat: time.RFC3339,
		Output:     "stderr",
	}
}

// Setup initializes the global logger with the provided configuration
func Setup(config LogConfig) error {
	level, err := zerolog.ParseLevel(strings.ToLower(config.Level))
	if err != nil {
		return err
	}
	zerolog.SetGlobalLevel(level)

	output, err := openOutput(config.Output)
	if err != nil {
		return err
	}

	if !strings.EqualFold(config.Format, "json") {
		output = zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: config.TimeFormat,
			NoColor:    output != os.Stderr && output != os.Stdout,
		}
	}

	log.Logger = zerolog.New(output).With().
		Timestamp().
		Caller().
		Logger()

	if config.TimeFormat != "" {
		zerolog.TimeFieldFormat = config.TimeFormat
	}

	return nil
}

func openOutput(target string) (io.Writer, error) {
	switch target {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	}
	return os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// WithComponent returns a logger with a component field
func WithComponent(component string) zerolog.Logger {
	return log.Logger.With().Str("component", component).Logger()
}

// WithTool returns a component logger tagged with a tool call.
func WithTool(component, tool, requestID string) zerolog.Logger {
	return log.Logger.With().
		Str("component", component).
		Str("tool", tool).
		Str("request_id", requestID).
		Logger()
}
