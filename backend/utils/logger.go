package utils

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LoggerConfig describes how the application logger writes.
type LoggerConfig struct {
	// text or json
	Format string
	// debug, info, warn, error
	Level string
	// defaults to os.Stdout
	Output io.Writer
}

// InitLogger builds the process logger.
func InitLogger(config ...LoggerConfig) zerolog.Logger {
	var cfg LoggerConfig
	if len(config) > 0 {
		cfg = config[0]
	}
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	out := cfg.Output
	if !strings.EqualFold(cfg.Format, "json") {
		out = zerolog.ConsoleWriter{Out: cfg.Output, TimeFormat: "2006-01-02 15:04:05"}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	return zerolog.New(out).With().Timestamp().Str("app", "academy").Logger().Level(level)
}
