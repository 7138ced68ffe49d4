package config

import (
	"io"
	"os"
	"strings"

	"github.com/inoxlang/rangeseq/internal/core"
	"github.com/rs/zerolog"
)

const (
	LOG_LEVEL_ENV_VAR           = "RANGESEQ_LOG_LEVEL"
	INTERNAL_DEBUG_LOGS_ENV_VAR = "RANGESEQ_INTERNAL_DEBUG_LOGS"

	DEFAULT_LOG_LEVEL = zerolog.InfoLevel
)

var (
	LOG_LEVEL           = DEFAULT_LOG_LEVEL
	INTERNAL_DEBUG_LOGS bool
)

func init() {
	loadFromEnv()
}

func loadFromEnv() {
	LOG_LEVEL = DEFAULT_LOG_LEVEL
	INTERNAL_DEBUG_LOGS = false

	// LOG LEVEL

	if s, ok := os.LookupEnv(LOG_LEVEL_ENV_VAR); ok {
		LOG_LEVEL = parseLogLevel(s)
	}

	// INTERNAL DEBUG LOGS

	if s, ok := os.LookupEnv(INTERNAL_DEBUG_LOGS_ENV_VAR); ok {
		INTERNAL_DEBUG_LOGS = isTruthy(s)
	}
}

// parseLogLevel parses a zerolog level name, invalid or empty names result in DEFAULT_LOG_LEVEL.
func parseLogLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || level == zerolog.NoLevel {
		return DEFAULT_LOG_LEVEL
	}
	return level
}

func isTruthy(s string) bool {
	return len(s) != 0 && s != "false" && s != "0"
}

// NewLogLevels returns the log levels configured by the environment.
func NewLogLevels() *core.LogLevels {
	return core.NewLogLevels(LOG_LEVEL, nil, INTERNAL_DEBUG_LOGS)
}

// NewLogger returns a logger writing to w at the configured level.
func NewLogger(w io.Writer) zerolog.Logger {
	return zerolog.New(w).Level(LOG_LEVEL).With().Timestamp().Logger()
}

// NewContextConfig returns a context configuration using host and the configured logging.
func NewContextConfig(host core.Host, logOutput io.Writer) core.ContextConfig {
	logger := NewLogger(logOutput)
	return core.ContextConfig{
		Host:      host,
		Logger:    &logger,
		LogLevels: NewLogLevels(),
	}
}
