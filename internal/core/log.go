package core

import (
	"maps"
	"time"

	"github.com/rs/zerolog"
)

const (
	SOURCE_LOG_FIELD_NAME = "src"

	RANGE_OPERATORS_LOG_SRC = "range-operators"
)

func init() {
	zerolog.DurationFieldInteger = false
	zerolog.DurationFieldUnit = time.Millisecond
	zerolog.MessageFieldName = "msg"
	zerolog.LevelFieldName = "lvl"
	zerolog.TimestampFieldName = "tm"
}

func ChildLoggerForSource(logger zerolog.Logger, src string) zerolog.Logger {
	return logger.With().Str(SOURCE_LOG_FIELD_NAME, src).Logger()
}

func childLoggerForInternalSource(logger zerolog.Logger, src string, logLevels *LogLevels) zerolog.Logger {
	if logLevels.AreInternalDebugLogsEnabled() {
		logger = logger.Level(logLevels.LevelFor(src))
	} else {
		//if internal debug logs are disabled we set 'info' as the minimum level for the logger.
		logger = logger.Level(zerolog.InfoLevel)
	}
	return ChildLoggerForSource(logger, src)
}

// LogLevels holds the minimum log level of each log source.
type LogLevels struct {
	defaultLevel  zerolog.Level
	levelBySource map[string]zerolog.Level
	internalDebug bool
}

func NewLogLevels(defaultLevel zerolog.Level, bySource map[string]zerolog.Level, enableInternalDebugLogs bool) *LogLevels {
	if bySource == nil {
		bySource = map[string]zerolog.Level{}
	} else {
		bySource = maps.Clone(bySource)
	}

	return &LogLevels{
		defaultLevel:  defaultLevel,
		levelBySource: bySource,
		internalDebug: enableInternalDebugLogs,
	}
}

func (l *LogLevels) LevelFor(src string) zerolog.Level {
	if l == nil {
		return zerolog.InfoLevel
	}

	level, ok := l.levelBySource[src]
	if ok {
		return level
	}
	return l.defaultLevel
}

func (l *LogLevels) AreInternalDebugLogsEnabled() bool {
	if l == nil {
		return false
	}
	return l.internalDebug
}
