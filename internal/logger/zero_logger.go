package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger adapts zerolog to the Logger interface. Each instance owns
// its zerolog.Logger so tests and callers never fight over a global.
type ZeroLogger struct {
	logger zerolog.Logger
}

// NewZeroLogger returns a configured ZeroLogger writing to w, with
// defaultFields attached to every event.
func NewZeroLogger(w io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	props := make(map[string]interface{}, len(defaultFields))
	for k, v := range defaultFields {
		props[k] = v
	}

	zl := zerolog.New(w).With().Fields(props).Timestamp().Logger().Level(zerologLevel(level))
	return &ZeroLogger{logger: zl}
}

func zerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelOff:
		return zerolog.Disabled
	case LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// Info only logs information
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.logger.Info().Fields(properties).Msg(message)
}

// Error reports all error at error level
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.logger.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal write the log to output and stop the process
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.logger.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug this is for debugging and we use it to store some information in the log
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.logger.Debug().Fields(properties).Msg(message)
}

func (l *ZeroLogger) SetLevel(level Level) {
	l.logger = l.logger.Level(zerologLevel(level))
}
