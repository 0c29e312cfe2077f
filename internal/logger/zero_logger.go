package logger

import (
	"io"

	"github.com/rs/zerolog"
)

// ZeroLogger writes structured JSON log lines through zerolog. Each instance
// owns its zerolog.Logger; nothing global is touched, so tests and the server
// can log independently.
type ZeroLogger struct {
	writer        io.Writer
	defaultFields Fields
	zl            zerolog.Logger
}

// NewZeroLogger returns a configured ZeroLogger writing to writer at the given
// level, with defaultFields attached to every line.
func NewZeroLogger(writer io.Writer, level Level, defaultFields Fields) *ZeroLogger {
	if defaultFields == nil {
		defaultFields = Fields{}
	}
	l := &ZeroLogger{writer: writer, defaultFields: defaultFields}
	l.configure(level)
	return l
}

func (l *ZeroLogger) configure(level Level) {
	props := make(map[string]interface{}, len(l.defaultFields))
	for k, v := range l.defaultFields {
		props[k] = v
	}
	l.zl = zerolog.New(l.writer).
		With().Fields(props).Timestamp().Caller().Logger().
		Level(zeroLevel(level))
}

func zeroLevel(level Level) zerolog.Level {
	switch level {
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelOff:
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// Info logs a message at info level.
func (l *ZeroLogger) Info(message string, properties map[string]interface{}) {
	l.zl.Info().Fields(properties).Msg(message)
}

// Error logs an error at error level.
func (l *ZeroLogger) Error(err error, properties map[string]interface{}) {
	l.zl.Error().Fields(properties).Err(err).Msg(err.Error())
}

// Fatal logs the error and stops the process.
func (l *ZeroLogger) Fatal(err error, properties map[string]interface{}) {
	l.zl.Fatal().Fields(properties).Err(err).Msg(err.Error())
}

// Debug logs a message at debug level.
func (l *ZeroLogger) Debug(message string, properties map[string]interface{}) {
	l.zl.Debug().Fields(properties).Msg(message)
}

// SetLevel reconfigures the logger at a new minimum level.
func (l *ZeroLogger) SetLevel(level Level) {
	l.configure(level)
}
