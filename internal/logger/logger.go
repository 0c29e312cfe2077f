package logger

// Fields are key/value pairs attached to every log line a logger emits.
type Fields map[string]interface{}

// Logger is the logging surface the application depends on. Implementations:
// ZeroLogger (zerolog) and NullLogger (tests).
type Logger interface {
	Info(message string, properties map[string]interface{})
	Error(err error, properties map[string]interface{})
	Fatal(err error, properties map[string]interface{})
	Debug(message string, properties map[string]interface{})
	SetLevel(level Level)
}

// Level is the minimum severity a logger emits.
type Level int8

const (
	LevelInfo Level = iota
	LevelError
	LevelFatal
	LevelOff
	LevelDebug
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "INFO"
	case LevelError:
		return "ERROR"
	case LevelFatal:
		return "FATAL"
	case LevelDebug:
		return "DEBUG"
	default:
		return ""
	}
}
