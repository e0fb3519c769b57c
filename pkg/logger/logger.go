package logger

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_logger.go -package=mocks github.com/Notifuse/emailbuilder/pkg/logger Logger

type Logger interface {
	Debug(msg string)
	Info(msg string)
	Warn(msg string)
	Error(msg string)
	Fatal(msg string)
	WithField(key string, value interface{}) Logger
	WithFields(fields map[string]interface{}) Logger
}

type zerologLogger struct {
	logger zerolog.Logger
}

func NewLogger() Logger {
	return NewLoggerWithWriter(os.Stdout)
}

// NewLoggerWithWriter creates a JSON logger writing to w
func NewLoggerWithWriter(w io.Writer) Logger {
	logger := zerolog.New(w).With().Timestamp().Logger()
	return &zerologLogger{
		logger: logger,
	}
}

// NewConsoleLogger creates a human readable logger, used by the interactive editor so
// log lines don't mix JSON into the terminal session
func NewConsoleLogger(w io.Writer) Logger {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
	return &zerologLogger{
		logger: logger,
	}
}

// NewLoggerWithLevel sets the global level from a LOG_LEVEL style string and returns
// a stdout logger. Unknown levels fall back to info.
func NewLoggerWithLevel(level string) Logger {
	SetGlobalLevel(level)
	return NewLogger()
}

// SetGlobalLevel applies a LOG_LEVEL style string to every logger
func SetGlobalLevel(level string) {
	zerolog.SetGlobalLevel(ParseLevel(level))
}

// ParseLevel converts a level name into a zerolog level
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

func (l *zerologLogger) Debug(msg string) {
	l.logger.Debug().Msg(msg)
}

func (l *zerologLogger) Info(msg string) {
	l.logger.Info().Msg(msg)
}

func (l *zerologLogger) Warn(msg string) {
	l.logger.Warn().Msg(msg)
}

func (l *zerologLogger) Error(msg string) {
	l.logger.Error().Msg(msg)
}

func (l *zerologLogger) Fatal(msg string) {
	l.logger.Fatal().Msg(msg)
}

func (l *zerologLogger) WithField(key string, value interface{}) Logger {
	return &zerologLogger{
		logger: l.logger.With().Interface(key, value).Logger(),
	}
}

func (l *zerologLogger) WithFields(fields map[string]interface{}) Logger {
	ctx := l.logger.With()
	for key, value := range fields {
		ctx = ctx.Interface(key, value)
	}
	return &zerologLogger{
		logger: ctx.Logger(),
	}
}
