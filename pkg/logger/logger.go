package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

//go:generate go run go.uber.org/mock/mockgen -source=logger.go -destination=mock/logger_mock.go -package=mock github.com/savioruz/turfics/pkg/logger Interface

type Interface interface {
	Debug(message interface{}, args ...interface{})
	Info(message interface{}, args ...interface{})
	Warn(message interface{}, args ...interface{})
	Error(message interface{}, args ...interface{})
	Fatal(message interface{}, args ...interface{})
}

type Logger struct {
	logger *zerolog.Logger
}

var _ Interface = (*Logger)(nil)

func New(level string) *Logger {
	return NewWithWriter(level, os.Stdout)
}

func NewWithWriter(level string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(ParseLevel(level))

	skipFrameCount := 3
	logger := zerolog.New(w).With().Timestamp().CallerWithSkipFrameCount(zerolog.CallerSkipFrameCount + skipFrameCount).Logger()

	return &Logger{
		logger: &logger,
	}
}

func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *Logger) log(event *zerolog.Event, message string, args ...interface{}) {
	if len(args) == 0 {
		event.Msg(message)
	} else {
		event.Msgf(message, args...)
	}
}

func (l *Logger) msg(event *zerolog.Event, level string, message interface{}, args ...interface{}) {
	switch msg := message.(type) {
	case error:
		l.log(event, msg.Error(), args...)
	case string:
		l.log(event, msg, args...)
	default:
		l.log(event, fmt.Sprintf("%s message %v has an unknown type %v", level, message, msg), args...)
	}
}

func (l *Logger) Debug(message interface{}, args ...interface{}) {
	l.msg(l.logger.Debug(), "Debug", message, args...)
}

func (l *Logger) Info(message interface{}, args ...interface{}) {
	l.msg(l.logger.Info(), "Info", message, args...)
}

func (l *Logger) Warn(message interface{}, args ...interface{}) {
	l.msg(l.logger.Warn(), "Warn", message, args...)
}

func (l *Logger) Error(message interface{}, args ...interface{}) {
	l.msg(l.logger.Error(), "Error", message, args...)
}

func (l *Logger) Fatal(message interface{}, args ...interface{}) {
	l.msg(l.logger.Fatal(), "Fatal", message, args...)
}
