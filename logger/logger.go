// Package logger is the process-wide logrus logger. It writes to stderr so
// that stdout carries only command results.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

type LogLevel int

const (
	DEBUG LogLevel = iota
	INFO
	WARNING
	ERROR
	FATAL
)

func (l LogLevel) String() string {
	return l.logrusLevel().String()
}

func (l LogLevel) logrusLevel() logrus.Level {
	switch l {
	case DEBUG:
		return logrus.DebugLevel
	case WARNING:
		return logrus.WarnLevel
	case ERROR:
		return logrus.ErrorLevel
	case FATAL:
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	return l
}

func GetLogger() *logrus.Logger {
	return log
}

func SetLevel(level LogLevel) {
	log.SetLevel(level.logrusLevel())
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Debug(args ...interface{})                   { log.Debug(args...) }
func Debugf(format string, args ...interface{})   { log.Debugf(format, args...) }
func Info(args ...interface{})                    { log.Info(args...) }
func Infof(format string, args ...interface{})    { log.Infof(format, args...) }
func Warning(args ...interface{})                 { log.Warning(args...) }
func Warningf(format string, args ...interface{}) { log.Warningf(format, args...) }
func Error(args ...interface{})                   { log.Error(args...) }
func Errorf(format string, args ...interface{})   { log.Errorf(format, args...) }
func Fatalf(format string, args ...interface{})   { log.Fatalf(format, args...) }

// LogSolutionEvent records a finished search with structured fields.
func LogSolutionEvent(algorithm, encoding string, difficulty int, nonce, attempts uint64, elapsed time.Duration) {
	log.WithFields(logrus.Fields{
		"algorithm":  algorithm,
		"encoding":   encoding,
		"difficulty": difficulty,
		"nonce":      nonce,
		"attempts":   attempts,
		"elapsed":    elapsed.String(),
	}).Info("solution found")
}
