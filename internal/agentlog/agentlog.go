// Package agentlog provides the agent's colored console logging:
// green for info, yellow for warning, red for error, matching the
// original printColour scheme (original_source/src/helpers.cpp).
package agentlog

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger is the shared entry point for the agent's log output.
var Logger = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.InfoLevel)
	l.SetFormatter(&colorFormatter{})
	return l
}

// colorFormatter renders each entry in the original agent's green/
// yellow/red console scheme instead of logrus's default palette, which
// doesn't color the info level at all.
type colorFormatter struct{}

const (
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
	ansiReset  = "\x1b[0m"
)

func (f *colorFormatter) Format(e *logrus.Entry) ([]byte, error) {
	color := ansiGreen
	switch e.Level {
	case logrus.WarnLevel:
		color = ansiYellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		color = ansiRed
	}
	line := fmt.Sprintf("%s%s %s%s\n", color, e.Time.Format("15:04:05"), e.Message, ansiReset)
	return []byte(line), nil
}

// Info logs a green, informational line: a normal state transition or a
// successfully read card.
func Info(format string, args ...any) {
	Logger.Infof(format, args...)
}

// Warn logs a yellow line: a non-fatal condition the session recovers
// from on its own, e.g. an unrecognized card or a reader state of
// "empty"/"unavailable".
func Warn(format string, args ...any) {
	Logger.Warnf(format, args...)
}

// Error logs a red line: a malformed response, a retry budget exceeded,
// or a fatal initialization failure.
func Error(format string, args ...any) {
	Logger.Errorf(format, args...)
}
