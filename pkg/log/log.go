// Package log provides the logging facade used throughout gbvideo.
package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

type Logger interface {
	Infof(format string, args ...interface{})
	Warnf(format string, args ...interface{})
	Errorf(format string, args ...interface{})
	Debugf(format string, args ...interface{})
}

// New returns a logger writing plain text lines to stderr at
// info level.
func New() Logger {
	return NewWithLevel(logrus.InfoLevel)
}

// NewWithLevel returns a text logger at the given level.
func NewWithLevel(level logrus.Level) Logger {
	l := logrus.New()
	l.SetLevel(level)
	l.Formatter = &logrus.TextFormatter{
		DisableColors:    true,
		DisableTimestamp: true,
		DisableSorting:   true,
		DisableQuote:     true,
	}
	return l
}

// NewWriter returns a text logger writing to w, mostly useful in tests.
func NewWriter(w io.Writer, level logrus.Level) Logger {
	l := NewWithLevel(level).(*logrus.Logger)
	l.SetOutput(w)
	return l
}
