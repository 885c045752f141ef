package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

func CreateLogger(serviceName string) logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.JSONFormatter{})
	l.SetLevel(logrus.InfoLevel)
	return l.WithField("service", serviceName)
}

// SetLevel adjusts the level of a logger produced by CreateLogger. Unknown levels are ignored.
func SetLevel(l logrus.FieldLogger, level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		l.WithError(err).Warnf("Unknown log level [%s], keeping current level.", level)
		return
	}
	switch v := l.(type) {
	case *logrus.Entry:
		v.Logger.SetLevel(lvl)
	case *logrus.Logger:
		v.SetLevel(lvl)
	}
}

// SetOutput redirects a logger produced by CreateLogger.
func SetOutput(l logrus.FieldLogger, w io.Writer) {
	switch v := l.(type) {
	case *logrus.Entry:
		v.Logger.SetOutput(w)
	case *logrus.Logger:
		v.SetOutput(w)
	}
}
