package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ledgerTimeFormat миллисекунды нужны, чтобы упорядочить записи генерации и проведения выплат одного запуска.
const ledgerTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// New логгер сервиса. В release JSON на уровне Info, иначе текст на уровне Debug. LOG_LEVEL имеет приоритет.
func New(output io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(output)

	if os.Getenv("GIN_MODE") == "release" {
		l.SetLevel(logrus.InfoLevel)
		l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: ledgerTimeFormat})
	} else {
		l.SetLevel(logrus.DebugLevel)
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true, TimestampFormat: ledgerTimeFormat})
	}

	raw := os.Getenv("LOG_LEVEL")
	if raw == "" {
		return l
	}
	level, err := logrus.ParseLevel(raw)
	if err != nil {
		l.WithError(err).WithField("LOG_LEVEL", raw).Warn("unknown log level, keeping default")
		return l
	}
	l.SetLevel(level)
	return l
}

// Component запись лога фонового компонента (payoutjob, notify) с полями component и module.
func Component(l *logrus.Logger, component, module string) *logrus.Entry {
	return l.WithFields(logrus.Fields{
		"component": component,
		"module":    module,
	})
}
