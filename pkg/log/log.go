package log

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Logger is the logging interface used by the client and the command line tool.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)

	// WithFields returns a Logger that attaches fields to every entry
	WithFields(fields map[string]any) Logger
}

// DefaultLogger is a Logger backed by logrus.
type DefaultLogger struct {
	entry *logrus.Entry
}

// NewLogger creates a logger writing text output to out at the given level.
// An unparsable level falls back to info.
func NewLogger(out io.Writer, level string) *DefaultLogger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	logger.SetLevel(lvl)

	return &DefaultLogger{
		entry: logrus.NewEntry(logger),
	}
}

// NewDefaultLogger creates a logger writing to stderr at info level.
func NewDefaultLogger() *DefaultLogger {
	return NewLogger(logrus.StandardLogger().Out, logrus.InfoLevel.String())
}

// NewLoggerWithLevel creates a logger writing to stderr at the specified level.
func NewLoggerWithLevel(level string) *DefaultLogger {
	return NewLogger(logrus.StandardLogger().Out, level)
}

// NewDiscardLogger creates a logger that drops everything.
func NewDiscardLogger() *DefaultLogger {
	return NewLogger(io.Discard, logrus.PanicLevel.String())
}

func (l *DefaultLogger) Debugf(format string, args ...any) {
	l.entry.Debugf(format, args...)
}

func (l *DefaultLogger) Infof(format string, args ...any) {
	l.entry.Infof(format, args...)
}

func (l *DefaultLogger) Warnf(format string, args ...any) {
	l.entry.Warnf(format, args...)
}

func (l *DefaultLogger) Errorf(format string, args ...any) {
	l.entry.Errorf(format, args...)
}

// WithFields returns a child logger carrying fields.
func (l *DefaultLogger) WithFields(fields map[string]any) Logger {
	return &DefaultLogger{
		entry: l.entry.WithFields(logrus.Fields(fields)),
	}
}

// SetLevel sets the log level for the logger and all loggers derived from it.
func (l *DefaultLogger) SetLevel(level string) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return
	}
	l.entry.Logger.SetLevel(lvl)
}

// GetLogrus returns the underlying logrus logger for advanced configuration.
func (l *DefaultLogger) GetLogrus() *logrus.Logger {
	return l.entry.Logger
}
