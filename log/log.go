// Package log holds the process-wide structured logger.
package log

import (
	syslog "log"
	"log/slog"
)

// Logger is satisfied by *zap.SugaredLogger
type Logger interface {
	Debugw(msg string, keysAndValues ...any)
	Warnw(msg string, keysAndValues ...any)
}

type logger struct{}

// Default 默认实例
var Default Logger

func init() {
	syslog.SetFlags(syslog.Ltime | syslog.Lshortfile)
	Default = &logger{}
}

// Set replaces the default logger, nil is ignored
func Set(logger Logger) {
	if logger != nil {
		Default = logger
	}
}

// Get returns the current logger
func Get() Logger {
	return Default
}

func (z *logger) Debugw(msg string, keysAndValues ...any) {
	slog.Debug(msg, keysAndValues...)
}

func (z *logger) Warnw(msg string, keysAndValues ...any) {
	slog.Warn(msg, keysAndValues...)
}
