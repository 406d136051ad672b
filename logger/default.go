package logger

import (
	"os"
	"sync/atomic"
)

// holder lets loggers of different concrete types share one atomic.Pointer.
type holder struct{ Logger }

// defLogger writes to stderr so that it never interleaves with data a program
// prints on stdout. It may be replaced while sources log from their reading
// goroutines.
var defLogger atomic.Pointer[holder]

func init() {
	defLogger.Store(&holder{newSlog(os.Stderr, InfoLevel, false, os.Getenv("ENV") == "development")})
}

func Debug(msg string, keysAndValues ...any) {
	GetLogger().Debug(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	GetLogger().Info(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	GetLogger().Warn(msg, keysAndValues...)
}

func Error(msg string, keysAndValues ...any) {
	GetLogger().Error(msg, keysAndValues...)
}

func Fatal(msg string, keysAndValues ...any) {
	GetLogger().Fatal(msg, keysAndValues...)
}

func SetLevel(level Level) {
	GetLogger().SetLevel(level)
}

// GetLogger returns the package default logger.
func GetLogger() Logger {
	return defLogger.Load().Logger
}

// SetLogger replaces the package default logger and returns the previous
// one. A nil l is ignored.
func SetLogger(l Logger) Logger {
	prev := GetLogger()
	if l != nil {
		defLogger.Store(&holder{l})
	}

	return prev
}

func With(keyValues ...any) Logger {
	return GetLogger().With(keyValues...)
}
