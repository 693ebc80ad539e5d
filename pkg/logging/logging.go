// Package logging is the leveled logger of the glox driver. Diagnostics and
// program output never go through it.
package logging

import (
	"os"
	"sync"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
)

var (
	mu  sync.RWMutex
	log slog.Logger = logger.NewNopLogger()
)

// SetLogger replaces the logger used by the package level functions.
func SetLogger(l slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	log = l
}

// NewStdErrLogger returns a logger writing to dst, or to stderr when dst is
// nil. Debug lines are only written when verbose is set.
func NewStdErrLogger(dst logger.SyncWriter, verbose bool) slog.Logger {
	if dst == nil {
		dst = os.Stderr
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   dst,
		DepthDelta:   3,
		IncludeDebug: verbose,
	})
}

func get() slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return log
}

func Debugf(format string, args ...interface{}) {
	get().Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	get().Infof(format, args...)
}

func Warningf(format string, args ...interface{}) {
	get().Warningf(format, args...)
}

func Error(args ...interface{}) {
	get().Error(args...)
}

func Errorf(format string, args ...interface{}) {
	get().Errorf(format, args...)
}
