package logging

import (
	"context"
	"sync/atomic"
)

var (
	global atomic.Pointer[Logger]
	noop   = NewNoop()
)

// Global returns the process-wide logger, or a no-op logger before
// InitGlobal has been called.
func Global() *Logger {
	if l := global.Load(); l != nil {
		return l
	}
	return noop
}

// FromContext returns the global logger annotated with the command and
// entry id stored in ctx.
func FromContext(ctx context.Context) *Logger {
	return Global().WithContext(ctx)
}

// SetGlobal replaces the global logger. A nil logger restores the no-op one.
func SetGlobal(l *Logger) {
	global.Store(l)
}

// InitGlobal creates a logger from config and installs it globally,
// closing any logger it replaces.
func InitGlobal(config *Config) error {
	l, err := New(config)
	if err != nil {
		return err
	}
	if old := global.Swap(l); old != nil {
		_ = old.Close()
	}
	return nil
}

// CloseGlobal closes the global logger and falls back to the no-op one.
func CloseGlobal() error {
	if old := global.Swap(nil); old != nil {
		return old.Close()
	}
	return nil
}
