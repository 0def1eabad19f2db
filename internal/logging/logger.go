// Package logging provides structured diagnostic logging for todo.
// Logs go to stderr when verbose output is requested and, optionally,
// to a log file under the data directory with count and age cleanup.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"
)

// Level is a log severity. The values are slog's own.
type Level = slog.Level

const (
	LevelDebug = slog.LevelDebug
	LevelInfo  = slog.LevelInfo
	LevelWarn  = slog.LevelWarn
	LevelError = slog.LevelError
)

// ParseLevel converts a config value (debug, info, warn, error) to a Level.
// Unknown values yield LevelWarn and an error.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	}
	return LevelWarn, fmt.Errorf("unknown log level %q", s)
}

// Config configures the logger.
type Config struct {
	// Level is the minimum log level to output.
	Level Level
	// LogDir receives a timestamped log file. Empty disables the file.
	LogDir string
	// MaxLogFiles bounds how many old log files survive cleanup.
	MaxLogFiles int
	// MaxLogAge removes log files last written longer ago than this.
	MaxLogAge time.Duration
	// Console enables logging to ConsoleWriter.
	Console bool
	// ConsoleWriter receives console output. Defaults to os.Stderr.
	ConsoleWriter io.Writer
	// JSONFormat switches both outputs to JSON lines.
	JSONFormat bool
}

// DefaultConfig returns warnings and errors only, with no file and no
// console output.
func DefaultConfig() *Config {
	return &Config{
		Level:       LevelWarn,
		MaxLogFiles: 10,
		MaxLogAge:   7 * 24 * time.Hour,
	}
}

const (
	logFilePrefix = "todo_"
	logFileSuffix = ".log"
	logTimeLayout = "20060102_150405"
)

// sink owns the log file shared by a logger and everything derived from it.
type sink struct {
	mu   sync.Mutex
	file *os.File
	path string
}

func (s *sink) close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	return err
}

// Logger is a structured logger for todo. The embedded slog.Logger
// supplies Debug, Info, Warn and Error.
type Logger struct {
	*slog.Logger
	config *Config
	sink   *sink
}

// New creates a logger. When LogDir is set it opens a fresh log file there
// and prunes stale ones before returning.
func New(config *Config) (*Logger, error) {
	if config == nil {
		config = DefaultConfig()
	}

	s := &sink{}
	var writers []io.Writer

	if config.LogDir != "" {
		f, err := openLogFile(config.LogDir, time.Now())
		if err != nil {
			return nil, err
		}
		s.file, s.path = f, f.Name()
		writers = append(writers, f)
	}

	if config.Console {
		w := config.ConsoleWriter
		if w == nil {
			w = os.Stderr
		}
		writers = append(writers, w)
	}

	l := &Logger{
		Logger: slog.New(newHandler(writers, config)),
		config: config,
		sink:   s,
	}

	if removed, err := l.Cleanup(); err != nil {
		l.Debug("log cleanup failed", "error", err)
	} else if removed > 0 {
		l.Debug("cleaned up old log files", "count", removed)
	}

	return l, nil
}

func openLogFile(dir string, at time.Time) (*os.File, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	name := logFilePrefix + at.Format(logTimeLayout) + logFileSuffix
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file: %w", err)
	}
	return f, nil
}

func newHandler(writers []io.Writer, config *Config) slog.Handler {
	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = io.MultiWriter(writers...)
	}
	opts := &slog.HandlerOptions{Level: config.Level}
	if config.JSONFormat {
		return slog.NewJSONHandler(out, opts)
	}
	return slog.NewTextHandler(out, opts)
}

// NewNoop creates a logger that discards everything.
func NewNoop() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
		config: DefaultConfig(),
		sink:   &sink{},
	}
}

// LogPath returns the current log file, or "" when file logging is off.
func (l *Logger) LogPath() string {
	return l.sink.path
}

// Close closes the log file. Loggers derived through With share it.
func (l *Logger) Close() error {
	return l.sink.close()
}

// With returns a logger that adds args to every record.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{Logger: l.Logger.With(args...), config: l.config, sink: l.sink}
}

type contextKey string

const (
	// ContextKeyCommand holds the running CLI verb.
	ContextKeyCommand contextKey = "command"
	// ContextKeyEntryID holds the id of the entry being changed.
	ContextKeyEntryID contextKey = "entry_id"
)

var contextKeys = []contextKey{ContextKeyCommand, ContextKeyEntryID}

// WithContext returns a logger carrying the command and entry id stored in ctx.
func (l *Logger) WithContext(ctx context.Context) *Logger {
	var args []any
	for _, key := range contextKeys {
		if v, ok := ctx.Value(key).(string); ok && v != "" {
			args = append(args, string(key), v)
		}
	}
	if len(args) == 0 {
		return l
	}
	return l.With(args...)
}

// WithCommand stores the CLI verb in ctx.
func WithCommand(ctx context.Context, command string) context.Context {
	return context.WithValue(ctx, ContextKeyCommand, command)
}

// WithEntryID stores an entry id in ctx.
func WithEntryID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ContextKeyEntryID, id)
}

// Cleanup removes log files beyond MaxLogFiles (newest kept) or older than
// MaxLogAge. The file currently being written is never removed.
func (l *Logger) Cleanup() (int, error) {
	if l.config.LogDir == "" {
		return 0, nil
	}
	return prune(l.config.LogDir, l.sink.path, l.config.MaxLogFiles, l.config.MaxLogAge, time.Now())
}

func prune(dir, current string, maxFiles int, maxAge time.Duration, now time.Time) (int, error) {
	paths, err := filepath.Glob(filepath.Join(dir, logFilePrefix+"*"+logFileSuffix))
	if err != nil {
		return 0, fmt.Errorf("failed to list log files: %w", err)
	}

	type logFile struct {
		path    string
		modTime time.Time
	}
	var files []logFile
	for _, p := range paths {
		if p == current {
			continue
		}
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		files = append(files, logFile{p, info.ModTime()})
	}

	slices.SortFunc(files, func(a, b logFile) int {
		return b.modTime.Compare(a.modTime)
	})

	removed := 0
	for i, f := range files {
		tooMany := maxFiles > 0 && i >= maxFiles
		tooOld := maxAge > 0 && now.Sub(f.modTime) > maxAge
		if !tooMany && !tooOld {
			continue
		}
		if os.Remove(f.path) == nil {
			removed++
		}
	}
	return removed, nil
}
