// Package sflog is the runtime's structured-logging facade: a thin
// wrapper over logiface's generic Logger/Builder API, backed by stumpy's
// zero-allocation JSON writer. Every subsystem that logs (Executor,
// StateMachine, Task) takes an *sflog.Logger rather than talking to
// logiface or stumpy directly, so the backend can be swapped (to
// logiface-zerolog, logiface-slog, or a test-only mock) without touching
// core.
package sflog

import (
	"io"
	"os"

	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
)

// Logger wraps a logiface.Logger[*stumpy.Event], exposing the subset of
// level methods the runtime core uses.
type Logger struct {
	l *logiface.Logger[*stumpy.Event]
}

// Option configures a New Logger.
type Option func(*options)

type options struct {
	writer io.Writer
	level  logiface.Level
}

// WithWriter sets the destination for encoded log lines. Defaults to
// os.Stderr.
func WithWriter(w io.Writer) Option {
	return func(o *options) { o.writer = w }
}

// WithLevel sets the minimum enabled level. Defaults to
// logiface.LevelInformational.
func WithLevel(level logiface.Level) Option {
	return func(o *options) { o.level = level }
}

// New builds a Logger backed by stumpy's JSON writer.
func New(opts ...Option) *Logger {
	o := options{writer: os.Stderr, level: logiface.LevelInformational}
	for _, opt := range opts {
		opt(&o)
	}
	return &Logger{
		l: logiface.New[*stumpy.Event](
			logiface.WithLevel[*stumpy.Event](o.level),
			stumpy.WithStumpy(stumpy.WithWriter(o.writer)),
		),
	}
}

// Err starts a Builder at error level.
func (l *Logger) Err() *logiface.Builder[*stumpy.Event] { return l.l.Err() }

// Warning starts a Builder at warning level.
func (l *Logger) Warning() *logiface.Builder[*stumpy.Event] { return l.l.Warning() }

// Info starts a Builder at informational level.
func (l *Logger) Info() *logiface.Builder[*stumpy.Event] { return l.l.Info() }

// Debug starts a Builder at debug level.
func (l *Logger) Debug() *logiface.Builder[*stumpy.Event] { return l.l.Debug() }
