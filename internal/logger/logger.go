package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Session identifies one floralqr invocation. Every entry written by a
// session logger carries its id and the command that started it.
type Session struct {
	ID      string
	Command string
}

// NewSession starts a session for command with a fresh random id.
func NewSession(command string) Session {
	return Session{ID: uuid.NewString(), Command: command}
}

// Options describes logger configuration supplied at creation time.
type Options struct {
	Level         string
	HumanReadable bool
	Writer        io.Writer
	// Session is stamped on every entry when its ID is set.
	Session Session
}

// Logger wraps zerolog to provide a simplified API for the application.
type Logger struct {
	base    zerolog.Logger
	session Session
}

// New creates a configured Logger instance based on Options.
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	ctx := zerolog.New(output(opts)).Level(level).With().Timestamp()
	if opts.Session.ID != "" {
		ctx = ctx.Str("session_id", opts.Session.ID)
	}
	if opts.Session.Command != "" {
		ctx = ctx.Str("command", opts.Session.Command)
	}

	return &Logger{base: ctx.Logger(), session: opts.Session}, nil
}

func parseLevel(value string) (zerolog.Level, error) {
	if value == "" {
		return zerolog.InfoLevel, nil
	}
	return zerolog.ParseLevel(strings.ToLower(value))
}

func output(opts Options) io.Writer {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stdout
	}
	if !opts.HumanReadable {
		return writer
	}

	console := zerolog.NewConsoleWriter()
	console.Out = writer
	console.TimeFormat = time.RFC3339
	return console
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Session returns the session the logger was created for. A nil logger has
// the zero session.
func (l *Logger) Session() Session {
	if l == nil {
		return Session{}
	}
	return l.session
}

// Action returns a derived logger for one user action such as "copy".
func (l *Logger) Action(name string) *Logger {
	return l.WithFields(map[string]any{"action": name})
}

// WithFields returns a derived logger that always writes the supplied fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}

	builder := l.base.With()
	for key, value := range fields {
		builder = builder.Interface(key, value)
	}
	return &Logger{base: builder.Logger(), session: l.session}
}

// Info writes an informational log entry.
func (l *Logger) Info(msg string) {
	if l == nil {
		return
	}
	l.base.Info().Msg(msg)
}

// Debug writes a debug-level log entry if enabled.
func (l *Logger) Debug(msg string) {
	if l == nil {
		return
	}
	l.base.Debug().Msg(msg)
}

// Warn writes a warning level log entry.
func (l *Logger) Warn(msg string) {
	if l == nil {
		return
	}
	l.base.Warn().Msg(msg)
}

// Error writes an error log entry including the supplied error context.
func (l *Logger) Error(err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.Error()
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
