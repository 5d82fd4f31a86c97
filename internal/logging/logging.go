// Package logging builds the zerolog loggers used across oddspulse and
// carries them through context.Context.
package logging

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

// Output and format names accepted in Config.
const (
	OutputStderr  = "stderr"
	OutputFile    = "file"
	OutputDiscard = "discard"

	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config describes where and how to log.
type Config struct {
	Level  string
	Format string
	Output string
	File   string
	Caller bool
}

// Result is a configured logger plus the file handle it writes to, if any.
type Result struct {
	Logger    zerolog.Logger
	UsingFile bool
	FilePath  string

	file *os.File
}

// Close releases the log file handle. Safe to call on a stderr logger.
func (r *Result) Close() error {
	if r == nil || r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// New builds a logger from cfg. An unparseable level falls back to info.
// When the log file cannot be opened, New falls back to stderr and returns
// the open error alongside a usable logger.
func New(cfg Config) (*Result, error) {
	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}

	res := &Result{}
	var out io.Writer = os.Stderr
	var openErr error

	switch cfg.Output {
	case OutputDiscard:
		out = io.Discard
	case OutputFile:
		f, fileErr := openLogFile(cfg.File)
		if fileErr != nil {
			openErr = fmt.Errorf("opening log file %s: %w", cfg.File, fileErr)
			break
		}
		out = f
		res.file = f
		res.UsingFile = true
		res.FilePath = cfg.File
	}

	if cfg.Format == FormatConsole {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: res.UsingFile}
	}

	ctx := zerolog.New(out).Level(lvl).With().Timestamp()
	if cfg.Caller {
		ctx = ctx.Caller()
	}
	res.Logger = ctx.Logger()
	return res, openErr
}

func openLogFile(path string) (*os.File, error) {
	if path == "" {
		return nil, errors.New("no log file configured")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}

// FromContext returns the logger stored in ctx, or a disabled logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	return zerolog.Ctx(ctx)
}

type sessionKey struct{}

// NewSessionID returns a fresh, time-sortable session identifier.
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithSession stores the session id in ctx and tags the context logger with it.
func ContextWithSession(ctx context.Context, l zerolog.Logger, sessionID string) context.Context {
	ctx = context.WithValue(ctx, sessionKey{}, sessionID)
	tagged := l.With().Str("session_id", sessionID).Logger()
	return tagged.WithContext(ctx)
}

// SessionFromContext returns the session id stored in ctx, or "".
func SessionFromContext(ctx context.Context) string {
	if id, ok := ctx.Value(sessionKey{}).(string); ok {
		return id
	}
	return ""
}
