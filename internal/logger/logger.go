package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Output formats accepted by Options.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures a Logger.
type Options struct {
	Level  string
	Format string
	Writer io.Writer
}

// Logger is the structured logger shared by the server and the CLI.
type Logger struct {
	base zerolog.Logger
}

// New builds a Logger from opts. Level defaults to info, Format to json and
// Writer to stderr.
func New(opts Options) (*Logger, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	level := zerolog.InfoLevel
	if opts.Level != "" {
		parsed, err := zerolog.ParseLevel(strings.ToLower(opts.Level))
		if err != nil {
			return nil, fmt.Errorf("logger: %w", err)
		}
		level = parsed
	}

	var output io.Writer
	switch strings.ToLower(opts.Format) {
	case "", FormatJSON:
		output = writer
	case FormatConsole:
		console := zerolog.NewConsoleWriter()
		console.Out = writer
		console.TimeFormat = time.RFC3339
		output = console
	default:
		return nil, fmt.Errorf("logger: unknown format %q", opts.Format)
	}

	return &Logger{base: zerolog.New(output).Level(level).With().Timestamp().Logger()}, nil
}

// Nop discards everything.
func Nop() *Logger {
	return &Logger{base: zerolog.Nop()}
}

// Named tags every entry with the component that wrote it.
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Str("component", component).Logger()}
}

// WithFields returns a derived logger that always writes fields.
func (l *Logger) WithFields(fields map[string]any) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{base: l.base.With().Fields(fields).Logger()}
}

// With is WithFields for a single field.
func (l *Logger) With(key string, value any) *Logger {
	return l.WithFields(map[string]any{key: value})
}

// Request logs one served HTTP request. Server errors go out at error level,
// client errors at warn.
func (l *Logger) Request(id, method, path string, status int, latency time.Duration) {
	if l == nil {
		return
	}
	level := zerolog.InfoLevel
	switch {
	case status >= 500:
		level = zerolog.ErrorLevel
	case status >= 400:
		level = zerolog.WarnLevel
	}
	l.base.WithLevel(level).
		Str("request_id", id).
		Str("method", method).
		Str("path", path).
		Int("status", status).
		Dur("latency", latency).
		Msg("request")
}

func (l *Logger) Info(msg string)  { l.emit(zerolog.InfoLevel, nil, msg) }
func (l *Logger) Debug(msg string) { l.emit(zerolog.DebugLevel, nil, msg) }
func (l *Logger) Warn(msg string)  { l.emit(zerolog.WarnLevel, nil, msg) }

// Error logs msg with err attached under the "error" key.
func (l *Logger) Error(err error, msg string) { l.emit(zerolog.ErrorLevel, err, msg) }

func (l *Logger) emit(level zerolog.Level, err error, msg string) {
	if l == nil {
		return
	}
	event := l.base.WithLevel(level)
	if err != nil {
		event = event.Err(err)
	}
	event.Msg(msg)
}
