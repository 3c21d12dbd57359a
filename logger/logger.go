package logger

import (
	"io"
	"log/slog"
	"os"
)

type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Type selects the slog handler used to render records.
type Type int

const (
	TypeText Type = iota
	TypeJSON
)

type Options struct {
	Writer io.Writer
	Level  Level
	Type   Type
}

// Default writes text records to stderr at the default level.
var Default = New(Options{Writer: os.Stderr, Level: DefaultLevel, Type: TypeText})

// Discard drops every record. Used as the default for library types that
// should stay silent unless the caller opts in.
var Discard = New(Options{Writer: io.Discard, Level: ErrorLevel, Type: TypeText})

type logger struct {
	*slog.Logger
}

func New(opts Options) Logger {
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Writer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}
