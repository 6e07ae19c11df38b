// Package logger builds the process-wide slog logger.
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-chi/httplog/v3"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Options struct {
	Level   string
	File    string // empty means stdout
	App     string
	Version string
	Env     string
}

// New returns a JSON logger using the ECS field names the request logger
// uses, and a close function for the underlying writer.
func New(opts Options) (*slog.Logger, func() error) {
	var w io.Writer = os.Stdout
	closeFn := func() error { return nil }

	if opts.File != "" {
		// Setup lumberjack for log rotation
		lj := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    100,  // MB
			MaxBackups: 3,    // Keep max 3 old log files
			MaxAge:     28,   // days
			Compress:   true, // Compress old logs with gzip
		}
		w = lj
		closeFn = lj.Close
	}

	return newWithWriter(w, opts), closeFn
}

func newWithWriter(w io.Writer, opts Options) *slog.Logger {
	logFormat := httplog.SchemaECS.Concise(opts.Env != "development")
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       ParseLevel(opts.Level),
		ReplaceAttr: logFormat.ReplaceAttr,
	})

	return slog.New(handler).With(
		slog.String("app", opts.App),
		slog.String("version", opts.Version),
		slog.String("env", opts.Env),
	)
}

// ParseLevel maps debug, info, warn and error; anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
