package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	hd "github.com/mitchellh/go-homedir"
)

type Options struct {
	Level  string `toml:"level"`
	File   string `toml:"file"`
	Format string `toml:"format"`
}

func level(option string) (slog.Leveler, bool) {
	switch strings.ToLower(option) {
	case "":
		return nil, true
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return nil, false
	}
}

// openFile opens a log file for appending.
var openFile = func(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
}

type handlerFunc func(io.Writer, *slog.HandlerOptions) slog.Handler

func format(option string) (handlerFunc, bool) {
	switch strings.ToLower(option) {
	case "json":
		return func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, opts) }, true
	case "", "text":
		return func(w io.Writer, opts *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, opts) }, true
	default:
		return nil, false
	}
}

// New builds a logger from options. Invalid options are reset to their
// defaults and reported through the resulting logger. Options are checked
// before the log file is opened, so the file is opened at most once.
func New(options *Options) *slog.Logger {
	level, ok := level(options.Level)
	if !ok {
		bad := options.Level
		options.Level = ""
		logger := New(options)
		logger.Warn("could not parse logger level", "level", bad)
		return logger
	}

	newHandler, ok := format(options.Format)
	if !ok {
		bad := options.Format
		options.Format = "text"
		logger := New(options)
		logger.Warn("could not parse logger format", "format", bad)
		return logger
	}

	var output io.Writer
	switch options.File {
	case "", "-":
		output = os.Stderr
	case os.DevNull:
		return slog.New(discardHandler{})
	default:
		path, err := hd.Expand(options.File)
		if err == nil {
			output, err = openFile(path)
		}
		if err != nil {
			options.File = ""
			logger := New(options)
			logger.Warn("could not open logger file", "file", path, "err", err)
			return logger
		}
	}

	return slog.New(newHandler(output, &slog.HandlerOptions{Level: level}))
}

// discardHandler drops every record.
type discardHandler struct{}

func (discardHandler) Enabled(_ context.Context, _ slog.Level) bool  { return false }
func (discardHandler) Handle(_ context.Context, _ slog.Record) error { return nil }
func (h discardHandler) WithAttrs(_ []slog.Attr) slog.Handler        { return h }
func (h discardHandler) WithGroup(_ string) slog.Handler             { return h }
