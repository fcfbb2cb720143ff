// Package logging builds the cleaningreport process logger.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Options selects the log destination and record shape. The zero value logs
// info and above as JSON to stderr.
type Options struct {
	Level  string
	Format string // "json" or "text"
	File   string // also append records here when set
	// APIOrigin is attached to every record so logs from clients pointed at
	// different backends can be told apart.
	APIOrigin string
}

// New builds the logger described by opts and makes it the slog default.
// The returned cleanup closes the log file; callers must defer it.
func New(opts Options) (*slog.Logger, func(), error) {
	var out io.Writer = os.Stderr
	cleanup := func() {}

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0600)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out = io.MultiWriter(os.Stderr, f)
		cleanup = func() { _ = f.Close() }
	}

	logger := newLogger(out, opts)
	slog.SetDefault(logger)
	return logger, cleanup, nil
}

func newLogger(w io.Writer, opts Options) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{Level: parseLevel(opts.Level)}

	var handler slog.Handler
	if strings.EqualFold(opts.Format, "text") {
		handler = slog.NewTextHandler(w, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(w, handlerOpts)
	}

	logger := slog.New(handler).With("app", "cleaningreport")
	if opts.APIOrigin != "" {
		logger = logger.With("api_origin", opts.APIOrigin)
	}
	return logger
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
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
