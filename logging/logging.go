// Package logging builds the structured slog logger used by the waypoint
// CLI and server. Library packages (core, search and the engines) never log.
//
// Handlers:
//
//   - "text": slog.TextHandler, the default, for terminals.
//   - "json": slog.JSONHandler, for log shippers.
//
// Usage:
//
//	logger, err := logging.New(cfg.Log, os.Stderr)
//	logger.Info("search finished", "algorithm", "dijkstra", "steps", 36)
package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/waypoint/config"
)

// ErrInvalidLevel is returned by ParseLevel for an unknown level name.
var ErrInvalidLevel = errors.New("logging: invalid level")

// ParseLevel accepts debug, info, warn and error (any case) plus slog's
// offset form such as "info+2".
func ParseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: %q", ErrInvalidLevel, s)
	}

	return lvl, nil
}

// New returns a logger writing to w (os.Stderr when nil) with the handler
// and level named in cfg.
func New(cfg config.LogConfig, w io.Writer) (*slog.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	if w == nil {
		w = os.Stderr
	}
	opts := &slog.HandlerOptions{Level: lvl}

	var h slog.Handler
	switch strings.ToLower(cfg.Format) {
	case config.FormatJSON:
		h = slog.NewJSONHandler(w, opts)
	case config.FormatText, "":
		h = slog.NewTextHandler(w, opts)
	default:
		return nil, fmt.Errorf("logging: unknown format %q", cfg.Format)
	}

	return slog.New(h), nil
}

// Discard returns a logger that drops every record. Tests use it.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError + 1}))
}
