// Package gild is a rich-text styling engine for terminals. It attaches
// styles to ranges of text, parses an inline BBCode-like markup language,
// flattens overlapping style spans into disjoint renderable segments, and
// encodes them as ANSI SGR sequences for a terminal of a given color
// fidelity.
//
// The engine is a pure text transform: it owns no terminal, performs no
// I/O, and holds no global mutable state beyond an optional logger. The
// target ColorSystem is always supplied by the caller
package gild

import (
	"io"

	"golang.org/x/exp/slog"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

// SetLogHandler directs the package's diagnostic logs to the given handler.
// By default logs are discarded
func SetLogHandler(h slog.Handler) {
	log = slog.New(h)
}
