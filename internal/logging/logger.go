// Package logging builds the CLI's slog loggers.
package logging

import (
	"io"
	"log/slog"
)

// New returns a text logger writing to w at the given level. The "error" key
// is shortened to "err" so library and CLI records line up.
func New(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == "error" {
				a.Key = "err"
			}
			return a
		},
	}))
}
