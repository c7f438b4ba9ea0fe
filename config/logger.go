// SPDX-License-Identifier: MIT

package config

import (
	"io"
	"log/slog"
)

// NewLogger returns a slog logger writing to w in the configured format and
// level. An unparsable level falls back to info.
func NewLogger(c LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if c.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}
