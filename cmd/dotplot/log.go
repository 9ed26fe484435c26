package main

import (
	"io"

	"github.com/rs/zerolog"
)

// newLogger returns a logger writing to w. Unknown levels fall back to
// info; any format other than json is rendered for humans.
func newLogger(level, format string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var zl zerolog.Logger
	if format == "json" {
		zl = zerolog.New(w)
	} else {
		zl = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"})
	}
	return zl.Level(lvl).With().Timestamp().Str("cmd", "dotplot").Logger()
}
