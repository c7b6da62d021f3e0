package cmd

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// logger reports diagnostics, it is silent unless verbose.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
	Level(zerolog.WarnLevel).
	With().Timestamp().Logger()

// SetupLogger directs diagnostics to w, at debug level when verbose.
func SetupLogger(w io.Writer) {
	level := zerolog.WarnLevel
	if *Verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
		Level(level).
		With().Timestamp().Logger()
}
