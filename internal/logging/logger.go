// Package logging provides the structured logger shared by the front ends.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New creates a console logger writing to out.
func New(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

// NewCLI returns the stderr logger used by the one-shot commands. Stderr
// keeps log output separate from command results on stdout.
func NewCLI(verbose bool) zerolog.Logger {
	return New(os.Stderr, verbose)
}

// NewFile returns a logger appending to the file at path, plus a close
// function. The TUI uses this so log output never corrupts the screen;
// an empty path disables logging entirely.
func NewFile(path string, verbose bool) (zerolog.Logger, func(), error) {
	if path == "" {
		return zerolog.Nop(), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return zerolog.Nop(), nil, err
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { _ = f.Close() }, nil
}
