// SPDX-License-Identifier: MIT
// Source: github.com/patricklfdm/bdisim

// Package simlog wraps zerolog with the structured, leveled logging the
// trace driver and CLI use in place of the reference's unadorned stderr
// fprintf calls.
package simlog

import (
	"os"

	"github.com/rs/zerolog"
)

// Logger is the simulator's structured logger. Its zero value is not
// usable; build one with New.
type Logger struct {
	zl zerolog.Logger
}

// New builds a Logger writing to stderr at the given level name ("debug",
// "info", "warn", "error"); an unrecognized level falls back to "info".
// Stderr keeps log lines out of the interactive prompts and run summary on
// stdout, and keeps skipped-record messages on the stream they have always
// used.
func New(level string) *Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()
	return &Logger{zl: zl}
}

// With returns a Logger with an additional string field attached to every
// subsequent line, e.g. the run id or trace filename.
func (l *Logger) With(key, value string) *Logger {
	return &Logger{zl: l.zl.With().Str(key, value).Logger()}
}

// Info logs an informational line (run start/summary).
func (l *Logger) Info(msg string) {
	l.zl.Info().Msg(msg)
}

// Warn logs a recoverable problem: an unparseable trace line, a dropped
// CAMP history insertion.
func (l *Logger) Warn(msg string, err error) {
	l.zl.Warn().Err(err).Msg(msg)
}

// Error logs a failure that is about to abort the run: a trace or seed
// file that could not be opened, an internal invariant violation.
func (l *Logger) Error(msg string, err error) {
	l.zl.Error().Err(err).Msg(msg)
}
