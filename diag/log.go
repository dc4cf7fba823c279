// Package diag provides the diagnostic trace sink shared by a container and its workers.
package diag

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Log writes trace lines to an output while enabled and discards them otherwise.
// Every write happens under one mutex, so lines from concurrent goroutines never interleave.
type Log struct {
	mu      sync.Mutex
	out     io.Writer
	enabled bool
}

// New returns a Log writing to out. A nil out means os.Stdout.
func New(out io.Writer, enabled bool) *Log {
	if out == nil {
		out = os.Stdout
	}
	return &Log{out: out, enabled: enabled}
}

func (l *Log) SetEnabled(enabled bool) {
	l.mu.Lock()
	l.enabled = enabled
	l.mu.Unlock()
}

func (l *Log) Enabled() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.enabled
}

// Printf formats and writes one message. A trailing newline is not added.
func (l *Log) Printf(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.printf(format, args...)
}

// Locked runs fn while holding the log lock. Everything fn prints through printf is
// written as one uninterrupted block, and state fn touches is updated atomically with it.
func (l *Log) Locked(fn func(printf func(format string, args ...any))) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.printf)
}

func (l *Log) sink() io.Writer {
	if !l.enabled {
		return io.Discard
	}
	return l.out
}

// caller holds l.mu
func (l *Log) printf(format string, args ...any) {
	// trace output is best effort
	_, _ = fmt.Fprintf(l.sink(), format, args...)
}
