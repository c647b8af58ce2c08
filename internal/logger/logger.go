// Package logger prints container lifecycle messages for the texteditor CLI.
// Messages are only written when verbose mode is on, so the diagnostic lines
// on stdout stay unchanged by default.
package logger

import (
	"fmt"
	"io"
	"os"
)

// Logger writes levelled, prefixed lines to an output writer.
// The zero value and a nil *Logger are silent.
type Logger struct {
	out     io.Writer
	prefix  string
	verbose bool
}

// New returns a logger writing to out, or os.Stderr when out is nil.
func New(out io.Writer, prefix string, verbose bool) *Logger {
	if out == nil {
		out = os.Stderr
	}
	return &Logger{out: out, prefix: prefix, verbose: verbose}
}

// IsVerbose reports whether messages are written.
func (l *Logger) IsVerbose() bool {
	return l != nil && l.verbose && l.out != nil
}

// Debug prints a debug message.
func (l *Logger) Debug(format string, args ...any) { l.print("DEBUG", format, args...) }

// Info prints an informational message.
func (l *Logger) Info(format string, args ...any) { l.print("INFO", format, args...) }

// Warn prints a warning.
func (l *Logger) Warn(format string, args ...any) { l.print("WARN", format, args...) }

func (l *Logger) print(level, format string, args ...any) {
	if !l.IsVerbose() {
		return
	}
	if l.prefix != "" {
		_, _ = fmt.Fprintf(l.out, "[%s] [%s] "+format+"\n", append([]any{level, l.prefix}, args...)...)
		return
	}
	_, _ = fmt.Fprintf(l.out, "[%s] "+format+"\n", append([]any{level}, args...)...)
}
