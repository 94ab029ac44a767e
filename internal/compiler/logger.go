package compiler

import (
	"fmt"
	"io"
	"os"
)

const logPrefix = "[dfagrep] "

// Logger traces the pipeline stage by stage. Messages logged after Section
// carry the stage name, e.g. "[dfagrep] Parse: Postfix: ab.".
//
// A nil *Logger and one created disabled discard everything.
type Logger struct {
	w     io.Writer // nil when disabled
	stage string
}

// NewLogger returns a logger writing to stderr, or a silent one.
func NewLogger(enabled bool) *Logger {
	l := &Logger{}
	if enabled {
		l.w = os.Stderr
	}
	return l
}

// SetOutput redirects an enabled logger. It has no effect on a disabled one.
func (l *Logger) SetOutput(w io.Writer) {
	if l.Enabled() && w != nil {
		l.w = w
	}
}

// Enabled reports whether messages are written.
func (l *Logger) Enabled() bool {
	return l != nil && l.w != nil
}

// Section starts a pipeline stage.
func (l *Logger) Section(name string) {
	if !l.Enabled() {
		return
	}
	l.stage = name
	fmt.Fprintf(l.w, "%s--- %s ---\n", logPrefix, name)
}

// Log writes one message tagged with the current stage.
func (l *Logger) Log(format string, args ...any) {
	if !l.Enabled() {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if l.stage != "" {
		msg = l.stage + ": " + msg
	}
	fmt.Fprintln(l.w, logPrefix+msg)
}
