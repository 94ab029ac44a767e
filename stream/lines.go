package stream

import (
	"bufio"
	"errors"
	"io"
)

// Line is one line of input without its terminator.
type Line struct {
	Number int // 1-based
	Text   string
}

// ScanLines reads r line by line and calls fn for each line in order. Line
// terminators ("\n" or "\r\n") are stripped. Returning false from fn stops
// the scan without error. A BufferSize below MinBufferSize fails with
// ErrBufferTooSmall before anything is read.
func ScanLines(r io.Reader, cfg Config, fn func(Line) bool) error {
	if err := cfg.Validate(MinBufferSize); err != nil {
		return err
	}
	cfg = cfg.ApplyDefaults()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, cfg.BufferSize), cfg.MaxLineLength)

	n := 0
	for scanner.Scan() {
		n++
		if !fn(Line{Number: n, Text: scanner.Text()}) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return ErrLineTooLong{Line: n + 1, Limit: cfg.MaxLineLength}
		}
		return err
	}
	return nil
}
