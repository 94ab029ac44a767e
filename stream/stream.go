// Package stream feeds the lines of an io.Reader to a callback, one at a time.
//
// Example usage with a compiled automaton:
//
//	file, _ := os.Open("server.log")
//	defer file.Close()
//
//	err := stream.ScanLines(file, stream.DefaultConfig(), func(l stream.Line) bool {
//	    spans, _ := dfa.FindMatches(l.Text)
//	    if len(spans) > 0 {
//	        fmt.Printf("%d: %s\n", l.Number, l.Text)
//	    }
//	    return true // continue
//	})
package stream

// Config configures line scanning.
type Config struct {
	// BufferSize is the initial read buffer size.
	// Default: 64KB (65536).
	BufferSize int

	// MaxLineLength is the longest line accepted, in bytes. Longer lines make
	// ScanLines fail with ErrLineTooLong.
	// Default: 1MB.
	// Minimum: BufferSize (raised at runtime).
	MaxLineLength int
}

const (
	defaultBufferSize    = 64 * 1024
	defaultMaxLineLength = 1024 * 1024

	// MinBufferSize is the smallest non-zero BufferSize ScanLines accepts.
	MinBufferSize = 16
)

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		BufferSize:    defaultBufferSize,
		MaxLineLength: defaultMaxLineLength,
	}
}

// ErrBufferTooSmall is returned when Config.BufferSize is below the minimum
// the caller requires.
type ErrBufferTooSmall struct {
	Requested int
	Minimum   int
}

func (e ErrBufferTooSmall) Error() string {
	return "stream: buffer size too small"
}

// ErrLineTooLong is returned when a line exceeds Config.MaxLineLength.
type ErrLineTooLong struct {
	Line  int // 1-based number of the offending line
	Limit int
}

func (e ErrLineTooLong) Error() string {
	return "stream: line too long"
}

// Validate checks the Config. minBuffer is the smallest acceptable non-zero
// BufferSize.
func (c Config) Validate(minBuffer int) error {
	if c.BufferSize > 0 && c.BufferSize < minBuffer {
		return ErrBufferTooSmall{Requested: c.BufferSize, Minimum: minBuffer}
	}
	return nil
}

// ApplyDefaults returns a Config with defaults applied for any zero values.
func (c Config) ApplyDefaults() Config {
	result := c

	if result.BufferSize <= 0 {
		result.BufferSize = defaultBufferSize
	}
	if result.MaxLineLength <= 0 {
		result.MaxLineLength = defaultMaxLineLength
	}
	if result.MaxLineLength < result.BufferSize {
		result.MaxLineLength = result.BufferSize
	}

	return result
}
