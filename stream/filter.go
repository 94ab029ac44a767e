package stream

import (
	"io"
)

// Filter returns a reader that yields only the lines of r for which keep
// returns true. Each kept line is terminated with "\n".
//
// The lines are produced by a goroutine. Read the result to EOF or Close it,
// otherwise that goroutine stays blocked.
//
// Example - keep only lines containing a match:
//
//	rc := stream.Filter(input, stream.DefaultConfig(), func(line string) bool {
//	    ok, _ := dfa.Accepts(line)
//	    return ok
//	})
//	defer rc.Close()
//	io.Copy(os.Stdout, rc)
func Filter(r io.Reader, cfg Config, keep func(line string) bool) io.ReadCloser {
	pr, pw := io.Pipe()

	go func() {
		err := ScanLines(r, cfg, func(l Line) bool {
			if !keep(l.Text) {
				return true
			}
			if _, werr := io.WriteString(pw, l.Text+"\n"); werr != nil {
				// Reader side was closed.
				return false
			}
			return true
		})
		pw.CloseWithError(err)
	}()

	return pr
}
