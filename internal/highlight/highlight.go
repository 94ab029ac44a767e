// Package highlight renders match spans inside a line of text.
package highlight

import (
	"strings"

	"github.com/KromDaniel/dfagrep/internal/automaton"
	"golang.org/x/exp/slices"
)

// Style is the marker pair wrapped around each highlighted region.
type Style struct {
	Open  string
	Close string
}

var (
	// ANSI highlights in bold red on a terminal.
	ANSI = Style{Open: "\x1b[1;31m", Close: "\x1b[0m"}
	// Brackets marks regions with square brackets, for plain output.
	Brackets = Style{Open: "[", Close: "]"}
)

// Highlighter wraps matched regions of a line in a Style.
type Highlighter struct {
	style Style
}

// New returns a Highlighter using style.
func New(style Style) *Highlighter {
	return &Highlighter{style: style}
}

// MergeSpans sorts spans by start and folds overlapping spans into their
// union. Adjacent but disjoint spans stay separate. The input is not
// modified.
func MergeSpans(spans []automaton.Span) []automaton.Span {
	if len(spans) == 0 {
		return nil
	}
	sorted := slices.Clone(spans)
	slices.SortStableFunc(sorted, func(a, b automaton.Span) int {
		return a.Start - b.Start
	})

	merged := []automaton.Span{sorted[0]}
	for _, s := range sorted[1:] {
		last := &merged[len(merged)-1]
		if s.Start <= last.End {
			if s.End > last.End {
				last.End = s.End
			}
			continue
		}
		merged = append(merged, s)
	}
	return merged
}

// Render returns line with every span wrapped in the highlighter's markers.
// Text outside spans is copied unchanged. Spans may overlap and arrive in any
// order; parts lying outside the line are clipped.
func (h *Highlighter) Render(line string, spans []automaton.Span) string {
	var b strings.Builder
	pos := 0
	for _, s := range MergeSpans(spans) {
		if s.End >= len(line) {
			s.End = len(line) - 1
		}
		if s.Start < pos {
			s.Start = pos
		}
		if s.Start > s.End {
			continue
		}
		b.WriteString(line[pos:s.Start])
		b.WriteString(h.style.Open)
		b.WriteString(line[s.Start : s.End+1])
		b.WriteString(h.style.Close)
		pos = s.End + 1
	}
	b.WriteString(line[pos:])
	return b.String()
}
