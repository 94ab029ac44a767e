package compiler

import (
	"strings"
	"testing"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// A recursive-descent grammar for the same pattern language. Walking its
// parse tree gives an independent postfix rendering to check ToPostfix against.

type pAlt struct {
	Branches []*pConcat `parser:"@@ ( '|' @@ )*"`
}

type pConcat struct {
	Items []*pRepeat `parser:"@@+"`
}

type pRepeat struct {
	Atom  *pAtom   `parser:"@@"`
	Stars []string `parser:"@'*'*"`
}

type pAtom struct {
	Sym   *string `parser:"  @Sym"`
	Group *pAlt   `parser:"| '(' @@ ')'"`
}

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Op", Pattern: `[|*()]`},
	{Name: "Sym", Pattern: `[^|*()]`},
})

var patternParser = participle.MustBuild[pAlt](participle.Lexer(patternLexer))

func (a *pAlt) postfix(b *strings.Builder) {
	for i, br := range a.Branches {
		br.postfix(b)
		if i > 0 {
			b.WriteByte(OpUnion)
		}
	}
}

func (c *pConcat) postfix(b *strings.Builder) {
	for i, it := range c.Items {
		it.postfix(b)
		if i > 0 {
			b.WriteByte(OpConcat)
		}
	}
}

func (r *pRepeat) postfix(b *strings.Builder) {
	if r.Atom.Sym != nil {
		b.WriteString(*r.Atom.Sym)
	} else {
		r.Atom.Group.postfix(b)
	}
	for range r.Stars {
		b.WriteByte(OpStar)
	}
}

var oraclePatterns = []string{
	"a",
	"ab",
	"abc",
	"a|b",
	"x|y|z",
	"a|bc*",
	"a*b",
	"a**b",
	"(ab|c)*d",
	"a(b|c)*d",
	"((a))",
	"(a|b)*abb",
	"ab*|ba*",
	"(a(b(c|d)*)*)*e",
}

func TestToPostfixMatchesGrammar(t *testing.T) {
	for _, p := range oraclePatterns {
		t.Run(p, func(t *testing.T) {
			tree, err := patternParser.ParseString("", p)
			if err != nil {
				t.Fatalf("grammar rejected %q: %v", p, err)
			}
			var want strings.Builder
			tree.postfix(&want)

			got := mustPostfix(t, p)
			if got.String() != want.String() {
				t.Errorf("ToPostfix(%q) = %q, grammar gives %q", p, got, want.String())
			}
		})
	}
}

// lexmachineAccepts reports whether lexmachine's own DFA consumes all of text
// as a single token of pattern.
func lexmachineAccepts(t *testing.T, pattern, text string) bool {
	t.Helper()
	lex := lexmachine.NewLexer()
	lex.Add([]byte(pattern), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return len(m.Bytes), nil
	})
	if err := lex.Compile(); err != nil {
		t.Fatalf("lexmachine rejected %q: %v", pattern, err)
	}
	scanner, err := lex.Scanner([]byte(text))
	if err != nil {
		t.Fatalf("lexmachine scanner: %v", err)
	}
	tok, err, eos := scanner.Next()
	if err != nil || eos {
		return false
	}
	return tok.(int) == len(text)
}

func TestAcceptsMatchesLexmachine(t *testing.T) {
	// Patterns that cannot match the empty string; lexmachine refuses those.
	patterns := []string{"ab", "a|bc*", "(ab|c)*d", "a(b|c)*d", "(a|b)*abb", "ab*|ba*"}
	texts := []string{"a", "ab", "abb", "abc", "bc", "bccc", "d", "abcd", "ababcd", "acbd", "aabb", "babb", "abab", "baaa", "abbb"}

	for _, p := range patterns {
		dfa, err := Compile(p)
		if err != nil {
			t.Fatalf("Compile(%q) error = %v", p, err)
		}
		for _, text := range texts {
			got, err := dfa.Accepts(text)
			if err != nil {
				t.Fatalf("Accepts() error = %v", err)
			}
			if want := lexmachineAccepts(t, p, text); got != want {
				t.Errorf("Accepts(%q, %q) = %v, lexmachine says %v", p, text, got, want)
			}
		}
	}
}
