package dfagrep

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func mustCompile(t *testing.T, pattern string) *Automaton {
	t.Helper()
	a, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) error = %v", pattern, err)
	}
	t.Cleanup(func() { Release(a) })
	return a
}

func TestAcceptsLiteral(t *testing.T) {
	for _, p := range []string{"a", "abc", "hello", "x.y", "a.b.c"} {
		a := mustCompile(t, p)
		if ok, err := Accepts(a, p); err != nil || !ok {
			t.Errorf("Accepts(%q, %q) = %v, %v, want true", p, p, ok, err)
		}
		if ok, _ := Accepts(a, p+"x"); ok {
			t.Errorf("Accepts(%q, %q) = true, want false", p, p+"x")
		}
	}
}

func TestAccepts(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"a*", "", true},
		{"a*", "aaaa", true},
		{"a*", "aab", false},
		{"a|b", "a", true},
		{"a|b", "b", true},
		{"a|b", "c", false},
		{"a|b", "ab", false},
		{"(ab|c)*", "ababc", true},
		{"(ab|c)*", "aba", false},
		{"(ab|c)*", "", true},
		{"a(b|c)*d", "ad", true},
		{"a(b|c)*d", "abcbd", true},
		{"a(b|c)*d", "abca", false},
		{"a.b", "a.b", true},
		{"a.b", "axb", false},
		{"()", "", true},
		{"()", "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			a := mustCompile(t, tt.pattern)
			got, err := Accepts(a, tt.text)
			if err != nil {
				t.Fatalf("Accepts() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Accepts(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
		})
	}
}

func TestFindMatches(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    []Span
	}{
		{"a", "aaa", []Span{{Start: 0, End: 0}, {Start: 1, End: 1}, {Start: 2, End: 2}}},
		// Shortest match per start index, never extended.
		{"a*", "aaa", []Span{{Start: 0, End: 0}, {Start: 1, End: 1}, {Start: 2, End: 2}}},
		{"ab", "xabyab", []Span{{Start: 1, End: 2}, {Start: 4, End: 5}}},
		{"aa", "aaaa", []Span{{Start: 0, End: 1}, {Start: 1, End: 2}, {Start: 2, End: 3}}},
		{"a|ab", "ab", []Span{{Start: 0, End: 0}}},
		{"(ab|c)*d", "abcd", []Span{{Start: 0, End: 3}, {Start: 2, End: 3}, {Start: 3, End: 3}}},
		{"ab", "", nil},
		{"ab", "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.pattern+"/"+tt.text, func(t *testing.T) {
			a := mustCompile(t, tt.pattern)
			got, err := FindMatches(a, tt.text)
			if err != nil {
				t.Fatalf("FindMatches() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("FindMatches(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("FindMatches(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
					break
				}
			}
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Compile("")
		if !errors.Is(err, ErrEmptyPattern) {
			t.Errorf("error = %v, want ErrEmptyPattern", err)
		}
	})

	t.Run("unclosed paren", func(t *testing.T) {
		_, err := Compile("(a")
		var perr ErrUnbalancedParen
		if !errors.As(err, &perr) {
			t.Errorf("error = %v, want ErrUnbalancedParen", err)
		}
	})

	t.Run("stray close paren", func(t *testing.T) {
		_, err := Compile(")")
		var perr ErrUnbalancedParen
		if !errors.As(err, &perr) || perr.Pos != 0 {
			t.Errorf("error = %v, want ErrUnbalancedParen at 0", err)
		}
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := Compile("a||b")
		var merr ErrMalformedPostfix
		if !errors.As(err, &merr) {
			t.Errorf("error = %v, want ErrMalformedPostfix", err)
		}
		if !strings.HasPrefix(err.Error(), "failed to compile pattern: ") {
			t.Errorf("error not wrapped: %v", err)
		}
	})

	t.Run("state limit", func(t *testing.T) {
		_, err := CompileWithOptions(Options{Pattern: "abcdef", MaxStates: 2})
		var lerr ErrStateLimit
		if !errors.As(err, &lerr) || lerr.Limit != 2 {
			t.Errorf("error = %v, want ErrStateLimit{2}", err)
		}
	})

	t.Run("negative limit", func(t *testing.T) {
		if _, err := CompileWithOptions(Options{Pattern: "a", MaxStates: -1}); err == nil {
			t.Error("CompileWithOptions() with negative MaxStates succeeded")
		}
	})
}

func TestCompileVerbose(t *testing.T) {
	var buf bytes.Buffer
	a, err := CompileWithOptions(Options{Pattern: "a|b", Verbose: true, LogOutput: &buf})
	if err != nil {
		t.Fatal(err)
	}
	defer Release(a)

	if !strings.Contains(buf.String(), "[dfagrep] Parse: Postfix: ab|") {
		t.Errorf("verbose output missing postfix:\n%s", buf.String())
	}
}

func TestDeterministic(t *testing.T) {
	const pattern, text = "(ab|c)*a(b|c)", "abcabacab"
	first, err := FindMatches(mustCompile(t, pattern), text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := FindMatches(mustCompile(t, pattern), text)
	if err != nil {
		t.Fatal(err)
	}
	if len(first) != len(second) {
		t.Fatalf("runs differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("runs differ: %v vs %v", first, second)
		}
	}
}

func TestRelease(t *testing.T) {
	a, err := Compile("ab")
	if err != nil {
		t.Fatal(err)
	}
	if ok, _ := Accepts(a, "ab"); !ok {
		t.Fatal("Accepts() before Release = false")
	}
	Release(a)

	if _, err := Accepts(a, "ab"); !errors.Is(err, ErrUninitialized) {
		t.Errorf("Accepts() after Release error = %v", err)
	}
	if _, err := FindMatches(a, "ab"); !errors.Is(err, ErrUninitialized) {
		t.Errorf("FindMatches() after Release error = %v", err)
	}
}

func TestMatches(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    bool
	}{
		{"abc", "abc", true},
		{"abc", "ab", false},
		{"a*", "", true},
		{"(a", "a", false},
		{"", "", false},
	}
	for _, tt := range tests {
		if got := Matches(tt.pattern, tt.text); got != tt.want {
			t.Errorf("Matches(%q, %q) = %v, want %v", tt.pattern, tt.text, got, tt.want)
		}
	}
}

func TestFilter(t *testing.T) {
	a := mustCompile(t, "ab")
	rc := Filter(strings.NewReader("xab\nba\nabab\n"), a)
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "xab\nabab\n" {
		t.Errorf("Filter() = %q", got)
	}
}

func TestAnalyze(t *testing.T) {
	res, err := Analyze("(ab|c)*")
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if res.Postfix != "ab.c|*" || res.Alphabet != "abc" || !res.MatchesEmpty {
		t.Errorf("Analyze() = %+v", res)
	}

	if _, err := AnalyzeWithLimit("abcdef", 2); err == nil {
		t.Error("AnalyzeWithLimit() under the state limit succeeded")
	}
}

func TestGenerateOptionsValidate(t *testing.T) {
	valid := GenerateOptions{Pattern: "a", Name: "A", Package: "p", OutputFile: "a.go"}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}

	for name, mutate := range map[string]func(*GenerateOptions){
		"pattern": func(o *GenerateOptions) { o.Pattern = "" },
		"name":    func(o *GenerateOptions) { o.Name = "" },
		"package": func(o *GenerateOptions) { o.Package = "" },
		"output":  func(o *GenerateOptions) { o.OutputFile = "" },
		"limit":   func(o *GenerateOptions) { o.MaxStates = -1 },
	} {
		opts := valid
		mutate(&opts)
		if err := opts.Validate(); err == nil {
			t.Errorf("Validate() without %s succeeded", name)
		}
	}
}

func TestGenerate(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "hex.go")

	err := Generate(GenerateOptions{
		Pattern:    "(a|b|c)(a|b|c)*",
		Name:       "abc",
		Package:    "hex",
		OutputFile: out,
		TestInputs: []string{"abc", "abx"},
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	src, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "type Abc struct{}") {
		t.Errorf("generated matcher missing exported type:\n%s", src)
	}
	if _, err := os.Stat(filepath.Join(dir, "hex_test.go")); err != nil {
		t.Errorf("generated test file missing: %v", err)
	}

	if err := Generate(GenerateOptions{Pattern: "(", Name: "X", Package: "p", OutputFile: out}); err == nil {
		t.Error("Generate() with an invalid pattern succeeded")
	}
}

func TestGenerateMaxStates(t *testing.T) {
	out := filepath.Join(t.TempDir(), "abc.go")
	opts := GenerateOptions{Pattern: "abcdef", Name: "Abc", Package: "abc", OutputFile: out, MaxStates: 2}

	err := Generate(opts)
	var lerr ErrStateLimit
	if !errors.As(err, &lerr) || lerr.Limit != 2 {
		t.Fatalf("Generate() error = %v, want ErrStateLimit{2}", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Errorf("matcher written despite the state limit (stat error %v)", statErr)
	}

	opts.MaxStates = 20
	if err := Generate(opts); err != nil {
		t.Errorf("Generate() with a sufficient limit error = %v", err)
	}
}

func TestGenerateFrom(t *testing.T) {
	dir := t.TempDir()
	a := mustCompile(t, "ab|c")
	opts := GenerateOptions{Pattern: "ab|c", Name: "AbOrC", Package: "abc", OutputFile: filepath.Join(dir, "abc.go")}

	if err := GenerateFrom(a, opts); err != nil {
		t.Fatalf("GenerateFrom() error = %v", err)
	}
	src, err := os.ReadFile(opts.OutputFile)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(src), "type AbOrC struct{}") {
		t.Errorf("generated matcher:\n%s", src)
	}
	if ok, _ := Accepts(a, "ab"); !ok {
		t.Error("GenerateFrom() released or altered the automaton")
	}

	released, err := Compile("a")
	if err != nil {
		t.Fatal(err)
	}
	Release(released)
	if err := GenerateFrom(released, opts); !errors.Is(err, ErrUninitialized) {
		t.Errorf("GenerateFrom() on a released automaton error = %v, want ErrUninitialized", err)
	}
}
