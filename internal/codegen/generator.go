package codegen

import (
	"fmt"
	"io"
	"strings"

	"github.com/KromDaniel/dfagrep/internal/automaton"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern    string
	Name       string   // Prefix of generated identifiers, e.g. "Email"
	Package    string   // Package clause of the generated files
	OutputFile string   // Path of the matcher file; the test file sits next to it
	TestInputs []string // Inputs baked into the generated test file; none means no test file
}

// Generator emits a table-driven matcher for one compiled automaton.
type Generator struct {
	config Config
	dfa    *automaton.DFA
}

// New creates a generator for dfa.
func New(config Config, dfa *automaton.DFA) *Generator {
	return &Generator{config: config, dfa: dfa}
}

// TestFile returns the path of the generated test file.
func (g *Generator) TestFile() string {
	return strings.TrimSuffix(g.config.OutputFile, ".go") + "_test.go"
}

// Generate writes the matcher file and, when test inputs are configured, its
// test file.
func (g *Generator) Generate() error {
	f, err := g.matcherFile()
	if err != nil {
		return err
	}
	if err := f.Save(g.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	if len(g.config.TestInputs) == 0 {
		return nil
	}
	tf, err := g.testFile()
	if err != nil {
		return err
	}
	if err := tf.Save(g.TestFile()); err != nil {
		return fmt.Errorf("failed to save test file: %w", err)
	}
	return nil
}

// Render writes the matcher source to w.
func (g *Generator) Render(w io.Writer) error {
	f, err := g.matcherFile()
	if err != nil {
		return err
	}
	return f.Render(w)
}

// RenderTest writes the test source to w.
func (g *Generator) RenderTest(w io.Writer) error {
	tf, err := g.testFile()
	if err != nil {
		return err
	}
	return tf.Render(w)
}

func (g *Generator) header(f *jen.File) {
	f.HeaderComment(fmt.Sprintf("Code generated by dfagrep for pattern %q. DO NOT EDIT.", g.config.Pattern))
}

// method returns a jen.Statement declaring a method on the generated struct.
func (g *Generator) method(f *jen.File, name string) *jen.Statement {
	return f.Func().Params(jen.Id(g.config.Name)).Id(name)
}

func (g *Generator) matcherFile() (*jen.File, error) {
	if !g.dfa.Initialized() {
		return nil, automaton.ErrUninitialized
	}
	var (
		name        = g.config.Name
		classes     = TableName(name, "Classes")
		transitions = TableName(name, "Transitions")
		accepting   = TableName(name, "Accepting")
		live        = TableName(name, "Live")
		alphabet    = g.dfa.Alphabet()
		n           = g.dfa.Len()
	)

	f := jen.NewFile(g.config.Package)
	g.header(f)

	f.Comment(fmt.Sprintf("%s matches the pattern %q.", name, g.config.Pattern))
	f.Type().Id(name).Struct()
	f.Line()
	f.Var().Id("Compiled" + name).Op("=").Id(name).Values()
	f.Line()

	classDict := jen.Dict{}
	for slot, c := range alphabet {
		classDict[jen.LitRune(rune(c))] = jen.Lit(slot + 1)
	}
	f.Comment(fmt.Sprintf("%s maps an input byte to its alphabet slot plus one; 0 means outside the alphabet.", classes))
	f.Var().Id(classes).Op("=").Index(jen.Lit(256)).Int().Values(classDict)
	f.Line()

	rows := make([]jen.Code, n)
	acceptLits := make([]jen.Code, n)
	liveLits := make([]jen.Code, n)
	for id := 0; id < n; id++ {
		st := g.dfa.State(id)
		cells := make([]jen.Code, len(st.Next))
		for slot, to := range st.Next {
			cells[slot] = jen.Lit(to)
		}
		rows[id] = jen.Values(cells...)
		acceptLits[id] = jen.Lit(st.Accepting)
		liveLits[id] = jen.Lit(g.dfa.Live(id))
	}
	f.Comment(fmt.Sprintf("%s[state][slot] is the next state.", transitions))
	f.Var().Id(transitions).Op("=").Index(jen.Lit(n)).Index(jen.Lit(len(alphabet))).Int().Values(rows...)
	f.Var().Id(accepting).Op("=").Index(jen.Lit(n)).Bool().Values(acceptLits...)
	f.Var().Id(live).Op("=").Index(jen.Lit(n)).Bool().Values(liveLits...)
	f.Line()

	start := g.dfa.Start()

	f.Comment("MatchString reports whether the whole input is matched.")
	g.method(f, "MatchString").
		Params(jen.Id(InputName).String()).
		Params(jen.Bool()).
		Block(
			jen.Id(StateName).Op(":=").Lit(start),
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Len(jen.Id(InputName)), jen.Id("i").Op("++")).Block(
				jen.Id(ClassName).Op(":=").Id(classes).Index(jen.Id(InputName).Index(jen.Id("i"))),
				jen.If(jen.Id(ClassName).Op("==").Lit(0)).Block(jen.Return(jen.False())),
				jen.Id(StateName).Op("=").Id(transitions).Index(jen.Id(StateName)).Index(jen.Id(ClassName).Op("-").Lit(1)),
			),
			jen.Return(jen.Id(accepting).Index(jen.Id(StateName))),
		)
	f.Line()

	f.Comment("FindMatches returns the shortest match starting at every index as inclusive [start, end] pairs.")
	g.method(f, "FindMatches").
		Params(jen.Id(InputName).String()).
		Params(jen.Index().Index(jen.Lit(2)).Int()).
		Block(
			jen.Var().Id(SpansName).Index().Index(jen.Lit(2)).Int(),
			jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Len(jen.Id(InputName)), jen.Id("i").Op("++")).Block(
				jen.Id(StateName).Op(":=").Lit(start),
				jen.For(jen.Id("j").Op(":=").Id("i"), jen.Id("j").Op("<").Len(jen.Id(InputName)), jen.Id("j").Op("++")).Block(
					jen.Id(ClassName).Op(":=").Id(classes).Index(jen.Id(InputName).Index(jen.Id("j"))),
					jen.If(jen.Id(ClassName).Op("==").Lit(0)).Block(jen.Break()),
					jen.Id(StateName).Op("=").Id(transitions).Index(jen.Id(StateName)).Index(jen.Id(ClassName).Op("-").Lit(1)),
					jen.If(jen.Op("!").Id(live).Index(jen.Id(StateName))).Block(jen.Break()),
					jen.If(jen.Id(accepting).Index(jen.Id(StateName))).Block(
						jen.Id(SpansName).Op("=").Append(jen.Id(SpansName), jen.Index(jen.Lit(2)).Int().Values(jen.Id("i"), jen.Id("j"))),
						jen.Break(),
					),
				),
			),
			jen.Return(jen.Id(SpansName)),
		)

	return f, nil
}

func (g *Generator) testFile() (*jen.File, error) {
	if !g.dfa.Initialized() {
		return nil, automaton.ErrUninitialized
	}
	name := g.config.Name
	compiled := "Compiled" + name

	matchRows := make([]jen.Code, 0, len(g.config.TestInputs))
	findRows := make([]jen.Code, 0, len(g.config.TestInputs))
	for _, in := range g.config.TestInputs {
		ok, err := g.dfa.Accepts(in)
		if err != nil {
			return nil, err
		}
		spans, err := g.dfa.FindMatches(in)
		if err != nil {
			return nil, err
		}
		spanLits := make([]jen.Code, len(spans))
		for i, s := range spans {
			spanLits[i] = jen.Values(jen.Lit(s.Start), jen.Lit(s.End))
		}
		matchRows = append(matchRows, jen.Values(jen.Lit(in), jen.Lit(ok)))
		findRows = append(findRows, jen.Values(jen.Lit(in), jen.Index().Index(jen.Lit(2)).Int().Values(spanLits...)))
	}

	tf := jen.NewFile(g.config.Package)
	g.header(tf)

	tf.Func().Id("Test"+name+"MatchString").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Bool(),
		).Values(matchRows...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			jen.If(
				jen.Id("got").Op(":=").Id(compiled).Dot("MatchString").Call(jen.Id("tt").Dot("input")),
				jen.Id("got").Op("!=").Id("tt").Dot("want"),
			).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("MatchString(%q) = %v, want %v"), jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
			),
		),
	)
	tf.Line()

	tf.Func().Id("Test"+name+"FindMatches").Params(jen.Id("t").Op("*").Qual("testing", "T")).Block(
		jen.Id("tests").Op(":=").Index().Struct(
			jen.Id("input").String(),
			jen.Id("want").Index().Index(jen.Lit(2)).Int(),
		).Values(findRows...),
		jen.Line(),
		jen.For(jen.List(jen.Id("_"), jen.Id("tt")).Op(":=").Range().Id("tests")).Block(
			jen.Id("got").Op(":=").Id(compiled).Dot("FindMatches").Call(jen.Id("tt").Dot("input")),
			jen.If(jen.Len(jen.Id("got")).Op("!=").Len(jen.Id("tt").Dot("want"))).Block(
				jen.Id("t").Dot("Errorf").Call(jen.Lit("FindMatches(%q) = %v, want %v"), jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
				jen.Continue(),
			),
			jen.For(jen.Id("k").Op(":=").Range().Id("got")).Block(
				jen.If(jen.Id("got").Index(jen.Id("k")).Op("!=").Id("tt").Dot("want").Index(jen.Id("k"))).Block(
					jen.Id("t").Dot("Errorf").Call(jen.Lit("FindMatches(%q) = %v, want %v"), jen.Id("tt").Dot("input"), jen.Id("got"), jen.Id("tt").Dot("want")),
					jen.Break(),
				),
			),
		),
	)

	return tf, nil
}
