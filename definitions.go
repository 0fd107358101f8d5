package rulematch

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	definitionLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Int", Pattern: `\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"\\])*"`},
		{Name: "Punct", Pattern: `[:|]`},
		{Name: "EOL", Pattern: `\r?\n`},
		{Name: "Whitespace", Pattern: `[ \t]+`},
	})
	definitionParser = participle.MustBuild[definitionFile](
		participle.Lexer(definitionLexer),
		participle.Elide("Whitespace"),
		participle.Unquote("String"),
	)
)

type definitionFile struct {
	Lines []*definitionLine `parser:"( @@ | EOL )*"`
}

type definitionLine struct {
	Pos lexer.Position

	ID      int           `parser:"@Int ':'"`
	Literal *string       `parser:"(   @String"`
	Clauses []*clauseLine `parser:"  | @@ ( '|' @@ )* )"`
}

type clauseLine struct {
	Refs []int `parser:"@Int+"`
}

// A Definition is a Rule along with where it was defined.
type Definition struct {
	Pos  lexer.Position
	Rule *Rule
}

// ParseDefinitions parses rule definitions, one per line, of the form:
//
//	<id>: "<char>"
//	<id>: <id> <id> ... | <id> ... | ...
//
// Blank lines are ignored.
func ParseDefinitions(filename string, r io.Reader) ([]*Definition, error) {
	file, err := definitionParser.Parse(filename, r)
	if err != nil {
		return nil, convertError(err)
	}
	out := make([]*Definition, 0, len(file.Lines))
	for _, line := range file.Lines {
		def, err := line.definition()
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}

// ParseDefinitionsString parses rule definitions from a string.
func ParseDefinitionsString(filename, s string) ([]*Definition, error) {
	return ParseDefinitions(filename, strings.NewReader(s))
}

func (d *definitionLine) definition() (*Definition, error) {
	id := RuleID(d.ID)
	if d.Literal != nil {
		if utf8.RuneCountInString(*d.Literal) != 1 {
			return nil, Errorf(d.Pos, "rule %d: literal %q must be a single character", id, *d.Literal)
		}
		r, _ := utf8.DecodeRuneInString(*d.Literal)
		return &Definition{Pos: d.Pos, Rule: NewLiteral(id, r)}, nil
	}
	clauses := make([]Clause, 0, len(d.Clauses))
	for _, c := range d.Clauses {
		clause := make(Clause, 0, len(c.Refs))
		for _, ref := range c.Refs {
			clause = append(clause, RuleID(ref))
		}
		clauses = append(clauses, clause)
	}
	return &Definition{Pos: d.Pos, Rule: NewComposite(id, clauses...)}, nil
}

// BuildTable inserts every definition into a new Table and validates it.
func BuildTable(defs []*Definition) (*Table, error) {
	t := &Table{rules: map[RuleID]*Rule{}}
	for _, def := range defs {
		if err := t.Insert(def.Rule); err != nil {
			return nil, fmt.Errorf("%s: %w", def.Pos, err)
		}
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// convertError converts a participle error into a *MalformedError.
func convertError(err error) error {
	var perr participle.Error
	if errors.As(err, &perr) {
		return &MalformedError{Msg: perr.Message(), Pos: perr.Position()}
	}
	return err
}
