package rulematch

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
)

// maxLineLength is the longest rule definition or message line ReadInput accepts.
const maxLineLength = 16 * 1024 * 1024

// Input is a rule table and the messages to validate against it.
type Input struct {
	Table    *Table
	Messages []string
}

// ReadInput reads a rules block, a blank line, and a messages block, one
// message per line.
//
// Messages may not contain whitespace. Blank lines in the messages block are
// ignored.
func ReadInput(filename string, r io.Reader) (*Input, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)
	rules := &strings.Builder{}
	line := 0
	for scanner.Scan() {
		line++
		if strings.TrimSpace(scanner.Text()) == "" {
			break
		}
		rules.WriteString(scanner.Text())
		rules.WriteByte('\n')
	}
	if err := scanner.Err(); err != nil {
		return nil, scanError(filename, line+1, err)
	}
	defs, err := ParseDefinitionsString(filename, rules.String())
	if err != nil {
		return nil, err
	}
	table, err := BuildTable(defs)
	if err != nil {
		return nil, err
	}
	in := &Input{Table: table}
	for scanner.Scan() {
		line++
		text := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)
		if text == "" {
			continue
		}
		if col := strings.IndexFunc(text, unicode.IsSpace); col >= 0 {
			pos := lexer.Position{Filename: filename, Line: line, Column: col + 1}
			return nil, Errorf(pos, "message %q contains whitespace", text)
		}
		in.Messages = append(in.Messages, text)
	}
	if err := scanner.Err(); err != nil {
		return nil, scanError(filename, line+1, err)
	}
	return in, nil
}

func scanError(filename string, line int, err error) error {
	return AnnotateError(lexer.Position{Filename: filename, Line: line, Column: 1}, err)
}
