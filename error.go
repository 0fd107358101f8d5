package rulematch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Error represents an error with position information, such as a malformed
// rule definition or message.
type Error interface {
	error
	// Unadorned message.
	Message() string
	// Position error occurred.
	Position() lexer.Position
}

// MalformedError is returned when rule definition or message text cannot be
// decomposed into the expected shape.
type MalformedError struct {
	Msg string
	Pos lexer.Position
}

var _ Error = &MalformedError{}

func (m *MalformedError) Error() string            { return formatError(m.Pos, m.Msg) }
func (m *MalformedError) Message() string          { return m.Msg }
func (m *MalformedError) Position() lexer.Position { return m.Pos }

// Errorf creates a new MalformedError at the given position.
func Errorf(pos lexer.Position, format string, args ...interface{}) error {
	return &MalformedError{Msg: fmt.Sprintf(format, args...), Pos: pos}
}

// AnnotateError wraps an existing error with a position.
//
// If the existing error already carries a position it is returned unmodified.
func AnnotateError(pos lexer.Position, err error) error {
	var perr Error
	if errors.As(err, &perr) {
		return err
	}
	return &MalformedError{Msg: err.Error(), Pos: pos}
}

func formatError(pos lexer.Position, message string) string {
	msg := ""
	if pos.Filename != "" {
		msg += pos.Filename + ":"
	}
	if pos.Line != 0 || pos.Column != 0 {
		msg += fmt.Sprintf("%d:%d:", pos.Line, pos.Column)
	}
	if len(msg) > 0 {
		msg += " " + message
	} else {
		msg = message
	}
	return msg
}

// DuplicateRuleError is returned when a rule ID is inserted twice.
type DuplicateRuleError struct {
	ID RuleID
}

func (d *DuplicateRuleError) Error() string {
	return fmt.Sprintf("duplicate rule %d", d.ID)
}

// UnknownRuleError is returned when a rule ID does not resolve.
type UnknownRuleError struct {
	ID RuleID
	// Referrer is the rule containing the reference, if known.
	Referrer *RuleID
}

func (u *UnknownRuleError) Error() string {
	if u.Referrer != nil {
		return fmt.Sprintf("rule %d references unknown rule %d", *u.Referrer, u.ID)
	}
	return fmt.Sprintf("unknown rule %d", u.ID)
}

// InvalidRuleError is returned for a composite rule that could never consume
// input, ie. one with no clauses or with an empty clause.
type InvalidRuleError struct {
	Rule   *Rule
	Reason string
}

func (i *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid rule %q: %s", i.Rule, i.Reason)
}

// LeftRecursionError is returned when a rule can reach itself without
// consuming any input.
type LeftRecursionError struct {
	Cycle []*Rule
}

func (l *LeftRecursionError) Error() string {
	lines := make([]string, 0, len(l.Cycle))
	for _, rule := range l.Cycle {
		lines = append(lines, "  "+rule.String())
	}
	return "left recursion detected on\n\n" + strings.Join(lines, "\n")
}

// IsConfigError returns true if err describes a broken rule table rather than
// a malformed input or a failed match.
func IsConfigError(err error) bool {
	var (
		dup     *DuplicateRuleError
		unknown *UnknownRuleError
		invalid *InvalidRuleError
		left    *LeftRecursionError
	)
	return errors.As(err, &dup) ||
		errors.As(err, &unknown) ||
		errors.As(err, &invalid) ||
		errors.As(err, &left)
}

func recoverToError(err *error) {
	if msg := recover(); msg != nil {
		switch msg := msg.(type) {
		case *UnknownRuleError:
			*err = msg
		default:
			panic(msg)
		}
	}
}
