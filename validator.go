package rulematch

import (
	"fmt"
	"io"

	"golang.org/x/text/unicode/norm"
)

// A Validator decides whether whole messages match a root rule.
//
// A Validator is safe for concurrent use provided its Table is not modified.
type Validator struct {
	table      *Table
	root       *Rule
	trace      io.Writer
	exhaustive bool
	normalize  *norm.Form
}

// New creates a Validator for messages matching the rule "root" of table.
//
// The table is validated first, so that matching can never encounter an
// unresolved reference or fail to terminate.
func New(table *Table, root RuleID, options ...Option) (*Validator, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	rule, err := table.Get(root)
	if err != nil {
		return nil, fmt.Errorf("root: %w", err)
	}
	v := &Validator{table: table, root: rule}
	for _, option := range options {
		if err := option(v); err != nil {
			return nil, err
		}
	}
	return v, nil
}

// MustNew calls New and panics on error.
func MustNew(table *Table, root RuleID, options ...Option) *Validator {
	v, err := New(table, root, options...)
	if err != nil {
		panic(err)
	}
	return v
}

// Root returns the rule messages are matched against.
func (v *Validator) Root() *Rule {
	return v.root
}

// MatchesFully returns true if the root rule matches all of message.
//
// A message that matches only a prefix, leaving trailing characters, does not
// match. A false result is not an error; errors indicate a broken table.
func (v *Validator) MatchesFully(message string) (ok bool, err error) {
	defer recoverToError(&err)
	if v.normalize != nil {
		message = v.normalize.String(message)
	}
	m := &matcher{table: v.table, trace: v.trace}
	cur := NewCursor(message)
	if v.exhaustive {
		for _, end := range m.ends(v.root, cur) {
			if end == cur.Len() {
				return true, nil
			}
		}
		return false, nil
	}
	return m.evaluate(v.root, cur) && cur.EOF(), nil
}

// Count returns the number of messages that fully match the root rule.
func (v *Validator) Count(messages []string) (int, error) {
	count := 0
	for i, message := range messages {
		ok, err := v.MatchesFully(message)
		if err != nil {
			return 0, fmt.Errorf("message %d %q: %w", i+1, message, err)
		}
		if ok {
			count++
		}
	}
	return count, nil
}
