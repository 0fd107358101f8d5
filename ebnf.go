package rulematch

import (
	"fmt"
	"strconv"
	"strings"
)

// String returns the rule in definition syntax, eg. `0: 1 2 | 3`.
func (r *Rule) String() string {
	return fmt.Sprintf("%d: %s", r.ID, bodyString(r.Body))
}

func bodyString(body Body) string {
	switch body := body.(type) {
	case Literal:
		return strconv.Quote(string(body.Char))

	case Composite:
		out := make([]string, 0, len(body.Clauses))
		for _, clause := range body.Clauses {
			out = append(out, clause.String())
		}
		return strings.Join(out, " | ")
	}
	return "?"
}

func (c Clause) String() string {
	out := make([]string, 0, len(c))
	for _, id := range c {
		out = append(out, strconv.Itoa(int(id)))
	}
	return strings.Join(out, " ")
}

// String returns the definitions of every rule, ordered by ID.
func (t *Table) String() string {
	out := make([]string, 0, len(t.rules))
	for _, id := range t.IDs() {
		out = append(out, t.rules[id].String())
	}
	return strings.Join(out, "\n")
}

// Reachable returns the definitions of the rules reachable from root, in the
// order they are first referenced.
func (t *Table) Reachable(root RuleID) (string, error) {
	rule, err := t.Get(root)
	if err != nil {
		return "", err
	}
	out := []string{}
	err = visit(t, rule, func(rule *Rule, next func() error) error {
		out = append(out, rule.String())
		return next()
	})
	if err != nil {
		return "", err
	}
	return strings.Join(out, "\n"), nil
}
