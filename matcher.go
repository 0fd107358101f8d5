package rulematch

import (
	"io"
	"sort"
)

// matcher evaluates rules against a shared Cursor.
//
// Lookup failures panic with *UnknownRuleError; callers recover them with
// recoverToError.
type matcher struct {
	table *Table
	trace io.Writer
	depth int
}

func (m *matcher) rule(id RuleID) *Rule {
	rule, err := m.table.Get(id)
	if err != nil {
		panic(err)
	}
	return rule
}

// evaluate reports whether rule matches a prefix of the cursor's remaining
// input, advancing the cursor past it on success.
//
// On failure the cursor is left where it was on entry.
func (m *matcher) evaluate(rule *Rule, cur *Cursor) bool {
	if m.trace != nil {
		m.traceRule(rule, cur)
		m.depth++
		defer func() { m.depth-- }()
	}
	switch body := rule.Body.(type) {
	case Literal:
		if r, ok := cur.Peek(); !ok || r != body.Char {
			return false
		}
		cur.Next()
		return true

	case Composite:
		// The first clause to match wins. It is never revisited, even if an
		// enclosing rule subsequently fails.
		for _, clause := range body.Clauses {
			if m.evaluateClause(clause, cur) {
				return true
			}
		}
		return false
	}
	return false
}

func (m *matcher) evaluateClause(clause Clause, cur *Cursor) bool {
	sp := cur.Mark()
	defer sp.Release()
	for _, id := range clause {
		if !m.evaluate(m.rule(id), cur) {
			return false
		}
	}
	sp.Commit()
	return true
}

// ends returns, in ascending order, every offset at which rule can finish
// matching when started at the cursor's current offset.
//
// The cursor is left where it was on entry.
func (m *matcher) ends(rule *Rule, cur *Cursor) []int {
	if m.trace != nil {
		m.traceRule(rule, cur)
		m.depth++
		defer func() { m.depth-- }()
	}
	sp := cur.Mark()
	defer sp.Restore()
	switch body := rule.Body.(type) {
	case Literal:
		if r, ok := cur.Peek(); ok && r == body.Char {
			return []int{cur.Offset() + 1}
		}
		return nil

	case Composite:
		start := cur.Offset()
		out := offsetSet{}
		for _, clause := range body.Clauses {
			out.add(m.clauseEnds(clause, start, cur)...)
		}
		return out.sorted()
	}
	return nil
}

// clauseEnds returns every offset at which clause can finish matching when
// started at start. The cursor is left at an arbitrary offset.
func (m *matcher) clauseEnds(clause Clause, start int, cur *Cursor) []int {
	offsets := []int{start}
	for _, id := range clause {
		rule := m.rule(id)
		next := offsetSet{}
		for _, offset := range offsets {
			cur.Seek(offset)
			next.add(m.ends(rule, cur)...)
		}
		if len(next) == 0 {
			return nil
		}
		offsets = next.sorted()
	}
	return offsets
}

type offsetSet map[int]bool

func (o offsetSet) add(offsets ...int) {
	for _, offset := range offsets {
		o[offset] = true
	}
}

func (o offsetSet) sorted() []int {
	out := make([]int, 0, len(o))
	for offset := range o {
		out = append(out, offset)
	}
	sort.Ints(out)
	return out
}
