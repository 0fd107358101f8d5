package rulematch

import (
	"sort"
)

// Table maps rule IDs to rules.
//
// A Table is built once and must not be modified while it is being matched
// against.
type Table struct {
	rules map[RuleID]*Rule
}

// NewTable creates a Table containing the given rules.
func NewTable(rules ...*Rule) (*Table, error) {
	t := &Table{rules: map[RuleID]*Rule{}}
	for _, rule := range rules {
		if err := t.Insert(rule); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// MustTable calls NewTable and panics on error.
func MustTable(rules ...*Rule) *Table {
	t, err := NewTable(rules...)
	if err != nil {
		panic(err)
	}
	return t
}

// Insert adds a rule to the table.
//
// Inserting an ID that is already present returns a *DuplicateRuleError and
// leaves the table unchanged.
func (t *Table) Insert(rule *Rule) error {
	if t.rules == nil {
		t.rules = map[RuleID]*Rule{}
	}
	if _, ok := t.rules[rule.ID]; ok {
		return &DuplicateRuleError{ID: rule.ID}
	}
	t.rules[rule.ID] = rule
	return nil
}

// Get returns the rule with the given ID, or an *UnknownRuleError.
func (t *Table) Get(id RuleID) (*Rule, error) {
	rule, ok := t.rules[id]
	if !ok {
		return nil, &UnknownRuleError{ID: id}
	}
	return rule, nil
}

// Len returns the number of rules.
func (t *Table) Len() int {
	return len(t.rules)
}

// IDs returns every rule ID in ascending order.
func (t *Table) IDs() []RuleID {
	ids := make([]RuleID, 0, len(t.rules))
	for id := range t.rules {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Validate checks that the table can be matched against.
//
// Every referenced rule must exist, every composite must have at least one
// clause, no clause may be empty, and no rule may reach itself through the
// first references of its clauses.
func (t *Table) Validate() error {
	for _, id := range t.IDs() {
		rule := t.rules[id]
		composite, ok := rule.Body.(Composite)
		if !ok {
			continue
		}
		if len(composite.Clauses) == 0 {
			return &InvalidRuleError{Rule: rule, Reason: "no clauses"}
		}
		for _, clause := range composite.Clauses {
			if len(clause) == 0 {
				return &InvalidRuleError{Rule: rule, Reason: "empty clause"}
			}
		}
		for _, ref := range rule.references() {
			if _, ok := t.rules[ref]; !ok {
				referrer := rule.ID
				return &UnknownRuleError{ID: ref, Referrer: &referrer}
			}
		}
	}
	return t.validateLeftRecursion()
}

func (t *Table) validateLeftRecursion() error {
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[RuleID]int{}
	stack := []*Rule{}
	var check func(rule *Rule) error
	check = func(rule *Rule) error {
		switch state[rule.ID] {
		case done:
			return nil
		case visiting:
			for i, r := range stack {
				if r == rule {
					return &LeftRecursionError{Cycle: append([]*Rule{}, stack[i:]...)}
				}
			}
		}
		state[rule.ID] = visiting
		stack = append(stack, rule)
		err := visitFirst(t, rule, check)
		stack = stack[:len(stack)-1]
		state[rule.ID] = done
		return err
	}
	for _, id := range t.IDs() {
		if err := check(t.rules[id]); err != nil {
			return err
		}
	}
	return nil
}
