package rulematch

type visitorFunc func(rule *Rule, next func() error) error

// visit walks every rule reachable from root, each once, depth first.
func visit(t *Table, root *Rule, visitor visitorFunc) error {
	return _visit(t, map[RuleID]bool{}, root, visitor)
}

func _visit(t *Table, seen map[RuleID]bool, rule *Rule, visitor visitorFunc) error {
	if seen[rule.ID] {
		return nil
	}
	seen[rule.ID] = true
	return visitor(rule, func() error {
		for _, ref := range rule.references() {
			child, err := t.Get(ref)
			if err != nil {
				referrer := rule.ID
				return &UnknownRuleError{ID: ref, Referrer: &referrer}
			}
			if err := _visit(t, seen, child, visitor); err != nil {
				return err
			}
		}
		return nil
	})
}

// visitFirst calls fn with the first rule of each clause of rule.
//
// Unknown references are skipped; Validate reports them separately.
func visitFirst(t *Table, rule *Rule, fn func(*Rule) error) error {
	composite, ok := rule.Body.(Composite)
	if !ok {
		return nil
	}
	for _, clause := range composite.Clauses {
		if len(clause) == 0 {
			continue
		}
		first, err := t.Get(clause[0])
		if err != nil {
			continue
		}
		if err := fn(first); err != nil {
			return err
		}
	}
	return nil
}
