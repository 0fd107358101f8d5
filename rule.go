package rulematch

// RuleID identifies a rule in a Table.
type RuleID int

// A Rule is a numbered grammar production.
type Rule struct {
	ID   RuleID
	Body Body
}

// Body of a Rule, either a Literal or a Composite.
type Body interface {
	body()
}

// Literal matches exactly one input character.
type Literal struct {
	Char rune
}

// Composite matches the first of its clauses that matches.
type Composite struct {
	Clauses []Clause
}

// Clause is a sequence of rule references that must match consecutively.
type Clause []RuleID

func (Literal) body()   {}
func (Composite) body() {}

// NewLiteral creates a rule matching the single character c.
func NewLiteral(id RuleID, c rune) *Rule {
	return &Rule{ID: id, Body: Literal{Char: c}}
}

// NewComposite creates a rule matching any of the given clauses, tried in order.
func NewComposite(id RuleID, clauses ...Clause) *Rule {
	return &Rule{ID: id, Body: Composite{Clauses: clauses}}
}

// references returns every rule ID referenced by the rule, in declaration order.
func (r *Rule) references() []RuleID {
	composite, ok := r.Body.(Composite)
	if !ok {
		return nil
	}
	out := []RuleID{}
	for _, clause := range composite.Clauses {
		out = append(out, clause...)
	}
	return out
}
