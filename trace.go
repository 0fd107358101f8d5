package rulematch

import (
	"fmt"
	"io"
	"strings"
)

// Trace the evaluation of each rule to "w".
//
// Each line shows the remaining input and the rule being attempted, indented
// by nesting depth.
func Trace(w io.Writer) Option {
	return func(v *Validator) error {
		v.trace = w
		return nil
	}
}

func (m *matcher) traceRule(rule *Rule, cur *Cursor) {
	fmt.Fprintf(m.trace, "%s%q %s\n", strings.Repeat(" ", m.depth*2), cur.Remaining(), rule)
}
