// Package rulematch matches messages against numbered grammar rules.
//
// A grammar is a table of rules keyed by integer identifiers. Each rule is
// either a literal, matching exactly one character, or a composite, matching
// the first of its alternative clauses that succeeds. A clause is a sequence
// of rule references that must match consecutively.
//
// Rules are usually written in the definition syntax:
//
//	0: 4 1 5
//	1: 2 3 | 3 2
//	2: 4 4 | 5 5
//	3: 4 5 | 5 4
//	4: "a"
//	5: "b"
//
// and loaded with ParseDefinitions and BuildTable, or ReadInput for a file
// containing a rules block, a blank line, and a messages block.
//
// A Validator then decides whether whole messages belong to the language of a
// root rule:
//
//	table, err := rulematch.BuildTable(defs)
//	v, err := rulematch.New(table, 0)
//	ok, err := v.MatchesFully("ababbb")
//
// Matching is greedy: once a composite rule has matched one of its clauses the
// choice is final, even if an enclosing rule later fails because of it. For
// grammars that need deeper backtracking use the Exhaustive option, which
// tracks every offset a rule can end at.
package rulematch
