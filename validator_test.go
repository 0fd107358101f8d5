package rulematch_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/unicode/norm"

	"github.com/alecthomas/rulematch"
)

func mustValidator(t *testing.T, defs string, options ...rulematch.Option) *rulematch.Validator {
	t.Helper()
	parsed, err := rulematch.ParseDefinitionsString("", defs)
	require.NoError(t, err)
	table, err := rulematch.BuildTable(parsed)
	require.NoError(t, err)
	v, err := rulematch.New(table, 0, options...)
	require.NoError(t, err)
	return v
}

func requireMatches(t *testing.T, v *rulematch.Validator, expected map[string]bool) {
	t.Helper()
	for message, match := range expected {
		ok, err := v.MatchesFully(message)
		require.NoError(t, err)
		require.Equal(t, match, ok, "%q", message)
	}
}

func TestMatchesFullyConcatenation(t *testing.T) {
	v := mustValidator(t, `
0: 1 2
1: "a"
2: "b"
`)
	requireMatches(t, v, map[string]bool{
		"ab":  true,
		"abc": false,
		"a":   false,
		"ba":  false,
		"":    false,
	})
}

func TestMatchesFullyAlternation(t *testing.T) {
	v := mustValidator(t, `
0: 1 | 2
1: "a"
2: "b"
`)
	requireMatches(t, v, map[string]bool{
		"a": true,
		"b": true,
		"c": false,
	})
}

func TestMatchesFullyNested(t *testing.T) {
	v := mustValidator(t, `
0: 1 2 | 2 1
1: "a"
2: "b"
`)
	requireMatches(t, v, map[string]bool{
		"ab": true,
		"ba": true,
		"aa": false,
	})
}

func TestMatchesFullyRejectsTrailingInput(t *testing.T) {
	v := mustValidator(t, `
0: 1 | 1 1
1: "a"
`)
	// The first clause matches "a" and is never reconsidered, so "aa" leaves
	// trailing input.
	requireMatches(t, v, map[string]bool{
		"a":  true,
		"aa": false,
	})
}

const greedyGrammar = `
0: 1 2
1: 3 | 3 4
2: 5
3: "a"
4: "b"
5: "c"
`

func TestMatchesFullyGreedyLimitation(t *testing.T) {
	v := mustValidator(t, greedyGrammar)
	// "abc" is in the language (1 = "ab", 2 = "c"), but rule 1 commits to
	// its first clause and rule 2 then sees "b". Greedy matching rejects it.
	requireMatches(t, v, map[string]bool{
		"abc": false,
		"ac":  true,
	})
}

func TestMatchesFullyExhaustive(t *testing.T) {
	v := mustValidator(t, greedyGrammar, rulematch.Exhaustive())
	requireMatches(t, v, map[string]bool{
		"abc":  true,
		"ac":   true,
		"abbc": false,
		"ab":   false,
	})
}

func TestMatchesFullyExhaustiveAfterFailedClause(t *testing.T) {
	v := mustValidator(t, `
0: 1 3 | 2
1: "a"
2: "b"
3: "c"
`, rulematch.Exhaustive())
	requireMatches(t, v, map[string]bool{
		"ac": true,
		"b":  true,
		"ab": false,
	})

	v = mustValidator(t, `
0: 1 1 | 1 2
1: "a"
2: "b"
`, rulematch.Exhaustive())
	requireMatches(t, v, map[string]bool{
		"aa": true,
		"ab": true,
		"b":  false,
	})
}

const loopGrammar = `
0: 8 11
8: 42 | 42 8
11: 42 31 | 42 11 31
42: "a"
31: "b"
`

func TestMatchesFullyLoops(t *testing.T) {
	greedy := mustValidator(t, loopGrammar)
	exhaustive := mustValidator(t, loopGrammar, rulematch.Exhaustive())
	for message, expected := range map[string][2]bool{
		"aab":    {true, true},
		"aaabb":  {true, true},
		"aaaabb": {false, true},
		"abb":    {false, false},
		"aabbb":  {false, false},
	} {
		ok, err := greedy.MatchesFully(message)
		require.NoError(t, err)
		require.Equal(t, expected[0], ok, "greedy %q", message)
		ok, err = exhaustive.MatchesFully(message)
		require.NoError(t, err)
		require.Equal(t, expected[1], ok, "exhaustive %q", message)
	}
}

func TestCount(t *testing.T) {
	v := mustValidator(t, `
0: 4 1 5
1: 2 3 | 3 2
2: 4 4 | 5 5
3: 4 5 | 5 4
4: "a"
5: "b"
`)
	count, err := v.Count([]string{"ababbb", "bababa", "abbbab", "aaabbb", "aaaabbb"})
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestNormalize(t *testing.T) {
	defs := `
0: 1 2
1: "\u00e9"
2: "!"
`
	precomposed := "\u00e9!"
	decomposed := "e\u0301!"
	requireMatches(t, mustValidator(t, defs), map[string]bool{
		precomposed: true,
		decomposed:  false,
	})
	requireMatches(t, mustValidator(t, defs, rulematch.Normalize(norm.NFC)), map[string]bool{
		precomposed: true,
		decomposed:  true,
	})
}

func TestTrace(t *testing.T) {
	w := &bytes.Buffer{}
	v := mustValidator(t, `
0: 1 2
1: "a"
2: "b"
`, rulematch.Trace(w))
	ok, err := v.MatchesFully("ab")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, strings.TrimSpace(`
"ab" 0: 1 2
  "ab" 1: "a"
  "b" 2: "b"
`), strings.TrimSpace(w.String()))
}

func TestNewUnknownRoot(t *testing.T) {
	table := rulematch.MustTable(rulematch.NewLiteral(1, 'a'))
	_, err := rulematch.New(table, 0)
	require.EqualError(t, err, "root: unknown rule 0")
	require.True(t, rulematch.IsConfigError(err))
}

func TestNewValidatesTable(t *testing.T) {
	table := rulematch.MustTable(rulematch.NewComposite(0, rulematch.Clause{7}))
	_, err := rulematch.New(table, 0)
	require.EqualError(t, err, "rule 0 references unknown rule 7")
}
