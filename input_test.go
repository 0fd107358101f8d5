package rulematch_test

import (
	"errors"
	"io"
	"os"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/rulematch"
)

func TestReadInput(t *testing.T) {
	f, err := os.Open("testdata/example.txt")
	require.NoError(t, err)
	defer f.Close()
	in, err := rulematch.ReadInput("example.txt", f)
	require.NoError(t, err)
	require.Equal(t, 6, in.Table.Len())
	require.Equal(t, []string{"ababbb", "bababa", "abbbab", "aaabbb", "aaaabbb"}, in.Messages)

	v, err := rulematch.New(in.Table, 0)
	require.NoError(t, err)
	count, err := v.Count(in.Messages)
	require.NoError(t, err)
	require.Equal(t, 2, count)
}

func TestReadInputNoMessages(t *testing.T) {
	in, err := rulematch.ReadInput("", strings.NewReader("0: \"a\"\n"))
	require.NoError(t, err)
	require.Empty(t, in.Messages)
}

func TestReadInputMessageWithWhitespace(t *testing.T) {
	_, err := rulematch.ReadInput("in.txt", strings.NewReader("0: \"a\"\n\na\na b\n"))
	require.EqualError(t, err, `in.txt:4:2: message "a b" contains whitespace`)
}

func TestReadInputBadRules(t *testing.T) {
	_, err := rulematch.ReadInput("in.txt", strings.NewReader("0: 1\n\na\n"))
	require.EqualError(t, err, "rule 0 references unknown rule 1")
}

func TestReadInputLongMessage(t *testing.T) {
	message := strings.Repeat("a", 100*1024)
	in, err := rulematch.ReadInput("in.txt", strings.NewReader("0: \"a\"\n\n"+message+"\n"))
	require.NoError(t, err)
	require.Equal(t, []string{message}, in.Messages)
}

func TestReadInputReadError(t *testing.T) {
	r := io.MultiReader(strings.NewReader("0: \"a\"\n\na\n"), iotest.ErrReader(errors.New("disk on fire")))
	_, err := rulematch.ReadInput("in.txt", r)
	require.EqualError(t, err, "in.txt:4:1: disk on fire")
	var merr *rulematch.MalformedError
	require.True(t, errors.As(err, &merr))
	require.Equal(t, 4, merr.Position().Line)
}
