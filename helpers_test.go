package rulematch

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustTestTable(t *testing.T, defs string) *Table {
	t.Helper()
	parsed, err := ParseDefinitionsString("", defs)
	require.NoError(t, err)
	table, err := BuildTable(parsed)
	require.NoError(t, err)
	return table
}
