package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	require.Equal(t, "group by ", spaced("group \n\t by"))
	require.Equal(t, "x ", spaced("x "))
	require.Equal(t, "{{", removeWhitespace("{ \n{"))
	require.Equal(t, " a b ", equalize("  a\n\nb\t"))
}

func TestIsCamelCase(t *testing.T) {
	tests := map[string]bool{
		"incomeStatement": true,
		"userID":          true,
		"IncomeStatement": false,
		"income":          false,
		"INCOME":          false,
		"x":               false,
		"":                false,
	}

	for in, want := range tests {
		require.Equal(t, want, isCamelCase(in), in)
	}
}
