package token_test

import (
	"testing"

	. "github.com/pseudomuto/dbtfmt/pkg/token"
	"github.com/stretchr/testify/require"
)

func sampleStream() Stream {
	return Stream{
		{Type: ReservedTopLevel, Value: "select"},
		{Type: Whitespace, Value: " "},
		{Type: Word, Value: "id"},
		{Type: Whitespace, Value: "\n  "},
		{Type: Whitespace, Value: " "},
		{Type: ReservedTopLevel, Value: "from"},
	}
}

func TestCursor(t *testing.T) {
	t.Run("walks every token", func(t *testing.T) {
		cur := sampleStream().Cursor()
		require.Equal(t, -1, cur.Index())

		var values []string
		for cur.Next() {
			values = append(values, cur.Current().Value)
		}

		require.Equal(t, sampleStream().Values(), values)
		require.False(t, cur.Next())
	})

	t.Run("peeks past whitespace", func(t *testing.T) {
		cur := sampleStream().Cursor()
		require.True(t, cur.Next())
		require.True(t, cur.Next())
		require.True(t, cur.Next())
		require.Equal(t, "id", cur.Current().Value)

		next, ok := cur.NextNonWhitespace()
		require.True(t, ok)
		require.Equal(t, "from", next.Value)

		prev, ok := cur.PrevNonWhitespace()
		require.True(t, ok)
		require.Equal(t, "select", prev.Value)

		raw, ok := cur.Peek(1)
		require.True(t, ok)
		require.Equal(t, Whitespace, raw.Type)
	})

	t.Run("second non whitespace", func(t *testing.T) {
		cur := sampleStream().Cursor()
		require.True(t, cur.Next())

		second, ok := cur.SecondNonWhitespace()
		require.True(t, ok)
		require.Equal(t, "from", second.Value)
	})

	t.Run("edges", func(t *testing.T) {
		cur := sampleStream().Cursor()
		require.True(t, cur.Next())

		_, ok := cur.PrevNonWhitespace()
		require.False(t, ok)

		_, ok = cur.Peek(-1)
		require.False(t, ok)

		for cur.Next() {
		}
		_, ok = cur.NextNonWhitespace()
		require.False(t, ok)
	})

	t.Run("empty stream", func(t *testing.T) {
		cur := Stream{}.Cursor()
		require.False(t, cur.Next())
		require.Equal(t, 0, cur.Len())
	})
}

func TestType(t *testing.T) {
	require.Len(t, Types(), NumTypes)

	for _, typ := range Types() {
		parsed, ok := ParseType(typ.String())
		require.True(t, ok, typ.String())
		require.Equal(t, typ, parsed)
	}

	require.Equal(t, "Unknown", Type(-1).String())

	_, ok := ParseType("Nope")
	require.False(t, ok)
}

func TestToken(t *testing.T) {
	require.True(t, Token{Type: Reserved, Value: "as"}.IsReserved())
	require.True(t, Token{Type: ReservedNewline, Value: "and"}.IsReserved())
	require.False(t, Token{Type: Word, Value: "as"}.IsReserved())
	require.True(t, Token{Type: Operator, Value: ","}.Is(Operator, ","))
	require.False(t, Token{Type: Operator, Value: ";"}.Is(Operator, ","))
}
