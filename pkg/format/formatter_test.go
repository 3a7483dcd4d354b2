package format_test

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	. "github.com/pseudomuto/dbtfmt/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("unknown dialect", func(t *testing.T) {
		opts := Defaults
		opts.Dialect = "oracle"

		_, err := New(opts)
		require.Error(t, err)
		require.True(t, errors.Is(err, dialect.ErrUnknownDialect))

		_, err = SQL("select 1", opts)
		require.True(t, errors.Is(err, dialect.ErrUnknownDialect))
	})

	t.Run("empty dialect uses default", func(t *testing.T) {
		f, err := New(Options{IndentWidth: 2})
		require.NoError(t, err)

		out, err := f.String("select id from users")
		require.NoError(t, err)
		require.Equal(t, "select\n  id\nfrom\n  users", out)
	})
}

func TestFormatter_Options(t *testing.T) {
	const sql = "select userId, COUNT(*) as Total from events where kind = 'x' and id > 10"

	t.Run("defaults", func(t *testing.T) {
		out, err := SQL(sql, Defaults)
		require.NoError(t, err)
		require.Equal(t, strings.Join([]string{
			"select",
			"  userId,",
			"  COUNT(*) as Total",
			"from",
			"  events",
			"where",
			"  kind = 'x'",
			"  and id > 10",
			"",
		}, "\n"), out)
	})

	t.Run("uppercase reserved words", func(t *testing.T) {
		opts := Defaults
		opts.Uppercase = true

		out, err := SQL(sql, opts)
		require.NoError(t, err)
		require.Contains(t, out, "SELECT\n")
		require.Contains(t, out, "COUNT(*) AS Total")
		require.Contains(t, out, "\n  AND id > 10")
	})

	t.Run("lower words without camel case", func(t *testing.T) {
		opts := Defaults
		opts.LowerWords = true
		opts.PreserveCamelCase = false

		out, err := SQL(sql, opts)
		require.NoError(t, err)
		require.Contains(t, out, "  userid,\n")
		require.Contains(t, out, "as total\n")
	})

	t.Run("lower words preserving camel case", func(t *testing.T) {
		opts := Defaults
		opts.LowerWords = true

		out, err := SQL(sql, opts)
		require.NoError(t, err)
		require.Contains(t, out, "  userId,\n")
		require.Contains(t, out, "as total\n")
	})

	t.Run("indent width", func(t *testing.T) {
		opts := Defaults
		opts.IndentWidth = 4

		out, err := SQL("select id from users", opts)
		require.NoError(t, err)
		require.Equal(t, "select\n    id\nfrom\n    users\n", out)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		opts := Defaults
		opts.TrailingNewline = false

		out, err := SQL("select id from users", opts)
		require.NoError(t, err)
		require.Equal(t, "select\n  id\nfrom\n  users", out)
	})
}

func TestFormatter_Format(t *testing.T) {
	f, err := New(Defaults)
	require.NoError(t, err)
	require.Equal(t, Defaults, f.Options())

	var buf bytes.Buffer
	require.NoError(t, f.Format(&buf, "select id from users limit 10, 20"))
	require.Equal(t, "select\n  id\nfrom\n  users\nlimit\n  10, 20\n", buf.String())
}

func TestFormatter_Layout(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty input",
			input: "",
			want:  "\n",
		},
		{
			name:  "member access keeps reserved word as identifier",
			input: "select t.from from t",
			want:  "select\n  t.from\nfrom\n  t\n",
		},
		{
			name:  "statement separator",
			input: "select 1; select 2;",
			want:  "select\n  1;\nselect\n  2;\n",
		},
		{
			name:  "line comment",
			input: "select id -- the key\nfrom users",
			want:  "select\n  id -- the key\nfrom\n  users\n",
		},
		{
			name:  "block comment",
			input: "select id /* the\nkey */ from users",
			want:  "select\n  id\n\n  /* the\n  key */\nfrom\n  users\n",
		},
		{
			name:  "single argument call stays on one line",
			input: "select max(id) from users",
			want:  "select\n  max(id)\nfrom\n  users\n",
		},
		{
			name:  "multi argument call expands",
			input: "select coalesce(x, y) from users",
			want:  "select\n  coalesce(\n    x,\n    y\n  )\nfrom\n  users\n",
		},
		{
			name:  "join conditions break lines",
			input: "select id from users u join orders o on u.id = o.user_id",
			want:  "select\n  id\nfrom\n  users u\n  join orders o\n  on u.id = o.user_id\n",
		},
		{
			name:  "incremental block",
			input: "select id from events {% if is_incremental() %} where id > 10 {% endif %}",
			want: strings.Join([]string{
				"select",
				"  id",
				"from",
				"  events",
				"",
				"{% if is_incremental() %}",
				"where",
				"  id > 10",
				"{% endif %}",
				"",
			}, "\n"),
		},
		{
			name:  "unbalanced close paren",
			input: "select id) from users",
			want:  "select\n  id\n)\nfrom\n  users\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := SQL(tt.input, Defaults)
			require.NoError(t, err)
			require.Equal(t, tt.want, out)
		})
	}
}

func TestFormatter_BlockCommentReindent(t *testing.T) {
	inputs := map[string]string{
		"flush":    "select a /* c\nd */ from t",
		"indented": "select a /* c\n        d */ from t",
		"tabs":     "select a /* c\n\t\td */ from t",
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			out, err := SQL(in, Defaults)
			require.NoError(t, err)
			require.Equal(t, "select\n  a\n\n  /* c\n  d */\nfrom\n  t\n", out)

			again, err := SQL(out, Defaults)
			require.NoError(t, err)
			require.Equal(t, out, again)
		})
	}
}

func TestFormatter_InlineBoundary(t *testing.T) {
	// 50 characters from the opening paren to the closing one stay inline.
	inside := strings.Repeat("x", 48)
	out, err := SQL("select id from users where id in ("+inside+")", Defaults)
	require.NoError(t, err)
	require.Contains(t, out, "id in ("+inside+")\n")

	// One more character expands the span.
	inside += "x"
	out, err = SQL("select id from users where id in ("+inside+", y)", Defaults)
	require.NoError(t, err)
	require.Contains(t, out, "id in (\n    "+inside+",\n    y\n  )\n")
}

func TestFormatter_Concurrent(t *testing.T) {
	f, err := New(Defaults)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]string, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], _ = f.String("select income, costs from finance;")
		}()
	}
	wg.Wait()

	for _, out := range results {
		require.Equal(t, "select\n  income,\n  costs\nfrom\n  finance;\n", out)
	}
}
