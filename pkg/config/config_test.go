package config_test

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/consts"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/format"
	"github.com/pseudomuto/dbtfmt/pkg/lexer"
	"github.com/pseudomuto/dbtfmt/pkg/token"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/dbtfmt.yaml
var testConfigYAML string

func TestLoadConfig(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("error", func(t *testing.T) {
		// Invalid YAML
		cfg, err := LoadConfig(strings.NewReader("invalid: yaml: ["))
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "failed to unmarshal config")

		// Empty input
		cfg, err = LoadConfig(strings.NewReader(""))
		require.Error(t, err)
		require.Nil(t, cfg)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader("other_key: value"))
		require.NoError(t, err)
		require.Equal(t, Default(), cfg)
		require.Equal(t, dialect.DefaultName, cfg.Dialect)
		require.Equal(t, consts.DefaultIndent, cfg.Indent)
		require.Equal(t, []string{consts.DefaultInclude}, cfg.Include)

		require.Equal(t, format.Options{
			Dialect:           dialect.DefaultName,
			IndentWidth:       consts.DefaultIndent,
			TrailingNewline:   true,
			PreserveCamelCase: true,
		}, cfg.Options())
	})
}

func TestLoadConfigFile(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), consts.DefaultConfigFile)
		require.NoError(t, os.WriteFile(path, []byte(testConfigYAML), consts.ModeFile))

		cfg, err := LoadConfigFile(path)
		require.NoError(t, err)
		validateTestConfig(t, cfg)
	})

	t.Run("error", func(t *testing.T) {
		cfg, err := LoadConfigFile("nonexistent.yaml")
		require.Error(t, err)
		require.Nil(t, cfg)
		require.Contains(t, err.Error(), "failed to open file")
	})
}

func TestRegisterDialects(t *testing.T) {
	cfg, err := LoadConfig(strings.NewReader(testConfigYAML))
	require.NoError(t, err)
	require.NoError(t, cfg.RegisterDialects())

	d, err := dialect.Lookup("snowflake")
	require.NoError(t, err)
	require.Contains(t, d.ReservedTopLevelWords, "QUALIFY")
	require.Contains(t, d.LineCommentTypes, "//")

	out, err := format.SQL("select id from t qualify id > 1 // done", cfg.Options())
	require.NoError(t, err)
	require.Equal(t, "SELECT\n  id\nFROM\n  t\nQUALIFY\n  id > 1 // done\n", out)

	t.Run("template markers", func(t *testing.T) {
		cfg, err := LoadConfig(strings.NewReader(`
dialects:
  - name: markers
    start_markers: [Test]
    end_markers: [endtest]
`))
		require.NoError(t, err)
		require.NoError(t, cfg.RegisterDialects())

		d, err := dialect.Lookup("markers")
		require.NoError(t, err)
		require.Contains(t, d.Template.StartMarkers, "test")
		require.Contains(t, d.Template.EndMarkers, "endtest")

		stream, err := lexer.Tokenize("{% test x %}{% endtest %}", d)
		require.NoError(t, err)

		var markers []token.Token
		for _, tok := range stream {
			if tok.Type == token.StartMarker || tok.Type == token.EndMarker {
				markers = append(markers, tok)
			}
		}
		require.Equal(t, []token.Token{
			{Type: token.StartMarker, Value: "test"},
			{Type: token.EndMarker, Value: "endtest"},
		}, markers)
	})

	t.Run("unknown base", func(t *testing.T) {
		cfg := &Config{Dialects: []Dialect{{Name: "x", Extends: "nope"}}}
		err := cfg.RegisterDialects()
		require.Error(t, err)
		require.Contains(t, err.Error(), "dialect x")
	})

	t.Run("missing name", func(t *testing.T) {
		cfg := &Config{Dialects: []Dialect{{Extends: dialect.DefaultName}}}
		require.Error(t, cfg.RegisterDialects())
	})
}

func validateTestConfig(t *testing.T, cfg *Config) {
	t.Helper()

	require.Equal(t, "snowflake", cfg.Dialect)
	require.Equal(t, 2, cfg.Indent)
	require.True(t, cfg.Upper)
	require.True(t, cfg.LowerWords)
	require.Equal(t, 3, cfg.Jobs)
	require.Equal(t, []string{"*.sql", "*.jinja"}, cfg.Include)
	require.Equal(t, []string{"target"}, cfg.Exclude)
	require.Len(t, cfg.Dialects, 1)
	require.Equal(t, dialect.DefaultName, cfg.Dialects[0].Extends)

	opts := cfg.Options()
	require.False(t, opts.PreserveCamelCase)
	require.True(t, opts.TrailingNewline)
}
