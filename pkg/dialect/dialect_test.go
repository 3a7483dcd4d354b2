package dialect_test

import (
	"slices"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		cfg, err := Lookup(DefaultName)
		require.NoError(t, err)
		require.Same(t, Default, cfg)
	})

	t.Run("empty name resolves to default", func(t *testing.T) {
		cfg, err := Lookup("")
		require.NoError(t, err)
		require.Same(t, Default, cfg)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Lookup("oracle")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnknownDialect))
		require.Contains(t, err.Error(), `"oracle"`)
	})
}

func TestRegister(t *testing.T) {
	cfg := Default.Extend("registry-test", Config{
		ReservedTopLevelWords: []string{"QUALIFY"},
	})
	require.NoError(t, Register(cfg))

	got, err := Lookup("registry-test")
	require.NoError(t, err)
	require.Same(t, cfg, got)
	require.Contains(t, Names(), "registry-test")
	require.Contains(t, Names(), DefaultName)

	require.Error(t, Register(nil))
	require.Error(t, Register(&Config{}))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		err  string
	}{
		{
			name: "missing name",
			cfg:  Config{OpenParens: []string{"("}, CloseParens: []string{")"}},
			err:  "dialect name is required",
		},
		{
			name: "unknown string type",
			cfg: Config{
				Name:        "bad",
				StringTypes: []string{"$$"},
				OpenParens:  []string{"("},
				CloseParens: []string{")"},
			},
			err: `unsupported string type "$$"`,
		},
		{
			name: "missing parens",
			cfg:  Config{Name: "bad"},
			err:  "open and close parens are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.err)
		})
	}

	require.NoError(t, Default.Validate())
}

func TestExtend(t *testing.T) {
	ext := Default.Extend("ext", Config{
		ReservedWords: []string{"VARIANT"},
		StringTypes:   []string{SingleQuoted},
		OpenParens:    []string{"["},
		CloseParens:   []string{"]"},
	})

	require.Equal(t, "ext", ext.Name)
	require.Len(t, ext.ReservedWords, len(Default.ReservedWords)+1)
	require.Equal(t, Default.StringTypes, ext.StringTypes)
	require.Equal(t, []string{"(", "CASE", "["}, ext.OpenParens)
	require.Equal(t, []string{")", "END", "]"}, ext.CloseParens)

	// The source is never mutated.
	require.Equal(t, []string{"(", "CASE"}, Default.OpenParens)
	require.NotContains(t, Default.ReservedWords, "VARIANT")

	ext.Template.Control[0] = "changed"
	require.Equal(t, "and", Default.Template.Control[0])
}

func TestExtendTemplate(t *testing.T) {
	ext := Default.Extend("ext-template", Config{
		Template: Template{
			StartMarkers: []string{"test", "for"},
			EndMarkers:   []string{"endtest"},
			DoubleLine:   []string{"endtest"},
		},
	})

	require.Equal(t, append(slices.Clone(Default.Template.StartMarkers), "test"), ext.Template.StartMarkers)
	require.True(t, ext.Template.IsDoubleLine("endtest"))
	require.Contains(t, ext.Template.EndMarkers, "endtest")
	require.Equal(t, Default.Template.Control, ext.Template.Control)

	require.NotContains(t, Default.Template.StartMarkers, "test")
	require.False(t, Default.Template.IsDoubleLine("endtest"))
}

func TestTemplate(t *testing.T) {
	tmpl := Default.Template

	require.True(t, tmpl.IsControl("ELSE"))
	require.True(t, tmpl.IsControl("in"))
	require.False(t, tmpl.IsControl("endif"))

	require.True(t, tmpl.IsTopLevel("EndMacro"))
	require.False(t, tmpl.IsTopLevel("endif"))

	require.True(t, tmpl.IsSingleLine("set"))
	require.False(t, tmpl.IsSingleLine("if"))

	require.True(t, tmpl.IsDoubleLine("endfor"))
	require.False(t, tmpl.IsDoubleLine("endraw"))
}
