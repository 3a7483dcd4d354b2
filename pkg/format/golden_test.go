package format_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	. "github.com/pseudomuto/dbtfmt/pkg/format"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

// goldenOptions overrides Defaults for individual golden files.
var goldenOptions = map[string]Options{
	"uppercase": withOptions(func(o *Options) { o.Uppercase = true }),
	"camelcase": withOptions(func(o *Options) {
		o.Uppercase = true
		o.LowerWords = true
	}),
	"snapshot": withOptions(func(o *Options) {
		o.IndentWidth = 4
		o.Uppercase = true
		o.LowerWords = true
	}),
}

func withOptions(fn func(*Options)) Options {
	opts := Defaults
	fn(&opts)
	return opts
}

func TestGoldenFiles(t *testing.T) {
	matches, err := filepath.Glob(filepath.Join("testdata", "*.in.sql"))
	require.NoError(t, err)
	require.NotEmpty(t, matches, "No *.in.sql files found in testdata directory")

	for _, inputFile := range matches {
		name := strings.TrimSuffix(filepath.Base(inputFile), ".in.sql")

		t.Run(name, func(t *testing.T) {
			input, err := os.ReadFile(inputFile)
			require.NoError(t, err)

			opts, ok := goldenOptions[name]
			if !ok {
				opts = Defaults
			}

			result, err := SQL(string(input), opts)
			require.NoError(t, err)
			golden.Assert(t, result, name+".sql")

			// Formatting is idempotent.
			again, err := SQL(result, opts)
			require.NoError(t, err)
			require.Equal(t, result, again)
		})
	}
}
