package cmd

import (
	"testing"

	"github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/stretchr/testify/require"
)

func TestDialectsCommand(t *testing.T) {
	require.NoError(t, dialect.Register(dialect.Default.Extend("zz_dialects_test", dialect.Config{})))

	out, err := runCommand(t, dialects(config.Default()), "")
	require.NoError(t, err)
	require.Contains(t, out, "* default\n")
	require.Contains(t, out, "  zz_dialects_test\n")

	cfg := config.Default()
	cfg.Dialect = "zz_dialects_test"

	out, err = runCommand(t, dialects(cfg), "")
	require.NoError(t, err)
	require.Contains(t, out, "  default\n")
	require.Contains(t, out, "* zz_dialects_test\n")
}
