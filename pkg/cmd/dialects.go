package cmd

import (
	"context"
	"fmt"

	"github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/urfave/cli/v3"
)

// dialects creates the command listing the registered dialects. The
// configured dialect is marked with an asterisk.
func dialects(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "dialects",
		Usage: "List the available SQL dialects",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			for _, name := range dialect.Names() {
				marker := " "
				if name == cfg.Dialect {
					marker = "*"
				}
				fmt.Fprintf(cmd.Writer, "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
