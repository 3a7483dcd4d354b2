package main

import (
	"context"
	"os"

	"github.com/pseudomuto/dbtfmt/pkg/cmd"
	"github.com/pseudomuto/dbtfmt/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		config.Module,
		cmd.Module,
		fx.NopLogger,
		fx.Provide(context.Background),
		fx.Supply(
			os.Args,
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
	).Run()
}
