package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the dbtfmt CLI application and schedules it to run when the fx
// application starts. The process exit code is 1 when the command fails.
//
// Global Flags:
//   - --config, -c: Project config file (defaults to .dbtfmt.yaml or $DBTFMT_CONFIG)
//   - --verbose: Enable debug logging on stderr
//
// The project config is loaded by config.Module before any command runs. When
// --config is given explicitly, the named file replaces it and its custom
// dialects are registered.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "dbtfmt",
		Usage: "A formatter for SQL and dbt model files",
		Description: `dbtfmt lays out SQL files that mix plain SQL with dbt's Jinja
templating: {{ ref('users') }}, {% if is_incremental() %} and friends.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the dbtfmt config file",
				Sources: cli.EnvVars(consts.EnvConfig),
				Value:   consts.DefaultConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "enable debug logging",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			level := slog.LevelInfo
			if cmd.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			if !cmd.IsSet("config") {
				return ctx, nil
			}

			return ctx, reloadConfig(p.Config, cmd.String("config"))
		},
		// Exit codes are applied through the fx shutdown below.
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Commands:       p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(exitCode(err)))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

// reloadConfig replaces cfg with the contents of path. Commands hold the same
// pointer, so they observe the new values.
func reloadConfig(cfg *config.Config, path string) error {
	loaded, err := config.LoadConfigFile(path)
	if err != nil {
		return err
	}

	if err := loaded.RegisterDialects(); err != nil {
		return err
	}

	slog.Debug("Loaded config", "path", path, "dialect", loaded.Dialect)
	*cfg = *loaded
	return nil
}

func exitCode(err error) int {
	if coder, ok := err.(cli.ExitCoder); ok {
		return coder.ExitCode()
	}
	return 1
}
