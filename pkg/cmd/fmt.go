package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/consts"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/format"
	"github.com/pseudomuto/dbtfmt/pkg/runner"
	"github.com/urfave/cli/v3"
)

// fmtCmd creates the command that formats SQL and dbt model files.
//
// Paths come from the arguments and the --file and --directory flags. Files
// are formatted as given and directories are walked recursively, selecting
// files matching the configured include globs. Without any path the command
// formats standard input to standard output.
//
// Output modes:
//   - default: formatted text is written to stdout
//   - --write, -w: changed files are rewritten in place and their paths printed
//   - --check: a diff is printed for every file that needs formatting and the
//     command exits with status 1 when there is at least one
//
// Flags override the project config (.dbtfmt.yaml) when set.
//
// Examples:
//
//	# Format a model to stdout
//	dbtfmt fmt models/users.sql
//
//	# Rewrite every model in place with upper case keywords
//	dbtfmt fmt -w --upper -d models
//
//	# Fail CI when something is not formatted
//	dbtfmt fmt --check models macros
//
//	# Format standard input
//	echo "select 1" | dbtfmt fmt
func fmtCmd(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "fmt",
		Usage:     "Format SQL files",
		ArgsUsage: "[path...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "a file to format",
			},
			&cli.StringFlag{
				Name:    "directory",
				Aliases: []string{"d"},
				Usage:   "a directory to format recursively",
			},
			&cli.IntFlag{
				Name:    "indent",
				Aliases: []string{"i"},
				Usage:   "number of spaces per indentation level",
				Value:   consts.DefaultIndent,
			},
			&cli.BoolFlag{
				Name:  "upper",
				Usage: "upper case reserved words",
			},
			&cli.BoolFlag{
				Name:  "lower-words",
				Usage: "lower case identifiers",
			},
			&cli.BoolFlag{
				Name:  "camelcase",
				Usage: "keep camelCased identifiers when lower casing",
				Value: true,
			},
			&cli.BoolFlag{
				Name:  "no-newline",
				Usage: "do not end output with a line break",
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "the SQL dialect",
				Value: dialect.DefaultName,
			},
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w", "replace"},
				Usage:   "write result to source files instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "check",
				Usage: "print a diff and exit with status 1 when files need formatting",
			},
			&cli.IntFlag{
				Name:    "jobs",
				Aliases: []string{"j"},
				Usage:   "number of files formatted concurrently (0 for one per CPU)",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "glob selecting files in directories",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "glob for files and directories to skip",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Bool("write") && cmd.Bool("check") {
				return errors.New("--write and --check cannot be combined")
			}

			f, err := format.New(fmtOptions(cfg, cmd))
			if err != nil {
				return err
			}

			paths := fmtPaths(cmd)
			if len(paths) == 0 {
				return formatStdin(cmd, f)
			}

			include := cfg.Include
			if cmd.IsSet("include") {
				include = cmd.StringSlice("include")
			}

			exclude := cfg.Exclude
			if cmd.IsSet("exclude") {
				exclude = cmd.StringSlice("exclude")
			}

			files, err := runner.Collect(paths, include, exclude)
			if err != nil {
				return err
			}

			jobs := cfg.Jobs
			if cmd.IsSet("jobs") {
				jobs = cmd.Int("jobs")
			}

			slog.Debug("Formatting files", "count", len(files), "jobs", jobs)
			results, err := runner.Run(ctx, files, runner.RunOptions{
				Jobs:      jobs,
				Formatter: f,
			})
			if err != nil {
				return err
			}

			return writeResults(cmd, results)
		},
	}
}

// fmtOptions layers the flags that were set over the project config.
func fmtOptions(cfg *config.Config, cmd *cli.Command) format.Options {
	opts := cfg.Options()
	if cmd.IsSet("dialect") {
		opts.Dialect = cmd.String("dialect")
	}
	if cmd.IsSet("indent") {
		opts.IndentWidth = cmd.Int("indent")
	}
	if cmd.IsSet("upper") {
		opts.Uppercase = cmd.Bool("upper")
	}
	if cmd.IsSet("lower-words") {
		opts.LowerWords = cmd.Bool("lower-words")
	}
	if cmd.IsSet("camelcase") {
		opts.PreserveCamelCase = cmd.Bool("camelcase")
	}
	if cmd.IsSet("no-newline") {
		opts.TrailingNewline = !cmd.Bool("no-newline")
	}
	return opts
}

func fmtPaths(cmd *cli.Command) []string {
	var paths []string
	for _, name := range []string{"file", "directory"} {
		if p := cmd.String(name); p != "" {
			paths = append(paths, p)
		}
	}
	return append(paths, cmd.Args().Slice()...)
}

func formatStdin(cmd *cli.Command, f *format.Formatter) error {
	reader := cmd.Reader
	if reader == nil {
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return errors.Wrap(err, "failed to read standard input")
	}

	res := runner.FormatSource(f, "<stdin>", string(data))
	if res.Err != nil {
		return res.Err
	}

	if cmd.Bool("check") {
		return writeResults(cmd, []runner.Result{res})
	}
	return (&runner.StdoutWriter{Out: cmd.Writer}).Write(res)
}

func writeResults(cmd *cli.Command, results []runner.Result) error {
	var (
		w    runner.Writer
		diff *runner.DiffWriter
	)

	switch {
	case cmd.Bool("check"):
		diff = &runner.DiffWriter{Out: cmd.Writer, NoColor: cmd.Writer != os.Stdout}
		w = diff
	case cmd.Bool("write"):
		w = &runner.FileWriter{Out: cmd.Writer}
	default:
		w = &runner.StdoutWriter{Out: cmd.Writer}
	}

	if errs := runner.WriteAll(w, results); len(errs) > 0 {
		for _, err := range errs {
			slog.Error("Failed to format file", "err", err)
		}
		return errors.Errorf("failed to format %d file(s)", len(errs))
	}

	if diff != nil && diff.Changed() > 0 {
		return cli.Exit(fmt.Sprintf("%d file(s) need formatting", diff.Changed()), 1)
	}
	return nil
}
