package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/config"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/lexer"
	"github.com/pseudomuto/dbtfmt/pkg/token"
	"github.com/urfave/cli/v3"
)

// tokens creates a debugging command that prints the token stream of a file,
// one token per line. Standard input is read when no file is given.
//
//	dbtfmt tokens models/users.sql
//	ReservedTopLevel "select"
//	Whitespace " "
//	Word "id"
//	...
func tokens(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "tokens",
		Usage:     "Print the tokens of a SQL file",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "the SQL dialect (defaults to the configured dialect)",
			},
			&cli.BoolFlag{
				Name:  "skip-whitespace",
				Usage: "omit whitespace tokens",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one file argument is allowed")
			}

			name := cfg.Dialect
			if cmd.IsSet("dialect") {
				name = cmd.String("dialect")
			}

			d, err := dialect.Lookup(name)
			if err != nil {
				return err
			}

			src, err := readSource(cmd)
			if err != nil {
				return err
			}

			stream, err := lexer.Tokenize(src, d)
			if err != nil {
				return err
			}

			for _, tok := range stream {
				if tok.Type == token.Whitespace && cmd.Bool("skip-whitespace") {
					continue
				}

				line := fmt.Sprintf("%s %q", tok.Type, tok.Value)
				if tok.Type == token.Placeholder {
					line += fmt.Sprintf(" key=%q", tok.Key)
				}
				fmt.Fprintln(cmd.Writer, line)
			}
			return nil
		},
	}
}

func readSource(cmd *cli.Command) (string, error) {
	if path := cmd.Args().First(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", errors.Wrapf(err, "failed to read file: %s", path)
		}
		return string(data), nil
	}

	reader := cmd.Reader
	if reader == nil {
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", errors.Wrap(err, "failed to read standard input")
	}
	return string(data), nil
}
