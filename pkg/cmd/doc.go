// Package cmd provides the CLI commands for dbtfmt.
//
// Commands are constructed by functions returning a *cli.Command and are
// collected by fx through the "commands" value group. Run assembles them into
// the application and executes it once the fx application starts.
//
// # Available Commands
//
//   - fmt: Format SQL and dbt model files, standard input or whole directories
//   - tokens: Print the token stream of a file (debugging aid)
//   - dialects: List the registered SQL dialects
//
// # Global Options
//
//   - --config, -c: Project config file (defaults to .dbtfmt.yaml)
//   - --verbose: Enable debug logging
//   - --help, -h: Display command help
//   - --version: Display version information
//
// # Example Usage
//
//	dbtfmt fmt models/users.sql              # Format a file to stdout
//	dbtfmt fmt -w models                     # Rewrite changed files in place
//	dbtfmt fmt --check --upper models        # Exit 1 when files need formatting
//	dbtfmt -c ci.yaml fmt --check models     # Use another config file
//	dbtfmt tokens --skip-whitespace a.sql    # Inspect the lexer output
//	dbtfmt dialects                          # List dialects
package cmd
