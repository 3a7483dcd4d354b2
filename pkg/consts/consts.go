package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// DefaultConfigFile is the project configuration looked up in the working
	// directory.
	DefaultConfigFile = ".dbtfmt.yaml"

	// DefaultInclude selects the files formatted when walking a directory.
	DefaultInclude = "*.sql"

	// DefaultIndent is the indent width used by the CLI.
	DefaultIndent = 4

	// EnvConfig names the environment variable overriding DefaultConfigFile.
	EnvConfig = "DBTFMT_CONFIG"
)
