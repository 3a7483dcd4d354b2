package format

import "github.com/pseudomuto/dbtfmt/pkg/dialect"

// Options controls the output of a Formatter.
type Options struct {
	// Dialect is the registered dialect used to tokenize input.
	Dialect string
	// IndentWidth is the number of spaces per indentation level.
	IndentWidth int
	// Uppercase renders reserved words in upper case. Otherwise reserved
	// words keep the case they were written in.
	Uppercase bool
	// TrailingNewline appends a line break to the formatted output.
	TrailingNewline bool
	// LowerWords lower cases identifiers and other plain words.
	LowerWords bool
	// PreserveCamelCase keeps camelCased words intact when LowerWords is set.
	PreserveCamelCase bool
}

// Defaults are the options used when none are provided.
var Defaults = Options{
	Dialect:           dialect.DefaultName,
	IndentWidth:       2,
	TrailingNewline:   true,
	PreserveCamelCase: true,
}
