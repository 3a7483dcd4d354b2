// Package format lays out SQL and dbt (Jinja) model files.
//
// Formatting is a single pass over the token stream produced by pkg/lexer.
// Each token type has one handler that appends the token to the output and
// decides on line breaks and indentation:
//
//   - top-level clause keywords (SELECT, FROM, WHERE) start a new line and
//     indent what follows
//   - newline keywords (AND, JOIN, ON) start a new line at the current indent
//   - brackets either stay on one line or expand with one element per line
//   - template delimiters ({{ }}, {% %}) are normalized and Jinja blocks
//     (if, for, macro, ...) indent their bodies
//
// A bracketed span stays on one line when it fits within InlineMaxLength
// characters and contains no line-breaking token, or when it holds at most
// one argument: max(id), ref('people').
//
// Usage:
//
//	out, err := format.SQL("select id, name from {{ ref('users') }}", format.Defaults)
//
//	// Reusable formatter with custom options
//	f, err := format.New(format.Options{
//		Dialect:         "default",
//		IndentWidth:     4,
//		Uppercase:       true,
//		TrailingNewline: true,
//	})
//	if err != nil {
//		return err
//	}
//
//	var buf bytes.Buffer
//	err = f.Format(&buf, sql)
//
// A Formatter is safe for concurrent use. Every call allocates its own
// layout state.
package format
