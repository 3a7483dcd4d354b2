// Package lexer splits SQL and dbt (Jinja) text into a token.Stream.
//
// The lexer is built on participle's stateful lexer. Rules are tried in a
// fixed priority order and the first rule that matches wins, so template
// delimiters beat operators and reserved words beat plain words. Matching is
// total: every input, including unterminated strings and comments, produces a
// stream whose values concatenate back to the input.
//
// Reserved words are not recognised directly after a "." so that "t.from" is
// a member access rather than a FROM clause.
package lexer
