package format

import (
	"regexp"
	"strings"
	"unicode"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// equalize collapses every whitespace run to a single space.
func equalize(s string) string {
	return whitespaceRun.ReplaceAllString(s, " ")
}

// spaced returns s followed by exactly one space.
func spaced(s string) string {
	return equalize(s + " ")
}

func removeWhitespace(s string) string {
	return whitespaceRun.ReplaceAllString(s, "")
}

// isCamelCase reports whether s starts lower case and has an upper case
// character after the first one: "incomeStatement".
func isCamelCase(s string) bool {
	if s == "" {
		return false
	}

	first, rest := []rune(s)[0], string([]rune(s)[1:])
	if rest == "" {
		rest = s
	}
	return unicode.ToLower(first) == first && strings.ToLower(rest) != rest
}
