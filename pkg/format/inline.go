package format

import (
	"unicode/utf8"

	"github.com/pseudomuto/dbtfmt/pkg/token"
)

// InlineMaxLength is the longest bracketed span, in characters of the source
// tokens, that is kept on a single line.
const InlineMaxLength = 50

// InlineBlock tracks whether the layout is inside a span that stays on one
// line. Spans nest: once a span is active every nested opener only bumps the
// counter.
type InlineBlock struct {
	level int
}

// BeginIfPossible is called on an opening token. It starts a span when the
// tokens up to the matching closer fit within InlineMaxLength and contain no
// line-breaking token, and reports whether the layout is now inline.
func (b *InlineBlock) BeginIfPossible(s token.Stream, index int) bool {
	switch {
	case b.level > 0:
		b.level++
	case fitsInline(s, index):
		b.level = 1
	}
	return b.level > 0
}

// End closes the innermost span.
func (b *InlineBlock) End() {
	if b.level > 0 {
		b.level--
	}
}

// Active reports whether the layout is inside a span.
func (b *InlineBlock) Active() bool { return b.level > 0 }

func fitsInline(s token.Stream, index int) bool {
	depth, length := 0, 0

	for _, tok := range s[index:] {
		length += utf8.RuneCountInString(tok.Value)
		if length > InlineMaxLength {
			return false
		}

		switch tok.Type {
		case token.OpenParen, token.VarStart:
			depth++
		case token.CloseParen, token.VarEnd:
			depth--
			if depth == 0 {
				return true
			}
		}

		if breaksLine(tok) {
			return false
		}
	}

	return false
}

// breaksLine reports whether tok forces a line break, which rules out an
// inline span.
func breaksLine(tok token.Token) bool {
	switch tok.Type {
	case token.ReservedTopLevel, token.ReservedNewline, token.BlockComment:
		return true
	}
	return tok.Value == ";"
}

// countArguments counts the tokens between the opener at index and the first
// closer, ignoring whitespace and commas.
func countArguments(s token.Stream, index int) int {
	n := 0
	for _, tok := range s[index+1:] {
		if tok.Type == token.CloseParen {
			break
		}
		if tok.Type != token.Whitespace && tok.Value != "," {
			n++
		}
	}
	return n
}
