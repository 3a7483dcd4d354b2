package token

// Stream is an ordered token sequence in document order. It is produced once
// by the lexer and only traversed afterwards.
type Stream []Token

// Cursor returns a cursor positioned before the first token.
func (s Stream) Cursor() *Cursor {
	return &Cursor{tokens: s, pos: -1}
}

// Values returns the concatenated token values, which is the lexer input.
func (s Stream) Values() []string {
	values := make([]string, len(s))
	for i, t := range s {
		values[i] = t.Value
	}
	return values
}

// Cursor walks a Stream and peeks in both directions, optionally skipping
// whitespace tokens.
type Cursor struct {
	tokens Stream
	pos    int
}

// Next advances the cursor and reports whether a token is available.
func (c *Cursor) Next() bool {
	if c.pos < len(c.tokens) {
		c.pos++
	}
	return c.pos < len(c.tokens)
}

// Index returns the current position.
func (c *Cursor) Index() int { return c.pos }

// Len returns the number of tokens in the underlying stream.
func (c *Cursor) Len() int { return len(c.tokens) }

// Current returns the token under the cursor.
func (c *Cursor) Current() Token {
	return c.tokens[c.pos]
}

// Peek returns the token offset positions away from the current one.
func (c *Cursor) Peek(offset int) (Token, bool) {
	return c.At(c.pos + offset)
}

// At returns the token at an absolute index.
func (c *Cursor) At(i int) (Token, bool) {
	if i < 0 || i >= len(c.tokens) {
		return Token{}, false
	}
	return c.tokens[i], true
}

// NextNonWhitespace returns the first non whitespace token after the current one.
func (c *Cursor) NextNonWhitespace() (Token, bool) {
	return c.NextNonWhitespaceFrom(c.pos)
}

// NextNonWhitespaceFrom returns the first non whitespace token after index i.
func (c *Cursor) NextNonWhitespaceFrom(i int) (Token, bool) {
	idx := c.nextIndex(i)
	if idx < 0 {
		return Token{}, false
	}
	return c.tokens[idx], true
}

// SecondNonWhitespace returns the non whitespace token following the next
// non whitespace token.
func (c *Cursor) SecondNonWhitespace() (Token, bool) {
	idx := c.nextIndex(c.pos)
	if idx < 0 {
		return Token{}, false
	}
	return c.NextNonWhitespaceFrom(idx)
}

// PrevNonWhitespace returns the closest non whitespace token before the current one.
func (c *Cursor) PrevNonWhitespace() (Token, bool) {
	for i := c.pos - 1; i >= 0; i-- {
		if c.tokens[i].Type != Whitespace {
			return c.tokens[i], true
		}
	}
	return Token{}, false
}

func (c *Cursor) nextIndex(i int) int {
	for j := i + 1; j < len(c.tokens); j++ {
		if c.tokens[j].Type != Whitespace {
			return j
		}
	}
	return -1
}
