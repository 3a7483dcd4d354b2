package format

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/token"
)

type parenKind uint8

const (
	// parenExpanded puts each element on its own line one block level deeper.
	parenExpanded parenKind = iota
	// parenInline keeps the span on the current line.
	parenInline
	// parenOneLiner keeps an argument list of at most one element on the
	// current line.
	parenOneLiner
)

type handler func(*layout, token.Token)

// handlers has exactly one entry per token type.
var handlers = [token.NumTypes]handler{
	token.VarStart:         (*layout).varStart,
	token.VarEnd:           (*layout).varEnd,
	token.TemplateStart:    (*layout).templateStart,
	token.TemplateEnd:      (*layout).templateEnd,
	token.StartMarker:      (*layout).marker,
	token.EndMarker:        (*layout).marker,
	token.Whitespace:       func(*layout, token.Token) {},
	token.LineComment:      (*layout).lineComment,
	token.BlockComment:     (*layout).blockComment,
	token.String:           (*layout).plain,
	token.OpenParen:        (*layout).openParen,
	token.CloseParen:       (*layout).closeParen,
	token.Placeholder:      (*layout).plain,
	token.Number:           (*layout).plain,
	token.ReservedTopLevel: (*layout).topLevelWord,
	token.ReservedNewline:  (*layout).newlineWord,
	token.Reserved:         (*layout).reservedWord,
	token.Word:             (*layout).word,
	token.Operator:         (*layout).operator,
}

// layout is the state of a single formatting pass. Output whitespace is
// owned by the token before it: each handler leaves a trailing space or a
// line break and the next handler trims it when it needs to.
type layout struct {
	opts   Options
	tmpl   dialect.Template
	tokens token.Stream
	cur    *token.Cursor
	out    []byte

	indent *Indentation
	inline InlineBlock
	parens []parenKind

	variableName  string
	inTemplate    bool
	inVariable    bool
	inIncremental bool
	lastReserved  token.Token
}

func newLayout(opts Options, tmpl dialect.Template, tokens token.Stream) *layout {
	return &layout{
		opts:   opts,
		tmpl:   tmpl,
		tokens: tokens,
		cur:    tokens.Cursor(),
		indent: NewIndentation(opts.IndentWidth),
	}
}

func (l *layout) run() string {
	for l.cur.Next() {
		tok := l.cur.Current()
		handlers[tok.Type](l, tok)

		if tok.IsReserved() {
			l.lastReserved = tok
		}
	}
	return string(l.out)
}

func (l *layout) write(s string) {
	l.out = append(l.out, s...)
}

func (l *layout) trimEnd() {
	l.out = bytes.TrimRightFunc(l.out, unicode.IsSpace)
}

// newline trims trailing whitespace and breaks n lines at the current indent.
func (l *layout) newline(n int) {
	l.trimEnd()
	l.write(strings.Repeat("\n", n))
	l.write(l.indent.Indent())
}

// trimTrailing trims trailing whitespace, keeping a line break when the next
// token is a line comment.
func (l *layout) trimTrailing() {
	l.trimEnd()
	if next, ok := l.cur.Peek(1); ok && next.Type == token.LineComment {
		l.write("\n")
	}
}

func (l *layout) cased(word string) string {
	if l.opts.Uppercase {
		return strings.ToUpper(word)
	}
	return word
}

func (l *layout) varStart(tok token.Token) {
	l.inVariable = true
	l.variableName = ""
	if next, ok := l.cur.NextNonWhitespace(); ok {
		l.variableName = next.Value
	}
	l.write(spaced(removeWhitespace(tok.Value)))
}

func (l *layout) varEnd(tok token.Token) {
	l.inVariable = false
	l.write(spaced(removeWhitespace(tok.Value)))

	next, ok := l.cur.NextNonWhitespace()
	if ok && (next.Type == token.Reserved || l.tmpl.IsControl(next.Value)) {
		return
	}

	lines := 1
	if ok && (next.Type == token.ReservedTopLevel || next.Type == token.TemplateStart) {
		lines = 2
	}
	l.newline(lines)
}

func (l *layout) templateStart(tok token.Token) {
	l.inTemplate = true

	next, hasNext := l.cur.NextNonWhitespace()
	second, hasSecond := l.cur.SecondNonWhitespace()
	prev, hasPrev := l.cur.PrevNonWhitespace()

	switch {
	case !hasNext:
	case strings.EqualFold(next.Value, "else"):
		l.indent.DecreaseTopLevel()
		l.newline(1)
		l.indent.IncreaseTopLevel()
	case l.tmpl.IsControl(next.Value) && hasSecond && strings.EqualFold(second.Value, "is_incremental"):
		l.indent.Reset()
		l.inIncremental = true
		l.newline(2)
	case next.Type == token.EndMarker:
		if l.tmpl.IsTopLevel(next.Value) {
			l.indent.Reset()
		} else {
			l.indent.DecreaseTopLevel()
		}
		l.newline(1)
	case next.Type == token.StartMarker && !l.tmpl.IsSingleLine(next.Value):
		l.indent.IncreaseTopLevel()
		if hasPrev && prev.Type == token.Word {
			// Separate a trailing reference from the block that follows it.
			l.indent.DecreaseTopLevel()
			l.newline(2)
		}
	}

	l.write(spaced(removeWhitespace(tok.Value)))
}

func (l *layout) templateEnd(tok token.Token) {
	l.inTemplate = false
	l.write(spaced(tok.Value))

	lines := 1
	if prev, ok := l.cur.PrevNonWhitespace(); ok && l.tmpl.IsDoubleLine(prev.Value) {
		lines = 2
	}
	l.newline(lines)
}

func (l *layout) marker(tok token.Token) {
	l.write(spaced(tok.Value))
}

func (l *layout) lineComment(tok token.Token) {
	l.write(tok.Value)
	l.newline(1)
}

func (l *layout) blockComment(tok token.Token) {
	l.newline(2)
	l.write(reindentComment(tok.Value, l.indent.Indent()))
	l.newline(1)
}

// reindentComment places every continuation line of a block comment at
// indent. Existing leading whitespace is replaced, and lines starting with
// "*" keep one space so they stay aligned under "/*".
func reindentComment(comment, indent string) string {
	lines := strings.Split(comment, "\n")
	for i := 1; i < len(lines); i++ {
		line := strings.TrimLeft(lines[i], " \t")
		if strings.HasPrefix(line, "*") {
			line = " " + line
		}
		lines[i] = indent + line
	}
	return strings.Join(lines, "\n")
}

func (l *layout) topLevelWord(tok token.Token) {
	// SQL and template vocabularies overlap: {% set ... %} or {{ x.from }}.
	prev, ok := l.cur.PrevNonWhitespace()
	if (ok && prev.Type == token.TemplateStart) || l.inTemplate || l.inVariable {
		l.write(spaced(strings.ToLower(tok.Value)))
		return
	}

	if strings.EqualFold(tok.Value, "with") {
		l.write(spaced(l.cased(tok.Value)))
		return
	}

	// A clause following a config block or inside an incremental block keeps
	// the current indentation.
	afterConfig := strings.EqualFold(l.variableName, "config")
	if l.inIncremental || afterConfig {
		l.variableName = ""
		l.inIncremental = false
	} else {
		l.indent.DecreaseTopLevel()
	}

	lines := 1
	if afterConfig {
		lines = 2
	}
	l.newline(lines)
	l.write(equalize(l.cased(tok.Value)))
	l.indent.IncreaseTopLevel()
	l.newline(1)
}

func (l *layout) newlineWord(tok token.Token) {
	if l.inTemplate {
		l.write(spaced(strings.ToLower(tok.Value)))
		return
	}

	l.newline(1)
	l.write(spaced(l.cased(tok.Value)))
}

func (l *layout) reservedWord(tok token.Token) {
	l.write(spaced(l.cased(tok.Value)))
}

func (l *layout) openParen(tok token.Token) {
	// An opener glued to the previous token is an argument list: f(x).
	attached := false
	if prev, ok := l.cur.Peek(-1); ok {
		switch prev.Type {
		case token.Whitespace, token.OpenParen, token.LineComment:
		default:
			attached = true
			l.trimEnd()
		}
	}
	l.write(l.cased(tok.Value))

	idx := l.cur.Index()
	kind := parenExpanded
	switch {
	case l.inline.Active():
		l.inline.BeginIfPossible(l.tokens, idx)
		kind = parenInline
	case !attached && l.inline.BeginIfPossible(l.tokens, idx):
		kind = parenInline
	case countArguments(l.tokens, idx) <= 1:
		kind = parenOneLiner
	default:
		l.indent.IncreaseBlockLevel()
		l.newline(1)
	}
	l.parens = append(l.parens, kind)
}

func (l *layout) closeParen(tok token.Token) {
	kind := parenExpanded
	if n := len(l.parens); n > 0 {
		kind = l.parens[n-1]
		l.parens = l.parens[:n-1]
	}

	value := l.cased(tok.Value)
	switch kind {
	case parenInline:
		l.inline.End()
		l.spaceAfter(value)
	case parenOneLiner:
		l.spaceAfter(value)
	default:
		l.indent.DecreaseBlockLevel()
		l.newline(1)
		l.write(spaced(value))
	}
}

func (l *layout) operator(tok token.Token) {
	switch tok.Value {
	case ",":
		l.comma(tok)
	case ":":
		l.spaceAfter(tok.Value)
	case ".":
		l.trimTrailing()
		l.write(tok.Value)
	case ";":
		l.trimTrailing()
		l.write(";\n")
	default:
		l.plain(tok)
	}
}

func (l *layout) comma(tok token.Token) {
	l.trimTrailing()
	l.write(tok.Value + " ")

	if l.inline.Active() || l.innerParen() == parenOneLiner || strings.EqualFold(l.lastReserved.Value, "limit") {
		return
	}
	l.newline(1)
}

func (l *layout) word(tok token.Token) {
	value := tok.Value
	if l.opts.LowerWords && !(l.opts.PreserveCamelCase && isCamelCase(value)) {
		value = strings.ToLower(value)
	}
	l.write(spaced(value))
}

func (l *layout) plain(tok token.Token) {
	l.write(spaced(tok.Value))
}

func (l *layout) spaceAfter(value string) {
	l.trimTrailing()
	l.write(spaced(value))
}

func (l *layout) innerParen() parenKind {
	if n := len(l.parens); n > 0 {
		return l.parens[n-1]
	}
	return parenExpanded
}
