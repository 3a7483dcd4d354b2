package lexer

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/token"
)

// Lexer turns SQL text into a token.Stream using the rules of a dialect.
//
// A Lexer is immutable once built and safe for concurrent use.
type Lexer struct {
	def   *lexer.StatefulDefinition
	types map[lexer.TokenType]token.Type
	keys  map[lexer.TokenType]func(string) string
}

// New builds a Lexer for cfg.
func New(cfg *dialect.Config) (*Lexer, error) {
	if cfg == nil {
		return nil, errors.New("dialect config is nil")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid dialect")
	}

	def, err := lexer.New(buildRules(cfg))
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build lexer for dialect %s", cfg.Name)
	}

	l := &Lexer{
		def:   def,
		types: make(map[lexer.TokenType]token.Type),
		keys:  make(map[lexer.TokenType]func(string) string),
	}

	for name, sym := range def.Symbols() {
		typ, ok := ruleTypes[name]
		if !ok {
			continue
		}
		l.types[sym] = typ

		switch name {
		case ruleNamedPlaceholder, ruleIndexedPlaceholder:
			l.keys[sym] = prefixedKey
		case ruleQuotedPlaceholder:
			l.keys[sym] = quotedKey
		}
	}

	return l, nil
}

// Tokenize is a convenience wrapper that builds a Lexer for cfg and runs it
// over input.
func Tokenize(input string, cfg *dialect.Config) (token.Stream, error) {
	l, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return l.Tokenize(input)
}

// Tokenize splits input into tokens. The concatenation of the returned token
// values is always equal to input.
func (l *Lexer) Tokenize(input string) (token.Stream, error) {
	lex, err := l.def.LexString("", input)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize input")
	}

	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, errors.Wrap(err, "failed to tokenize input")
	}

	stream := make(token.Stream, 0, len(raw))
	for _, tok := range raw {
		if tok.EOF() {
			continue
		}

		typ, ok := l.types[tok.Type]
		if !ok {
			return nil, errors.Errorf("failed to tokenize input: unexpected token %q at %s", tok.Value, tok.Pos)
		}

		t := token.Token{Type: typ, Value: tok.Value}
		if key, ok := l.keys[tok.Type]; ok {
			t.Key = key(tok.Value)
		}
		stream = append(stream, t)
	}

	return stream, nil
}

// prefixedKey drops the one character placeholder prefix: "?1" => "1", ":id" => "id".
func prefixedKey(value string) string {
	return value[1:]
}

// quotedKey drops the prefix and quotes of a quoted placeholder and unescapes
// the quote character: `@"a \"b\""` => `a "b"`.
func quotedKey(value string) string {
	if len(value) < 3 {
		return ""
	}

	quote := value[len(value)-1:]
	return strings.ReplaceAll(value[2:len(value)-1], `\`+quote, quote)
}
