package lexer

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"unicode"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/token"
)

// Lexer states. After a member access dot the lexer moves to stateMember, in
// which reserved words are not recognised ("table.from" is a word).
const (
	stateRoot   = "Root"
	stateMember = "Member"
)

// Rule names. Several rules produce the same token type; ruleTypes maps them.
const (
	ruleVarStart           = "VarStart"
	ruleVarEnd             = "VarEnd"
	ruleTemplateStart      = "TemplateStart"
	ruleTemplateEnd        = "TemplateEnd"
	ruleStartMarker        = "StartMarker"
	ruleEndMarker          = "EndMarker"
	ruleWhitespace         = "Whitespace"
	ruleLineComment        = "LineComment"
	ruleBlockComment       = "BlockComment"
	ruleString             = "String"
	ruleOpenParen          = "OpenParen"
	ruleCloseParen         = "CloseParen"
	ruleNamedPlaceholder   = "NamedPlaceholder"
	ruleQuotedPlaceholder  = "QuotedPlaceholder"
	ruleIndexedPlaceholder = "IndexedPlaceholder"
	ruleNumber             = "Number"
	ruleReservedTopLevel   = "ReservedTopLevel"
	ruleReservedNewline    = "ReservedNewline"
	ruleReserved           = "Reserved"
	ruleWord               = "Word"
	ruleDot                = "Dot"
	ruleOperator           = "Operator"
)

var ruleTypes = map[string]token.Type{
	ruleVarStart:           token.VarStart,
	ruleVarEnd:             token.VarEnd,
	ruleTemplateStart:      token.TemplateStart,
	ruleTemplateEnd:        token.TemplateEnd,
	ruleStartMarker:        token.StartMarker,
	ruleEndMarker:          token.EndMarker,
	ruleWhitespace:         token.Whitespace,
	ruleLineComment:        token.LineComment,
	ruleBlockComment:       token.BlockComment,
	ruleString:             token.String,
	ruleOpenParen:          token.OpenParen,
	ruleCloseParen:         token.CloseParen,
	ruleNamedPlaceholder:   token.Placeholder,
	ruleQuotedPlaceholder:  token.Placeholder,
	ruleIndexedPlaceholder: token.Placeholder,
	ruleNumber:             token.Number,
	ruleReservedTopLevel:   token.ReservedTopLevel,
	ruleReservedNewline:    token.ReservedNewline,
	ruleReserved:           token.Reserved,
	ruleWord:               token.Word,
	ruleDot:                token.Operator,
	ruleOperator:           token.Operator,
}

// stringPatterns enables the following quote styles:
//  1. backtick quoted string using `` to escape
//  2. square bracket quoted string (SQL Server) using ]] to escape
//  3. double quoted string using "" or \" to escape
//  4. single quoted string using '' or \' to escape
//  5. national character quoted string using N'' or N\' to escape
var stringPatterns = map[string]string{
	dialect.BacktickQuoted: "((`[^`]*($|`))+)",
	dialect.BracketQuoted:  `((\[[^\]]*($|\]))(\][^\]]*($|\]))*)`,
	dialect.DoubleQuoted:   `(("[^"\\]*(?:\\.[^"\\]*)*("|$))+)`,
	dialect.SingleQuoted:   `(('[^'\\]*(?:\\.[^'\\]*)*('|$))+)`,
	dialect.NationalQuoted: `((N'[^N'\\]*(?:\\.[^N'\\]*)*('|$))+)`,
}

const (
	operatorPattern = `!=|<>|==|<=|>=|!<|!>|\|\||::|->>|->|~~\*|~~|!~~\*|!~~|~\*|!~\*|!~|(?s:.)`
	numberPattern   = `((-\s*)?[0-9]+(\.[0-9]+)?|0x[0-9a-fA-F]+|0b[01]+)\b`
)

// buildRules returns the ordered rule table for cfg. The order is the match
// priority: the first rule that matches at the current position wins.
//
//	 1 VarStart            {{
//	 2 VarEnd              }}
//	 3 TemplateStart       {% {%-
//	 4 TemplateEnd         %} -%}
//	 5 StartMarker         if, for, macro, ...
//	 6 EndMarker           endif, endfor, endmacro, ...
//	 7 Whitespace
//	 8 LineComment
//	 9 BlockComment
//	10 String
//	11 OpenParen
//	12 CloseParen
//	13 NamedPlaceholder    :name @name
//	14 QuotedPlaceholder   :'name'
//	15 IndexedPlaceholder  ? ?1
//	16 Number
//	17 ReservedTopLevel    (not after ".")
//	18 ReservedNewline     (not after ".")
//	19 Reserved            (not after ".")
//	20 Word
//	21 Operator            "." is split out to track member access
func buildRules(cfg *dialect.Config) lexer.Rules {
	quoted := stringPattern(cfg.StringTypes)

	head := []lexer.Rule{
		{Name: ruleVarStart, Pattern: `\{\s?\{\s?`},
		{Name: ruleVarEnd, Pattern: `\s?\}\s?\}`},
		{Name: ruleTemplateStart, Pattern: `\s?\{\s?%-?`},
		{Name: ruleTemplateEnd, Pattern: `-?%\s?\}`},
	}
	head = appendRule(head, ruleStartMarker, wordsPattern(cfg.Template.StartMarkers))
	head = appendRule(head, ruleEndMarker, wordsPattern(cfg.Template.EndMarkers))
	head = append(head, lexer.Rule{Name: ruleWhitespace, Pattern: `\s+`})
	head = appendRule(head, ruleLineComment, lineCommentPattern(cfg.LineCommentTypes))
	head = append(head, lexer.Rule{Name: ruleBlockComment, Pattern: `/\*(?s:.)*?(?:\*/|$)`})
	head = appendRule(head, ruleString, quoted)
	head = appendRule(head, ruleOpenParen, parenPattern(cfg.OpenParens))
	head = appendRule(head, ruleCloseParen, parenPattern(cfg.CloseParens))
	head = appendRule(head, ruleNamedPlaceholder, placeholderPattern(cfg.NamedPlaceholderTypes, `[a-zA-Z0-9._$]+`))
	if quoted != "" {
		head = appendRule(head, ruleQuotedPlaceholder, placeholderPattern(cfg.NamedPlaceholderTypes, quoted))
	}
	head = appendRule(head, ruleIndexedPlaceholder, placeholderPattern(cfg.IndexedPlaceholderTypes, `[0-9]*`))
	head = append(head, lexer.Rule{Name: ruleNumber, Pattern: numberPattern})

	var reserved []lexer.Rule
	reserved = appendRule(reserved, ruleReservedTopLevel, wordsPattern(cfg.ReservedTopLevelWords))
	reserved = appendRule(reserved, ruleReservedNewline, wordsPattern(cfg.ReservedNewlineWords))
	reserved = appendRule(reserved, ruleReserved, wordsPattern(cfg.ReservedWords))

	tail := []lexer.Rule{
		{Name: ruleWord, Pattern: wordPattern(cfg.SpecialWordChars)},
	}

	root := slices.Concat(head, reserved, tail, []lexer.Rule{
		{Name: ruleDot, Pattern: `\.`, Action: lexer.Push(stateMember)},
		{Name: ruleOperator, Pattern: operatorPattern},
	})

	// The member state is the root state without reserved words. Any token
	// other than another dot returns to the root state.
	var member []lexer.Rule
	for _, r := range slices.Concat(head, tail) {
		r.Action = lexer.Pop()
		member = append(member, r)
	}
	member = append(member,
		lexer.Rule{Name: ruleDot, Pattern: `\.`},
		lexer.Rule{Name: ruleOperator, Pattern: operatorPattern, Action: lexer.Pop()},
	)

	return lexer.Rules{
		stateRoot:   root,
		stateMember: member,
	}
}

func appendRule(rules []lexer.Rule, name, pattern string) []lexer.Rule {
	if pattern == "" {
		return rules
	}
	return append(rules, lexer.Rule{Name: name, Pattern: pattern})
}

func stringPattern(types []string) string {
	patterns := make([]string, 0, len(types))
	for _, t := range types {
		if p, ok := stringPatterns[t]; ok {
			patterns = append(patterns, p)
		}
	}
	return strings.Join(patterns, "|")
}

func lineCommentPattern(prefixes []string) string {
	if len(prefixes) == 0 {
		return ""
	}
	return `(?:` + quoteAll(prefixes) + `).*?(?:\n|$)`
}

func parenPattern(parens []string) string {
	if len(parens) == 0 {
		return ""
	}

	patterns := make([]string, 0, len(parens))
	for _, p := range parens {
		if len(p) == 1 {
			patterns = append(patterns, regexp.QuoteMeta(p))
			continue
		}
		patterns = append(patterns, `\b`+regexp.QuoteMeta(p)+`\b`)
	}
	return `(?i:` + strings.Join(patterns, "|") + `)`
}

func placeholderPattern(prefixes []string, pattern string) string {
	if len(prefixes) == 0 {
		return ""
	}
	return `(?:` + quoteAll(prefixes) + `)(?:` + pattern + `)`
}

// wordsPattern matches any of words case-insensitively, followed by a word
// boundary. Multi-word entries accept any whitespace between words. Longer
// entries are tried first so "IS NOT NULL" wins over "IS".
func wordsPattern(words []string) string {
	if len(words) == 0 {
		return ""
	}

	sorted := slices.Clone(words)
	slices.SortStableFunc(sorted, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})

	patterns := make([]string, 0, len(sorted))
	for _, w := range sorted {
		parts := strings.Fields(w)
		for i, p := range parts {
			parts[i] = regexp.QuoteMeta(p)
		}
		patterns = append(patterns, strings.Join(parts, `\s+`))
	}
	return `(?i:` + strings.Join(patterns, "|") + `)\b`
}

func wordPattern(special []string) string {
	var sb strings.Builder
	sb.WriteString(`[\w`)
	for _, s := range special {
		for _, r := range s {
			if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
	}
	sb.WriteString(`]+`)
	return sb.String()
}

func quoteAll(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = regexp.QuoteMeta(v)
	}
	return strings.Join(quoted, "|")
}
