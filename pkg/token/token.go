package token

// Type classifies a Token. The set is closed: every Type has exactly one
// layout handler in pkg/format.
type Type int

const (
	// VarStart opens a template variable block ({{).
	VarStart Type = iota
	// VarEnd closes a template variable block (}}).
	VarEnd
	// TemplateStart opens a template control block ({% or {%-).
	TemplateStart
	// TemplateEnd closes a template control block (%} or -%}).
	TemplateEnd
	// StartMarker is a structural template keyword such as if, for or macro.
	StartMarker
	// EndMarker is a structural template end keyword such as endif or endmacro.
	EndMarker
	Whitespace
	LineComment
	BlockComment
	String
	OpenParen
	CloseParen
	Placeholder
	Number
	// ReservedTopLevel starts a new SQL clause (SELECT, FROM, WHERE, ...).
	ReservedTopLevel
	// ReservedNewline forces a line break without changing indentation (AND, JOIN, ...).
	ReservedNewline
	Reserved
	Word
	Operator

	numTypes
)

var typeNames = [numTypes]string{
	VarStart:         "VarStart",
	VarEnd:           "VarEnd",
	TemplateStart:    "TemplateStart",
	TemplateEnd:      "TemplateEnd",
	StartMarker:      "StartMarker",
	EndMarker:        "EndMarker",
	Whitespace:       "Whitespace",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
	String:           "String",
	OpenParen:        "OpenParen",
	CloseParen:       "CloseParen",
	Placeholder:      "Placeholder",
	Number:           "Number",
	ReservedTopLevel: "ReservedTopLevel",
	ReservedNewline:  "ReservedNewline",
	Reserved:         "Reserved",
	Word:             "Word",
	Operator:         "Operator",
}

// Types returns every token type in declaration order.
func Types() []Type {
	types := make([]Type, 0, numTypes)
	for t := Type(0); t < numTypes; t++ {
		types = append(types, t)
	}
	return types
}

// NumTypes is the number of token types. Handler tables are sized with it.
const NumTypes = int(numTypes)

func (t Type) String() string {
	if t < 0 || t >= numTypes {
		return "Unknown"
	}
	return typeNames[t]
}

// ParseType returns the Type with the given name.
func ParseType(name string) (Type, bool) {
	for t, n := range typeNames {
		if n == name {
			return Type(t), true
		}
	}
	return 0, false
}

// Token is a single lexical unit. Value is the exact matched text; Key is only
// set for placeholders and holds the decoded placeholder name.
type Token struct {
	Type  Type
	Value string
	Key   string
}

// IsReserved reports whether the token belongs to any reserved word tier.
func (t Token) IsReserved() bool {
	return t.Type == ReservedTopLevel || t.Type == ReservedNewline || t.Type == Reserved
}

// Is reports whether the token has the given type and value.
func (t Token) Is(typ Type, value string) bool {
	return t.Type == typ && t.Value == value
}
