package dialect

import (
	"slices"
	"strings"

	"github.com/pkg/errors"
)

// String quote styles understood by the lexer.
const (
	DoubleQuoted   = `""`
	NationalQuoted = "N''"
	SingleQuoted   = "''"
	BacktickQuoted = "``"
	BracketQuoted  = "[]"
)

var knownStringTypes = []string{DoubleQuoted, NationalQuoted, SingleQuoted, BacktickQuoted, BracketQuoted}

type (
	// Template holds the templating vocabulary used by the lexer to find
	// structural markers and by the layout engine to decide on indentation.
	//
	// All entries are lower case.
	Template struct {
		// Control words may follow a template start without breaking the line
		// after a variable block (and, as, else, if, ...).
		Control []string `yaml:"control"`

		// TopLevel end markers reset indentation to column zero (endmacro, ...).
		TopLevel []string `yaml:"top_level"`

		// SingleLine start markers never open an indentation level (set).
		SingleLine []string `yaml:"single_line"`

		// StartMarkers open a structural block (if, for, macro, ...).
		StartMarkers []string `yaml:"start_markers"`

		// EndMarkers close a structural block (endif, endfor, ...).
		EndMarkers []string `yaml:"end_markers"`

		// DoubleLine end markers are followed by a blank line.
		DoubleLine []string `yaml:"double_line"`
	}

	// Config describes a SQL dialect. Values are never mutated once the config
	// has been registered.
	Config struct {
		Name                    string
		ReservedWords           []string
		ReservedTopLevelWords   []string
		ReservedNewlineWords    []string
		StringTypes             []string
		OpenParens              []string
		CloseParens             []string
		IndexedPlaceholderTypes []string
		NamedPlaceholderTypes   []string
		LineCommentTypes        []string
		SpecialWordChars        []string
		Template                Template
	}
)

// Validate checks that the configuration can be turned into a lexer.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("dialect name is required")
	}

	for _, st := range c.StringTypes {
		if !slices.Contains(knownStringTypes, st) {
			return errors.Errorf("dialect %s: unsupported string type %q", c.Name, st)
		}
	}

	if len(c.OpenParens) == 0 || len(c.CloseParens) == 0 {
		return errors.Errorf("dialect %s: open and close parens are required", c.Name)
	}

	return nil
}

// Extend returns a copy of c named name, with the given extension merged in.
// List fields of ext, including the Template lists, are appended to the
// copied lists.
func (c *Config) Extend(name string, ext Config) *Config {
	cp := c.clone()
	cp.Name = name
	cp.ReservedWords = append(cp.ReservedWords, ext.ReservedWords...)
	cp.ReservedTopLevelWords = append(cp.ReservedTopLevelWords, ext.ReservedTopLevelWords...)
	cp.ReservedNewlineWords = append(cp.ReservedNewlineWords, ext.ReservedNewlineWords...)
	cp.StringTypes = appendUnique(cp.StringTypes, ext.StringTypes...)
	cp.OpenParens = appendUnique(cp.OpenParens, ext.OpenParens...)
	cp.CloseParens = appendUnique(cp.CloseParens, ext.CloseParens...)
	cp.IndexedPlaceholderTypes = appendUnique(cp.IndexedPlaceholderTypes, ext.IndexedPlaceholderTypes...)
	cp.NamedPlaceholderTypes = appendUnique(cp.NamedPlaceholderTypes, ext.NamedPlaceholderTypes...)
	cp.LineCommentTypes = appendUnique(cp.LineCommentTypes, ext.LineCommentTypes...)
	cp.SpecialWordChars = appendUnique(cp.SpecialWordChars, ext.SpecialWordChars...)
	cp.Template = Template{
		Control:      appendUnique(cp.Template.Control, ext.Template.Control...),
		TopLevel:     appendUnique(cp.Template.TopLevel, ext.Template.TopLevel...),
		SingleLine:   appendUnique(cp.Template.SingleLine, ext.Template.SingleLine...),
		StartMarkers: appendUnique(cp.Template.StartMarkers, ext.Template.StartMarkers...),
		EndMarkers:   appendUnique(cp.Template.EndMarkers, ext.Template.EndMarkers...),
		DoubleLine:   appendUnique(cp.Template.DoubleLine, ext.Template.DoubleLine...),
	}
	return cp
}

func (c *Config) clone() *Config {
	return &Config{
		Name:                    c.Name,
		ReservedWords:           slices.Clone(c.ReservedWords),
		ReservedTopLevelWords:   slices.Clone(c.ReservedTopLevelWords),
		ReservedNewlineWords:    slices.Clone(c.ReservedNewlineWords),
		StringTypes:             slices.Clone(c.StringTypes),
		OpenParens:              slices.Clone(c.OpenParens),
		CloseParens:             slices.Clone(c.CloseParens),
		IndexedPlaceholderTypes: slices.Clone(c.IndexedPlaceholderTypes),
		NamedPlaceholderTypes:   slices.Clone(c.NamedPlaceholderTypes),
		LineCommentTypes:        slices.Clone(c.LineCommentTypes),
		SpecialWordChars:        slices.Clone(c.SpecialWordChars),
		Template: Template{
			Control:      slices.Clone(c.Template.Control),
			TopLevel:     slices.Clone(c.Template.TopLevel),
			SingleLine:   slices.Clone(c.Template.SingleLine),
			StartMarkers: slices.Clone(c.Template.StartMarkers),
			EndMarkers:   slices.Clone(c.Template.EndMarkers),
			DoubleLine:   slices.Clone(c.Template.DoubleLine),
		},
	}
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		if !slices.Contains(dst, v) {
			dst = append(dst, v)
		}
	}
	return dst
}

// IsControl reports whether word (any case) is a template control word.
func (t Template) IsControl(word string) bool { return contains(t.Control, word) }

// IsTopLevel reports whether word (any case) is a top-level end marker.
func (t Template) IsTopLevel(word string) bool { return contains(t.TopLevel, word) }

// IsSingleLine reports whether word (any case) is a single line start marker.
func (t Template) IsSingleLine(word string) bool { return contains(t.SingleLine, word) }

// IsDoubleLine reports whether word (any case) is followed by a blank line.
func (t Template) IsDoubleLine(word string) bool { return contains(t.DoubleLine, word) }

func contains(words []string, word string) bool {
	return slices.Contains(words, strings.ToLower(word))
}
