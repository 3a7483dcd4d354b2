package config

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/consts"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/format"
	"gopkg.in/yaml.v3"
)

type (
	// Dialect declares a custom dialect. It starts from the registered dialect
	// named by Extends and adds the listed vocabulary.
	Dialect struct {
		// Name is the identifier used to select the dialect
		Name string `yaml:"name"`

		// Extends names the base dialect (default when empty)
		Extends string `yaml:"extends,omitempty"`

		ReservedWords         []string `yaml:"reserved_words,omitempty"`
		ReservedTopLevelWords []string `yaml:"reserved_top_level_words,omitempty"`
		ReservedNewlineWords  []string `yaml:"reserved_newline_words,omitempty"`
		LineComments          []string `yaml:"line_comments,omitempty"`
		SpecialWordChars      []string `yaml:"special_word_chars,omitempty"`

		// StartMarkers and EndMarkers add template block keywords: {% test %} ... {% endtest %}
		StartMarkers []string `yaml:"start_markers,omitempty"`
		EndMarkers   []string `yaml:"end_markers,omitempty"`
	}

	// Config represents the project configuration for dbtfmt.
	Config struct {
		// Dialect selects the registered dialect used for formatting
		Dialect string `yaml:"dialect"`

		// Indent is the number of spaces per indentation level
		Indent int `yaml:"indent"`

		// Upper renders reserved words in upper case
		Upper bool `yaml:"upper"`

		// LowerWords lower cases identifiers
		LowerWords bool `yaml:"lower_words"`

		// CamelCase keeps camelCased identifiers when LowerWords is set (default true)
		CamelCase *bool `yaml:"camelcase,omitempty"`

		// Newline appends a line break to formatted files (default true)
		Newline *bool `yaml:"newline,omitempty"`

		// Include lists the glob patterns selecting files in directories
		Include []string `yaml:"include"`

		// Exclude lists glob patterns for files and directories to skip
		Exclude []string `yaml:"exclude"`

		// Jobs bounds the number of files formatted concurrently (0 means one per CPU)
		Jobs int `yaml:"jobs"`

		// Dialects declares custom dialects
		Dialects []Dialect `yaml:"dialects"`
	}
)

// Default returns the configuration used when no project file exists.
func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}

// LoadConfig parses a configuration from the provided io.Reader.
//
// Values that are not set fall back to the CLI defaults: the default dialect,
// an indent of 4 spaces and *.sql files.
//
// Example:
//
//	cfg, err := config.LoadConfig(strings.NewReader("indent: 2\nupper: true\n"))
//	if err != nil {
//		return err
//	}
//
//	f, err := format.New(cfg.Options())
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	cfg.setDefaults()
	return &cfg, nil
}

// LoadConfigFile loads a configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// RegisterDialects registers every custom dialect declared in the config.
func (c *Config) RegisterDialects() error {
	for _, d := range c.Dialects {
		if d.Name == "" {
			return errors.New("custom dialect requires a name")
		}

		base, err := dialect.Lookup(d.Extends)
		if err != nil {
			return errors.Wrapf(err, "dialect %s", d.Name)
		}

		ext := base.Extend(d.Name, dialect.Config{
			ReservedWords:         d.ReservedWords,
			ReservedTopLevelWords: d.ReservedTopLevelWords,
			ReservedNewlineWords:  d.ReservedNewlineWords,
			LineCommentTypes:      d.LineComments,
			SpecialWordChars:      d.SpecialWordChars,
			Template: dialect.Template{
				StartMarkers: lowerAll(d.StartMarkers),
				EndMarkers:   lowerAll(d.EndMarkers),
			},
		})
		if err := dialect.Register(ext); err != nil {
			return err
		}
	}

	return nil
}

// Options returns the formatter options described by the config.
func (c *Config) Options() format.Options {
	return format.Options{
		Dialect:           c.Dialect,
		IndentWidth:       c.Indent,
		Uppercase:         c.Upper,
		TrailingNewline:   boolOr(c.Newline, true),
		LowerWords:        c.LowerWords,
		PreserveCamelCase: boolOr(c.CamelCase, true),
	}
}

func (c *Config) setDefaults() {
	if c.Dialect == "" {
		c.Dialect = dialect.DefaultName
	}
	if c.Indent <= 0 {
		c.Indent = consts.DefaultIndent
	}
	if len(c.Include) == 0 {
		c.Include = []string{consts.DefaultInclude}
	}
}

func lowerAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strings.ToLower(w)
	}
	return out
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}
