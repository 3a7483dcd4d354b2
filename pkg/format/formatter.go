package format

import (
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/dialect"
	"github.com/pseudomuto/dbtfmt/pkg/lexer"
)

// Formatter lays out SQL and dbt templates according to its Options.
//
// A Formatter holds no per-call state and is safe for concurrent use.
type Formatter struct {
	opts    Options
	dialect *dialect.Config
	lexer   *lexer.Lexer
}

// New creates a Formatter. It fails when opts.Dialect is not registered.
func New(opts Options) (*Formatter, error) {
	cfg, err := dialect.Lookup(opts.Dialect)
	if err != nil {
		return nil, err
	}

	lex, err := lexer.New(cfg)
	if err != nil {
		return nil, err
	}

	return &Formatter{opts: opts, dialect: cfg, lexer: lex}, nil
}

// Options returns the options the formatter was created with.
func (f *Formatter) Options() Options { return f.opts }

// Format writes the formatted form of sql to w.
func (f *Formatter) Format(w io.Writer, sql string) error {
	out, err := f.String(sql)
	if err != nil {
		return err
	}

	if _, err := io.WriteString(w, out); err != nil {
		return errors.Wrap(err, "failed to write formatted SQL")
	}
	return nil
}

// String returns the formatted form of sql.
func (f *Formatter) String(sql string) (string, error) {
	tokens, err := f.lexer.Tokenize(sql)
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(newLayout(f.opts, f.dialect.Template, tokens).run())
	if f.opts.TrailingNewline {
		out += "\n"
	}
	return out, nil
}

// SQL formats text with opts.
//
//	out, err := format.SQL("select id from users", format.Defaults)
//	// select
//	//   id
//	// from
//	//   users
func SQL(text string, opts Options) (string, error) {
	f, err := New(opts)
	if err != nil {
		return "", err
	}
	return f.String(text)
}
