package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/pmezard/go-difflib/difflib"
)

// Writer delivers a formatted Result.
type Writer interface {
	Write(Result) error
}

type (
	// StdoutWriter prints the formatted text of every result.
	StdoutWriter struct {
		Out io.Writer
	}

	// FileWriter rewrites changed files in place and prints their paths.
	// Unchanged files are left untouched.
	FileWriter struct {
		Out io.Writer
	}

	// DiffWriter prints a unified diff for every changed file without touching
	// it. Changed reports how many files need formatting.
	DiffWriter struct {
		Out     io.Writer
		NoColor bool

		changed int
	}
)

// WriteAll passes every successful result to w. Results carrying an error are
// skipped and their errors returned together.
func WriteAll(w Writer, results []Result) []error {
	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}

		if err := w.Write(res); err != nil {
			errs = append(errs, err)
		}
	}
	return errs
}

func (w *StdoutWriter) Write(res Result) error {
	if _, err := io.WriteString(w.Out, res.Formatted); err != nil {
		return errors.Wrap(err, "failed to write formatted content to output")
	}
	return nil
}

func (w *FileWriter) Write(res Result) error {
	if !res.Changed {
		return nil
	}

	info, err := os.Stat(res.Path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", res.Path)
	}

	if err := os.WriteFile(res.Path, []byte(res.Formatted), info.Mode().Perm()); err != nil {
		return errors.Wrapf(err, "failed to write formatted content to file: %s", res.Path)
	}

	_, err = fmt.Fprintln(w.Out, res.Path)
	return err
}

func (w *DiffWriter) Write(res Result) error {
	if !res.Changed {
		return nil
	}
	w.changed++

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(res.Source),
		B:        difflib.SplitLines(res.Formatted),
		FromFile: res.Path,
		ToFile:   res.Path + " (formatted)",
		Context:  3,
	})
	if err != nil {
		return errors.Wrapf(err, "failed to diff file: %s", res.Path)
	}

	added := w.color(color.FgGreen)
	removed := w.color(color.FgRed)
	header := w.color(color.FgCyan)

	for _, line := range strings.SplitAfter(diff, "\n") {
		var c *color.Color
		switch {
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"), strings.HasPrefix(line, "@@"):
			c = header
		case strings.HasPrefix(line, "+"):
			c = added
		case strings.HasPrefix(line, "-"):
			c = removed
		}

		if c == nil {
			_, err = io.WriteString(w.Out, line)
		} else {
			_, err = c.Fprint(w.Out, line)
		}
		if err != nil {
			return errors.Wrap(err, "failed to write diff")
		}
	}
	return nil
}

// Changed returns the number of files that differ from their formatted form.
func (w *DiffWriter) Changed() int { return w.changed }

func (w *DiffWriter) color(attr color.Attribute) *color.Color {
	c := color.New(attr)
	if w.NoColor {
		c.DisableColor()
	}
	return c
}
