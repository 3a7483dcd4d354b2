package runner

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/dbtfmt/pkg/format"
	"golang.org/x/sync/errgroup"
)

type (
	// RunOptions configures a batch run.
	RunOptions struct {
		// Jobs bounds the number of files formatted at once. Zero or less means
		// one per CPU.
		Jobs int

		// Formatter is shared by every worker.
		Formatter *format.Formatter
	}

	// Result is the outcome of formatting a single file.
	Result struct {
		Path      string
		Source    string
		Formatted string
		Changed   bool

		// Err is set when the file could not be read or formatted. A failed
		// file does not stop the rest of the batch.
		Err error
	}
)

// Collect expands paths into the sorted list of files to format.
//
// Paths naming a file are taken as-is. Directories are walked recursively and
// a file is selected when its base name matches one of include and none of
// exclude. A directory whose base name matches exclude is skipped entirely.
//
//	files, err := runner.Collect([]string{"models"}, []string{"*.sql"}, []string{"target"})
func Collect(paths, include, exclude []string) ([]string, error) {
	if err := validatePatterns(include, exclude); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	add := func(path string) {
		seen[filepath.Clean(path)] = struct{}{}
	}

	for _, root := range paths {
		info, err := os.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to access path: %s", root)
		}

		if !info.IsDir() {
			add(root)
			continue
		}

		err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()
			if d.IsDir() {
				if path != root && matchAny(exclude, name) {
					slog.Debug("Skipping excluded directory", "path", path)
					return filepath.SkipDir
				}
				return nil
			}

			if matchAny(include, name) && !matchAny(exclude, name) {
				add(path)
			}
			return nil
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to walk directory: %s", root)
		}
	}

	files := make([]string, 0, len(seen))
	for path := range seen {
		files = append(files, path)
	}
	slices.Sort(files)
	return files, nil
}

// Run formats files concurrently. Results are returned in the order of files.
//
// Per-file failures are reported through Result.Err. The returned error is
// only set when ctx is cancelled before the batch completes.
func Run(ctx context.Context, files []string, opts RunOptions) ([]Result, error) {
	if opts.Formatter == nil {
		return nil, errors.New("a formatter is required")
	}

	results := make([]Result, len(files))
	if len(files) == 0 {
		return results, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			// Each index is owned by exactly one worker.
			results[i] = formatFile(opts.Formatter, path)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, errors.Wrap(err, "formatting cancelled")
	}
	return results, nil
}

// FormatSource formats src as if it were read from path.
func FormatSource(f *format.Formatter, path, src string) Result {
	res := Result{Path: path, Source: src}

	out, err := f.String(src)
	if err != nil {
		res.Err = errors.Wrapf(err, "failed to format file: %s", path)
		return res
	}

	res.Formatted = out
	res.Changed = out != src
	return res
}

func formatFile(f *format.Formatter, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{Path: path, Err: errors.Wrapf(err, "failed to read file: %s", path)}
	}

	res := FormatSource(f, path, string(data))
	slog.Debug("Formatted file", "path", path, "changed", res.Changed, "err", res.Err)
	return res
}

func matchAny(patterns []string, name string) bool {
	for _, p := range patterns {
		// Patterns were validated by Collect.
		if ok, _ := filepath.Match(p, name); ok {
			return true
		}
	}
	return false
}

func validatePatterns(groups ...[]string) error {
	for _, patterns := range groups {
		for _, p := range patterns {
			if _, err := filepath.Match(p, ""); err != nil {
				return errors.Wrapf(err, "invalid pattern: %s", p)
			}
		}
	}
	return nil
}
