// Package runner formats batches of files.
//
// Collect expands files and directories into the list of files to format,
// Run formats them concurrently with a shared format.Formatter and a Writer
// delivers each Result:
//
//	files, err := runner.Collect(paths, []string{"*.sql"}, nil)
//	if err != nil {
//		return err
//	}
//
//	results, err := runner.Run(ctx, files, runner.RunOptions{Jobs: 4, Formatter: f})
//	if err != nil {
//		return err
//	}
//
//	errs := runner.WriteAll(&runner.FileWriter{Out: os.Stdout}, results)
//
// StdoutWriter prints formatted text, FileWriter rewrites changed files in
// place and DiffWriter prints unified diffs without touching anything.
package runner
