package runner_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	. "github.com/pseudomuto/dbtfmt/pkg/runner"
	"github.com/stretchr/testify/require"
)

func TestStdoutWriter(t *testing.T) {
	f := newFormatter(t)

	var buf bytes.Buffer
	w := &StdoutWriter{Out: &buf}
	require.NoError(t, w.Write(FormatSource(f, "a.sql", unformatted)))
	require.Equal(t, formatted, buf.String())
}

func TestFileWriter(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.sql": unformatted,
		"b.sql": formatted,
	})
	a := filepath.Join(dir, "a.sql")
	b := filepath.Join(dir, "b.sql")
	require.NoError(t, os.Chmod(a, 0o600))

	f := newFormatter(t)
	var buf bytes.Buffer
	w := &FileWriter{Out: &buf}

	require.NoError(t, w.Write(FormatSource(f, a, unformatted)))
	require.NoError(t, w.Write(FormatSource(f, b, formatted)))

	// Only the changed file is reported.
	require.Equal(t, a+"\n", buf.String())

	data, err := os.ReadFile(a)
	require.NoError(t, err)
	require.Equal(t, formatted, string(data))

	info, err := os.Stat(a)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestDiffWriter(t *testing.T) {
	f := newFormatter(t)

	var buf bytes.Buffer
	w := &DiffWriter{Out: &buf, NoColor: true}

	require.NoError(t, w.Write(FormatSource(f, "a.sql", unformatted)))
	require.NoError(t, w.Write(FormatSource(f, "b.sql", formatted)))
	require.Equal(t, 1, w.Changed())

	out := buf.String()
	require.Contains(t, out, "--- a.sql\n")
	require.Contains(t, out, "+++ a.sql (formatted)\n")
	require.Contains(t, out, "-select id from users\n")
	require.Contains(t, out, "+select\n")
	require.Contains(t, out, "+  users\n")
	require.NotContains(t, out, "b.sql")
}

func TestWriteAll(t *testing.T) {
	f := newFormatter(t)
	results := []Result{
		FormatSource(f, "a.sql", unformatted),
		{Path: "b.sql", Err: errors.New("failed to read file: b.sql")},
	}

	var buf bytes.Buffer
	errs := WriteAll(&StdoutWriter{Out: &buf}, results)
	require.Len(t, errs, 1)
	require.EqualError(t, errs[0], "failed to read file: b.sql")
	require.Equal(t, formatted, buf.String())
}
