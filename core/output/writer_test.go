package output

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteDerivedFilename(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("", "https://api.example.com/v1/posts", []byte("data"), ".md")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "api_example_com_v1_posts.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "data", string(content))
}

func TestWriteExplicitPath(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	target := filepath.Join(dir, "nested", "report.docx")
	path, err := w.Write(target, "https://api.example.com/posts", []byte("doc"), ".docx")
	require.NoError(t, err)
	require.Equal(t, target, path)

	_, err = os.Stat(target)
	require.NoError(t, err)
}

func TestWriteFailureIsSaveError(t *testing.T) {
	dir := t.TempDir()
	w, err := New(dir)
	require.NoError(t, err)

	// Parent of the target path is a regular file, so the write must fail.
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	_, err = w.Write(filepath.Join(blocker, "report.md"), "https://api.example.com", []byte("data"), ".md")
	require.Error(t, err)

	var se *SaveError
	require.True(t, errors.As(err, &se), "expected SaveError, got %T", err)
}

func TestNewDefaultsToWorkingDirectory(t *testing.T) {
	w, err := New("")
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, wd, w.OutputDir)
}

func TestFilenameFromURL(t *testing.T) {
	cases := map[string]string{
		"https://api.example.com/v1/posts": "api_example_com_v1_posts",
		"https://example.com/":             "example_com",
		"https://example.com":              "example_com",
		"not a url":                        "report",
	}
	for input, want := range cases {
		require.Equal(t, want, filenameFromURL(input), "input %q", input)
	}
}
