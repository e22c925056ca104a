// Package output handles output path resolution and file writing for
// reportpipe. When no explicit path is given, the filename is derived
// from the endpoint URL (e.g., api_example_com_posts.docx).
package output

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// SaveError reports a failure to write the rendered document.
type SaveError struct {
	Path  string
	Cause error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("failed to save %s: %v", e.Path, e.Cause)
}

func (e *SaveError) Unwrap() error { return e.Cause }

// Writer writes rendered report bytes to disk.
type Writer struct {
	OutputDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{OutputDir: outputDir}, nil
}

// Write stores data at path when path is non-empty; otherwise at a
// filename derived from sourceURL plus ext inside OutputDir. The final
// path is returned so the caller can report it.
func (w *Writer) Write(path, sourceURL string, data []byte, ext string) (string, error) {
	if path == "" {
		path = filepath.Join(w.OutputDir, filenameFromURL(sourceURL)+ext)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", &SaveError{Path: path, Cause: err}
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", &SaveError{Path: path, Cause: err}
	}
	return path, nil
}

// filenameFromURL converts an endpoint URL into a flat filename.
// Example: https://api.example.com/v1/posts → api_example_com_v1_posts
func filenameFromURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return "report"
	}

	parts := []string{sanitize(parsed.Host)}
	for _, seg := range strings.Split(strings.Trim(parsed.Path, "/"), "/") {
		if seg != "" {
			parts = append(parts, sanitize(seg))
		}
	}
	return strings.Join(parts, "_")
}

// sanitize replaces non-alphanumeric characters with underscores.
func sanitize(s string) string {
	var b strings.Builder
	for _, ch := range s {
		if (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') {
			b.WriteRune(ch)
		} else {
			b.WriteRune('_')
		}
	}
	return b.String()
}
