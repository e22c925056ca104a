// Package cmd — generate command.
// This is the main command that orchestrates the pipeline:
// fetch → normalize → render → write.
//
// It handles flag validation, renderer selection, and output reporting.
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gaurav-prasanna/reportpipe/core"
	"github.com/gaurav-prasanna/reportpipe/core/fetch"
	"github.com/gaurav-prasanna/reportpipe/core/normalize"
	"github.com/gaurav-prasanna/reportpipe/core/output"
	"github.com/gaurav-prasanna/reportpipe/core/pipeline"
	"github.com/gaurav-prasanna/reportpipe/core/render"
	"github.com/spf13/cobra"
)

// defaultEndpoint is used when no URL argument is given.
const defaultEndpoint = "https://jsonplaceholder.typicode.com/posts"

// Flag variables.
var (
	flagDocx      bool
	flagPDF       bool
	flagMarkdown  bool
	flagJSON      bool
	flagOut       string
	flagOutputDir string
	flagTimeout   time.Duration
	flagProfile   string
	flagParams    []string
	flagHeaders   []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [url]",
	Short: "Fetch a JSON endpoint and generate a report document",
	Long: `Generate fetches the given JSON API endpoint, normalizes the response into
item records, and writes a report in the selected output format.
DOCX is the default format when none is given.

Examples:
  reportpipe generate https://jsonplaceholder.typicode.com/posts
  reportpipe generate https://api.example.com/articles --pdf --out report.pdf
  reportpipe generate https://api.example.com/articles --param userId=1 --markdown
  reportpipe generate https://api.example.com/articles --profile flexible --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	// Output format flags (mutually exclusive, docx default).
	generateCmd.Flags().BoolVar(&flagDocx, "docx", false, "Output DOCX (default)")
	generateCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Output PDF")
	generateCmd.Flags().BoolVar(&flagMarkdown, "markdown", false, "Output Markdown")
	generateCmd.Flags().BoolVar(&flagJSON, "json", false, "Output the normalized report as JSON")

	// Request flags.
	generateCmd.Flags().StringArrayVar(&flagParams, "param", nil, "Query parameter as key=value (repeatable)")
	generateCmd.Flags().StringArrayVar(&flagHeaders, "header", nil, "Request header as key=value (repeatable)")
	generateCmd.Flags().DurationVar(&flagTimeout, "timeout", 15*time.Second, "HTTP request timeout")

	// Normalization profile.
	generateCmd.Flags().StringVar(&flagProfile, "profile", "fixed", "Normalization profile: fixed or flexible")

	// Output destination.
	generateCmd.Flags().StringVar(&flagOut, "out", "", "Output file path (default: derived from the URL)")
	generateCmd.Flags().StringVar(&flagOutputDir, "output_dir", "", "Output directory (default: current directory)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	endpoint := defaultEndpoint
	if len(args) == 1 {
		endpoint = args[0]
	}

	if err := validateFlags(); err != nil {
		return err
	}

	// Validate URL before any network call.
	parsed, err := url.Parse(endpoint)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://api.example.com/posts)", endpoint)
	}

	renderer := selectRenderer()

	params, err := parsePairs(flagParams, "param")
	if err != nil {
		return err
	}
	headers, err := parsePairs(flagHeaders, "header")
	if err != nil {
		return err
	}

	// Initialize pipeline components.
	fetcher := fetch.NewWithTimeout(flagTimeout)
	for k, v := range headers {
		fetcher.SetHeader(k, v)
	}
	normalizer := normalize.New(normalize.Profile(flagProfile))

	writer, err := output.New(flagOutputDir)
	if err != nil {
		return fmt.Errorf("initializing output writer: %w", err)
	}

	path, err := pipeline.Run(context.Background(), endpoint, fetcher, normalizer, renderer, writer, pipeline.Options{
		Params:  params,
		OutPath: flagOut,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "✓ Report generated: %s\n", path)
	return nil
}

// validateFlags checks that at most one output format is chosen and that
// the normalization profile is recognized.
func validateFlags() error {
	formatCount := 0
	for _, set := range []bool{flagDocx, flagPDF, flagMarkdown, flagJSON} {
		if set {
			formatCount++
		}
	}
	if formatCount > 1 {
		return fmt.Errorf("only one output format allowed per run (got %d)", formatCount)
	}

	switch normalize.Profile(flagProfile) {
	case normalize.ProfileFixed, normalize.ProfileFlexible:
	default:
		return fmt.Errorf("unknown profile %q (use fixed or flexible)", flagProfile)
	}

	return nil
}

// selectRenderer creates the appropriate Renderer based on flags.
// DOCX is the default when no format flag is set.
func selectRenderer() core.Renderer {
	switch {
	case flagPDF:
		return render.NewPDFRenderer()
	case flagMarkdown:
		return render.NewMarkdownRenderer()
	case flagJSON:
		return render.NewJSONRenderer()
	default:
		return render.NewDocxRenderer()
	}
}

// parsePairs converts repeated key=value flags into a map.
func parsePairs(pairs []string, flagName string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --%s %q (expected key=value)", flagName, pair)
		}
		out[key] = value
	}
	return out, nil
}
