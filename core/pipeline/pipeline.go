// Package pipeline wires the stages into the single run operation:
// fetch → normalize → render → write. One run produces at most one
// output file; every failure aborts immediately with no retries.
package pipeline

import (
	"context"
	"fmt"

	"github.com/gaurav-prasanna/reportpipe/core"
	"github.com/gaurav-prasanna/reportpipe/core/output"
)

// Options configures one run.
type Options struct {
	// Params are optional query parameters merged into the endpoint URL.
	Params map[string]string
	// OutPath is an explicit output path. When empty, the writer derives
	// a filename from the endpoint.
	OutPath string
}

// Run executes one complete report run against endpoint and returns the
// path of the written document. The fetch timestamp is threaded from the
// fetch result into the report explicitly; no stage holds state between
// calls.
func Run(
	ctx context.Context,
	endpoint string,
	fetcher core.Fetcher,
	normalizer core.Normalizer,
	renderer core.Renderer,
	writer *output.Writer,
	opts Options,
) (string, error) {
	result, err := fetcher.Fetch(ctx, endpoint, opts.Params)
	if err != nil {
		return "", err
	}

	report := normalizer.Normalize(result.Data, endpoint)
	report.FetchedAt = result.FetchedAt

	data, err := renderer.Render(report)
	if err != nil {
		return "", fmt.Errorf("render: %w", err)
	}

	return writer.Write(opts.OutPath, endpoint, data, renderer.Extension())
}
