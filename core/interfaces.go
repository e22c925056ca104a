// Package core defines the pipeline interfaces for reportpipe.
// Each stage of the pipeline is a clean, testable interface.
package core

import (
	"context"
	"time"
)

// FetchResult holds the decoded JSON payload and response metadata from
// a single fetch. It is the only thing carried between the fetch stage
// and the rest of the pipeline; no stage keeps state of its own.
type FetchResult struct {
	URL        string
	StatusCode int
	Data       any
	FetchedAt  time.Time
}

// ReportMeta summarizes a normalized payload.
// Count reflects the number of raw candidates (array length, 1 for a
// single object, 0 otherwise), not the number of surviving records.
type ReportMeta struct {
	Source string `json:"source"`
	Count  int    `json:"count"`
}

// ItemRecord is one flattened, display-ready item derived from a raw
// JSON mapping. Immutable once constructed.
type ItemRecord struct {
	Index     int    `json:"index"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	Summary   string `json:"summary"`
}

// Report is the normalized form consumed by every renderer.
// FetchedAt is zero when no fetch timestamp is available.
type Report struct {
	Meta      ReportMeta   `json:"meta"`
	Items     []ItemRecord `json:"items"`
	FetchedAt time.Time    `json:"-"`
}

// Fetcher retrieves and decodes a JSON payload from a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string, params map[string]string) (*FetchResult, error)
}

// Normalizer converts an arbitrary decoded JSON value into a Report.
// It never fails; malformed input degrades to an empty report.
type Normalizer interface {
	Normalize(data any, source string) Report
}

// Renderer converts a Report into a final output format.
type Renderer interface {
	Render(report Report) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".docx", ".pdf").
	Extension() string
}
