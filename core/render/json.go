// Package render — JSON renderer.
// Serializes the normalized report as indented JSON, the machine-readable
// profile of the same content the document renderers produce.
package render

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gaurav-prasanna/reportpipe/core"
)

// JSONRenderer produces the normalized report as JSON.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// jsonReport is the serialized shape of a rendered report.
type jsonReport struct {
	Meta        core.ReportMeta   `json:"meta"`
	Items       []core.ItemRecord `json:"items"`
	GeneratedAt string            `json:"generated_at"`
	FetchedAt   string            `json:"fetched_at,omitempty"`
}

// Render converts the report into indented JSON bytes.
func (r *JSONRenderer) Render(report core.Report) ([]byte, error) {
	out := jsonReport{
		Meta:        report.Meta,
		Items:       report.Items,
		GeneratedAt: time.Now().UTC().Format(timestampLayout),
	}
	if !report.FetchedAt.IsZero() {
		out.FetchedAt = report.FetchedAt.UTC().Format(timestampLayout)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
