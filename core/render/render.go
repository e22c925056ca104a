// Package render provides output renderers for the reportpipe pipeline.
// Every renderer produces the same logical document — title, metadata
// block, summary table, per-item sections — in its own format.
package render

import (
	"strings"

	"github.com/gaurav-prasanna/reportpipe/core"
)

const (
	reportTitle     = "API Report Summary"
	noSummaryText   = "(no summary available)"
	timestampLayout = "2006-01-02 15:04:05 UTC"
)

// tableHeader is the summary table header row, shared by all renderers.
var tableHeader = []string{"#", "ID", "Title", "Status", "Created"}

// summaryText returns the trimmed item summary, or the fallback literal
// when the trimmed summary is empty.
func summaryText(item core.ItemRecord) string {
	if s := strings.TrimSpace(item.Summary); s != "" {
		return s
	}
	return noSummaryText
}

// infoLine formats the bold ID/Status/Created line under an item heading.
func infoLine(item core.ItemRecord) string {
	return "ID: " + item.ID + " | Status: " + item.Status + " | Created: " + item.CreatedAt
}
