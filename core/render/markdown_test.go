package render

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/reportpipe/core"
)

func sampleReport() core.Report {
	return core.Report{
		Meta: core.ReportMeta{Source: "https://api.example.com/posts", Count: 1},
		Items: []core.ItemRecord{
			{Index: 1, ID: "1", Title: "Hello", Status: "published", CreatedAt: "", Summary: "World"},
		},
		FetchedAt: time.Date(2026, 8, 25, 12, 0, 0, 0, time.UTC),
	}
}

func TestMarkdownRenderFullReport(t *testing.T) {
	r := NewMarkdownRenderer()
	data, err := r.Render(sampleReport())
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "# API Report Summary")
	require.Contains(t, out, "**Source: https://api.example.com/posts**")
	require.Contains(t, out, "Items: 1")
	require.Contains(t, out, "Generated: ")
	require.Contains(t, out, "Fetched: 2026-08-25 12:00:00 UTC")

	// Table header and the one data row, with an empty Created column.
	require.Contains(t, out, "| # | ID | Title | Status | Created |")
	require.Contains(t, out, "| 1 | 1 | Hello | published |  |")

	// Detail section.
	require.Contains(t, out, "## 1. Hello")
	require.Contains(t, out, "**ID: 1 | Status: published | Created: **")
	require.Contains(t, out, "World")
}

func TestMarkdownRenderEmptyReport(t *testing.T) {
	r := NewMarkdownRenderer()
	report := core.Report{Meta: core.ReportMeta{Source: "https://api.example.com/posts", Count: 0}}

	data, err := r.Render(report)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "# API Report Summary")
	require.Contains(t, out, "Items: 0")

	// No table, no detail sections, no fetch line for a zero timestamp.
	require.NotContains(t, out, "| # |")
	require.NotContains(t, out, "## ")
	require.NotContains(t, out, "Fetched:")
}

func TestMarkdownRenderSummaryFallback(t *testing.T) {
	r := NewMarkdownRenderer()
	report := core.Report{
		Meta: core.ReportMeta{Source: "src", Count: 1},
		Items: []core.ItemRecord{
			{Index: 1, ID: "item-1", Title: "(untitled)", Status: "published", Summary: "   "},
		},
	}

	data, err := r.Render(report)
	require.NoError(t, err)
	require.Contains(t, string(data), "(no summary available)")
}

func TestMarkdownExtension(t *testing.T) {
	require.Equal(t, ".md", NewMarkdownRenderer().Extension())
}

func TestMarkdownRenderKeepsIndexGaps(t *testing.T) {
	r := NewMarkdownRenderer()
	report := core.Report{
		Meta: core.ReportMeta{Source: "src", Count: 3},
		Items: []core.ItemRecord{
			{Index: 1, ID: "a", Title: "First", Status: "published"},
			{Index: 3, ID: "b", Title: "Third", Status: "published"},
		},
	}

	data, err := r.Render(report)
	require.NoError(t, err)

	out := string(data)
	require.Contains(t, out, "## 1. First")
	require.Contains(t, out, "## 3. Third")
	require.False(t, strings.Contains(out, "## 2."))
}
