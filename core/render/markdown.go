// Package render — Markdown renderer.
// Emits the report as a Markdown document: title, metadata block,
// a pipe table when items exist, and per-item sections.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/gaurav-prasanna/reportpipe/core"
)

// MarkdownRenderer renders a Report as Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render converts the report into Markdown bytes.
func (r *MarkdownRenderer) Render(report core.Report) ([]byte, error) {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", reportTitle)

	fmt.Fprintf(&b, "**Source: %s**  \n", report.Meta.Source)
	fmt.Fprintf(&b, "Items: %d  \n", report.Meta.Count)
	fmt.Fprintf(&b, "Generated: %s  \n", time.Now().UTC().Format(timestampLayout))
	if !report.FetchedAt.IsZero() {
		fmt.Fprintf(&b, "Fetched: %s  \n", report.FetchedAt.UTC().Format(timestampLayout))
	}
	b.WriteString("\n")

	if len(report.Items) > 0 {
		fmt.Fprintf(&b, "| %s |\n", strings.Join(tableHeader, " | "))
		b.WriteString("|---|----|-------|--------|---------|\n")
		for _, item := range report.Items {
			fmt.Fprintf(&b, "| %d | %s | %s | %s | %s |\n",
				item.Index, item.ID, item.Title, item.Status, item.CreatedAt)
		}
		b.WriteString("\n")
	}

	for _, item := range report.Items {
		fmt.Fprintf(&b, "## %d. %s\n\n", item.Index, item.Title)
		fmt.Fprintf(&b, "**%s**\n\n", infoLine(item))
		fmt.Fprintf(&b, "%s\n\n", summaryText(item))
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}
