// Package render — DOCX renderer.
// Builds the word-processing report with go-docx: centered title,
// metadata block, summary table, and one detail section per item.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	docx "github.com/fumiama/go-docx"

	"github.com/gaurav-prasanna/reportpipe/core"
)

// tableWidthTwips is the summary table width in twentieths of a point,
// sized to the printable width of a portrait A4 page.
const tableWidthTwips = 8800

// DocxRenderer renders a Report as a .docx document.
type DocxRenderer struct{}

// NewDocxRenderer creates a DocxRenderer.
func NewDocxRenderer() *DocxRenderer {
	return &DocxRenderer{}
}

// Render builds the document and returns its serialized bytes.
func (r *DocxRenderer) Render(report core.Report) ([]byte, error) {
	doc := docx.New().WithDefaultTheme().WithA4Page()

	title := doc.AddParagraph().Justification("center")
	title.AddText(reportTitle).Size("36").Bold()

	// Metadata block, one line per paragraph.
	doc.AddParagraph().AddText("Source: " + report.Meta.Source).Bold()
	doc.AddParagraph().AddText(fmt.Sprintf("Items: %d", report.Meta.Count))
	doc.AddParagraph().AddText("Generated: " + time.Now().UTC().Format(timestampLayout))
	if !report.FetchedAt.IsZero() {
		doc.AddParagraph().AddText("Fetched: " + report.FetchedAt.UTC().Format(timestampLayout))
	}

	if len(report.Items) > 0 {
		tbl := doc.AddTable(len(report.Items)+1, len(tableHeader), tableWidthTwips, nil)
		for col, text := range tableHeader {
			tbl.TableRows[0].TableCells[col].AddParagraph().AddText(text).Bold()
		}
		for row, item := range report.Items {
			cells := tbl.TableRows[row+1].TableCells
			cells[0].AddParagraph().AddText(strconv.Itoa(item.Index))
			cells[1].AddParagraph().AddText(item.ID)
			cells[2].AddParagraph().AddText(item.Title)
			cells[3].AddParagraph().AddText(item.Status)
			cells[4].AddParagraph().AddText(item.CreatedAt)
		}
		// Spacer between the table and the detail sections.
		doc.AddParagraph()
	}

	for _, item := range report.Items {
		heading := doc.AddParagraph().Style("Heading2")
		heading.AddText(fmt.Sprintf("%d. %s", item.Index, item.Title))
		doc.AddParagraph().AddText(infoLine(item)).Bold()
		// 11pt body text; go-docx sizes are half-points.
		doc.AddParagraph().AddText(summaryText(item)).Size("22")
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("serializing docx: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for DOCX output.
func (r *DocxRenderer) Extension() string {
	return ".docx"
}
