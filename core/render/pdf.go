// Package render — PDF renderer.
// Renders the report with gofpdf: title, metadata block, summary table,
// and one detail section per item.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/reportpipe/core"
)

// pdfMargin is 0.75 inch expressed in millimeters.
const pdfMargin = 19.05

// PDFRenderer renders a Report as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the report into PDF bytes.
func (r *PDFRenderer) Render(report core.Report) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.AddPage()

	// Centered title.
	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, reportTitle, "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// Metadata block.
	pdf.SetFont("Helvetica", "B", 10)
	pdf.MultiCell(0, 5, "Source: "+report.Meta.Source, "", "L", false)
	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, fmt.Sprintf("Items: %d", report.Meta.Count), "", "L", false)
	pdf.MultiCell(0, 5, "Generated: "+time.Now().UTC().Format(timestampLayout), "", "L", false)
	if !report.FetchedAt.IsZero() {
		pdf.MultiCell(0, 5, "Fetched: "+report.FetchedAt.UTC().Format(timestampLayout), "", "L", false)
	}
	pdf.Ln(4)

	// Summary table with a shaded header row.
	if len(report.Items) > 0 {
		widths := []float64{12, 28, 58, 28, 46}

		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(235, 235, 235)
		for i, h := range tableHeader {
			pdf.CellFormat(widths[i], 7, h, "1", 0, "L", true, 0, "")
		}
		pdf.Ln(-1)

		pdf.SetFont("Helvetica", "", 9)
		for _, item := range report.Items {
			cells := []string{strconv.Itoa(item.Index), item.ID, item.Title, item.Status, item.CreatedAt}
			for i, c := range cells {
				pdf.CellFormat(widths[i], 6, c, "1", 0, "L", false, 0, "")
			}
			pdf.Ln(-1)
		}
		pdf.Ln(6)
	}

	// Detail sections.
	for _, item := range report.Items {
		pdf.SetFont("Helvetica", "B", 15)
		pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", item.Index, item.Title), "", "L", false)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 5, infoLine(item), "", "L", false)
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 5, summaryText(item), "", "L", false)
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}
