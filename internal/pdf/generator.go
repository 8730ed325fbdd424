package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/nurpe/vendor-onboarding/internal/confirmation"
)

type Generator struct {
	fontName string
	now      func() time.Time
}

func NewGenerator() *Generator {
	return &Generator{fontName: "Helvetica", now: time.Now}
}

// Generate renders a confirmation receipt. The fallback page yields a
// single-line document that points back to the form.
func (g *Generator) Generate(page confirmation.Page) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(g.fontName, "B", 14)
	pdf.CellFormat(0, 10, tr(page.Title), "", 1, "C", false, 0, "")

	pdf.SetFont(g.fontName, "", 11)
	if !page.Found {
		pdf.MultiCell(0, 6, tr(page.Message), "", "C", false)
		return output(pdf)
	}

	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Request No: %s", page.RequestNumber)), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("Issued %s", formatDate(g.now()))), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	addBlock(pdf, g.fontName, tr, "Vendor", page.Common)
	if len(page.Details) > 0 {
		pdf.Ln(2)
		addBlock(pdf, g.fontName, tr, page.DetailTitle, page.Details)
	}

	pdf.Ln(4)
	pdf.SetFont(g.fontName, "", 9)
	pdf.CellFormat(0, 5, tr("Catalog request "+page.RequestSysID), "", 1, "L", false, 0, "")

	return output(pdf)
}

func addBlock(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, title string, lines []confirmation.Line) {
	pdf.SetFont(fontName, "B", 12)
	pdf.CellFormat(0, 8, tr(title), "", 1, "L", false, 0, "")

	colWidths := []float64{60, 120}
	for _, line := range lines {
		drawTableRow(pdf, fontName, tr, []string{line.Label, safeValue(line.Value)}, colWidths)
	}
}

func drawTableRow(pdf *gofpdf.Fpdf, fontName string, tr func(string) string, cols []string, widths []float64) {
	for i, col := range cols {
		style := ""
		if i == 0 {
			style = "B"
		}
		pdf.SetFont(fontName, style, 10)
		pdf.CellFormat(widths[i], 8, tr(col), "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func safeValue(value string) string {
	if strings.TrimSpace(value) == "" {
		return "-"
	}
	return value
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02")
}
