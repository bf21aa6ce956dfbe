package document

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
)

// Table is the model the PDF renderer lays out: a centered title over a
// ruled grid with a shaded header band redrawn on every page.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

const (
	pdfMargin    = 40.0
	cellPadding  = 5.0
	headerHeight = 25.0
	rowHeight    = 20.0
)

// WritePDF renders the table to w. Landscape when the column count
// exceeds 7, portrait otherwise. A new page starts whenever the next
// row would cross the bottom margin.
func (t Table) WritePDF(w io.Writer) error {
	if len(t.Columns) == 0 {
		return fmt.Errorf("table has no columns")
	}

	orientation := "P"
	if len(t.Columns) > 7 {
		orientation = "L"
	}

	pdf := fpdf.New(orientation, "pt", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(false, pdfMargin)
	pdf.AddPage()

	pageWidth, pageHeight := pdf.GetPageSize()
	tableWidth := pageWidth - 2*pdfMargin
	colWidth := tableWidth / float64(len(t.Columns))

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(tableWidth, 18, t.Title, "", 1, "C", false, 0, "")
	pdf.Ln(14)

	y := pdf.GetY()
	y = t.drawHeader(pdf, y, colWidth, tableWidth)
	pdf.SetFont("Helvetica", "", 9)

	for _, row := range t.Rows {
		if y+rowHeight > pageHeight-pdfMargin {
			pdf.AddPage()
			y = t.drawHeader(pdf, pdfMargin, colWidth, tableWidth)
			pdf.SetFont("Helvetica", "", 9)
		}

		for i, cell := range row {
			if i >= len(t.Columns) {
				break
			}
			text := cell
			if text == "" {
				text = "-"
			}
			pdf.SetXY(pdfMargin+float64(i)*colWidth+cellPadding, y+rowHeight/4)
			pdf.CellFormat(colWidth-2*cellPadding, rowHeight/2,
				truncate(pdf, text, colWidth-2*cellPadding), "", 0, "L", false, 0, "")
		}

		pdf.SetDrawColor(204, 204, 204)
		drawRule(pdf, y+rowHeight, tableWidth)
		drawVerticalRules(pdf, y, rowHeight, colWidth, len(t.Columns))
		y += rowHeight
	}

	return pdf.Output(w)
}

// drawHeader paints the shaded header band with its labels and rules,
// returning the y position just below it.
func (t Table) drawHeader(pdf *fpdf.Fpdf, y, colWidth, tableWidth float64) float64 {
	pdf.SetFillColor(243, 244, 246)
	pdf.Rect(pdfMargin, y, tableWidth, headerHeight, "F")
	pdf.SetTextColor(0, 0, 0)
	pdf.SetFont("Helvetica", "B", 10)

	for i, col := range t.Columns {
		pdf.SetXY(pdfMargin+float64(i)*colWidth+cellPadding, y+headerHeight/4)
		pdf.CellFormat(colWidth-2*cellPadding, headerHeight/2,
			truncate(pdf, col, colWidth-2*cellPadding), "", 0, "L", false, 0, "")
	}

	pdf.SetDrawColor(204, 204, 204)
	drawRule(pdf, y, tableWidth)
	drawRule(pdf, y+headerHeight, tableWidth)
	drawVerticalRules(pdf, y, headerHeight, colWidth, len(t.Columns))

	return y + headerHeight
}

func drawRule(pdf *fpdf.Fpdf, y, tableWidth float64) {
	pdf.Line(pdfMargin, y, pdfMargin+tableWidth, y)
}

func drawVerticalRules(pdf *fpdf.Fpdf, y, height, colWidth float64, cols int) {
	for i := 0; i <= cols; i++ {
		x := pdfMargin + float64(i)*colWidth
		pdf.Line(x, y, x, y+height)
	}
}

// truncate ellipsizes s so it fits in maxWidth at the current font.
func truncate(pdf *fpdf.Fpdf, s string, maxWidth float64) string {
	if pdf.GetStringWidth(s) <= maxWidth {
		return s
	}
	const ellipsis = "..."
	runes := []rune(s)
	for len(runes) > 0 && pdf.GetStringWidth(string(runes)+ellipsis) > maxWidth {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + ellipsis
}
