package export

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

const (
	pdfMargin     = 12.0
	pdfLineHeight = 6.0
	pdfRowHeight  = 8.0
)

// RenderPDF writes doc as a single A4 portrait document. Long tables continue
// on new pages.
func RenderPDF(w io.Writer, doc Document) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.SetAutoPageBreak(true, pdfMargin)
	pdf.SetTitle(fmt.Sprintf("Invoice #%s", doc.SNo), true)
	pdf.AddPage()

	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pageW, _ := pdf.GetPageSize()
	width := pageW - 2*pdfMargin

	// header band
	pdf.SetFillColor(220, 38, 38)
	pdf.SetTextColor(255, 255, 255)
	left, right := width*0.6, width*0.4
	refs := append([]string{}, doc.References...)
	for len(refs) < 3 {
		refs = append(refs, "")
	}

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(left, 10, tr(doc.WorkshopName), "", 0, "L", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.CellFormat(right, 10, tr(refs[0]), "", 1, "R", true, 0, "")
	pdf.CellFormat(left, pdfLineHeight, tr(doc.Tagline), "", 0, "L", true, 0, "")
	pdf.CellFormat(right, pdfLineHeight, tr(refs[1]), "", 1, "R", true, 0, "")
	pdf.CellFormat(left, pdfLineHeight, "", "", 0, "L", true, 0, "")
	pdf.CellFormat(right, pdfLineHeight, tr(refs[2]), "", 1, "R", true, 0, "")
	pdf.MultiCell(width, pdfLineHeight, tr(doc.ServicesLine), "", "L", true)
	pdf.Ln(4)

	// customer block
	pdf.SetTextColor(75, 85, 99)
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(width/2, pdfLineHeight, tr("S.No: "+doc.SNo), "", 0, "L", false, 0, "")
	pdf.CellFormat(width/2, pdfLineHeight, tr("Date: "+doc.Date), "", 1, "R", false, 0, "")
	pdf.CellFormat(width, pdfLineHeight, tr("Name: "+doc.Customer), "B", 1, "L", false, 0, "")
	pdf.Ln(3)

	// service table
	cols := []float64{width * 0.5, width * 0.25, width * 0.25}
	tableHeader := func() {
		pdf.SetFillColor(220, 38, 38)
		pdf.SetTextColor(255, 255, 255)
		pdf.SetFont("Helvetica", "B", 10)
		pdf.CellFormat(cols[0], pdfRowHeight, "DESCRIPTION", "", 0, "L", true, 0, "")
		pdf.CellFormat(cols[1], pdfRowHeight, "RATE", "", 0, "C", true, 0, "")
		pdf.CellFormat(cols[2], pdfRowHeight, "AMOUNT", "", 1, "C", true, 0, "")
		pdf.SetTextColor(17, 24, 39)
		pdf.SetFont("Helvetica", "", 10)
	}
	tableHeader()

	_, pageH := pdf.GetPageSize()
	pdf.SetDrawColor(229, 231, 235)
	for _, row := range doc.Rows {
		if pdf.GetY()+pdfRowHeight > pageH-pdfMargin {
			pdf.AddPage()
			tableHeader()
		}
		pdf.CellFormat(cols[0], pdfRowHeight, tr(row.Description), "B", 0, "L", false, 0, "")
		pdf.CellFormat(cols[1], pdfRowHeight, tr(row.Rate), "B", 0, "C", false, 0, "")
		pdf.CellFormat(cols[2], pdfRowHeight, tr(row.Amount), "B", 1, "C", false, 0, "")
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(width, 9, tr(doc.Total), "", 1, "R", false, 0, "")
	pdf.Ln(3)

	// footer band
	pdf.SetFillColor(220, 38, 38)
	pdf.SetTextColor(255, 255, 255)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(width, 8, tr(doc.WorkshopName), "", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	for _, line := range doc.Footer {
		pdf.MultiCell(width, pdfLineHeight, tr(line), "", "L", true)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
