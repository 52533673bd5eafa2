package voucher

import (
	"bytes"
	"fmt"
	"time"

	"github.com/phpdave11/gofpdf"
)

// Line is one label/value row on the voucher.
type Line struct {
	Label string
	Value string
}

type Document struct {
	Title       string
	BookingCode string
	Status      string
	IssuedAt    time.Time
	Details     []Line
	Price       []Line
	Total       string
	Notes       []string
}

// Render draws a single-page A4 voucher and returns the PDF bytes.
func Render(doc Document) ([]byte, error) {
	if doc.BookingCode == "" {
		return nil, fmt.Errorf("voucher: booking code is required")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, doc.Title)
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Booking code : "+doc.BookingCode)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Status       : "+doc.Status)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Issued at    : "+doc.IssuedAt.Format("2006-01-02 15:04 MST"))
	pdf.Ln(10)

	section(pdf, "Details", doc.Details)
	section(pdf, "Price", doc.Price)

	if doc.Total != "" {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Total: "+doc.Total)
		pdf.Ln(12)
	}

	if len(doc.Notes) > 0 {
		pdf.SetFont("Helvetica", "I", 10)
		for _, note := range doc.Notes {
			pdf.MultiCell(0, 6, note, "", "", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("voucher: render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func section(pdf *gofpdf.Fpdf, title string, lines []Line) {
	if len(lines) == 0 {
		return
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, title+":")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 11)
	for _, l := range lines {
		pdf.CellFormat(60, 6, l.Label, "", 0, "L", false, 0, "")
		pdf.CellFormat(0, 6, l.Value, "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)
}
