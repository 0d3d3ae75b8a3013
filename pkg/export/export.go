// Package export renders booking invoices and tournament posters as PDF documents.
package export

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

const (
	qrSize   = 256
	fontFace = "Helvetica"
)

var ErrEmptyDocument = errors.New("nothing to export")

type rgb struct {
	r, g, b int
}

func addQR(pdf *gofpdf.Fpdf, name, content string, x, y, w float64) error {
	png, err := qrcode.Encode(content, qrcode.Medium, qrSize)
	if err != nil {
		return fmt.Errorf("export - qr: %w", err)
	}

	opts := gofpdf.ImageOptions{ImageType: "png"}
	pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(png))
	pdf.ImageOptions(name, x, y, w, 0, false, opts, 0, "")

	return nil
}

func sectionTitle(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont(fontFace, "B", 13)
	pdf.SetFillColor(240, 240, 240)
	pdf.CellFormat(0, 9, title, "", 1, "L", true, 0, "")
	pdf.Ln(2)
}

func row(pdf *gofpdf.Fpdf, label, value string) {
	if value == "" {
		return
	}

	pdf.SetFont(fontFace, "B", 11)
	pdf.CellFormat(40, 7, label, "", 0, "L", false, 0, "")
	pdf.SetFont(fontFace, "", 11)
	pdf.CellFormat(0, 7, value, "", 1, "L", false, 0, "")
}

func output(pdf *gofpdf.Fpdf) ([]byte, error) {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("export - output: %w", err)
	}

	return buf.Bytes(), nil
}

func money(v float64) string {
	return fmt.Sprintf("INR %.2f", v)
}
