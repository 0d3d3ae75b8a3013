package export

import (
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type Invoice struct {
	Reference    string
	CustomerName string
	TurfName     string
	Location     string
	Sport        string
	UnitName     string
	Date         string
	StartTime    string
	EndTime      string
	Price        float64
	PaidNow      float64
	Status       string
	IssuedAt     time.Time
	VerifyURL    string
}

// InvoicePDF renders a single page invoice with a QR code of the booking reference.
func InvoicePDF(inv Invoice) ([]byte, error) {
	if inv.Reference == "" {
		return nil, ErrEmptyDocument
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont(fontFace, "B", 22)
	pdf.Cell(0, 15, "TURFICS BOOKING INVOICE")
	pdf.Ln(18)

	pdf.SetDrawColor(220, 220, 220)
	pdf.Line(15, pdf.GetY(), 195, pdf.GetY())
	pdf.Ln(6)

	top := pdf.GetY()
	pdf.SetFillColor(245, 245, 245)
	pdf.Rect(15, top, 120, 48, "F")
	pdf.SetXY(20, top+5)

	pdf.SetFont(fontFace, "B", 13)
	pdf.Cell(0, 8, "BOOKING "+inv.Reference)
	pdf.Ln(9)
	pdf.SetX(20)
	pdf.SetFont(fontFace, "", 11)
	pdf.Cell(0, 7, "Status: "+inv.Status)
	pdf.Ln(7)
	pdf.SetX(20)
	pdf.Cell(0, 7, "Issued: "+inv.IssuedAt.Format("02 Jan 2006 15:04"))

	verify := inv.VerifyURL
	if verify == "" {
		verify = inv.Reference
	}

	if err := addQR(pdf, "invoice-qr", verify, 145, top, 45); err != nil {
		return nil, err
	}

	pdf.SetY(top + 56)

	sectionTitle(pdf, "VENUE")
	row(pdf, "Turf", tr(inv.TurfName))
	row(pdf, "Location", tr(inv.Location))
	row(pdf, "Sport", tr(inv.Sport))
	row(pdf, "Court", tr(inv.UnitName))
	pdf.Ln(4)

	sectionTitle(pdf, "SCHEDULE")
	row(pdf, "Date", inv.Date)
	row(pdf, "Time", fmt.Sprintf("%s - %s", inv.StartTime, inv.EndTime))
	pdf.Ln(4)

	sectionTitle(pdf, "PAYMENT")
	row(pdf, "Customer", tr(inv.CustomerName))
	row(pdf, "Total", money(inv.Price))

	if inv.PaidNow > 0 && inv.PaidNow < inv.Price {
		row(pdf, "Paid", money(inv.PaidNow))
		row(pdf, "Balance", money(inv.Price-inv.PaidNow))
	}

	pdf.SetDrawColor(200, 200, 200)
	pdf.Line(15, 280, 195, 280)
	pdf.SetY(283)
	pdf.SetFont(fontFace, "I", 9)
	pdf.CellFormat(0, 8, "Show this invoice at the venue. Scan the code to verify the booking.", "", 0, "C", false, 0, "")

	return output(pdf)
}
