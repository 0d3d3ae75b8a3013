package export

import (
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

const (
	BackgroundNeon     = "neon"
	BackgroundDark     = "dark"
	BackgroundMinimal  = "minimal"
	BackgroundAICustom = "ai-custom"
)

type palette struct {
	fill, text, accent rgb
}

var palettes = map[string]palette{
	BackgroundNeon:     {fill: rgb{17, 12, 46}, text: rgb{255, 255, 255}, accent: rgb{57, 255, 20}},
	BackgroundDark:     {fill: rgb{24, 24, 27}, text: rgb{244, 244, 245}, accent: rgb{250, 204, 21}},
	BackgroundMinimal:  {fill: rgb{250, 250, 250}, text: rgb{24, 24, 27}, accent: rgb{37, 99, 235}},
	BackgroundAICustom: {fill: rgb{30, 41, 59}, text: rgb{255, 255, 255}, accent: rgb{244, 114, 182}},
}

// Backgrounds lists the poster backgrounds in display order.
func Backgrounds() []string {
	return []string{BackgroundNeon, BackgroundDark, BackgroundMinimal, BackgroundAICustom}
}

func ValidBackground(bg string) bool {
	_, ok := palettes[bg]

	return ok
}

type Poster struct {
	Name         string
	Sport        string
	StartDate    string
	EntryFee     float64
	PrizePool    float64
	Headline     string
	Subheadline  string
	Highlights   []string
	CallToAction string
	Background   string
	RegisterURL  string
}

// PosterPDF renders a single A4 page. The QR code points at RegisterURL when set.
func PosterPDF(p Poster) ([]byte, error) {
	if p.Headline == "" && p.Name == "" {
		return nil, ErrEmptyDocument
	}

	pal, ok := palettes[p.Background]
	if !ok {
		pal = palettes[BackgroundDark]
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(18, 20, 18)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFillColor(pal.fill.r, pal.fill.g, pal.fill.b)
	pdf.Rect(0, 0, 210, 297, "F")

	pdf.SetTextColor(pal.accent.r, pal.accent.g, pal.accent.b)
	pdf.SetFont(fontFace, "B", 14)
	pdf.CellFormat(0, 10, strings.ToUpper(tr(p.Sport)), "", 1, "C", false, 0, "")
	pdf.Ln(6)

	headline := p.Headline
	if headline == "" {
		headline = p.Name
	}

	pdf.SetTextColor(pal.text.r, pal.text.g, pal.text.b)
	pdf.SetFont(fontFace, "B", 32)
	pdf.MultiCell(0, 14, tr(headline), "", "C", false)
	pdf.Ln(3)

	if p.Subheadline != "" {
		pdf.SetFont(fontFace, "I", 15)
		pdf.MultiCell(0, 8, tr(p.Subheadline), "", "C", false)
		pdf.Ln(6)
	}

	pdf.SetDrawColor(pal.accent.r, pal.accent.g, pal.accent.b)
	pdf.SetLineWidth(0.8)
	pdf.Line(60, pdf.GetY(), 150, pdf.GetY())
	pdf.Ln(8)

	pdf.SetFont(fontFace, "", 13)

	for _, h := range p.Highlights {
		pdf.CellFormat(0, 9, tr("* "+h), "", 1, "C", false, 0, "")
	}

	pdf.Ln(6)

	pdf.SetTextColor(pal.accent.r, pal.accent.g, pal.accent.b)
	pdf.SetFont(fontFace, "B", 16)
	pdf.CellFormat(0, 10, fmt.Sprintf("Prize pool %s", money(p.PrizePool)), "", 1, "C", false, 0, "")
	pdf.SetTextColor(pal.text.r, pal.text.g, pal.text.b)
	pdf.SetFont(fontFace, "", 13)
	pdf.CellFormat(0, 8, fmt.Sprintf("Entry %s  |  Starts %s", money(p.EntryFee), p.StartDate), "", 1, "C", false, 0, "")

	if p.RegisterURL != "" {
		if err := addQR(pdf, "poster-qr", p.RegisterURL, 80, 200, 50); err != nil {
			return nil, err
		}
	}

	if p.CallToAction != "" {
		pdf.SetY(262)
		pdf.SetTextColor(pal.accent.r, pal.accent.g, pal.accent.b)
		pdf.SetFont(fontFace, "B", 18)
		pdf.CellFormat(0, 12, tr(strings.ToUpper(p.CallToAction)), "", 1, "C", false, 0, "")
	}

	return output(pdf)
}
