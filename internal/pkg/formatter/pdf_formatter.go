package formatter

import (
	"bytes"
	"os"

	"github.com/jung-kurt/gofpdf"
	"github.com/pageforge/landing-backend/internal/entity"
)

const (
	pdfContentType   = "application/pdf"
	pdfFileExtension = ".pdf"

	// pdfFontName is the internal name used by gofpdf
	// for the UTF-8 capable font.
	pdfFontName = "DejaVuSans"

	// Relative paths where the TTF font may live.
	// In Docker runtime fonts are copied to /app/ttf,
	// so for the compiled binary the path is ./ttf/DejaVuSans.ttf.
	pdfFontRuntimePath = "ttf/DejaVuSans.ttf"

	// Source-relative path (useful when running from repo root with `go run`).
	pdfFontSourcePath = "internal/pkg/formatter/ttf/DejaVuSans.ttf"
)

type PDFFormatter struct{}

func NewPDFFormatter() *PDFFormatter {
	return &PDFFormatter{}
}

// resolveFontPath tries to find the DejaVuSans font in
// runtime layout (next to the binary) or source layout.
func resolveFontPath() string {
	if _, err := os.Stat(pdfFontRuntimePath); err == nil {
		return pdfFontRuntimePath
	}

	if _, err := os.Stat(pdfFontSourcePath); err == nil {
		return pdfFontSourcePath
	}

	return ""
}

func (pf *PDFFormatter) Format(title string, page *entity.GeneratedTemplate) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Try to use the UTF-8 capable DejaVuSans font, bundled with the project.
	fontName := "Arial"
	if fontPath := resolveFontPath(); fontPath != "" {
		pdf.AddUTF8Font(pdfFontName, "", fontPath)
		pdf.AddUTF8Font(pdfFontName, "B", fontPath)
		fontName = pdfFontName
	}

	heading := func(text string) {
		pdf.SetFont(fontName, "B", 14)
		pdf.MultiCell(0, 8, text, "", "L", false)
		pdf.Ln(2)
	}
	body := func(text string) {
		pdf.SetFont(fontName, "", 11)
		pdf.MultiCell(0, 6, text, "", "L", false)
		pdf.Ln(2)
	}

	pdf.SetFont(fontName, "B", 18)
	pdf.MultiCell(0, 10, title, "", "L", false)
	pdf.Ln(4)

	s := page.LandingPage.Sections

	if hero := s.Hero; hero != nil {
		heading(hero.Headline)
		body(hero.Subheadline)
		body(hero.Description)
	}

	if svc := s.Services; svc != nil {
		heading(svc.Title)
		body(svc.Description)
		for _, item := range svc.Items {
			body("• " + item.Title + " — " + item.Description)
		}
	}

	if ben := s.Benefits; ben != nil {
		heading(ben.Title)
		for _, item := range ben.Items {
			body("• " + item.Title + " — " + item.Description)
		}
	}

	if tst := s.Testimonials; tst != nil {
		heading(tst.Title)
		for _, item := range tst.Items {
			body("\"" + item.Quote + "\" — " + item.Author + ", " + item.Role)
		}
	}

	if cta := s.CTA; cta != nil {
		heading(cta.Headline)
		body(cta.Description)
		body("[" + cta.ButtonText + "]")
		ci := cta.ContactInfo
		body(ci.Address + " | " + ci.Phone + " | " + ci.Email)
		body("Instagram: " + ci.SocialMedia.Instagram + " · LinkedIn: " + ci.SocialMedia.LinkedIn)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (pf *PDFFormatter) ContentType() string {
	return pdfContentType
}

func (pf *PDFFormatter) FileExtension() string {
	return pdfFileExtension
}
