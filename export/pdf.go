package export

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/phpdave11/gofpdf"

	"yatra/models"
)

const (
	pdfMargin  = 20.0
	pdfIndent  = 5.0
	labelWidth = 40.0
	// A Day heading started past this vertical cursor would be orphaned at
	// the bottom of the page, so a page break is forced first.
	pdfBreakY = 250.0
)

// PDF renders the snapshot into a paginated A4 document and returns the
// binary artifact. The snapshot is not modified; on error no bytes are
// returned.
func PDF(snap models.ItinerarySnapshot) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pdfMargin, pdfMargin, pdfMargin)
	pdf.AddPage()

	Walk(snap, &pdfSink{pdf: pdf})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// pdfSink writes content events as flowed text with explicit page-break
// bookkeeping.
type pdfSink struct {
	pdf   *gofpdf.Fpdf
	first bool
}

func (s *pdfSink) Title(text string) {
	s.pdf.SetFont("Arial", "B", 24)
	s.pdf.Cell(0, 12, text)
	s.pdf.Ln(15)
	s.first = true
}

func (s *pdfSink) Heading(text string) {
	// never break immediately after the title
	if !s.first && s.pdf.GetY() > pdfBreakY {
		s.pdf.AddPage()
	}
	s.first = false
	s.pdf.SetFont("Arial", "B", 16)
	s.pdf.Cell(0, 10, text)
	s.pdf.Ln(10)
}

func (s *pdfSink) Field(label, value string) {
	s.pdf.SetFont("Arial", "B", 12)
	s.pdf.Cell(labelWidth, 7, label+":")
	s.pdf.SetFont("Arial", "", 12)
	s.pdf.Cell(0, 7, value)
	s.pdf.Ln(7)
}

func (s *pdfSink) List(label string, items []string) {
	s.pdf.SetFont("Arial", "B", 12)
	s.pdf.Cell(0, 7, label+":")
	s.pdf.Ln(7)
	s.pdf.SetFont("Arial", "", 12)
	for _, item := range items {
		s.pdf.SetX(pdfMargin + pdfIndent)
		s.pdf.Cell(0, 6, "- "+item)
		s.pdf.Ln(6)
	}
}

var whitespaceRe = regexp.MustCompile(`\s+`)

// Filename derives the deterministic download name for an export artifact:
// trip-name whitespace collapsed to underscores plus a fixed suffix.
func Filename(tripName, ext string) string {
	name := whitespaceRe.ReplaceAllString(strings.TrimSpace(tripName), "_")
	if name == "" {
		name = "Trip"
	}
	return name + "_Itinerary." + ext
}
