package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// fpdfSink implements Sink on top of gofpdf: A4 portrait, millimeter units,
// core Helvetica. Text goes through the cp1252 translator so "€" and
// accented French render with the built-in font.
type fpdfSink struct {
	doc    *gofpdf.Fpdf
	tr     func(string) string
	images int
}

func newFpdfSink() *fpdfSink {
	doc := gofpdf.New("P", "mm", "A4", "")
	// The template is a fixed one-page layout; never let gofpdf insert its
	// own page breaks.
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &fpdfSink{doc: doc, tr: doc.UnicodeTranslatorFromDescriptor("")}
}

func (s *fpdfSink) setFont(st Style) {
	style := ""
	if st.Bold {
		style += "B"
	}
	if st.Italic {
		style += "I"
	}
	s.doc.SetFont("Helvetica", style, st.Size)
	s.doc.SetTextColor(st.Color.R, st.Color.G, st.Color.B)
}

func (s *fpdfSink) PlaceText(x, y float64, text string, st Style) {
	s.setFont(st)
	t := s.tr(text)
	switch st.Align {
	case AlignRight:
		x -= s.doc.GetStringWidth(t)
	case AlignCenter:
		x -= s.doc.GetStringWidth(t) / 2
	}
	s.doc.Text(x, y, t)
}

func (s *fpdfSink) PlaceImage(x, y, w, h float64, img *LogoPayload) {
	if img == nil {
		return
	}
	s.images++
	name := fmt.Sprintf("img-%d", s.images)
	opts := gofpdf.ImageOptions{ImageType: img.Format}
	if s.doc.RegisterImageOptionsReader(name, opts, bytes.NewReader(img.Bytes)) == nil {
		return
	}
	s.doc.ImageOptions(name, x, y, w, h, false, opts, 0, "")
}

func (s *fpdfSink) FillRect(x, y, w, h float64, c RGB) {
	s.doc.SetFillColor(c.R, c.G, c.B)
	s.doc.Rect(x, y, w, h, "F")
}

func (s *fpdfSink) StrokeRect(x, y, w, h float64, c RGB, lineWidth float64) {
	s.doc.SetDrawColor(c.R, c.G, c.B)
	s.doc.SetLineWidth(lineWidth)
	s.doc.Rect(x, y, w, h, "D")
}

func (s *fpdfSink) DrawLine(x1, y1, x2, y2 float64, c RGB, lineWidth float64) {
	s.doc.SetDrawColor(c.R, c.G, c.B)
	s.doc.SetLineWidth(lineWidth)
	s.doc.Line(x1, y1, x2, y2)
}

func (s *fpdfSink) TextWidth(text string, st Style) float64 {
	s.setFont(st)
	return s.doc.GetStringWidth(s.tr(text))
}

func (s *fpdfSink) PageSize() (float64, float64) {
	w, h := s.doc.GetPageSize()
	return w, h
}

// Bytes finalizes the document. gofpdf accumulates errors internally, so
// any failed draw call surfaces here.
func (s *fpdfSink) Bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}
