package pdfdoc

import (
	"bytes"
	"log"

	"github.com/phpdave11/gofpdf"
)

// PDF is a Surface backed by gofpdf (A4 portrait, millimetres).
type PDF struct {
	pdf        *gofpdf.Fpdf
	tr         func(string) string
	registered map[string]bool
}

func NewPDF(title string) *PDF {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.SetAutoPageBreak(false, 0)
	return &PDF{
		pdf:        pdf,
		tr:         pdf.UnicodeTranslatorFromDescriptor(""),
		registered: map[string]bool{},
	}
}

func (p *PDF) AddPage() { p.pdf.AddPage() }

func (p *PDF) Text(x, y float64, s string, f Font, c Color) {
	p.pdf.SetFont(f.Family, f.Style, f.Size)
	p.pdf.SetTextColor(c.R, c.G, c.B)
	p.pdf.Text(x, y, p.tr(s))
}

// Image registers img once by name. A raster gofpdf refuses is skipped and the
// document error cleared so the rest of the page still renders.
func (p *PDF) Image(img Image, x, y, w, h float64) {
	if len(img.Data) == 0 || img.Name == "" {
		return
	}
	opts := gofpdf.ImageOptions{ImageType: img.Type}
	if !p.registered[img.Name] {
		p.pdf.RegisterImageOptionsReader(img.Name, opts, bytes.NewReader(img.Data))
		if err := p.pdf.Error(); err != nil {
			log.Printf("[PDF] action=register_image name=%s err=%v", img.Name, err)
			p.pdf.ClearError()
			return
		}
		p.registered[img.Name] = true
	}
	p.pdf.ImageOptions(img.Name, x, y, w, h, false, opts, 0, "")
}

func (p *PDF) Line(x1, y1, x2, y2 float64, dashed bool) {
	p.pdf.SetDrawColor(Grey.R, Grey.G, Grey.B)
	p.pdf.SetLineWidth(0.2)
	if dashed {
		p.pdf.SetDashPattern([]float64{1.2, 1.2}, 0)
	}
	p.pdf.Line(x1, y1, x2, y2)
	if dashed {
		p.pdf.SetDashPattern([]float64{}, 0)
	}
}

func (p *PDF) FillRect(x, y, w, h float64, c Color) {
	p.pdf.SetFillColor(c.R, c.G, c.B)
	p.pdf.Rect(x, y, w, h, "F")
}

func (p *PDF) Output() ([]byte, error) {
	var buf bytes.Buffer
	if err := p.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
