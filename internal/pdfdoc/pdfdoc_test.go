package pdfdoc

import (
	"bytes"
	"testing"
)

func TestPDFOutput(t *testing.T) {
	p := NewPDF("Test")
	p.AddPage()
	p.Text(10, 10, "Ricevuta perché è così", FontTitle, Black)
	p.Line(10, 12, 100, 12, true)
	p.FillRect(10, 20, 5, 5, ParseHex("#3B82F6"))
	qr, err := QRCode("REC-012")
	if err != nil {
		t.Fatalf("QRCode: %v", err)
	}
	p.Image(qr, 150, 10, 20, 20)
	p.Image(qr, 150, 40, 20, 20)

	out, err := p.Output()
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if !bytes.HasPrefix(out, []byte("%PDF-")) {
		t.Fatalf("output is not a PDF")
	}
}

func TestPDFSkipsBrokenImage(t *testing.T) {
	p := NewPDF("Broken")
	p.AddPage()
	p.Image(Image{Name: "logo", Type: "PNG", Data: []byte("not a png")}, 10, 10, 10, 10)
	p.Text(10, 30, "still here", FontBody, Black)
	if _, err := p.Output(); err != nil {
		t.Fatalf("broken image must not fail the document: %v", err)
	}
}

func TestParseHex(t *testing.T) {
	if c := ParseHex("#10B981"); c != (Color{R: 16, G: 185, B: 129}) {
		t.Fatalf("ParseHex = %+v", c)
	}
	if c := ParseHex("nope"); c != Black {
		t.Fatalf("ParseHex(nope) = %+v", c)
	}
}
