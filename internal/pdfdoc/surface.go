// Package pdfdoc is the drawing surface used by receipts and printed reports:
// text, images and lines placed at page coordinates (millimetres).
package pdfdoc

type Font struct {
	Family string
	Style  string // "", "B", "I", "BI"
	Size   float64
}

var (
	FontBody   = Font{Family: "Helvetica", Size: 9}
	FontSmall  = Font{Family: "Helvetica", Size: 7}
	FontBold   = Font{Family: "Helvetica", Style: "B", Size: 9}
	FontTitle  = Font{Family: "Helvetica", Style: "B", Size: 12}
	FontItalic = Font{Family: "Helvetica", Style: "I", Size: 7}
)

type Color struct {
	R, G, B int
}

var (
	Black = Color{}
	Grey  = Color{R: 110, G: 110, B: 110}
)

// Image is an already decoded-and-verified raster. Type is a gofpdf image type
// ("PNG", "JPG", "GIF").
type Image struct {
	Name string
	Type string
	Data []byte
}

// Surface is what layout code draws on.
type Surface interface {
	AddPage()
	Text(x, y float64, s string, f Font, c Color)
	Image(img Image, x, y, w, h float64)
	Line(x1, y1, x2, y2 float64, dashed bool)
	FillRect(x, y, w, h float64, c Color)
	Output() ([]byte, error)
}
