package pdfdoc

import "errors"

// Op is one recorded drawing call.
type Op struct {
	Kind string // page, text, image, line, rect
	Page int
	X, Y float64
	W, H float64
	Text string
	Font Font
}

// Recorder is an in-memory Surface for layout tests.
type Recorder struct {
	Ops   []Op
	Pages int
	Fail  bool
}

func (r *Recorder) AddPage() {
	r.Pages++
	r.Ops = append(r.Ops, Op{Kind: "page", Page: r.Pages})
}

func (r *Recorder) Text(x, y float64, s string, f Font, _ Color) {
	r.Ops = append(r.Ops, Op{Kind: "text", Page: r.Pages, X: x, Y: y, Text: s, Font: f})
}

func (r *Recorder) Image(img Image, x, y, w, h float64) {
	r.Ops = append(r.Ops, Op{Kind: "image", Page: r.Pages, X: x, Y: y, W: w, H: h, Text: img.Name})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, _ bool) {
	r.Ops = append(r.Ops, Op{Kind: "line", Page: r.Pages, X: x1, Y: y1, W: x2 - x1, H: y2 - y1})
}

func (r *Recorder) FillRect(x, y, w, h float64, _ Color) {
	r.Ops = append(r.Ops, Op{Kind: "rect", Page: r.Pages, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) Output() ([]byte, error) {
	if r.Fail {
		return nil, errors.New("recorder: output failed")
	}
	return []byte("%PDF-recorded"), nil
}

// Find returns recorded ops of kind whose text equals s.
func (r *Recorder) Find(kind, s string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind && op.Text == s {
			out = append(out, op)
		}
	}
	return out
}

// Count counts ops of kind.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}
