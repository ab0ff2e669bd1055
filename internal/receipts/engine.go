package receipts

import (
	"fmt"
	"strconv"
	"strings"

	"busexcursion/internal/domain/models"
	"busexcursion/internal/pdfdoc"
	"busexcursion/internal/utils"
)

// BlankSeats is the number of receipts of a bulk blank print, one per seat of
// the largest bus, occupied or not.
const BlankSeats = 55

const blankField = "______________"

// Document is the content shared by every receipt of one generation. Logo is
// nil when the association has none or it could not be fetched.
type Document struct {
	Association models.Association
	Excursion   models.Excursion
	Logo        *pdfdoc.Image
}

// Summary describes what was drawn.
type Summary struct {
	Receipts int
	Pages    int
	Numbers  []string
	// NextSequence is the sequence value to persist after a bulk print.
	NextSequence int
}

type Engine struct {
	Geometry Geometry
	QRCodes  bool
}

func NewEngine(g Geometry) Engine {
	return Engine{Geometry: g, QRCodes: true}
}

type receipt struct {
	number    string
	seat      int
	passenger *models.Passenger
}

// DrawPassengers draws one receipt per passenger, in list order, numbered by
// seat.
func (e Engine) DrawPassengers(s pdfdoc.Surface, doc Document, passengers []models.Passenger) Summary {
	items := make([]receipt, len(passengers))
	for i := range passengers {
		p := passengers[i]
		items[i] = receipt{number: Number(p.Seat), seat: p.Seat, passenger: &p}
	}
	return e.draw(s, doc, items)
}

// DrawBlank draws BlankSeats unfilled receipts for seats 1..BlankSeats,
// numbered from seq+1. The caller persists Summary.NextSequence.
func (e Engine) DrawBlank(s pdfdoc.Surface, doc Document, seq int) Summary {
	items := make([]receipt, BlankSeats)
	for i := range items {
		items[i] = receipt{number: SequenceNumber(seq + i + 1), seat: i + 1}
	}
	sum := e.draw(s, doc, items)
	sum.NextSequence = seq + BlankSeats
	return sum
}

// SequenceNumber formats a bulk sequence value like a seat receipt number.
func SequenceNumber(n int) string {
	return fmt.Sprintf("REC-%03d", n)
}

func (e Engine) draw(s pdfdoc.Surface, doc Document, items []receipt) Summary {
	g := e.Geometry
	plan := Plan(len(items), g)
	sum := Summary{Receipts: len(items), Pages: PageCount(len(items), g)}
	if len(plan) == 0 {
		return sum
	}
	s.AddPage()
	for _, p := range plan {
		if p.NewPage {
			s.AddPage()
		}
		r := items[p.Index]
		e.drawStub(s, doc, r, p.Y)
		s.Line(g.DividerX(), p.Y, g.DividerX(), p.Y+g.ReceiptHeight, true)
		e.drawMain(s, doc, r, p.Y)
		if p.Position < g.ReceiptsPerPage-1 && p.Index < len(items)-1 {
			cut := p.Y + g.ReceiptHeight + g.VerticalGap/2
			s.Line(g.MarginLeft, cut, g.MarginLeft+g.ReceiptWidth, cut, true)
		}
		sum.Numbers = append(sum.Numbers, r.number)
	}
	return sum
}

func (e Engine) drawStub(s pdfdoc.Surface, doc Document, r receipt, y float64) {
	g := e.Geometry
	x := g.StubX()
	textX := x + 1
	if doc.Logo != nil {
		s.Image(*doc.Logo, x+1, y+2, 10, 10)
		textX = x + 13
	}
	s.Text(textX, y+6, truncate(doc.Association.Name, 24), pdfdoc.FontBold, pdfdoc.Black)
	s.Text(textX, y+10, "ARSIP", pdfdoc.FontSmall, pdfdoc.Grey)

	lines := []string{
		"No: " + r.number,
		"Kursi: " + strconv.Itoa(r.seat),
		"Nama: " + truncate(passengerName(r.passenger), 26),
		"Halte: " + truncate(passengerStop(r.passenger), 25),
		"Ekskursi: " + truncate(orBlank(doc.Excursion.Name), 22),
		"Tgl: " + orBlank(utils.FormatDisplayDate(doc.Excursion.Date)),
	}
	for i, l := range lines {
		s.Text(x+1, y+18+float64(i)*6, l, pdfdoc.FontSmall, pdfdoc.Black)
	}
}

func (e Engine) drawMain(s pdfdoc.Surface, doc Document, r receipt, y float64) {
	g := e.Geometry
	x := g.MainX()
	right := x + g.MainWidth()
	if doc.Logo != nil {
		s.Image(*doc.Logo, right-22, y+2, 20, 20)
	}
	a := doc.Association
	s.Text(x, y+7, truncate(a.Name, 48), pdfdoc.FontTitle, pdfdoc.Black)
	contact := strings.Join(nonEmpty(a.Address, a.Phone), " - ")
	if contact != "" {
		s.Text(x, y+12, truncate(contact, 80), pdfdoc.FontSmall, pdfdoc.Grey)
	}
	s.Text(x, y+20, "KWITANSI "+r.number, pdfdoc.FontBold, pdfdoc.Black)

	ex := doc.Excursion
	phone := blankField
	if r.passenger != nil {
		phone = orDash(r.passenger.Phone)
	}
	lines := []string{
		"Diterima dari : " + passengerName(r.passenger),
		"Telepon       : " + phone,
		fmt.Sprintf("Kursi         : %d      Halte : %s", r.seat, passengerStop(r.passenger)),
		"Ekskursi      : " + truncate(orBlank(ex.Name), 50),
		fmt.Sprintf("Tanggal       : %s      Jam : %s", orBlank(utils.FormatDisplayDate(ex.Date)), orBlank(utils.TimeHM(ex.Time))),
		"Tempat        : " + truncate(orBlank(ex.Place), 50),
		"Harga         : " + orBlank(ex.Price),
	}
	for i, l := range lines {
		s.Text(x, y+27+float64(i)*5, l, pdfdoc.FontBody, pdfdoc.Black)
	}
	if e.QRCodes {
		if qr, err := pdfdoc.QRCode(r.number); err == nil {
			s.Image(qr, right-22, y+g.ReceiptHeight-24, 20, 20)
		}
	}
	s.Text(x, y+g.ReceiptHeight-2, "Simpan kwitansi ini sampai akhir perjalanan.", pdfdoc.FontItalic, pdfdoc.Grey)
}

func passengerName(p *models.Passenger) string {
	if p == nil {
		return blankField
	}
	return orDash(p.FullName())
}

func passengerStop(p *models.Passenger) string {
	if p == nil {
		return blankField
	}
	return orDash(p.StopName)
}

func orBlank(s string) string {
	if strings.TrimSpace(s) == "" {
		return blankField
	}
	return s
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

func nonEmpty(vals ...string) []string {
	out := []string{}
	for _, v := range vals {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
