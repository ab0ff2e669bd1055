// Package seatreport draws the printable seat sheet of an excursion: the
// fixed print floor plan followed by the two-column passenger table.
package seatreport

import (
	"fmt"
	"strconv"

	"busexcursion/internal/domain/models"
	"busexcursion/internal/pdfdoc"
	"busexcursion/internal/seatlayout"
	"busexcursion/internal/utils"
)

const (
	marginLeft = 12.0
	pageWidth  = 210.0
	cellSize   = 9.0
	cellGap    = 1.2
	lineHeight = 5.2
	tableTop   = 40.0
	pageBottom = 285.0
)

var (
	seatFree   = pdfdoc.Color{R: 230, G: 230, B: 230}
	seatUnused = pdfdoc.Color{R: 250, G: 250, B: 250}
	crewColor  = pdfdoc.Color{R: 60, G: 60, B: 60}
)

// Sheet is everything one seat report needs.
type Sheet struct {
	Association models.Association
	Excursion   models.Excursion
	Plan        seatlayout.FloorPlan
	Occupancy   seatlayout.Occupancy
	Table       seatlayout.PrintTable
	Legend      []seatlayout.LegendEntry
}

// Build resolves the print floor plan, occupancy, table and legend for an
// excursion.
func Build(a models.Association, e models.Excursion, passengers []models.Passenger) (Sheet, error) {
	plan, err := seatlayout.Print{}.Build(e.AvailableSeats)
	if err != nil {
		return Sheet{}, err
	}
	occ := seatlayout.Resolve(plan, passengers)
	table, err := seatlayout.SplitTable(e.AvailableSeats, passengers)
	if err != nil {
		return Sheet{}, err
	}
	return Sheet{
		Association: a,
		Excursion:   e,
		Plan:        plan,
		Occupancy:   occ,
		Table:       table,
		Legend:      seatlayout.Legend(e.Stops, occ),
	}, nil
}

// Draw renders the sheet starting on a new page. It returns the number of
// pages used.
func Draw(s pdfdoc.Surface, sh Sheet) int {
	s.AddPage()
	pages := 1
	drawHeader(s, sh)
	y := drawPlan(s, sh, tableTop)
	y = drawLegend(s, sh.Legend, y+4)

	y += 4
	rows := len(sh.Table.Left)
	colW := (pageWidth - 2*marginLeft) / 2
	for i := 0; i < rows; i++ {
		if y > pageBottom {
			s.AddPage()
			pages++
			y = 20
		}
		drawTableRow(s, marginLeft, y, colW, sh.Table.Left[i])
		if i < len(sh.Table.Right) {
			drawTableRow(s, marginLeft+colW, y, colW, sh.Table.Right[i])
		}
		y += lineHeight
	}
	return pages
}

func drawHeader(s pdfdoc.Surface, sh Sheet) {
	e := sh.Excursion
	s.Text(marginLeft, 16, sh.Association.Name, pdfdoc.FontTitle, pdfdoc.Black)
	s.Text(marginLeft, 23, e.Name, pdfdoc.FontBold, pdfdoc.Black)
	s.Text(marginLeft, 29, fmt.Sprintf("%s %s - %s", utils.FormatDisplayDate(e.Date), e.Time, e.Place),
		pdfdoc.FontBody, pdfdoc.Black)
	s.Text(marginLeft, 34, fmt.Sprintf("Kursi terisi: %d/%d", sh.Occupancy.OccupiedCount(), e.AvailableSeats),
		pdfdoc.FontSmall, pdfdoc.Grey)
}

// drawPlan draws the grid as boxes and returns the y below it.
func drawPlan(s pdfdoc.Surface, sh Sheet, top float64) float64 {
	y := top
	for _, row := range sh.Occupancy.Cells(sh.Plan) {
		x := marginLeft
		for _, c := range row {
			switch c.Kind {
			case seatlayout.CellSeat:
				fill := seatFree
				if c.View != nil && c.View.Occupied {
					fill = pdfdoc.ParseHex(c.View.StopColor)
				} else if c.View != nil && !c.View.InService {
					fill = seatUnused
				}
				s.FillRect(x, y, cellSize, cellSize, fill)
				s.Text(x+2, y+cellSize-3, strconv.Itoa(c.Seat), pdfdoc.FontSmall, pdfdoc.Black)
			case seatlayout.CellDriverOrGuide:
				s.FillRect(x, y, cellSize, cellSize, crewColor)
			case seatlayout.CellDoorGap:
				s.Line(x, y+cellSize/2, x+cellSize, y+cellSize/2, true)
			}
			x += cellSize + cellGap
		}
		y += cellSize + cellGap
	}
	return y
}

func drawLegend(s pdfdoc.Surface, legend []seatlayout.LegendEntry, y float64) float64 {
	x := marginLeft
	for _, l := range legend {
		s.FillRect(x, y-3, 3, 3, pdfdoc.ParseHex(l.Color))
		label := fmt.Sprintf("%s (%d)", l.Stop, l.Count)
		s.Text(x+4, y, label, pdfdoc.FontSmall, pdfdoc.Black)
		x += 8 + float64(len(label))*1.6
		if x > pageWidth-40 {
			x = marginLeft
			y += lineHeight
		}
	}
	return y + lineHeight
}

func drawTableRow(s pdfdoc.Surface, x, y, w float64, r seatlayout.TableRow) {
	s.Text(x, y, fmt.Sprintf("%02d", r.Seat), pdfdoc.FontBold, pdfdoc.Black)
	if r.Passenger == nil {
		s.Line(x+8, y, x+w-6, y, true)
		return
	}
	s.Text(x+8, y, r.Passenger.FullName(), pdfdoc.FontBody, pdfdoc.Black)
	if r.Passenger.StopName != "" {
		s.Text(x+w-30, y, r.Passenger.StopName, pdfdoc.FontSmall, pdfdoc.Grey)
	}
}
