// Package seatlayout maps a linear seat numbering onto the bus floor plan and
// derives the per-seat and per-stop display data used by the seat map and the
// printed report.
package seatlayout

import (
	"fmt"
	"strings"
)

type CellKind string

const (
	CellSeat          CellKind = "seat"
	CellAisle         CellKind = "aisle"
	CellDoorGap       CellKind = "door"
	CellDriverOrGuide CellKind = "driver"
	CellEmpty         CellKind = "empty"
)

// Cell is one position of the floor-plan grid. Seat is set only for CellSeat.
type Cell struct {
	Kind  CellKind `json:"kind"`
	Seat  int      `json:"seat,omitempty"`
	Label string   `json:"label,omitempty"`
}

func seatCell(n int) Cell { return Cell{Kind: CellSeat, Seat: n} }
func aisleCell() Cell { return Cell{Kind: CellAisle} }
func doorCell() Cell { return Cell{Kind: CellDoorGap} }
func emptyCell() Cell { return Cell{Kind: CellEmpty} }
func crewCell(l string) Cell { return Cell{Kind: CellDriverOrGuide, Label: l} }

func (c Cell) IsSeat() bool { return c.Kind == CellSeat }

// String renders the cell as a fixed-width token, used by Grid.
func (c Cell) String() string {
	switch c.Kind {
	case CellSeat:
		return fmt.Sprintf("%02d", c.Seat)
	case CellAisle:
		return "||"
	case CellDoorGap:
		return "--"
	case CellDriverOrGuide:
		return "DR"
	default:
		return ".."
	}
}

type Row []Cell

func (r Row) String() string {
	parts := make([]string, len(r))
	for i, c := range r {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

func (r Row) clone() Row {
	out := make(Row, len(r))
	copy(out, r)
	return out
}

type Variant string

const (
	VariantInteractive Variant = "interactive"
	VariantPrint       Variant = "print"
)

// FloorPlan is the renderable grid. Capacity is the requested capacity; for the
// print variant the grid always carries all MaxSeats slots regardless.
type FloorPlan struct {
	Variant  Variant `json:"variant"`
	Capacity int     `json:"capacity"`
	Rows     []Row   `json:"rows"`
}

// SeatNumbers lists seat numbers in row-major traversal order.
func (p FloorPlan) SeatNumbers() []int {
	out := []int{}
	for _, r := range p.Rows {
		for _, c := range r {
			if c.IsSeat() {
				out = append(out, c.Seat)
			}
		}
	}
	return out
}

func (p FloorPlan) SeatCount() int {
	return len(p.SeatNumbers())
}

// RowOf returns the row index holding seat n, or -1.
func (p FloorPlan) RowOf(n int) int {
	for i, r := range p.Rows {
		for _, c := range r {
			if c.IsSeat() && c.Seat == n {
				return i
			}
		}
	}
	return -1
}

// Grid renders every row with Row.String. Golden tests compare against it.
func (p FloorPlan) Grid() []string {
	out := make([]string, len(p.Rows))
	for i, r := range p.Rows {
		out[i] = r.String()
	}
	return out
}
