package seatlayout

import "busexcursion/internal/domain/models"

// SeatView is the per-seat view model. InService is false for print-layout
// seats beyond the requested capacity; those are never occupied.
type SeatView struct {
	Seat      int               `json:"seat"`
	Occupied  bool              `json:"occupied"`
	InService bool              `json:"in_service"`
	Passenger *models.Passenger `json:"passenger,omitempty"`
	StopColor string            `json:"stop_color,omitempty"`
}

// Occupancy holds one SeatView per seat cell, in traversal order.
type Occupancy struct {
	Seats []SeatView `json:"seats"`
	// Duplicates lists seat numbers that appeared more than once in the input.
	Duplicates []int `json:"duplicates,omitempty"`

	bySeat map[int]int
}

// Resolve matches passengers to seat cells by exact seat number. With
// duplicate seat numbers the first passenger in list order wins.
func Resolve(plan FloorPlan, passengers []models.Passenger) Occupancy {
	index, dups := indexPassengers(passengers)
	occ := Occupancy{Duplicates: dups, bySeat: map[int]int{}}
	for _, n := range plan.SeatNumbers() {
		v := SeatView{Seat: n, InService: n <= plan.Capacity}
		if p, ok := index[n]; ok && v.InService {
			pp := p
			v.Occupied = true
			v.Passenger = &pp
			v.StopColor = StopColor(p.StopName)
		}
		occ.bySeat[n] = len(occ.Seats)
		occ.Seats = append(occ.Seats, v)
	}
	return occ
}

// Seat returns the view for seat n.
func (o Occupancy) Seat(n int) (SeatView, bool) {
	i, ok := o.bySeat[n]
	if !ok {
		return SeatView{}, false
	}
	return o.Seats[i], true
}

// OccupiedCount counts occupied seats.
func (o Occupancy) OccupiedCount() int {
	n := 0
	for _, s := range o.Seats {
		if s.Occupied {
			n++
		}
	}
	return n
}

// CellView pairs a grid cell with its seat view, if any.
type CellView struct {
	Cell
	View *SeatView `json:"view,omitempty"`
}

// Cells annotates every grid cell of plan with the resolved seat views.
func (o Occupancy) Cells(plan FloorPlan) [][]CellView {
	out := make([][]CellView, len(plan.Rows))
	for i, r := range plan.Rows {
		row := make([]CellView, len(r))
		for j, c := range r {
			row[j] = CellView{Cell: c}
			if c.IsSeat() {
				if v, ok := o.Seat(c.Seat); ok {
					vv := v
					row[j].View = &vv
				}
			}
		}
		out[i] = row
	}
	return out
}

// indexPassengers keeps the first passenger for each seat and reports the
// seat numbers seen more than once, ascending by first duplicate occurrence.
func indexPassengers(passengers []models.Passenger) (map[int]models.Passenger, []int) {
	index := make(map[int]models.Passenger, len(passengers))
	var dups []int
	reported := map[int]bool{}
	for _, p := range passengers {
		if _, ok := index[p.Seat]; ok {
			if !reported[p.Seat] {
				dups = append(dups, p.Seat)
				reported[p.Seat] = true
			}
			continue
		}
		index[p.Seat] = p
	}
	return index, dups
}
