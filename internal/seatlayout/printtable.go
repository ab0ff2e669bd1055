package seatlayout

import "busexcursion/internal/domain/models"

// TableRow is one line of the printed seat table; Passenger is nil for an
// empty seat, which the report renders as a placeholder line.
type TableRow struct {
	Seat      int               `json:"seat"`
	Passenger *models.Passenger `json:"passenger,omitempty"`
}

// PrintTable is the two-column split of the seat range.
type PrintTable struct {
	Left  []TableRow `json:"left"`
	Right []TableRow `json:"right"`
}

// SplitTable puts seats 1..ceil(capacity/2) in the left column and the rest in
// the right one, seat ascending.
func SplitTable(capacity int, passengers []models.Passenger) (PrintTable, error) {
	if err := ValidateCapacity(capacity); err != nil {
		return PrintTable{}, err
	}
	index, _ := indexPassengers(passengers)
	mid := (capacity + 1) / 2
	t := PrintTable{
		Left:  make([]TableRow, 0, mid),
		Right: make([]TableRow, 0, capacity-mid),
	}
	for seat := 1; seat <= capacity; seat++ {
		row := TableRow{Seat: seat}
		if p, ok := index[seat]; ok {
			pp := p
			row.Passenger = &pp
		}
		if seat <= mid {
			t.Left = append(t.Left, row)
		} else {
			t.Right = append(t.Right, row)
		}
	}
	return t, nil
}
