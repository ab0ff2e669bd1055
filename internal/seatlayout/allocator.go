package seatlayout

const (
	// MaxSeats is the largest bus: MainBlockSeats in the 2+2 block plus the bench.
	MaxSeats       = 55
	MainBlockSeats = 50
	BenchSeats     = 5

	seatsPerRow = 4
	rowWidth    = 5
	aisleColumn = 2
)

// Allocate lays out seats 1..n for the interactive map: rows of
// seat, seat, aisle, seat, seat filled top to bottom, the InteractiveFixups
// applied in order, then the rear bench when n exceeds MainBlockSeats.
func Allocate(n int) ([]Row, error) {
	if err := ValidateCapacity(n); err != nil {
		return nil, err
	}
	rows := standardRows(n)
	for _, f := range InteractiveFixups {
		rows = f.Apply(rows)
	}
	if bench := benchRow(n); bench != nil {
		rows = append(rows, bench)
	}
	return rows, nil
}

// standardRows fills min(n, MainBlockSeats) seats into the 2+2 block. The last
// row may be partial; its unused positions are empty cells.
func standardRows(n int) []Row {
	count := min(n, MainBlockSeats)
	nrows := (count + seatsPerRow - 1) / seatsPerRow
	rows := make([]Row, 0, nrows)
	next := 1
	for r := 0; r < nrows; r++ {
		row := make(Row, 0, rowWidth)
		for col := 0; col < rowWidth; col++ {
			if col == aisleColumn {
				row = append(row, aisleCell())
				continue
			}
			if next <= count {
				row = append(row, seatCell(next))
				next++
			} else {
				row = append(row, emptyCell())
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// benchRow is the contiguous 5-across rear row holding seats 51..n, or nil
// when n fits in the main block.
func benchRow(n int) Row {
	if n <= MainBlockSeats {
		return nil
	}
	row := make(Row, 0, BenchSeats)
	for i := 1; i <= BenchSeats; i++ {
		seat := MainBlockSeats + i
		if seat <= n {
			row = append(row, seatCell(seat))
		} else {
			row = append(row, emptyCell())
		}
	}
	return row
}
