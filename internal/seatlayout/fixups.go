package seatlayout

// Fixup is a named post-processing step over the standard block, run before the
// rear bench is appended. Steps never add or remove seat cells.
type Fixup struct {
	Name  string
	Apply func(rows []Row) []Row
}

const (
	// rearDoorAfterRow is the number of standard rows ahead of the rear door.
	rearDoorAfterRow = 5
	// doorPairAnchorSeat identifies the seat pair that is moved up into the
	// door row.
	doorPairAnchorSeat = 21
)

// InteractiveFixups are applied in order by Allocate.
var InteractiveFixups = []Fixup{
	{Name: "insert_rear_door_row", Apply: InsertRearDoorRow},
	{Name: "shift_door_row_pair", Apply: ShiftDoorRowPair},
}

// InsertRearDoorRow inserts an all-gap row right after the fifth standard row.
// Shorter buses get it appended after their last row so the door is always drawn.
func InsertRearDoorRow(rows []Row) []Row {
	at := min(rearDoorAfterRow, len(rows))
	door := Row{doorCell(), doorCell(), aisleCell(), doorCell(), doorCell()}
	out := make([]Row, 0, len(rows)+1)
	out = append(out, rows[:at]...)
	out = append(out, door)
	out = append(out, rows[at:]...)
	return out
}

// ShiftDoorRowPair swaps the left seat pair of the row holding seat 21 with the
// left pair of the row directly above it, so 21/22 sit beside the rear door
// while 23/24 stay one row lower. It is a no-op when seat 21 does not exist.
func ShiftDoorRowPair(rows []Row) []Row {
	idx := -1
	for i, r := range rows {
		if len(r) > 1 && r[0].IsSeat() && r[0].Seat == doorPairAnchorSeat {
			idx = i
			break
		}
	}
	if idx <= 0 {
		return rows
	}
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = r.clone()
	}
	above, cur := out[idx-1], out[idx]
	above[0], cur[0] = cur[0], above[0]
	above[1], cur[1] = cur[1], above[1]
	return out
}
