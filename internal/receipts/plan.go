package receipts

import "fmt"

// Placement addresses receipt Index (position in the input list) on a page.
type Placement struct {
	Index    int     `json:"index"`
	Page     int     `json:"page"`
	Position int     `json:"position"`
	Y        float64 `json:"y"`
	// NewPage is set on the first receipt of every page after the first.
	NewPage bool `json:"new_page"`
}

// Plan positions count receipts: page = i / perPage, position = i % perPage,
// y = marginTop + position * (height + gap).
func Plan(count int, g Geometry) []Placement {
	if count <= 0 || g.ReceiptsPerPage <= 0 {
		return nil
	}
	out := make([]Placement, count)
	for i := 0; i < count; i++ {
		page := i / g.ReceiptsPerPage
		pos := i % g.ReceiptsPerPage
		out[i] = Placement{
			Index:    i,
			Page:     page,
			Position: pos,
			Y:        g.MarginTop + float64(pos)*(g.ReceiptHeight+g.VerticalGap),
			NewPage:  pos == 0 && page > 0,
		}
	}
	return out
}

// PageCount is the number of pages Plan spreads count receipts over.
func PageCount(count int, g Geometry) int {
	if count <= 0 || g.ReceiptsPerPage <= 0 {
		return 0
	}
	return (count + g.ReceiptsPerPage - 1) / g.ReceiptsPerPage
}

// Number is the receipt number of a seat. It depends only on the seat, so it
// stays stable when the passenger list is reordered.
func Number(seat int) string {
	return fmt.Sprintf("REC-%03d", seat)
}
