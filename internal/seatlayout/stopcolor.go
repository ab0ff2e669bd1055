package seatlayout

import "unicode/utf16"

// StopPalette is shared by the seat map and the printed legend; the order is
// part of the output and must not change.
var StopPalette = [8]string{
	"#3B82F6", // blue
	"#10B981", // emerald
	"#F59E0B", // amber
	"#EF4444", // red
	"#8B5CF6", // violet
	"#EC4899", // pink
	"#14B8A6", // teal
	"#F97316", // orange
}

// StopColor maps a stop name onto StopPalette with the classic
// hash = c + ((hash << 5) - hash) string hash over UTF-16 code units, where the
// shift works on the 32-bit truncation of the running value. Different stops
// can share a color. An empty name is always StopPalette[0].
func StopColor(stopName string) string {
	if stopName == "" {
		return StopPalette[0]
	}
	return StopPalette[paletteIndex(stopHash(stopName))]
}

func stopHash(s string) int64 {
	var h int64
	for _, cu := range utf16.Encode([]rune(s)) {
		shifted := int64(int32(h) << 5)
		h = int64(cu) + (shifted - h)
	}
	return h
}

func paletteIndex(h int64) int {
	if h < 0 {
		h = -h
	}
	return int(h % int64(len(StopPalette)))
}

// LegendEntry is one stop badge of the printed legend.
type LegendEntry struct {
	Stop  string `json:"stop"`
	Color string `json:"color"`
	Count int    `json:"count"`
}

// Legend returns one entry per stop in stops order, counting occupied seats per
// stop from occ. Stops used by passengers but missing from stops are appended
// in first-seen order.
func Legend(stops []string, occ Occupancy) []LegendEntry {
	counts := map[string]int{}
	var extra []string
	known := map[string]bool{}
	for _, s := range stops {
		known[s] = true
	}
	for _, v := range occ.Seats {
		if !v.Occupied || v.Passenger == nil || v.Passenger.StopName == "" {
			continue
		}
		name := v.Passenger.StopName
		if !known[name] {
			known[name] = true
			extra = append(extra, name)
		}
		counts[name]++
	}
	out := make([]LegendEntry, 0, len(stops)+len(extra))
	for _, s := range append(append([]string{}, stops...), extra...) {
		out = append(out, LegendEntry{Stop: s, Color: StopColor(s), Count: counts[s]})
	}
	return out
}
