package seatlayout

import "fmt"

// Builder produces a FloorPlan for a capacity. The interactive and print
// layouts deliberately differ: the interactive one follows the capacity, the
// print one always draws the full MaxSeats bus.
type Builder interface {
	Variant() Variant
	Build(capacity int) (FloorPlan, error)
}

// Interactive is the seat-map geometry derived from the capacity.
type Interactive struct{}

func (Interactive) Variant() Variant { return VariantInteractive }

// Build prepends the driver/guide row to the allocator output.
func (Interactive) Build(capacity int) (FloorPlan, error) {
	rows, err := Allocate(capacity)
	if err != nil {
		return FloorPlan{}, err
	}
	front := Row{crewCell("driver"), emptyCell(), aisleCell(), emptyCell(), crewCell("guide")}
	return FloorPlan{
		Variant:  VariantInteractive,
		Capacity: capacity,
		Rows:     append([]Row{front}, rows...),
	}, nil
}

// printTemplate is the fixed 16-row print geometry: driver row, vestibule with
// the front door, 13 paired rows (the 7th has the rear door on its right) and a
// 3+gap+2 rear row. Tokens: S seat, | aisle, G door gap, D driver, _ empty.
var printTemplate = []string{
	"D_|__",
	"__|GG",
	"SS|SS", "SS|SS", "SS|SS", "SS|SS", "SS|SS", "SS|SS",
	"SS|GG",
	"SS|SS", "SS|SS", "SS|SS", "SS|SS", "SS|SS", "SS|SS",
	"SSS_SS",
}

// Print is the fixed geometry used by the printable seat map.
type Print struct{}

func (Print) Variant() Variant { return VariantPrint }

// Build validates capacity but lays out every template seat; seats beyond the
// capacity are still regular seat cells.
func (Print) Build(capacity int) (FloorPlan, error) {
	if err := ValidateCapacity(capacity); err != nil {
		return FloorPlan{}, err
	}
	rows, err := expandTemplate(printTemplate)
	if err != nil {
		return FloorPlan{}, err
	}
	return FloorPlan{Variant: VariantPrint, Capacity: capacity, Rows: rows}, nil
}

func expandTemplate(tpl []string) ([]Row, error) {
	rows := make([]Row, 0, len(tpl))
	next := 1
	for i, line := range tpl {
		row := make(Row, 0, len(line))
		for _, tok := range line {
			switch tok {
			case 'S':
				row = append(row, seatCell(next))
				next++
			case '|':
				row = append(row, aisleCell())
			case 'G':
				row = append(row, doorCell())
			case 'D':
				row = append(row, crewCell("driver"))
			case '_':
				row = append(row, emptyCell())
			default:
				return nil, fmt.Errorf("template row %d: unknown token %q", i+1, tok)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// BuilderFor returns the strategy for variant.
func BuilderFor(v Variant) (Builder, error) {
	switch v {
	case VariantInteractive, "":
		return Interactive{}, nil
	case VariantPrint:
		return Print{}, nil
	default:
		return nil, fmt.Errorf("unknown layout variant %q", v)
	}
}
