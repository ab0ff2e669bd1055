package services

import (
	"context"
	"testing"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/metrics"
	"busexcursion/internal/pdfdoc"
	"busexcursion/internal/seatlayout"
)

func newSeatMapService(ps *memPassengers, rec *pdfdoc.Recorder) SeatMapService {
	return SeatMapService{
		Associations: newMemAssociations(sampleAssociation()),
		Excursions:   newMemExcursions(sampleExcursion()),
		Passengers:   ps,
		Metrics:      metrics.NewCollector(),
		NewSurface:   func(string) pdfdoc.Surface { return rec },
	}
}

func TestInteractiveSeatMap(t *testing.T) {
	ps := newMemPassengers(
		models.Passenger{ExcursionID: 10, Seat: 7, Name: "Mario", Surname: "Rossi", StopName: "Centro"},
	)
	ps.extra = []models.Passenger{{ExcursionID: 10, Seat: 7, Name: "Dup", Surname: "Licate"}}
	svc := newSeatMapService(ps, nil)

	m, err := svc.Interactive(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Interactive: %v", err)
	}
	if m.Plan.Variant != seatlayout.VariantInteractive || m.Plan.SeatCount() != 30 {
		t.Fatalf("unexpected plan %s with %d seats", m.Plan.Variant, m.Plan.SeatCount())
	}
	if m.Occupied != 1 || len(m.Duplicates) != 1 || m.Duplicates[0] != 7 {
		t.Fatalf("occupied=%d duplicates=%v", m.Occupied, m.Duplicates)
	}
	var found bool
	for _, row := range m.Cells {
		for _, c := range row {
			if c.View != nil && c.View.Seat == 7 {
				found = true
				if c.View.Passenger.Name != "Mario" {
					t.Fatalf("first passenger should win, got %q", c.View.Passenger.Name)
				}
				if c.View.StopColor != seatlayout.StopColor("Centro") {
					t.Fatalf("unexpected stop color %s", c.View.StopColor)
				}
			}
		}
	}
	if !found {
		t.Fatalf("seat 7 not present in cells")
	}
}

func TestPrintSeatMap(t *testing.T) {
	svc := newSeatMapService(newMemPassengers(), nil)
	m, err := svc.Print(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	if m.Plan.SeatCount() != seatlayout.MaxSeats {
		t.Fatalf("print plan should always have %d seats, got %d", seatlayout.MaxSeats, m.Plan.SeatCount())
	}
	if len(m.Table.Left) != 15 || len(m.Table.Right) != 15 {
		t.Fatalf("unexpected table split %d/%d", len(m.Table.Left), len(m.Table.Right))
	}
}

func TestPrintPDF(t *testing.T) {
	rec := &pdfdoc.Recorder{}
	svc := newSeatMapService(newMemPassengers(), rec)
	data, name, err := svc.PrintPDF(context.Background(), 1, 10)
	if err != nil {
		t.Fatalf("PrintPDF: %v", err)
	}
	if len(data) == 0 || rec.Pages == 0 {
		t.Fatalf("nothing rendered")
	}
	if name != "denah-kursi-gita-al-lago.pdf" {
		t.Fatalf("unexpected filename %q", name)
	}
}

func TestPrintPDFOutputFailure(t *testing.T) {
	rec := &pdfdoc.Recorder{Fail: true}
	svc := newSeatMapService(newMemPassengers(), rec)
	if _, _, err := svc.PrintPDF(context.Background(), 1, 10); !domain.IsInternal(err) {
		t.Fatalf("expected internal error, got %v", err)
	}
}
