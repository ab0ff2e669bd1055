package services

import (
	"context"
	"fmt"
	"time"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/metrics"
	"busexcursion/internal/pdfdoc"
	"busexcursion/internal/seatlayout"
	"busexcursion/internal/seatreport"
	"busexcursion/internal/utils"
)

// SeatMap is the interactive view: the floor plan with every seat cell
// resolved against the passenger list.
type SeatMap struct {
	Excursion  models.Excursion         `json:"excursion"`
	Plan       seatlayout.FloorPlan     `json:"plan"`
	Cells      [][]seatlayout.CellView  `json:"cells"`
	Legend     []seatlayout.LegendEntry `json:"legend"`
	Occupied   int                      `json:"occupied"`
	Duplicates []int                    `json:"duplicates,omitempty"`
}

// PrintSeatMap is the print view: the fixed print plan plus the two-column
// passenger table.
type PrintSeatMap struct {
	Excursion models.Excursion         `json:"excursion"`
	Plan      seatlayout.FloorPlan     `json:"plan"`
	Cells     [][]seatlayout.CellView  `json:"cells"`
	Table     seatlayout.PrintTable    `json:"table"`
	Legend    []seatlayout.LegendEntry `json:"legend"`
	Occupied  int                      `json:"occupied"`
}

type SeatMapService struct {
	Associations AssociationStore
	Excursions   ExcursionStore
	Passengers   PassengerStore
	Metrics      *metrics.Collector
	NewSurface   func(title string) pdfdoc.Surface
	RequestID    string
}

func (s SeatMapService) load(ctx context.Context, associationID, excursionID int64) (models.Excursion, []models.Passenger, error) {
	e, err := s.Excursions.GetByID(ctx, associationID, excursionID)
	if err != nil {
		return e, nil, err
	}
	ps, err := s.Passengers.ListByExcursion(ctx, excursionID)
	return e, ps, err
}

func (s SeatMapService) Interactive(ctx context.Context, associationID, excursionID int64) (SeatMap, error) {
	e, ps, err := s.load(ctx, associationID, excursionID)
	if err != nil {
		return SeatMap{}, err
	}
	plan, err := seatlayout.Interactive{}.Build(e.AvailableSeats)
	if err != nil {
		return SeatMap{}, err
	}
	occ := seatlayout.Resolve(plan, ps)
	s.warnDuplicates(excursionID, occ.Duplicates)
	s.Metrics.ObserveSeatMap(string(plan.Variant))
	return SeatMap{
		Excursion:  e,
		Plan:       plan,
		Cells:      occ.Cells(plan),
		Legend:     seatlayout.Legend(e.Stops, occ),
		Occupied:   occ.OccupiedCount(),
		Duplicates: occ.Duplicates,
	}, nil
}

func (s SeatMapService) Print(ctx context.Context, associationID, excursionID int64) (PrintSeatMap, error) {
	sh, err := s.sheet(ctx, associationID, excursionID)
	if err != nil {
		return PrintSeatMap{}, err
	}
	s.Metrics.ObserveSeatMap(string(sh.Plan.Variant))
	return PrintSeatMap{
		Excursion: sh.Excursion,
		Plan:      sh.Plan,
		Cells:     sh.Occupancy.Cells(sh.Plan),
		Table:     sh.Table,
		Legend:    sh.Legend,
		Occupied:  sh.Occupancy.OccupiedCount(),
	}, nil
}

// PrintPDF renders the print view as a PDF and returns it with a download
// filename.
func (s SeatMapService) PrintPDF(ctx context.Context, associationID, excursionID int64) ([]byte, string, error) {
	sh, err := s.sheet(ctx, associationID, excursionID)
	if err != nil {
		return nil, "", err
	}
	e := sh.Excursion
	s.Metrics.ObserveSeatMap(string(sh.Plan.Variant))

	start := time.Now()
	surface := s.surface("Denah Kursi " + e.Name)
	pages := seatreport.Draw(surface, sh)
	out, err := surface.Output()
	if err != nil {
		return nil, "", domain.InternalError{Msg: "gagal membuat PDF", Err: err}
	}
	s.Metrics.ObserveRender(time.Since(start).Seconds())
	utils.LogEvent(s.RequestID, "seatmap", "print_pdf", fmt.Sprintf("excursion_id=%d pages=%d", excursionID, pages))
	return out, utils.SafeFilename("denah-kursi", e.Name, "pdf"), nil
}

func (s SeatMapService) sheet(ctx context.Context, associationID, excursionID int64) (seatreport.Sheet, error) {
	e, ps, err := s.load(ctx, associationID, excursionID)
	if err != nil {
		return seatreport.Sheet{}, err
	}
	a, err := s.Associations.GetByID(ctx, associationID)
	if err != nil {
		return seatreport.Sheet{}, err
	}
	sh, err := seatreport.Build(a, e, ps)
	if err != nil {
		return sh, err
	}
	s.warnDuplicates(excursionID, sh.Occupancy.Duplicates)
	return sh, nil
}

func (s SeatMapService) surface(title string) pdfdoc.Surface {
	if s.NewSurface != nil {
		return s.NewSurface(title)
	}
	return pdfdoc.NewPDF(title)
}

// warnDuplicates logs seats held twice; the first passenger is shown.
func (s SeatMapService) warnDuplicates(excursionID int64, seats []int) {
	for _, seat := range seats {
		utils.LogEvent(s.RequestID, "seatmap", "duplicate_seat",
			fmt.Sprintf("excursion_id=%d %v", excursionID, domain.DuplicateSeatAssignmentError{Seat: seat}))
	}
}
