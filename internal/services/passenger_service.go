package services

import (
	"context"
	"fmt"
	"strings"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/utils"
)

type PassengerService struct {
	Excursions ExcursionStore
	Passengers PassengerStore
	RequestID  string
}

func (s PassengerService) List(ctx context.Context, associationID, excursionID int64) ([]models.Passenger, error) {
	if _, err := s.Excursions.GetByID(ctx, associationID, excursionID); err != nil {
		return nil, err
	}
	return s.Passengers.ListByExcursion(ctx, excursionID)
}

// AssignSeat seats a passenger, replacing whoever held the seat.
func (s PassengerService) AssignSeat(ctx context.Context, associationID, excursionID int64, seat int, in models.PassengerInput) (models.Passenger, error) {
	e, err := s.Excursions.GetByID(ctx, associationID, excursionID)
	if err != nil {
		return models.Passenger{}, err
	}
	if err := checkSeat(e, seat); err != nil {
		return models.Passenger{}, err
	}
	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.StopName = utils.NormalizeSpace(in.StopName)
	if err := validateInput(in); err != nil {
		return models.Passenger{}, err
	}
	if in.StopName != "" && len(e.Stops) > 0 && !e.HasStop(in.StopName) {
		return models.Passenger{}, domain.ValidationError{Field: "stop_name", Msg: "halte tidak terdaftar pada ekskursi"}
	}
	p := models.Passenger{
		ExcursionID: excursionID,
		Seat:        seat,
		Name:        in.Name,
		Surname:     in.Surname,
		Phone:       strings.TrimSpace(in.Phone),
		StopName:    in.StopName,
	}
	if err := s.Passengers.Upsert(ctx, p); err != nil {
		return models.Passenger{}, err
	}
	utils.LogEventf(s.RequestID, "passenger", "assign_seat", "excursion_id=%d seat=%d", excursionID, seat)
	return p, nil
}

func (s PassengerService) ClearSeat(ctx context.Context, associationID, excursionID int64, seat int) error {
	e, err := s.Excursions.GetByID(ctx, associationID, excursionID)
	if err != nil {
		return err
	}
	if err := checkSeat(e, seat); err != nil {
		return err
	}
	if err := s.Passengers.DeleteSeat(ctx, excursionID, seat); err != nil {
		return err
	}
	utils.LogEventf(s.RequestID, "passenger", "clear_seat", "excursion_id=%d seat=%d", excursionID, seat)
	return nil
}

func (s PassengerService) ClearAll(ctx context.Context, associationID, excursionID int64) (int64, error) {
	if _, err := s.Excursions.GetByID(ctx, associationID, excursionID); err != nil {
		return 0, err
	}
	n, err := s.Passengers.ClearByExcursion(ctx, excursionID)
	if err != nil {
		return 0, err
	}
	utils.LogEventf(s.RequestID, "passenger", "clear_all", "excursion_id=%d freed=%d", excursionID, n)
	return n, nil
}

func checkSeat(e models.Excursion, seat int) error {
	if seat < 1 || seat > e.AvailableSeats {
		return domain.ValidationError{Field: "seat", Msg: fmt.Sprintf("kursi harus antara 1 dan %d", e.AvailableSeats)}
	}
	return nil
}
