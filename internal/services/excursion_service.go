package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/jinzhu/copier"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/seatlayout"
	"busexcursion/internal/utils"
)

type ExcursionService struct {
	Excursions ExcursionStore
	Passengers PassengerStore
	RequestID  string
}

func (s ExcursionService) List(ctx context.Context, associationID int64) ([]models.Excursion, error) {
	return s.Excursions.ListByAssociation(ctx, associationID)
}

func (s ExcursionService) Get(ctx context.Context, associationID, id int64) (models.Excursion, error) {
	if id <= 0 {
		return models.Excursion{}, domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	return s.Excursions.GetByID(ctx, associationID, id)
}

func (s ExcursionService) Create(ctx context.Context, associationID int64, in models.ExcursionInput) (models.Excursion, error) {
	e, err := buildExcursion(in)
	if err != nil {
		return models.Excursion{}, err
	}
	e.AssociationID = associationID
	id, err := s.Excursions.Create(ctx, e)
	if err != nil {
		return models.Excursion{}, err
	}
	utils.LogEvent(s.RequestID, "excursion", "create", fmt.Sprintf("excursion_id=%d seats=%d", id, e.AvailableSeats))
	return s.Excursions.GetByID(ctx, associationID, id)
}

// Update rejects a capacity that would strand an already seated passenger.
func (s ExcursionService) Update(ctx context.Context, associationID, id int64, in models.ExcursionInput) (models.Excursion, error) {
	current, err := s.Get(ctx, associationID, id)
	if err != nil {
		return models.Excursion{}, err
	}
	e, err := buildExcursion(in)
	if err != nil {
		return models.Excursion{}, err
	}
	if e.AvailableSeats < current.AvailableSeats {
		maxSeat, err := s.Passengers.MaxSeat(ctx, id)
		if err != nil {
			return models.Excursion{}, err
		}
		if maxSeat > e.AvailableSeats {
			return models.Excursion{}, domain.ConflictError{
				Resource: "excursion",
				Msg:      fmt.Sprintf("kursi %d masih terisi, kapasitas minimal %d", maxSeat, maxSeat),
			}
		}
	}
	e.ID = current.ID
	e.AssociationID = current.AssociationID
	if err := s.Excursions.Update(ctx, e); err != nil {
		return models.Excursion{}, err
	}
	utils.LogEvent(s.RequestID, "excursion", "update", fmt.Sprintf("excursion_id=%d seats=%d", id, e.AvailableSeats))
	return s.Excursions.GetByID(ctx, associationID, id)
}

func (s ExcursionService) Delete(ctx context.Context, associationID, id int64) error {
	if id <= 0 {
		return domain.ValidationError{Field: "id", Msg: "id tidak valid"}
	}
	if err := s.Excursions.Delete(ctx, associationID, id); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "excursion", "delete", fmt.Sprintf("excursion_id=%d", id))
	return nil
}

func buildExcursion(in models.ExcursionInput) (models.Excursion, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Place = strings.TrimSpace(in.Place)
	in.Price = strings.TrimSpace(in.Price)
	in.Date = strings.TrimSpace(in.Date)
	in.Time = strings.TrimSpace(in.Time)
	if err := validateInput(in); err != nil {
		return models.Excursion{}, err
	}
	if err := seatlayout.ValidateCapacity(in.AvailableSeats); err != nil {
		return models.Excursion{}, err
	}
	var e models.Excursion
	if err := copier.Copy(&e, &in); err != nil {
		return models.Excursion{}, domain.InternalError{Err: err}
	}
	e.Stops = utils.CleanList(in.Stops)
	return e, nil
}
