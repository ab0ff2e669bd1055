package services

import (
	"context"

	"busexcursion/internal/domain/models"
)

// The repositories package satisfies these; tests substitute in-memory fakes.

type AssociationStore interface {
	Create(ctx context.Context, a models.Association) (int64, error)
	GetByID(ctx context.Context, id int64) (models.Association, error)
	GetByEmail(ctx context.Context, email string) (models.Association, error)
	UpdateProfile(ctx context.Context, id int64, in models.AssociationProfileInput) error
}

type ExcursionStore interface {
	Create(ctx context.Context, e models.Excursion) (int64, error)
	GetByID(ctx context.Context, associationID, id int64) (models.Excursion, error)
	ListByAssociation(ctx context.Context, associationID int64) ([]models.Excursion, error)
	Update(ctx context.Context, e models.Excursion) error
	Delete(ctx context.Context, associationID, id int64) error
}

type PassengerStore interface {
	ListByExcursion(ctx context.Context, excursionID int64) ([]models.Passenger, error)
	Upsert(ctx context.Context, p models.Passenger) error
	DeleteSeat(ctx context.Context, excursionID int64, seat int) error
	ClearByExcursion(ctx context.Context, excursionID int64) (int64, error)
	MaxSeat(ctx context.Context, excursionID int64) (int, error)
}

// SequenceStore is the persisted counter behind bulk blank receipts.
type SequenceStore interface {
	Current(ctx context.Context) (int, error)
	Save(ctx context.Context, v int) error
}
