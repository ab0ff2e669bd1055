package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	intconfig "busexcursion/internal/config"
	intdb "busexcursion/internal/db"
	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
)

type PassengerRepository struct {
	DB *sql.DB
}

func (r PassengerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// ListByExcursion returns the passengers ordered by seat.
func (r PassengerRepository) ListByExcursion(ctx context.Context, excursionID int64) ([]models.Passenger, error) {
	rows, err := r.db().QueryContext(ctx, `
		SELECT id, excursion_id, seat, name, surname, COALESCE(phone,''), COALESCE(stop_name,'')
		FROM passengers
		WHERE excursion_id=?
		ORDER BY seat ASC, id ASC
	`, excursionID)
	if err != nil {
		return nil, fmt.Errorf("list passengers: %w", err)
	}
	defer rows.Close()

	out := []models.Passenger{}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.ExcursionID, &p.Seat, &p.Name, &p.Surname, &p.Phone, &p.StopName); err != nil {
			return out, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Upsert writes the passenger of (excursion, seat), replacing any previous one.
func (r PassengerRepository) Upsert(ctx context.Context, p models.Passenger) error {
	_, err := r.db().ExecContext(ctx, `
		INSERT INTO passengers (excursion_id, seat, name, surname, phone, stop_name)
		VALUES (?, ?, ?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE
			name=VALUES(name), surname=VALUES(surname), phone=VALUES(phone), stop_name=VALUES(stop_name)
	`, p.ExcursionID, p.Seat, strings.TrimSpace(p.Name), strings.TrimSpace(p.Surname),
		intdb.NullIfEmpty(strings.TrimSpace(p.Phone)), intdb.NullIfEmpty(strings.TrimSpace(p.StopName)))
	if err != nil {
		return fmt.Errorf("upsert passenger seat %d: %w", p.Seat, err)
	}
	return nil
}

// DeleteSeat frees one seat; freeing an already empty seat is NotFound.
func (r PassengerRepository) DeleteSeat(ctx context.Context, excursionID int64, seat int) error {
	res, err := r.db().ExecContext(ctx, `DELETE FROM passengers WHERE excursion_id=? AND seat=?`, excursionID, seat)
	if err != nil {
		return fmt.Errorf("delete passenger seat %d: %w", seat, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "passenger"}
	}
	return nil
}

// ClearByExcursion frees every seat and returns how many were freed.
func (r PassengerRepository) ClearByExcursion(ctx context.Context, excursionID int64) (int64, error) {
	res, err := r.db().ExecContext(ctx, `DELETE FROM passengers WHERE excursion_id=?`, excursionID)
	if err != nil {
		return 0, fmt.Errorf("clear passengers: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// MaxSeat is the highest occupied seat, 0 when the excursion is empty.
func (r PassengerRepository) MaxSeat(ctx context.Context, excursionID int64) (int, error) {
	var max sql.NullInt64
	if err := r.db().QueryRowContext(ctx,
		`SELECT MAX(seat) FROM passengers WHERE excursion_id=?`, excursionID).Scan(&max); err != nil {
		return 0, fmt.Errorf("max seat: %w", err)
	}
	return int(max.Int64), nil
}
