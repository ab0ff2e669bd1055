package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	intconfig "busexcursion/internal/config"
	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/utils"
)

type ExcursionRepository struct {
	DB *sql.DB
}

func (r ExcursionRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const excursionCols = `id, association_id, name, date, time, place, stops, price, available_seats,
	COALESCE(created_at,''), COALESCE(updated_at,'')`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExcursion(s rowScanner) (models.Excursion, error) {
	var (
		e     models.Excursion
		stops sql.NullString
	)
	if err := s.Scan(&e.ID, &e.AssociationID, &e.Name, &e.Date, &e.Time, &e.Place, &stops,
		&e.Price, &e.AvailableSeats, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return e, err
	}
	e.Date = utils.DateOnly(e.Date)
	e.Time = utils.TimeHM(e.Time)
	e.Stops = decodeStops(stops.String)
	return e, nil
}

// decodeStops tolerates legacy rows that stored stops as a comma list.
func decodeStops(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal([]byte(raw), &out); err == nil {
		return utils.CleanList(out)
	}
	return utils.CleanList(strings.Split(raw, ","))
}

func encodeStops(stops []string) (string, error) {
	if stops == nil {
		stops = []string{}
	}
	b, err := json.Marshal(stops)
	return string(b), err
}

func (r ExcursionRepository) Create(ctx context.Context, e models.Excursion) (int64, error) {
	stops, err := encodeStops(e.Stops)
	if err != nil {
		return 0, err
	}
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO excursions (association_id, name, date, time, place, stops, price, available_seats)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, e.AssociationID, e.Name, e.Date, e.Time, e.Place, stops, e.Price, e.AvailableSeats)
	if err != nil {
		return 0, fmt.Errorf("insert excursion: %w", err)
	}
	return res.LastInsertId()
}

// GetByID scopes the lookup to the owning association; another association's
// excursion is reported as not found.
func (r ExcursionRepository) GetByID(ctx context.Context, associationID, id int64) (models.Excursion, error) {
	row := r.db().QueryRowContext(ctx,
		`SELECT `+excursionCols+` FROM excursions WHERE id=? AND association_id=? LIMIT 1`, id, associationID)
	e, err := scanExcursion(row)
	if errors.Is(err, sql.ErrNoRows) {
		return e, domain.NotFoundError{Resource: "excursion", Err: err}
	}
	return e, err
}

func (r ExcursionRepository) ListByAssociation(ctx context.Context, associationID int64) ([]models.Excursion, error) {
	rows, err := r.db().QueryContext(ctx,
		`SELECT `+excursionCols+` FROM excursions WHERE association_id=? ORDER BY date DESC, time DESC, id DESC`, associationID)
	if err != nil {
		return nil, fmt.Errorf("list excursions: %w", err)
	}
	defer rows.Close()

	out := []models.Excursion{}
	for rows.Next() {
		e, err := scanExcursion(rows)
		if err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r ExcursionRepository) Update(ctx context.Context, e models.Excursion) error {
	stops, err := encodeStops(e.Stops)
	if err != nil {
		return err
	}
	_, err = r.db().ExecContext(ctx, `
		UPDATE excursions
		SET name=?, date=?, time=?, place=?, stops=?, price=?, available_seats=?, updated_at=NOW()
		WHERE id=? AND association_id=?
	`, e.Name, e.Date, e.Time, e.Place, stops, e.Price, e.AvailableSeats, e.ID, e.AssociationID)
	if err != nil {
		return fmt.Errorf("update excursion: %w", err)
	}
	return nil
}

// Delete removes the excursion and its passengers in one transaction.
func (r ExcursionRepository) Delete(ctx context.Context, associationID, id int64) error {
	tx, err := r.db().BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx, `DELETE FROM excursions WHERE id=? AND association_id=?`, id, associationID)
	if err != nil {
		return fmt.Errorf("delete excursion: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "excursion"}
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM passengers WHERE excursion_id=?`, id); err != nil {
		return fmt.Errorf("delete excursion passengers: %w", err)
	}
	return tx.Commit()
}
