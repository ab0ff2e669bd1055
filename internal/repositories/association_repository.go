package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	intconfig "busexcursion/internal/config"
	intdb "busexcursion/internal/db"
	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
)

type AssociationRepository struct {
	DB *sql.DB
}

func (r AssociationRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const associationCols = `id, name, email, password_hash, COALESCE(logo,''), phone, address`

func scanAssociation(row *sql.Row) (models.Association, error) {
	var a models.Association
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Logo, &a.Phone, &a.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return a, domain.NotFoundError{Resource: "association", Err: err}
	}
	return a, err
}

// Create inserts an association; a taken email is a ConflictError.
func (r AssociationRepository) Create(ctx context.Context, a models.Association) (int64, error) {
	res, err := r.db().ExecContext(ctx, `
		INSERT INTO associations (name, email, password_hash, logo, phone, address)
		VALUES (?, ?, ?, ?, ?, ?)
	`, strings.TrimSpace(a.Name), strings.ToLower(strings.TrimSpace(a.Email)), a.PasswordHash,
		intdb.NullIfEmpty(a.Logo), a.Phone, a.Address)
	if err != nil {
		if isDuplicateKey(err) {
			return 0, domain.ConflictError{Resource: "association", Msg: "email sudah terdaftar", Err: err}
		}
		return 0, fmt.Errorf("insert association: %w", err)
	}
	return res.LastInsertId()
}

func (r AssociationRepository) GetByID(ctx context.Context, id int64) (models.Association, error) {
	if id <= 0 {
		return models.Association{}, domain.NotFoundError{Resource: "association"}
	}
	return scanAssociation(r.db().QueryRowContext(ctx,
		`SELECT `+associationCols+` FROM associations WHERE id=? LIMIT 1`, id))
}

func (r AssociationRepository) GetByEmail(ctx context.Context, email string) (models.Association, error) {
	return scanAssociation(r.db().QueryRowContext(ctx,
		`SELECT `+associationCols+` FROM associations WHERE email=? LIMIT 1`,
		strings.ToLower(strings.TrimSpace(email))))
}

// UpdateProfile replaces the branding fields; an empty logo clears it.
func (r AssociationRepository) UpdateProfile(ctx context.Context, id int64, in models.AssociationProfileInput) error {
	res, err := r.db().ExecContext(ctx, `
		UPDATE associations SET name=?, logo=?, phone=?, address=?, updated_at=NOW()
		WHERE id=?
	`, strings.TrimSpace(in.Name), intdb.NullIfEmpty(strings.TrimSpace(in.Logo)),
		strings.TrimSpace(in.Phone), strings.TrimSpace(in.Address), id)
	if err != nil {
		return fmt.Errorf("update association: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// MySQL reports 0 for an unchanged row too; confirm it exists.
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
	}
	return nil
}
