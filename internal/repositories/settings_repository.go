package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	intconfig "busexcursion/internal/config"
)

// KeyReceiptSequence holds the last number used by bulk blank receipts.
const KeyReceiptSequence = "receipt_seq"

// SettingsRepository is the key-value slot store.
type SettingsRepository struct {
	DB *sql.DB
}

func (r SettingsRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetInt returns def when the key is absent.
func (r SettingsRepository) GetInt(ctx context.Context, key string, def int) (int, error) {
	var raw string
	err := r.db().QueryRowContext(ctx, `SELECT v FROM settings WHERE k=? LIMIT 1`, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get setting %s: %w", key, err)
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("setting %s is not a number: %q", key, raw)
	}
	return n, nil
}

func (r SettingsRepository) SetInt(ctx context.Context, key string, v int) error {
	_, err := r.db().ExecContext(ctx,
		`INSERT INTO settings (k, v) VALUES (?, ?) ON DUPLICATE KEY UPDATE v=VALUES(v)`, key, strconv.Itoa(v))
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// ReceiptSequence exposes the receipt_seq slot as a read/write counter.
type ReceiptSequence struct {
	Settings SettingsRepository
}

func (s ReceiptSequence) Current(ctx context.Context) (int, error) {
	return s.Settings.GetInt(ctx, KeyReceiptSequence, 0)
}

func (s ReceiptSequence) Save(ctx context.Context, v int) error {
	return s.Settings.SetInt(ctx, KeyReceiptSequence, v)
}
