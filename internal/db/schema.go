package db

import (
	"context"
	"database/sql"
	"fmt"
	"log"
)

var createStatements = []struct {
	table string
	ddl   string
}{
	{"associations", `CREATE TABLE IF NOT EXISTS associations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		email VARCHAR(190) NOT NULL UNIQUE,
		password_hash VARCHAR(100) NOT NULL,
		logo MEDIUMTEXT NULL,
		phone VARCHAR(32) NOT NULL DEFAULT '',
		address VARCHAR(255) NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"excursions", `CREATE TABLE IF NOT EXISTS excursions (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		association_id BIGINT NOT NULL,
		name VARCHAR(150) NOT NULL,
		date DATE NOT NULL,
		time VARCHAR(5) NOT NULL,
		place VARCHAR(150) NOT NULL,
		stops TEXT NOT NULL,
		price VARCHAR(32) NOT NULL,
		available_seats INT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_excursions_association (association_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"passengers", `CREATE TABLE IF NOT EXISTS passengers (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		excursion_id BIGINT NOT NULL,
		seat INT NOT NULL,
		name VARCHAR(100) NOT NULL,
		surname VARCHAR(100) NOT NULL,
		phone VARCHAR(32) NULL,
		stop_name VARCHAR(100) NULL,
		UNIQUE KEY uq_passengers_excursion_seat (excursion_id, seat)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
	{"settings", `CREATE TABLE IF NOT EXISTS settings (
		k VARCHAR(64) PRIMARY KEY,
		v VARCHAR(255) NOT NULL
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`},
}

// addedColumns were introduced after the first release; older passengers
// tables are altered in place.
var addedColumns = []struct {
	table, column, ddl string
}{
	{"passengers", "phone", `ALTER TABLE passengers ADD COLUMN phone VARCHAR(32) NULL`},
	{"passengers", "stop_name", `ALTER TABLE passengers ADD COLUMN stop_name VARCHAR(100) NULL`},
}

// EnsureSchema creates missing tables and adds missing columns.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, st := range createStatements {
		if HasTable(ctx, db, st.table) {
			continue
		}
		if _, err := db.ExecContext(ctx, st.ddl); err != nil {
			return fmt.Errorf("create table %s: %w", st.table, err)
		}
		log.Printf("[DB] action=create_table table=%s", st.table)
	}
	for _, c := range addedColumns {
		if HasColumn(ctx, db, c.table, c.column) {
			continue
		}
		if _, err := db.ExecContext(ctx, c.ddl); err != nil {
			return fmt.Errorf("add column %s.%s: %w", c.table, c.column, err)
		}
		log.Printf("[DB] action=add_column table=%s column=%s", c.table, c.column)
	}
	return nil
}
