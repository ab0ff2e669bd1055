package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestReceiptSequenceDefaultsToZero(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT v FROM settings").
		WithArgs(KeyReceiptSequence).
		WillReturnRows(sqlmock.NewRows([]string{"v"}))

	seq := ReceiptSequence{Settings: SettingsRepository{DB: db}}
	n, err := seq.Current(context.Background())
	if err != nil || n != 0 {
		t.Fatalf("Current: n=%d err=%v", n, err)
	}
}

func TestReceiptSequenceRoundTrip(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO settings").
		WithArgs(KeyReceiptSequence, "110").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT v FROM settings").
		WithArgs(KeyReceiptSequence).
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("110"))

	seq := ReceiptSequence{Settings: SettingsRepository{DB: db}}
	if err := seq.Save(context.Background(), 110); err != nil {
		t.Fatalf("Save: %v", err)
	}
	n, err := seq.Current(context.Background())
	if err != nil || n != 110 {
		t.Fatalf("Current: n=%d err=%v", n, err)
	}
}

func TestSettingsGetIntRejectsGarbage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT v FROM settings").
		WithArgs("k").
		WillReturnRows(sqlmock.NewRows([]string{"v"}).AddRow("abc"))

	if _, err := (SettingsRepository{DB: db}).GetInt(context.Background(), "k", 0); err == nil {
		t.Fatalf("expected error for non-numeric setting")
	}
}
