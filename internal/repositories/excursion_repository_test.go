package repositories

import (
	"context"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
)

var excursionColumns = []string{
	"id", "association_id", "name", "date", "time", "place", "stops",
	"price", "available_seats", "created_at", "updated_at",
}

func TestExcursionCreateEncodesStops(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO excursions").
		WithArgs(int64(1), "Gita al lago", "2024-06-01", "07:30", "Como", `["Centro","Stazione"]`, "25", 50).
		WillReturnResult(sqlmock.NewResult(11, 1))

	id, err := ExcursionRepository{DB: db}.Create(context.Background(), models.Excursion{
		AssociationID: 1, Name: "Gita al lago", Date: "2024-06-01", Time: "07:30",
		Place: "Como", Stops: []string{"Centro", "Stazione"}, Price: "25", AvailableSeats: 50,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 11 {
		t.Fatalf("expected id 11, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExcursionGetByIDScopedToAssociation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM excursions WHERE id=\\? AND association_id=\\?").
		WithArgs(int64(5), int64(2)).
		WillReturnRows(sqlmock.NewRows(excursionColumns))

	_, err = ExcursionRepository{DB: db}.GetByID(context.Background(), 2, 5)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExcursionListDecodesRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM excursions WHERE association_id").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(excursionColumns).
			AddRow(2, 1, "Mare", "2024-07-10", "06:00:00", "Rimini", `["Centro"]`, "30", 55, "", "").
			AddRow(1, 1, "Lago", "2024-06-01 00:00:00", "07:30", "Como", "Stazione, Centro", "25", 20, "", ""))

	list, err := ExcursionRepository{DB: db}.ListByAssociation(context.Background(), 1)
	if err != nil {
		t.Fatalf("ListByAssociation: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 excursions, got %d", len(list))
	}
	if list[0].Time != "06:00" {
		t.Fatalf("time not trimmed: %q", list[0].Time)
	}
	if list[1].Date != "2024-06-01" {
		t.Fatalf("date not trimmed: %q", list[1].Date)
	}
	if !reflect.DeepEqual(list[1].Stops, []string{"Stazione", "Centro"}) {
		t.Fatalf("legacy stops not split: %#v", list[1].Stops)
	}
}

func TestExcursionDeleteRemovesPassengers(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM excursions").WithArgs(int64(4), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM passengers").WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 12))
	mock.ExpectCommit()

	if err := (ExcursionRepository{DB: db}).Delete(context.Background(), 1, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExcursionDeleteMissingRollsBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM excursions").WithArgs(int64(4), int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = ExcursionRepository{DB: db}.Delete(context.Background(), 1, 4)
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDecodeStops(t *testing.T) {
	if got := decodeStops(""); len(got) != 0 || got == nil {
		t.Fatalf("empty stops should be an empty slice, got %#v", got)
	}
	if got := decodeStops(`[" Centro ","Centro","Porto"]`); !reflect.DeepEqual(got, []string{"Centro", "Porto"}) {
		t.Fatalf("unexpected stops %#v", got)
	}
}
