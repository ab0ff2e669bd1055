package services

import (
	"context"
	"reflect"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
	"busexcursion/internal/repositories"
)

func validExcursionInput() models.ExcursionInput {
	return models.ExcursionInput{
		Name: " Gita al lago ", Date: "2024-06-01", Time: "07:30", Place: "Como",
		Stops: []string{"Centro", " Centro ", "Stazione"}, Price: "25", AvailableSeats: 40,
	}
}

func TestExcursionCreateCleansInput(t *testing.T) {
	svc := ExcursionService{Excursions: newMemExcursions(), Passengers: newMemPassengers()}
	e, err := svc.Create(context.Background(), 1, validExcursionInput())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e.Name != "Gita al lago" || e.AssociationID != 1 || e.AvailableSeats != 40 {
		t.Fatalf("unexpected excursion %+v", e)
	}
	if !reflect.DeepEqual(e.Stops, []string{"Centro", "Stazione"}) {
		t.Fatalf("stops not cleaned: %#v", e.Stops)
	}
}

func TestExcursionCreateRejectsCapacity(t *testing.T) {
	svc := ExcursionService{Excursions: newMemExcursions(), Passengers: newMemPassengers()}
	for _, seats := range []int{0, -3, 56} {
		in := validExcursionInput()
		in.AvailableSeats = seats
		_, err := svc.Create(context.Background(), 1, in)
		if !domain.IsInvalidCapacity(err) || !domain.IsValidation(err) {
			t.Fatalf("seats=%d: expected invalid capacity, got %v", seats, err)
		}
	}
}

func TestExcursionCreateRejectsBadDate(t *testing.T) {
	svc := ExcursionService{Excursions: newMemExcursions(), Passengers: newMemPassengers()}
	in := validExcursionInput()
	in.Date = "01/06/2024"
	if _, err := svc.Create(context.Background(), 1, in); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestExcursionShrinkBelowOccupiedSeat(t *testing.T) {
	ex := sampleExcursion()
	svc := ExcursionService{
		Excursions: newMemExcursions(ex),
		Passengers: newMemPassengers(models.Passenger{ExcursionID: ex.ID, Seat: 28, Name: "Mario", Surname: "Rossi"}),
	}
	in := validExcursionInput()
	in.AvailableSeats = 20
	if _, err := svc.Update(context.Background(), 1, ex.ID, in); !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
	in.AvailableSeats = 28
	got, err := svc.Update(context.Background(), 1, ex.ID, in)
	if err != nil {
		t.Fatalf("Update to 28: %v", err)
	}
	if got.AvailableSeats != 28 || got.ID != ex.ID {
		t.Fatalf("unexpected updated excursion %+v", got)
	}
}

func TestExcursionOtherAssociationNotFound(t *testing.T) {
	svc := ExcursionService{Excursions: newMemExcursions(sampleExcursion()), Passengers: newMemPassengers()}
	if _, err := svc.Get(context.Background(), 2, 10); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.Delete(context.Background(), 2, 10); !domain.IsNotFound(err) {
		t.Fatalf("expected not found on delete, got %v", err)
	}
}

func TestExcursionUpdateWithRepositories(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	cols := []string{"id", "association_id", "name", "date", "time", "place", "stops", "price", "available_seats", "created_at", "updated_at"}
	mock.ExpectQuery("FROM excursions WHERE id").WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(10, 1, "Lago", "2024-06-01", "07:30", "Como", `[]`, "25", 50, "", ""))
	mock.ExpectQuery("SELECT MAX\\(seat\\)").WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(12))
	mock.ExpectExec("UPDATE excursions").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM excursions WHERE id").WithArgs(int64(10), int64(1)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(10, 1, "Gita al lago", "2024-06-01", "07:30", "Como", `["Centro","Stazione"]`, "25", 40, "", ""))

	svc := ExcursionService{
		Excursions: repositories.ExcursionRepository{DB: db},
		Passengers: repositories.PassengerRepository{DB: db},
	}
	got, err := svc.Update(context.Background(), 1, 10, validExcursionInput())
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got.AvailableSeats != 40 {
		t.Fatalf("unexpected seats %d", got.AvailableSeats)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
