package repositories

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"

	"busexcursion/internal/domain"
	"busexcursion/internal/domain/models"
)

func TestAssociationCreateLowercasesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO associations").
		WithArgs("Pro Loco", "info@proloco.it", "hash", nil, "", "").
		WillReturnResult(sqlmock.NewResult(7, 1))

	repo := AssociationRepository{DB: db}
	id, err := repo.Create(context.Background(), models.Association{
		Name: " Pro Loco ", Email: " Info@ProLoco.IT", PasswordHash: "hash",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id != 7 {
		t.Fatalf("expected id 7, got %d", id)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssociationCreateDuplicateEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO associations").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"})

	_, err = AssociationRepository{DB: db}.Create(context.Background(), models.Association{Email: "a@b.c"})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestAssociationGetByEmailNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM associations WHERE email").
		WithArgs("nobody@x.it").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = AssociationRepository{DB: db}.GetByEmail(context.Background(), "Nobody@x.it")
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssociationGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM associations WHERE id").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "logo", "phone", "address"}).
			AddRow(3, "Pro Loco", "info@proloco.it", "hash", "", "0123", "Via Roma 1"))

	a, err := AssociationRepository{DB: db}.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if a.Name != "Pro Loco" || a.Address != "Via Roma 1" {
		t.Fatalf("unexpected association: %+v", a)
	}
}

func TestAssociationUpdateProfileMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE associations SET").
		WithArgs("Pro Loco", nil, "", "", int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM associations WHERE id").
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	err = AssociationRepository{DB: db}.UpdateProfile(context.Background(), 9, models.AssociationProfileInput{Name: "Pro Loco"})
	if !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
