package services

import (
	"testing"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func availabilityRow(id int64, total, available int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"availability_id", "hotel_id", "room_type", "date",
		"total_rooms", "available_rooms", "price_per_night", "created_at", "updated_at",
	}).AddRow(id, 10, "Deluxe", "2025-06-10", total, available, 120.50,
		"2025-06-01 00:00:00", "2025-06-01 00:00:00")
}

func TestEnsureAvailabilityOpensFullInventory(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM hotels").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))
	mock.ExpectExec("INSERT INTO room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-10", 5, 5, 120.50).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("FROM room_availability").
		WithArgs(int64(1)).
		WillReturnRows(availabilityRow(1, 5, 5))

	svc := AvailabilityService{DB: db}
	rec, err := svc.EnsureAvailability(EnsureAvailabilityInput{
		HotelID:       10,
		RoomType:      "Deluxe",
		Date:          "2025-06-10",
		TotalRooms:    5,
		PricePerNight: 120.50,
	})
	if err != nil {
		t.Fatalf("ensure error: %v", err)
	}
	if rec.AvailableRooms != rec.TotalRooms {
		t.Fatalf("new record should open fully available: %d/%d", rec.AvailableRooms, rec.TotalRooms)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestEnsureAvailabilityDuplicateDateConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM hotels").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))

	svc := AvailabilityService{DB: db}
	_, err = svc.EnsureAvailability(EnsureAvailabilityInput{
		HotelID:       10,
		RoomType:      "Deluxe",
		Date:          "2025-06-10",
		TotalRooms:    5,
		PricePerNight: 120.50,
	})
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateAvailabilityClampsCounter(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// available above total fails even when only one side changes
	mock.ExpectQuery("FROM room_availability").
		WithArgs(int64(1)).
		WillReturnRows(availabilityRow(1, 5, 3))

	six := 6
	svc := AvailabilityService{DB: db}
	if _, err := svc.UpdateAvailability(1, models.AvailabilityPatch{AvailableRooms: &six}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}

	// shrinking total below the current available count also fails
	mock.ExpectQuery("FROM room_availability").
		WithArgs(int64(1)).
		WillReturnRows(availabilityRow(1, 5, 3))

	two := 2
	if _, err := svc.UpdateAvailability(1, models.AvailabilityPatch{TotalRooms: &two}); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQueryAvailabilityRejectsInvertedRange(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := AvailabilityService{DB: db}
	if _, err := svc.QueryAvailability(10, "Deluxe", "2025-06-12", "2025-06-10"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if _, err := svc.QueryAvailability(10, "Deluxe", "2025-06-10", "2025-06-10"); !domain.IsValidation(err) {
		t.Fatalf("empty range should fail validation, got %v", err)
	}
}
