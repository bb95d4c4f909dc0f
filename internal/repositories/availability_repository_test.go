package repositories

import (
	"testing"

	"travelapp/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDecrementSoldOutDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := AvailabilityRepository{DB: db}
	err = repo.Decrement(db, 10, "Deluxe", "2025-06-10")
	if !domain.IsInsufficientInventory(err) {
		t.Fatalf("expected insufficient inventory error, got %v", err)
	}
	if err.Error() != "no rooms available for Deluxe on 2025-06-10" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestDecrementTakesExactlyOneRoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`available_rooms = available_rooms - 1`).
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := AvailabilityRepository{DB: db}
	if err := repo.Decrement(db, 10, "Deluxe", "2025-06-10"); err != nil {
		t.Fatalf("decrement error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestIncrementMissingRowIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`available_rooms = available_rooms \+ 1`).
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := AvailabilityRepository{DB: db}
	if err := repo.Increment(db, 10, "Deluxe", "2025-06-10"); err != nil {
		t.Fatalf("increment on missing row should not fail, got %v", err)
	}
}

func TestQueryRangeHalfOpen(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"availability_id", "hotel_id", "room_type", "date",
		"total_rooms", "available_rooms", "price_per_night", "created_at", "updated_at",
	}).
		AddRow(1, 10, "Deluxe", "2025-06-10", 5, 3, 120.50, "2025-06-01 00:00:00", "2025-06-01 00:00:00").
		AddRow(2, 10, "Deluxe", "2025-06-11", 5, 5, 120.50, "2025-06-01 00:00:00", "2025-06-01 00:00:00")

	mock.ExpectQuery(`date >= \? AND date < \?`).
		WithArgs(int64(10), "Deluxe", "2025-06-10", "2025-06-12").
		WillReturnRows(rows)

	repo := AvailabilityRepository{DB: db}
	recs, err := repo.QueryRange(10, "Deluxe", "2025-06-10", "2025-06-12")
	if err != nil {
		t.Fatalf("query error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].Date != "2025-06-10" || recs[1].Date != "2025-06-11" {
		t.Fatalf("dates out of order: %s, %s", recs[0].Date, recs[1].Date)
	}
	if recs[0].AvailableRooms != 3 {
		t.Fatalf("available rooms mismatch: got %d", recs[0].AvailableRooms)
	}
}

func TestExistsForDate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-10").
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectQuery("SELECT 1 FROM room_availability").
		WithArgs(int64(10), "Deluxe", "2025-06-11").
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	repo := AvailabilityRepository{DB: db}
	ok, err := repo.ExistsForDate(10, "Deluxe", "2025-06-10")
	if err != nil || !ok {
		t.Fatalf("expected existing row, got ok=%v err=%v", ok, err)
	}
	ok, err = repo.ExistsForDate(10, "Deluxe", "2025-06-11")
	if err != nil || ok {
		t.Fatalf("expected no row, got ok=%v err=%v", ok, err)
	}
}
