package repositories

import (
	"testing"

	"travelapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestBookingUpdatePatchNeverTouchesPrice(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	status := "confirmed"
	guests := 3
	mock.ExpectExec(`UPDATE hotel_bookings SET num_guests=\?,booking_status=\? WHERE booking_id=\?`).
		WithArgs(3, "confirmed", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := BookingRepository{DB: db}
	if err := repo.Update(42, models.BookingPatch{NumGuests: &guests, BookingStatus: &status}); err != nil {
		t.Fatalf("update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestBookingUpdateEmptyPatchIsNoOp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	repo := BookingRepository{DB: db}
	if err := repo.Update(42, models.BookingPatch{}); err != nil {
		t.Fatalf("empty patch should be a no-op, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("empty patch reached the database: %v", err)
	}
}

func TestBookingStatisticsSinglePass(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "pending", "revenue"}).
			AddRow(6, 2, 1, 750.5))

	repo := BookingRepository{DB: db}
	stats, err := repo.Statistics(10)
	if err != nil {
		t.Fatalf("statistics error: %v", err)
	}
	if stats.TotalBookings != 6 || stats.ConfirmedBookings != 2 || stats.PendingBookings != 1 {
		t.Fatalf("counts mismatch: %+v", stats)
	}
	if stats.TotalRevenue != 750.5 {
		t.Fatalf("revenue mismatch: got %v", stats.TotalRevenue)
	}
}
