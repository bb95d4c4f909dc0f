package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestStatisticsRevenueCountsOnlyStaysThatHeldARoom(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	// one confirmed ($200), one pending ($150), one cancelled ($300):
	// revenue is the confirmed 200 only, occupancy 1/3.
	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "pending", "revenue"}).
			AddRow(3, 1, 1, 200.0))

	svc := StatisticsService{DB: db}
	stats, err := svc.GetHotelBookingStatistics(10)
	if err != nil {
		t.Fatalf("statistics error: %v", err)
	}
	if stats.TotalBookings != 3 || stats.ConfirmedBookings != 1 || stats.PendingBookings != 1 {
		t.Fatalf("counts mismatch: %+v", stats)
	}
	if stats.TotalRevenue != 200.0 {
		t.Fatalf("revenue mismatch: got %v want 200", stats.TotalRevenue)
	}
	if stats.OccupancyRate != 33.33 {
		t.Fatalf("occupancy mismatch: got %v want 33.33", stats.OccupancyRate)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStatisticsEmptyHotel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"total", "confirmed", "pending", "revenue"}).
			AddRow(0, 0, 0, 0.0))

	svc := StatisticsService{DB: db}
	stats, err := svc.GetHotelBookingStatistics(10)
	if err != nil {
		t.Fatalf("statistics error: %v", err)
	}
	if stats.OccupancyRate != 0 {
		t.Fatalf("occupancy should be 0 with no bookings, got %v", stats.OccupancyRate)
	}
	if stats.TotalRevenue != 0 {
		t.Fatalf("revenue should be 0 with no bookings, got %v", stats.TotalRevenue)
	}
}
