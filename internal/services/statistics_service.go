package services

import (
	"database/sql"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
)

// StatisticsService derives occupancy and revenue metrics from booking state.
// Read-only; no side effects.
type StatisticsService struct {
	BookingRepo repositories.BookingRepository
	DB          *sql.DB
}

func (s StatisticsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s StatisticsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s StatisticsService) GetHotelBookingStatistics(hotelID int64) (models.BookingStatistics, error) {
	stats, err := s.bookings().Statistics(hotelID)
	if err != nil {
		return models.BookingStatistics{}, domain.InternalError{Err: err}
	}

	stats.TotalRevenue = utils.RoundMoney(stats.TotalRevenue)
	if stats.TotalBookings > 0 {
		stats.OccupancyRate = utils.RoundMoney(float64(stats.ConfirmedBookings) / float64(stats.TotalBookings) * 100)
	}
	return stats, nil
}
