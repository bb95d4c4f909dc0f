package services

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
)

type AvailabilityService struct {
	AvailabilityRepo repositories.AvailabilityRepository
	HotelRepo        repositories.HotelRepository
	DB               *sql.DB
}

func (s AvailabilityService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s AvailabilityService) availability() repositories.AvailabilityRepository {
	if s.AvailabilityRepo.DB != nil {
		return s.AvailabilityRepo
	}
	return repositories.AvailabilityRepository{DB: s.db()}
}

func (s AvailabilityService) hotels() repositories.HotelRepository {
	if s.HotelRepo.DB != nil {
		return s.HotelRepo
	}
	return repositories.HotelRepository{DB: s.db()}
}

type EnsureAvailabilityInput struct {
	HotelID       int64
	RoomType      string  `json:"room_type"`
	Date          string  `json:"date"`
	TotalRooms    int     `json:"total_rooms"`
	PricePerNight float64 `json:"price_per_night"`
}

// EnsureAvailability opens inventory for one night. Creating a date that
// already has a record is a caller error, surfaced as ConflictError; counter
// changes to existing dates go through UpdateAvailability.
func (s AvailabilityService) EnsureAvailability(in EnsureAvailabilityInput) (models.AvailabilityRecord, error) {
	if strings.TrimSpace(in.RoomType) == "" {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "room_type", Msg: "must not be empty"}
	}
	if _, err := utils.ParseDate(in.Date); err != nil {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if in.TotalRooms < 0 {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "total_rooms", Msg: "must not be negative"}
	}
	if in.PricePerNight <= 0 {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "price_per_night", Msg: "must be positive"}
	}

	exists, err := s.hotels().Exists(in.HotelID)
	if err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}
	if !exists {
		return models.AvailabilityRecord{}, domain.NotFoundError{Resource: "hotel"}
	}

	dup, err := s.availability().ExistsForDate(in.HotelID, in.RoomType, in.Date)
	if err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}
	if dup {
		return models.AvailabilityRecord{}, domain.ConflictError{Resource: "availability", Msg: "record already exists for that date"}
	}

	id, err := s.availability().Insert(models.AvailabilityRecord{
		HotelID:        in.HotelID,
		RoomType:       in.RoomType,
		Date:           in.Date,
		TotalRooms:     in.TotalRooms,
		AvailableRooms: in.TotalRooms,
		PricePerNight:  in.PricePerNight,
	})
	if err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}

	rec, err := s.availability().GetByID(id)
	if err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}
	return rec, nil
}

// UpdateAvailability adjusts counters or the seasonal price for an existing
// record, keeping 0 <= available_rooms <= total_rooms.
func (s AvailabilityService) UpdateAvailability(id int64, patch models.AvailabilityPatch) (models.AvailabilityRecord, error) {
	if patch.PricePerNight != nil && *patch.PricePerNight <= 0 {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "price_per_night", Msg: "must be positive"}
	}

	current, err := s.availability().GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.AvailabilityRecord{}, domain.NotFoundError{Resource: "availability record"}
		}
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}

	total := current.TotalRooms
	if patch.TotalRooms != nil {
		total = *patch.TotalRooms
	}
	available := current.AvailableRooms
	if patch.AvailableRooms != nil {
		available = *patch.AvailableRooms
	}
	if total < 0 {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "total_rooms", Msg: "must not be negative"}
	}
	if available < 0 || available > total {
		return models.AvailabilityRecord{}, domain.ValidationError{Field: "available_rooms", Msg: "must stay between 0 and total_rooms"}
	}

	if err := s.availability().Update(id, patch); err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}

	rec, err := s.availability().GetByID(id)
	if err != nil {
		return models.AvailabilityRecord{}, domain.InternalError{Err: err}
	}
	return rec, nil
}

// QueryAvailability returns records for [startDate, endDateExclusive),
// ordered by date ascending.
func (s AvailabilityService) QueryAvailability(hotelID int64, roomType, startDate, endDateExclusive string) ([]models.AvailabilityRecord, error) {
	if strings.TrimSpace(roomType) == "" {
		return nil, domain.ValidationError{Field: "room_type", Msg: "must not be empty"}
	}
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return nil, domain.ValidationError{Field: "start_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	end, err := utils.ParseDate(endDateExclusive)
	if err != nil {
		return nil, domain.ValidationError{Field: "end_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if !end.After(start) {
		return nil, domain.ValidationError{Field: "end_date", Err: domain.ErrInvalidDateRange}
	}

	out, err := s.availability().QueryRange(hotelID, roomType, utils.FormatDate(start), utils.FormatDate(end))
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
