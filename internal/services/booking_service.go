package services

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
)

// BookingService is the booking state machine: pending -> confirmed ->
// checked_in -> checked_out, with cancelled reachable from any non-terminal
// state. Creation and cancellation walk the stay's date range against the
// inventory counters inside a single transaction, so a stay is either
// reserved for every night or for none.
type BookingService struct {
	BookingRepo      repositories.BookingRepository
	RoomTypeRepo     repositories.RoomTypeRepository
	AvailabilityRepo repositories.AvailabilityRepository
	DB               *sql.DB
	RequestID        string

	// Now is swappable for deterministic past-date checks in tests.
	Now func() time.Time
}

func (s BookingService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s BookingService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s BookingService) roomTypes() repositories.RoomTypeRepository {
	if s.RoomTypeRepo.DB != nil {
		return s.RoomTypeRepo
	}
	return repositories.RoomTypeRepository{DB: s.db()}
}

func (s BookingService) availability() repositories.AvailabilityRepository {
	if s.AvailabilityRepo.DB != nil {
		return s.AvailabilityRepo
	}
	return repositories.AvailabilityRepository{DB: s.db()}
}

func (s BookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type CreateBookingInput struct {
	HotelID         int64
	TravelerID      int64
	RoomType        string `json:"room_type"`
	CheckInDate     string `json:"check_in_date"`
	CheckOutDate    string `json:"check_out_date"`
	NumGuests       int    `json:"num_guests"`
	SpecialRequests string `json:"special_requests"`
}

// CreateBooking validates the stay, prices it from the room type catalog and
// reserves one room for every night of [check_in, check_out) atomically. If
// any night has no room left, every decrement already applied in this call is
// rolled back and no booking row survives.
func (s BookingService) CreateBooking(in CreateBookingInput) (models.Booking, error) {
	checkIn, err := utils.ParseDate(in.CheckInDate)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_in_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	checkOut, err := utils.ParseDate(in.CheckOutDate)
	if err != nil {
		return models.Booking{}, domain.ValidationError{Field: "check_out_date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if !checkOut.After(checkIn) {
		return models.Booking{}, domain.ValidationError{Field: "check_out_date", Err: domain.ErrInvalidDateRange}
	}

	// Same-day bookings are allowed; anything before today is not.
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if checkIn.Before(today) {
		return models.Booking{}, domain.ValidationError{Field: "check_in_date", Err: domain.ErrPastCheckIn}
	}

	if in.NumGuests < 0 {
		return models.Booking{}, domain.ValidationError{Field: "num_guests", Msg: "must be at least 1"}
	}
	if in.NumGuests == 0 {
		in.NumGuests = 1
	}

	rt, err := s.roomTypes().GetByHotelAndName(in.HotelID, in.RoomType)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "room type"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	nights := utils.Nights(checkIn, checkOut)
	totalPrice := utils.RoundMoney(float64(nights) * rt.BasePricePerNight)

	var bookingID int64
	err = intdb.WithTx(s.db(), "create booking", func(tx *sql.Tx) error {
		for _, d := range utils.DateRange(checkIn, checkOut) {
			if err := s.availability().Decrement(tx, in.HotelID, rt.RoomTypeName, d); err != nil {
				return err
			}
		}
		id, err := s.bookings().Insert(tx, models.Booking{
			HotelID:         in.HotelID,
			TravelerID:      in.TravelerID,
			RoomType:        rt.RoomTypeName,
			CheckInDate:     utils.FormatDate(checkIn),
			CheckOutDate:    utils.FormatDate(checkOut),
			NumGuests:       in.NumGuests,
			TotalPrice:      totalPrice,
			BookingStatus:   models.BookingPending,
			SpecialRequests: strings.TrimSpace(in.SpecialRequests),
		})
		if err != nil {
			return domain.InternalError{Err: err}
		}
		bookingID = id
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "create",
		fmt.Sprintf("booking_id=%d hotel_id=%d nights=%d total=%s", bookingID, in.HotelID, nights, utils.FormatMoney(totalPrice)))

	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

// CancelBooking marks the booking cancelled and releases one room for every
// night of the stay, all in one transaction. Cancelling an already-cancelled
// booking is a no-op success; a checked-out stay can no longer be cancelled.
func (s BookingService) CancelBooking(bookingID int64) (models.Booking, error) {
	var out models.Booking
	err := intdb.WithTx(s.db(), "cancel booking", func(tx *sql.Tx) error {
		b, err := s.bookings().GetForUpdate(tx, bookingID)
		if err != nil {
			if err == sql.ErrNoRows {
				return domain.NotFoundError{Resource: "booking"}
			}
			return domain.InternalError{Err: err}
		}

		if b.BookingStatus == models.BookingCancelled {
			// idempotent: repeating a cancel must not release rooms twice
			out = b
			return nil
		}
		if b.BookingStatus == models.BookingCheckedOut {
			return domain.ConflictError{Resource: "booking", Msg: "stay already checked out"}
		}

		if err := s.bookings().UpdateStatus(tx, bookingID, models.BookingCancelled); err != nil {
			return domain.InternalError{Err: err}
		}

		checkIn, err := utils.ParseDate(b.CheckInDate)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		checkOut, err := utils.ParseDate(b.CheckOutDate)
		if err != nil {
			return domain.InternalError{Err: err}
		}
		for _, d := range utils.DateRange(checkIn, checkOut) {
			if err := s.availability().Increment(tx, b.HotelID, b.RoomType, d); err != nil {
				return err
			}
		}

		b.BookingStatus = models.BookingCancelled
		out = b
		return nil
	})
	if err != nil {
		return models.Booking{}, err
	}

	utils.LogEvent(s.RequestID, "booking", "cancel", fmt.Sprintf("booking_id=%d", bookingID))
	return out, nil
}

// UpdateBooking applies a blind patch. Price is not recomputed and inventory
// is not re-walked when dates or room type change; the counters reflect the
// stay as originally created.
func (s BookingService) UpdateBooking(bookingID int64, patch models.BookingPatch) (models.Booking, error) {
	if patch.BookingStatus != nil && !models.ValidBookingStatus(*patch.BookingStatus) {
		return models.Booking{}, domain.ValidationError{Field: "booking_status", Msg: "unknown status"}
	}
	if patch.CheckInDate != nil {
		if _, err := utils.ParseDate(*patch.CheckInDate); err != nil {
			return models.Booking{}, domain.ValidationError{Field: "check_in_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if patch.CheckOutDate != nil {
		if _, err := utils.ParseDate(*patch.CheckOutDate); err != nil {
			return models.Booking{}, domain.ValidationError{Field: "check_out_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if patch.NumGuests != nil && *patch.NumGuests < 1 {
		return models.Booking{}, domain.ValidationError{Field: "num_guests", Msg: "must be at least 1"}
	}

	if _, err := s.bookings().GetByID(bookingID); err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}

	if err := s.bookings().Update(bookingID, patch); err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}

	booking, err := s.bookings().GetByID(bookingID)
	if err != nil {
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return booking, nil
}

func (s BookingService) GetBooking(bookingID int64) (models.Booking, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, domain.InternalError{Err: err}
	}
	return b, nil
}

func (s BookingService) ListByHotel(hotelID int64) ([]models.Booking, error) {
	out, err := s.bookings().ListByHotel(hotelID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s BookingService) ListByTraveler(travelerID int64) ([]models.Booking, error) {
	out, err := s.bookings().ListByTraveler(travelerID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
