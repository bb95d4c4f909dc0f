package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain/models"
)

const bookingColumns = `booking_id, hotel_id, traveler_id, room_type,
		DATE_FORMAT(check_in_date, '%Y-%m-%d'), DATE_FORMAT(check_out_date, '%Y-%m-%d'),
		num_guests, total_price, booking_status, COALESCE(special_requests,''),
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

type BookingRepository struct {
	DB *sql.DB
}

func (r BookingRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// Insert persists a new booking. Runs on q so booking creation shares one
// transaction with its inventory decrements.
func (r BookingRepository) Insert(q intdb.Execer, b models.Booking) (int64, error) {
	res, err := q.Exec(`
		INSERT INTO hotel_bookings
			(hotel_id, traveler_id, room_type, check_in_date, check_out_date, num_guests, total_price, booking_status, special_requests)
		VALUES (?,?,?,?,?,?,?,?,?)
	`,
		b.HotelID,
		b.TravelerID,
		strings.TrimSpace(b.RoomType),
		b.CheckInDate,
		b.CheckOutDate,
		b.NumGuests,
		b.TotalPrice,
		b.BookingStatus,
		intdb.NullIfEmpty(b.SpecialRequests),
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r BookingRepository) GetByID(id int64) (models.Booking, error) {
	row := r.db().QueryRow(`
		SELECT `+bookingColumns+`
		FROM hotel_bookings
		WHERE booking_id=? LIMIT 1
	`, id)
	return scanBooking(row)
}

// GetForUpdate loads a booking under a row lock so concurrent cancellations
// of the same booking serialize inside their transactions.
func (r BookingRepository) GetForUpdate(q intdb.Execer, id int64) (models.Booking, error) {
	row := q.QueryRow(`
		SELECT `+bookingColumns+`
		FROM hotel_bookings
		WHERE booking_id=? LIMIT 1
		FOR UPDATE
	`, id)
	return scanBooking(row)
}

func (r BookingRepository) ListByHotel(hotelID int64) ([]models.Booking, error) {
	return r.list(`hotel_id=?`, hotelID)
}

func (r BookingRepository) ListByTraveler(travelerID int64) ([]models.Booking, error) {
	return r.list(`traveler_id=?`, travelerID)
}

func (r BookingRepository) list(where string, arg any) ([]models.Booking, error) {
	rows, err := r.db().Query(`
		SELECT `+bookingColumns+`
		FROM hotel_bookings
		WHERE `+where+`
		ORDER BY booking_id ASC
	`, arg)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return out, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus flips booking_status inside the caller's transaction.
func (r BookingRepository) UpdateStatus(q intdb.Execer, id int64, status string) error {
	_, err := q.Exec(`UPDATE hotel_bookings SET booking_status=? WHERE booking_id=?`, status, id)
	return err
}

// Update applies only the fields present in the patch. Total price is never
// touched here; it is fixed at creation time.
func (r BookingRepository) Update(id int64, patch models.BookingPatch) error {
	sets := []string{}
	args := []any{}

	if patch.RoomType != nil {
		sets = append(sets, "room_type=?")
		args = append(args, strings.TrimSpace(*patch.RoomType))
	}
	if patch.CheckInDate != nil {
		sets = append(sets, "check_in_date=?")
		args = append(args, *patch.CheckInDate)
	}
	if patch.CheckOutDate != nil {
		sets = append(sets, "check_out_date=?")
		args = append(args, *patch.CheckOutDate)
	}
	if patch.NumGuests != nil {
		sets = append(sets, "num_guests=?")
		args = append(args, *patch.NumGuests)
	}
	if patch.BookingStatus != nil {
		sets = append(sets, "booking_status=?")
		args = append(args, *patch.BookingStatus)
	}
	if patch.SpecialRequests != nil {
		sets = append(sets, "special_requests=?")
		args = append(args, *patch.SpecialRequests)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().Exec(`UPDATE hotel_bookings SET `+strings.Join(sets, ",")+` WHERE booking_id=?`, args...)
	return err
}

// Statistics aggregates counts and revenue for one hotel in a single pass.
// Revenue counts bookings that actually held or hold a room: confirmed,
// checked_in, checked_out. Pending and cancelled are excluded.
func (r BookingRepository) Statistics(hotelID int64) (models.BookingStatistics, error) {
	var stats models.BookingStatistics
	err := r.db().QueryRow(`
		SELECT
			COUNT(*),
			COALESCE(SUM(booking_status = 'confirmed'), 0),
			COALESCE(SUM(booking_status = 'pending'), 0),
			COALESCE(SUM(CASE WHEN booking_status IN ('confirmed','checked_in','checked_out') THEN total_price ELSE 0 END), 0)
		FROM hotel_bookings
		WHERE hotel_id=?
	`, hotelID).Scan(
		&stats.TotalBookings,
		&stats.ConfirmedBookings,
		&stats.PendingBookings,
		&stats.TotalRevenue,
	)
	return stats, err
}

func scanBooking(row rowScanner) (models.Booking, error) {
	var b models.Booking
	err := row.Scan(
		&b.BookingID,
		&b.HotelID,
		&b.TravelerID,
		&b.RoomType,
		&b.CheckInDate,
		&b.CheckOutDate,
		&b.NumGuests,
		&b.TotalPrice,
		&b.BookingStatus,
		&b.SpecialRequests,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	return b, err
}
