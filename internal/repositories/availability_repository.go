package repositories

import (
	"database/sql"
	"log"
	"strings"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
)

const availabilityColumns = `availability_id, hotel_id, room_type, DATE_FORMAT(date, '%Y-%m-%d'),
		total_rooms, available_rooms, price_per_night,
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

// AvailabilityRepository owns the per-date inventory counters. All counter
// mutations go through Decrement/Increment; nothing else writes
// available_rooms directly.
type AvailabilityRepository struct {
	DB *sql.DB
}

func (r AvailabilityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r AvailabilityRepository) Insert(rec models.AvailabilityRecord) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO room_availability
			(hotel_id, room_type, date, total_rooms, available_rooms, price_per_night)
		VALUES (?,?,?,?,?,?)
	`,
		rec.HotelID,
		strings.TrimSpace(rec.RoomType),
		rec.Date,
		rec.TotalRooms,
		rec.AvailableRooms,
		rec.PricePerNight,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r AvailabilityRepository) GetByID(id int64) (models.AvailabilityRecord, error) {
	row := r.db().QueryRow(`
		SELECT `+availabilityColumns+`
		FROM room_availability
		WHERE availability_id=? LIMIT 1
	`, id)
	return scanAvailability(row)
}

// ExistsForDate reports whether the (hotel, room type, date) key already has
// an inventory row.
func (r AvailabilityRepository) ExistsForDate(hotelID int64, roomType, date string) (bool, error) {
	var one int
	err := r.db().QueryRow(`
		SELECT 1 FROM room_availability
		WHERE hotel_id=? AND room_type=? AND date=? LIMIT 1
	`, hotelID, strings.TrimSpace(roomType), date).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Decrement takes one room for the night in a single conditional update, so
// two concurrent bookings can never drive the counter below zero. A zero
// affected-row count means the night is sold out or has no inventory row;
// both surface as InsufficientInventoryError.
func (r AvailabilityRepository) Decrement(q intdb.Execer, hotelID int64, roomType, date string) error {
	res, err := q.Exec(`
		UPDATE room_availability
		SET available_rooms = available_rooms - 1
		WHERE hotel_id=? AND room_type=? AND date=? AND available_rooms > 0
	`, hotelID, strings.TrimSpace(roomType), date)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		return domain.InsufficientInventoryError{RoomType: roomType, Date: date}
	}
	return nil
}

// Increment releases one room, clamped so the counter never exceeds
// total_rooms. A missing row is a logged no-op: cancelling a stay whose date
// records were since removed must not fail.
func (r AvailabilityRepository) Increment(q intdb.Execer, hotelID int64, roomType, date string) error {
	res, err := q.Exec(`
		UPDATE room_availability
		SET available_rooms = available_rooms + 1
		WHERE hotel_id=? AND room_type=? AND date=? AND available_rooms < total_rooms
	`, hotelID, strings.TrimSpace(roomType), date)
	if err != nil {
		return domain.InternalError{Err: err}
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.InternalError{Err: err}
	}
	if affected == 0 {
		log.Printf("[INVENTORY] release no-op hotel_id=%d room_type=%s date=%s", hotelID, roomType, date)
	}
	return nil
}

// QueryRange returns records covering the half-open range [start, end),
// ordered by date ascending.
func (r AvailabilityRepository) QueryRange(hotelID int64, roomType, startDate, endDateExclusive string) ([]models.AvailabilityRecord, error) {
	rows, err := r.db().Query(`
		SELECT `+availabilityColumns+`
		FROM room_availability
		WHERE hotel_id=? AND room_type=? AND date >= ? AND date < ?
		ORDER BY date ASC
	`, hotelID, strings.TrimSpace(roomType), startDate, endDateExclusive)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.AvailabilityRecord{}
	for rows.Next() {
		rec, err := scanAvailability(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// Update applies only the fields present in the patch. Returns sql.ErrNoRows
// when the record does not exist.
func (r AvailabilityRepository) Update(id int64, patch models.AvailabilityPatch) error {
	sets := []string{}
	args := []any{}

	if patch.TotalRooms != nil {
		sets = append(sets, "total_rooms=?")
		args = append(args, *patch.TotalRooms)
	}
	if patch.AvailableRooms != nil {
		sets = append(sets, "available_rooms=?")
		args = append(args, *patch.AvailableRooms)
	}
	if patch.PricePerNight != nil {
		sets = append(sets, "price_per_night=?")
		args = append(args, *patch.PricePerNight)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().Exec(`UPDATE room_availability SET `+strings.Join(sets, ",")+` WHERE availability_id=?`, args...)
	return err
}

func scanAvailability(row rowScanner) (models.AvailabilityRecord, error) {
	var rec models.AvailabilityRecord
	err := row.Scan(
		&rec.AvailabilityID,
		&rec.HotelID,
		&rec.RoomType,
		&rec.Date,
		&rec.TotalRooms,
		&rec.AvailableRooms,
		&rec.PricePerNight,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	return rec, err
}
