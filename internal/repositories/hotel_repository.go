package repositories

import (
	"database/sql"

	intconfig "travelapp/internal/config"
)

// HotelRepository exposes the few hotel reads the booking core needs:
// existence for validation and ownership for owner-scoped endpoints.
type HotelRepository struct {
	DB *sql.DB
}

func (r HotelRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r HotelRepository) Exists(hotelID int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM hotels WHERE id=? LIMIT 1`, hotelID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r HotelRepository) IsOwnedBy(hotelID, ownerID int64) (bool, error) {
	var one int
	err := r.db().QueryRow(`SELECT 1 FROM hotels WHERE id=? AND owner_id=? LIMIT 1`, hotelID, ownerID).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r HotelRepository) GetName(hotelID int64) (string, error) {
	var name string
	err := r.db().QueryRow(`SELECT name FROM hotels WHERE id=? LIMIT 1`, hotelID).Scan(&name)
	return name, err
}
