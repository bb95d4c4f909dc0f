package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	intdb "travelapp/internal/db"
	"travelapp/internal/domain/models"
)

const roomTypeColumns = `room_type_id, hotel_id, room_type_name, COALESCE(description,''),
		base_price_per_night, max_guests, COALESCE(amenities,''), total_rooms, is_active,
		DATE_FORMAT(created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(updated_at, '%Y-%m-%d %H:%i:%s')`

type RoomTypeRepository struct {
	DB *sql.DB
}

func (r RoomTypeRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r RoomTypeRepository) Insert(rt models.RoomType) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO hotel_room_types
			(hotel_id, room_type_name, description, base_price_per_night, max_guests, amenities, total_rooms, is_active)
		VALUES (?,?,?,?,?,?,?,?)
	`,
		rt.HotelID,
		strings.TrimSpace(rt.RoomTypeName),
		intdb.NullIfEmpty(rt.Description),
		rt.BasePricePerNight,
		rt.MaxGuests,
		intdb.NullIfEmpty(rt.Amenities),
		rt.TotalRooms,
		rt.IsActive,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r RoomTypeRepository) GetByID(id int64) (models.RoomType, error) {
	row := r.db().QueryRow(`
		SELECT `+roomTypeColumns+`
		FROM hotel_room_types
		WHERE room_type_id=? LIMIT 1
	`, id)
	return scanRoomType(row)
}

// GetByHotelAndName resolves the priced offering a booking refers to.
func (r RoomTypeRepository) GetByHotelAndName(hotelID int64, name string) (models.RoomType, error) {
	row := r.db().QueryRow(`
		SELECT `+roomTypeColumns+`
		FROM hotel_room_types
		WHERE hotel_id=? AND room_type_name=? LIMIT 1
	`, hotelID, strings.TrimSpace(name))
	return scanRoomType(row)
}

// ListActiveByHotel returns active room types in insertion order.
func (r RoomTypeRepository) ListActiveByHotel(hotelID int64) ([]models.RoomType, error) {
	rows, err := r.db().Query(`
		SELECT `+roomTypeColumns+`
		FROM hotel_room_types
		WHERE hotel_id=? AND is_active=1
		ORDER BY room_type_id ASC
	`, hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.RoomType{}
	for rows.Next() {
		rt, err := scanRoomType(rows)
		if err != nil {
			return out, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

// Update applies only the fields present in the patch. Returns sql.ErrNoRows
// when the room type does not exist.
func (r RoomTypeRepository) Update(id int64, patch models.RoomTypePatch) error {
	sets := []string{}
	args := []any{}

	if patch.RoomTypeName != nil {
		sets = append(sets, "room_type_name=?")
		args = append(args, strings.TrimSpace(*patch.RoomTypeName))
	}
	if patch.Description != nil {
		sets = append(sets, "description=?")
		args = append(args, *patch.Description)
	}
	if patch.BasePricePerNight != nil {
		sets = append(sets, "base_price_per_night=?")
		args = append(args, *patch.BasePricePerNight)
	}
	if patch.MaxGuests != nil {
		sets = append(sets, "max_guests=?")
		args = append(args, *patch.MaxGuests)
	}
	if patch.Amenities != nil {
		sets = append(sets, "amenities=?")
		args = append(args, *patch.Amenities)
	}
	if patch.TotalRooms != nil {
		sets = append(sets, "total_rooms=?")
		args = append(args, *patch.TotalRooms)
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active=?")
		args = append(args, *patch.IsActive)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	res, err := r.db().Exec(`UPDATE hotel_room_types SET `+strings.Join(sets, ",")+` WHERE room_type_id=?`, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// could be a no-change update; verify existence before reporting missing
		var one int
		if err := r.db().QueryRow(`SELECT 1 FROM hotel_room_types WHERE room_type_id=? LIMIT 1`, id).Scan(&one); err != nil {
			return err
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRoomType(row rowScanner) (models.RoomType, error) {
	var rt models.RoomType
	err := row.Scan(
		&rt.RoomTypeID,
		&rt.HotelID,
		&rt.RoomTypeName,
		&rt.Description,
		&rt.BasePricePerNight,
		&rt.MaxGuests,
		&rt.Amenities,
		&rt.TotalRooms,
		&rt.IsActive,
		&rt.CreatedAt,
		&rt.UpdatedAt,
	)
	return rt, err
}
