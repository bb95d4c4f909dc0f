package models

// RoomType is a priced, capacity-bounded category of room offered by a hotel.
// Soft-deactivated via IsActive; never hard-deleted while bookings reference it.
type RoomType struct {
	RoomTypeID        int64   `json:"room_type_id"`
	HotelID           int64   `json:"hotel_id"`
	RoomTypeName      string  `json:"room_type_name"`
	Description       string  `json:"description"`
	BasePricePerNight float64 `json:"base_price_per_night"`
	MaxGuests         int     `json:"max_guests"`
	Amenities         string  `json:"amenities"`
	TotalRooms        int     `json:"total_rooms"`
	IsActive          bool    `json:"is_active"`
	CreatedAt         string  `json:"created_at"`
	UpdatedAt         string  `json:"updated_at"`
}

// RoomTypePatch supports PATCH-style updates via key presence.
type RoomTypePatch struct {
	RoomTypeName      *string  `json:"room_type_name"`
	Description       *string  `json:"description"`
	BasePricePerNight *float64 `json:"base_price_per_night"`
	MaxGuests         *int     `json:"max_guests"`
	Amenities         *string  `json:"amenities"`
	TotalRooms        *int     `json:"total_rooms"`
	IsActive          *bool    `json:"is_active"`
}
