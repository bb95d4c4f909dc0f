package models

// AvailabilityRecord is the per-date remaining-inventory counter for one room
// type at one hotel. Keyed by (hotel_id, room_type, date); one row per night.
// Invariant: 0 <= available_rooms <= total_rooms.
type AvailabilityRecord struct {
	AvailabilityID int64   `json:"availability_id"`
	HotelID        int64   `json:"hotel_id"`
	RoomType       string  `json:"room_type"`
	Date           string  `json:"date"`
	TotalRooms     int     `json:"total_rooms"`
	AvailableRooms int     `json:"available_rooms"`
	PricePerNight  float64 `json:"price_per_night"`
	CreatedAt      string  `json:"created_at"`
	UpdatedAt      string  `json:"updated_at"`
}

// AvailabilityPatch supports partial updates of counters and seasonal price.
type AvailabilityPatch struct {
	TotalRooms     *int     `json:"total_rooms"`
	AvailableRooms *int     `json:"available_rooms"`
	PricePerNight  *float64 `json:"price_per_night"`
}
