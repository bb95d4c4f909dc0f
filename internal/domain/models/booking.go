package models

// Booking statuses. checked_out and cancelled are terminal.
const (
	BookingPending    = "pending"
	BookingConfirmed  = "confirmed"
	BookingCheckedIn  = "checked_in"
	BookingCheckedOut = "checked_out"
	BookingCancelled  = "cancelled"
)

// Booking is one reserved stay. The stay covers nights in
// [check_in_date, check_out_date) — check-out day itself is not occupied.
// TotalPrice is fixed at creation time and never recomputed.
type Booking struct {
	BookingID       int64   `json:"booking_id"`
	HotelID         int64   `json:"hotel_id"`
	TravelerID      int64   `json:"traveler_id"`
	RoomType        string  `json:"room_type"`
	CheckInDate     string  `json:"check_in_date"`
	CheckOutDate    string  `json:"check_out_date"`
	NumGuests       int     `json:"num_guests"`
	TotalPrice      float64 `json:"total_price"`
	BookingStatus   string  `json:"booking_status"`
	SpecialRequests string  `json:"special_requests"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// BookingPatch supports PATCH-style updates via key presence. Price and
// inventory are deliberately not recomputed on update.
type BookingPatch struct {
	RoomType        *string `json:"room_type"`
	CheckInDate     *string `json:"check_in_date"`
	CheckOutDate    *string `json:"check_out_date"`
	NumGuests       *int    `json:"num_guests"`
	BookingStatus   *string `json:"booking_status"`
	SpecialRequests *string `json:"special_requests"`
}

// BookingStatistics aggregates booking counts and revenue for one hotel.
type BookingStatistics struct {
	TotalBookings     int     `json:"total_bookings"`
	ConfirmedBookings int     `json:"confirmed_bookings"`
	PendingBookings   int     `json:"pending_bookings"`
	TotalRevenue      float64 `json:"total_revenue"`
	OccupancyRate     float64 `json:"occupancy_rate"`
}

// ValidBookingStatus reports whether s is a known booking status.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCheckedIn, BookingCheckedOut, BookingCancelled:
		return true
	}
	return false
}
