package domain

// ID is used across domain entities.
type ID int64

// Status represents a lightweight state value.
type Status string

// Platform roles accepted at signup and checked by route guards.
const (
	RoleTraveler        = "traveler"
	RoleGuide           = "guide"
	RoleAdmin           = "admin"
	RoleRestaurantOwner = "restaurant_owner"
	RoleHotelOwner      = "hotel_owner"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}

// ValidRole reports whether a signup role is one the platform knows.
func ValidRole(role string) bool {
	switch role {
	case RoleTraveler, RoleGuide, RoleAdmin, RoleRestaurantOwner, RoleHotelOwner:
		return true
	}
	return false
}
