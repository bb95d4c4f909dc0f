package handlers

import (
	"net/http"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/repositories"

	"github.com/gin-gonic/gin"
)

// authorizeHotelOwner verifies the authenticated hotel owner actually owns
// the hotel. Responds 404 (not 403) on foreign hotels so ownership of other
// ids is not revealed.
func authorizeHotelOwner(c *gin.Context, hotelID int64) bool {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return false
	}

	owned, err := repositories.HotelRepository{}.IsOwnedBy(hotelID, int64(user.UserID))
	if err != nil {
		respondError(c, http.StatusInternalServerError, "internal_error", "ownership check failed", nil)
		return false
	}
	if !owned {
		respondError(c, http.StatusNotFound, "not_found", "hotel not found or access denied", nil)
		return false
	}
	return true
}

// authorizeBookingAccess lets the traveler who owns the booking, or the owner
// of the booked hotel, act on it. Returns the booking on success.
func authorizeBookingAccess(c *gin.Context, bookingID int64) (models.Booking, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return models.Booking{}, false
	}

	b, err := repositories.BookingRepository{}.GetByID(bookingID)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "booking", Err: err})
		return models.Booking{}, false
	}

	switch user.Role {
	case domain.RoleTraveler:
		if b.TravelerID != int64(user.UserID) {
			respondError(c, http.StatusForbidden, "forbidden", "access denied", nil)
			return models.Booking{}, false
		}
	case domain.RoleHotelOwner:
		owned, err := repositories.HotelRepository{}.IsOwnedBy(b.HotelID, int64(user.UserID))
		if err != nil {
			respondError(c, http.StatusInternalServerError, "internal_error", "ownership check failed", nil)
			return models.Booking{}, false
		}
		if !owned {
			respondError(c, http.StatusForbidden, "forbidden", "access denied", nil)
			return models.Booking{}, false
		}
	default:
		respondError(c, http.StatusForbidden, "forbidden", "access denied", nil)
		return models.Booking{}, false
	}

	return b, true
}
