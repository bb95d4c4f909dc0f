package handlers

import (
	"net/http"

	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/hotels/:id/book (traveler)
func CreateBooking(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}

	var in services.CreateBookingInput
	if !BindJSONOrError(c, &in) {
		return
	}
	in.HotelID = hotelID
	in.TravelerID = int64(user.UserID)

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.CreateBooking(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "booking created successfully", "booking": booking})
}

// GET /api/hotels/:id/bookings (hotel owner)
func GetHotelBookings(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if !authorizeHotelOwner(c, hotelID) {
		return
	}

	svc := services.BookingService{}
	out, err := svc.ListByHotel(hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/traveler/bookings (traveler)
func GetTravelerBookings(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}

	svc := services.BookingService{}
	out, err := svc.ListByTraveler(int64(user.UserID))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/bookings/:id (traveler who owns it, or hotel owner)
func UpdateBooking(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if _, ok := authorizeBookingAccess(c, bookingID); !ok {
		return
	}

	var patch models.BookingPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.UpdateBooking(bookingID, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking updated successfully", "booking": booking})
}

// POST /api/bookings/:id/cancel (traveler who owns it, or hotel owner)
func CancelBooking(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if _, ok := authorizeBookingAccess(c, bookingID); !ok {
		return
	}

	svc := services.BookingService{RequestID: middleware.GetRequestID(c)}
	booking, err := svc.CancelBooking(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "booking cancelled successfully", "booking": booking})
}
