package handlers

import (
	"net/http"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/http/middleware"
	"travelapp/internal/repositories"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/bookings/:id/requests (traveler)
func CreateGuestRequest(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	user, ok := middleware.CurrentUser(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized", "authentication required", nil)
		return
	}

	// requests can only be raised against the traveler's own booking
	b, err := repositories.BookingRepository{}.GetByID(bookingID)
	if err != nil || b.TravelerID != int64(user.UserID) {
		respondError(c, http.StatusNotFound, "not_found", "booking not found or access denied", nil)
		return
	}

	var in services.CreateGuestRequestInput
	if !BindJSONOrError(c, &in) {
		return
	}

	svc := services.GuestRequestService{}
	req, err := svc.CreateRequest(bookingID, in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "request created successfully", "request": req})
}

// GET /api/bookings/:id/requests (traveler who owns it, or hotel owner)
func GetBookingRequests(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if _, ok := authorizeBookingAccess(c, bookingID); !ok {
		return
	}

	svc := services.GuestRequestService{}
	out, err := svc.ListByBooking(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/hotels/:id/requests (hotel owner)
func GetHotelRequests(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if !authorizeHotelOwner(c, hotelID) {
		return
	}

	svc := services.GuestRequestService{}
	out, err := svc.ListByHotel(hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// PUT /api/requests/:id (hotel owner)
func UpdateGuestRequest(c *gin.Context) {
	requestID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	current, err := repositories.GuestRequestRepository{}.GetByID(requestID)
	if err != nil {
		RespondDomainError(c, domain.NotFoundError{Resource: "guest request", Err: err})
		return
	}
	if _, ok := authorizeBookingAccess(c, current.BookingID); !ok {
		return
	}

	var patch models.GuestRequestPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	svc := services.GuestRequestService{}
	req, err := svc.UpdateRequest(requestID, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "request updated successfully", "request": req})
}
