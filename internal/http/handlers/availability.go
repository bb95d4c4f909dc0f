package handlers

import (
	"net/http"
	"strings"

	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/hotels/:id/availability?room_type=&start_date=&end_date=
// end_date is exclusive: records cover [start_date, end_date).
func GetAvailability(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	roomType := strings.TrimSpace(c.Query("room_type"))
	startDate := strings.TrimSpace(c.Query("start_date"))
	endDate := strings.TrimSpace(c.Query("end_date"))

	svc := services.AvailabilityService{}
	out, err := svc.QueryAvailability(hotelID, roomType, startDate, endDate)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/hotels/:id/availability (hotel owner)
func CreateAvailability(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if !authorizeHotelOwner(c, hotelID) {
		return
	}

	var in services.EnsureAvailabilityInput
	if !BindJSONOrError(c, &in) {
		return
	}
	in.HotelID = hotelID

	svc := services.AvailabilityService{}
	rec, err := svc.EnsureAvailability(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "availability created successfully", "availability": rec})
}

// PUT /api/availability/:id (hotel owner)
func UpdateAvailability(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	current, err := repositories.AvailabilityRepository{}.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "availability record not found", nil)
		return
	}
	if !authorizeHotelOwner(c, current.HotelID) {
		return
	}

	var patch models.AvailabilityPatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	svc := services.AvailabilityService{}
	rec, err := svc.UpdateAvailability(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "availability updated successfully", "availability": rec})
}
