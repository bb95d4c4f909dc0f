package handlers

import (
	"net/http"

	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/hotels/:id/booking-statistics (hotel owner)
func GetHotelBookingStatistics(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if !authorizeHotelOwner(c, hotelID) {
		return
	}

	svc := services.StatisticsService{}
	stats, err := svc.GetHotelBookingStatistics(hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
