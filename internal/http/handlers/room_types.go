package handlers

import (
	"net/http"

	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/hotels/:id/room-types
func GetRoomTypes(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}

	svc := services.RoomTypeService{}
	out, err := svc.ListRoomTypes(hotelID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

// POST /api/hotels/:id/room-types (hotel owner)
func CreateRoomType(c *gin.Context) {
	hotelID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if !authorizeHotelOwner(c, hotelID) {
		return
	}

	var in services.CreateRoomTypeInput
	if !BindJSONOrError(c, &in) {
		return
	}
	in.HotelID = hotelID

	svc := services.RoomTypeService{}
	rt, err := svc.CreateRoomType(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "room type created successfully", "room_type": rt})
}

// PUT /api/room-types/:id (hotel owner)
func UpdateRoomType(c *gin.Context) {
	id, ok := ParamID(c, "id")
	if !ok {
		return
	}

	current, err := repositories.RoomTypeRepository{}.GetByID(id)
	if err != nil {
		respondError(c, http.StatusNotFound, "not_found", "room type not found", nil)
		return
	}
	if !authorizeHotelOwner(c, current.HotelID) {
		return
	}

	var patch models.RoomTypePatch
	if !BindJSONOrError(c, &patch) {
		return
	}

	svc := services.RoomTypeService{}
	rt, err := svc.UpdateRoomType(id, patch)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "room type updated successfully", "room_type": rt})
}
