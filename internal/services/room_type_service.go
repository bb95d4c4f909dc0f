package services

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
)

type RoomTypeService struct {
	RoomTypeRepo repositories.RoomTypeRepository
	HotelRepo    repositories.HotelRepository
	DB           *sql.DB
}

func (s RoomTypeService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s RoomTypeService) roomTypes() repositories.RoomTypeRepository {
	if s.RoomTypeRepo.DB != nil {
		return s.RoomTypeRepo
	}
	return repositories.RoomTypeRepository{DB: s.db()}
}

func (s RoomTypeService) hotels() repositories.HotelRepository {
	if s.HotelRepo.DB != nil {
		return s.HotelRepo
	}
	return repositories.HotelRepository{DB: s.db()}
}

type CreateRoomTypeInput struct {
	HotelID           int64
	RoomTypeName      string  `json:"room_type_name"`
	Description       string  `json:"description"`
	BasePricePerNight float64 `json:"base_price_per_night"`
	MaxGuests         int     `json:"max_guests"`
	Amenities         string  `json:"amenities"`
	TotalRooms        int     `json:"total_rooms"`
}

func (s RoomTypeService) CreateRoomType(in CreateRoomTypeInput) (models.RoomType, error) {
	if strings.TrimSpace(in.RoomTypeName) == "" {
		return models.RoomType{}, domain.ValidationError{Field: "room_type_name", Msg: "must not be empty"}
	}
	if in.BasePricePerNight <= 0 {
		return models.RoomType{}, domain.ValidationError{Field: "base_price_per_night", Msg: "must be positive"}
	}
	if in.TotalRooms < 0 {
		return models.RoomType{}, domain.ValidationError{Field: "total_rooms", Msg: "must not be negative"}
	}
	if in.MaxGuests <= 0 {
		in.MaxGuests = 2
	}

	exists, err := s.hotels().Exists(in.HotelID)
	if err != nil {
		return models.RoomType{}, domain.InternalError{Err: err}
	}
	if !exists {
		return models.RoomType{}, domain.NotFoundError{Resource: "hotel"}
	}

	id, err := s.roomTypes().Insert(models.RoomType{
		HotelID:           in.HotelID,
		RoomTypeName:      in.RoomTypeName,
		Description:       in.Description,
		BasePricePerNight: in.BasePricePerNight,
		MaxGuests:         in.MaxGuests,
		Amenities:         in.Amenities,
		TotalRooms:        in.TotalRooms,
		IsActive:          true,
	})
	if err != nil {
		return models.RoomType{}, domain.InternalError{Err: err}
	}

	rt, err := s.roomTypes().GetByID(id)
	if err != nil {
		return models.RoomType{}, domain.InternalError{Err: err}
	}
	return rt, nil
}

func (s RoomTypeService) ListRoomTypes(hotelID int64) ([]models.RoomType, error) {
	out, err := s.roomTypes().ListActiveByHotel(hotelID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s RoomTypeService) UpdateRoomType(id int64, patch models.RoomTypePatch) (models.RoomType, error) {
	if patch.BasePricePerNight != nil && *patch.BasePricePerNight <= 0 {
		return models.RoomType{}, domain.ValidationError{Field: "base_price_per_night", Msg: "must be positive"}
	}
	if patch.TotalRooms != nil && *patch.TotalRooms < 0 {
		return models.RoomType{}, domain.ValidationError{Field: "total_rooms", Msg: "must not be negative"}
	}

	if _, err := s.roomTypes().GetByID(id); err != nil {
		if err == sql.ErrNoRows {
			return models.RoomType{}, domain.NotFoundError{Resource: "room type"}
		}
		return models.RoomType{}, domain.InternalError{Err: err}
	}

	if err := s.roomTypes().Update(id, patch); err != nil {
		return models.RoomType{}, domain.InternalError{Err: err}
	}

	rt, err := s.roomTypes().GetByID(id)
	if err != nil {
		return models.RoomType{}, domain.InternalError{Err: err}
	}
	return rt, nil
}
