package services

import (
	"testing"

	"travelapp/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestCreateRoomTypeDefaultsMaxGuests(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM hotels").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	mock.ExpectExec("INSERT INTO hotel_room_types").
		WithArgs(int64(10), "Deluxe", nil, 120.50, 2, nil, 5, true).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectQuery("FROM hotel_room_types").
		WithArgs(int64(3)).
		WillReturnRows(roomTypeRows())

	svc := RoomTypeService{DB: db}
	rt, err := svc.CreateRoomType(CreateRoomTypeInput{
		HotelID:           10,
		RoomTypeName:      "Deluxe",
		BasePricePerNight: 120.50,
		TotalRooms:        5,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if rt.MaxGuests != 2 {
		t.Fatalf("max guests should default to 2, got %d", rt.MaxGuests)
	}
	if !rt.IsActive {
		t.Fatalf("new room type should be active")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateRoomTypeValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := RoomTypeService{DB: db}

	if _, err := svc.CreateRoomType(CreateRoomTypeInput{HotelID: 10, BasePricePerNight: 100}); !domain.IsValidation(err) {
		t.Fatalf("empty name should fail validation, got %v", err)
	}
	if _, err := svc.CreateRoomType(CreateRoomTypeInput{HotelID: 10, RoomTypeName: "Deluxe"}); !domain.IsValidation(err) {
		t.Fatalf("zero price should fail validation, got %v", err)
	}
	if _, err := svc.CreateRoomType(CreateRoomTypeInput{HotelID: 10, RoomTypeName: "Deluxe", BasePricePerNight: 100, TotalRooms: -1}); !domain.IsValidation(err) {
		t.Fatalf("negative rooms should fail validation, got %v", err)
	}
}

func TestCreateRoomTypeUnknownHotel(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT 1 FROM hotels").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	svc := RoomTypeService{DB: db}
	if _, err := svc.CreateRoomType(CreateRoomTypeInput{
		HotelID:           99,
		RoomTypeName:      "Deluxe",
		BasePricePerNight: 100,
	}); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
