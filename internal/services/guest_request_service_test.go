package services

import (
	"testing"
	"time"

	"travelapp/internal/domain"
	"travelapp/internal/domain/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func guestRequestRow(id int64, status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"request_id", "booking_id", "request_type", "request_status",
		"request_details", "priority", "assigned_to", "created_at", "updated_at", "completed_at",
	}).AddRow(id, 42, "housekeeping", status, "extra towels", "medium", nil,
		"2025-06-02 08:00:00", "2025-06-02 08:00:00", "")
}

func TestCreateGuestRequestDefaultsAndPersists(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, "confirmed"))
	mock.ExpectExec("INSERT INTO guest_requests").
		WithArgs(int64(42), "housekeeping", "pending", "extra towels", "medium", nil).
		WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectQuery("FROM guest_requests").
		WithArgs(int64(5)).
		WillReturnRows(guestRequestRow(5, "pending"))

	svc := GuestRequestService{DB: db}
	req, err := svc.CreateRequest(42, CreateGuestRequestInput{
		RequestType:    "housekeeping",
		RequestDetails: "extra towels",
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if req.Priority != "medium" {
		t.Fatalf("priority should default to medium, got %s", req.Priority)
	}
	if req.RequestStatus != "pending" {
		t.Fatalf("new request should be pending, got %s", req.RequestStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCreateGuestRequestValidation(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	svc := GuestRequestService{DB: db}

	if _, err := svc.CreateRequest(42, CreateGuestRequestInput{RequestType: "laundry", RequestDetails: "x"}); !domain.IsValidation(err) {
		t.Fatalf("unknown type should fail validation, got %v", err)
	}
	if _, err := svc.CreateRequest(42, CreateGuestRequestInput{RequestType: "housekeeping", RequestDetails: "   "}); !domain.IsValidation(err) {
		t.Fatalf("blank details should fail validation, got %v", err)
	}
	if _, err := svc.CreateRequest(42, CreateGuestRequestInput{RequestType: "housekeeping", RequestDetails: "x", Priority: "extreme"}); !domain.IsValidation(err) {
		t.Fatalf("unknown priority should fail validation, got %v", err)
	}
}

func TestUpdateGuestRequestStampsCompletionOnce(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := func() time.Time { return time.Date(2025, 6, 3, 14, 0, 0, 0, time.UTC) }
	completed := "completed"

	mock.ExpectQuery("FROM guest_requests").
		WithArgs(int64(5)).
		WillReturnRows(guestRequestRow(5, "in_progress"))
	mock.ExpectExec("UPDATE guest_requests").
		WithArgs("completed", "2025-06-03 14:00:00", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM guest_requests").
		WithArgs(int64(5)).
		WillReturnRows(guestRequestRow(5, "completed"))

	svc := GuestRequestService{DB: db, Now: now}
	req, err := svc.UpdateRequest(5, models.GuestRequestPatch{RequestStatus: &completed})
	if err != nil {
		t.Fatalf("update error: %v", err)
	}
	if req.RequestStatus != "completed" {
		t.Fatalf("status not updated: %s", req.RequestStatus)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestUpdateGuestRequestAlreadyCompletedKeepsTimestamp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	completed := "completed"
	mock.ExpectQuery("FROM guest_requests").
		WithArgs(int64(5)).
		WillReturnRows(guestRequestRow(5, "completed"))
	// completed_at not in the SET list on a repeat completion
	mock.ExpectExec("UPDATE guest_requests").
		WithArgs("completed", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM guest_requests").
		WithArgs(int64(5)).
		WillReturnRows(guestRequestRow(5, "completed"))

	svc := GuestRequestService{DB: db}
	if _, err := svc.UpdateRequest(5, models.GuestRequestPatch{RequestStatus: &completed}); err != nil {
		t.Fatalf("update error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
