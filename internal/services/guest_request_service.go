package services

import (
	"database/sql"
	"strings"
	"time"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"
)

type GuestRequestService struct {
	RequestRepo repositories.GuestRequestRepository
	BookingRepo repositories.BookingRepository
	DB          *sql.DB

	Now func() time.Time
}

func (s GuestRequestService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s GuestRequestService) requests() repositories.GuestRequestRepository {
	if s.RequestRepo.DB != nil {
		return s.RequestRepo
	}
	return repositories.GuestRequestRepository{DB: s.db()}
}

func (s GuestRequestService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s GuestRequestService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

type CreateGuestRequestInput struct {
	RequestType    string `json:"request_type"`
	RequestDetails string `json:"request_details"`
	Priority       string `json:"priority"`
}

func (s GuestRequestService) CreateRequest(bookingID int64, in CreateGuestRequestInput) (models.GuestRequest, error) {
	if !models.ValidRequestType(in.RequestType) {
		return models.GuestRequest{}, domain.ValidationError{Field: "request_type", Msg: "unknown request type"}
	}
	if strings.TrimSpace(in.RequestDetails) == "" {
		return models.GuestRequest{}, domain.ValidationError{Field: "request_details", Msg: "must not be empty"}
	}
	if in.Priority == "" {
		in.Priority = models.PriorityMedium
	}
	if !models.ValidPriority(in.Priority) {
		return models.GuestRequest{}, domain.ValidationError{Field: "priority", Msg: "unknown priority"}
	}

	if _, err := s.bookings().GetByID(bookingID); err != nil {
		if err == sql.ErrNoRows {
			return models.GuestRequest{}, domain.NotFoundError{Resource: "booking"}
		}
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}

	id, err := s.requests().Insert(models.GuestRequest{
		BookingID:      bookingID,
		RequestType:    in.RequestType,
		RequestStatus:  models.RequestPending,
		RequestDetails: in.RequestDetails,
		Priority:       in.Priority,
	})
	if err != nil {
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}

	req, err := s.requests().GetByID(id)
	if err != nil {
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}
	return req, nil
}

// UpdateRequest applies a partial update. No transition constraints: any
// status can follow any other. Completion time is stamped when the status
// first becomes completed.
func (s GuestRequestService) UpdateRequest(requestID int64, patch models.GuestRequestPatch) (models.GuestRequest, error) {
	if patch.RequestStatus != nil && !models.ValidRequestStatus(*patch.RequestStatus) {
		return models.GuestRequest{}, domain.ValidationError{Field: "request_status", Msg: "unknown status"}
	}
	if patch.Priority != nil && !models.ValidPriority(*patch.Priority) {
		return models.GuestRequest{}, domain.ValidationError{Field: "priority", Msg: "unknown priority"}
	}

	current, err := s.requests().GetByID(requestID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.GuestRequest{}, domain.NotFoundError{Resource: "guest request"}
		}
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}

	completedAt := ""
	if patch.RequestStatus != nil &&
		*patch.RequestStatus == models.RequestCompleted &&
		current.RequestStatus != models.RequestCompleted {
		completedAt = utils.FormatDateTime(s.now())
	}

	if err := s.requests().Update(requestID, patch, completedAt); err != nil {
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}

	req, err := s.requests().GetByID(requestID)
	if err != nil {
		return models.GuestRequest{}, domain.InternalError{Err: err}
	}
	return req, nil
}

func (s GuestRequestService) ListByBooking(bookingID int64) ([]models.GuestRequest, error) {
	if _, err := s.bookings().GetByID(bookingID); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.NotFoundError{Resource: "booking"}
		}
		return nil, domain.InternalError{Err: err}
	}
	out, err := s.requests().ListByBooking(bookingID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}

func (s GuestRequestService) ListByHotel(hotelID int64) ([]models.GuestRequest, error) {
	out, err := s.requests().ListByHotel(hotelID)
	if err != nil {
		return nil, domain.InternalError{Err: err}
	}
	return out, nil
}
