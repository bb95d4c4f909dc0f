package models

// Guest request types.
const (
	RequestEarlyCheckin = "early_checkin"
	RequestLateCheckout = "late_checkout"
	RequestRoomService  = "room_service"
	RequestHousekeeping = "housekeeping"
	RequestMaintenance  = "maintenance"
	RequestOther        = "other"
)

// Guest request statuses. Any status can follow any other.
const (
	RequestPending    = "pending"
	RequestInProgress = "in_progress"
	RequestCompleted  = "completed"
	RequestDeclined   = "declined"
)

// Guest request priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

// GuestRequest is an ad-hoc service request tied to an existing booking.
type GuestRequest struct {
	RequestID      int64  `json:"request_id"`
	BookingID      int64  `json:"booking_id"`
	RequestType    string `json:"request_type"`
	RequestStatus  string `json:"request_status"`
	RequestDetails string `json:"request_details"`
	Priority       string `json:"priority"`
	AssignedTo     *int64 `json:"assigned_to"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
	CompletedAt    string `json:"completed_at,omitempty"`
}

// GuestRequestPatch supports partial update of status/priority/assignment.
type GuestRequestPatch struct {
	RequestStatus  *string `json:"request_status"`
	RequestDetails *string `json:"request_details"`
	Priority       *string `json:"priority"`
	AssignedTo     *int64  `json:"assigned_to"`
}

func ValidRequestType(s string) bool {
	switch s {
	case RequestEarlyCheckin, RequestLateCheckout, RequestRoomService,
		RequestHousekeeping, RequestMaintenance, RequestOther:
		return true
	}
	return false
}

func ValidRequestStatus(s string) bool {
	switch s {
	case RequestPending, RequestInProgress, RequestCompleted, RequestDeclined:
		return true
	}
	return false
}

func ValidPriority(s string) bool {
	switch s {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent:
		return true
	}
	return false
}
