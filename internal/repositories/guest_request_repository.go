package repositories

import (
	"database/sql"
	"strings"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain/models"
)

const guestRequestColumns = `gr.request_id, gr.booking_id, gr.request_type, gr.request_status,
		gr.request_details, gr.priority, gr.assigned_to,
		DATE_FORMAT(gr.created_at, '%Y-%m-%d %H:%i:%s'), DATE_FORMAT(gr.updated_at, '%Y-%m-%d %H:%i:%s'),
		COALESCE(DATE_FORMAT(gr.completed_at, '%Y-%m-%d %H:%i:%s'), '')`

type GuestRequestRepository struct {
	DB *sql.DB
}

func (r GuestRequestRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r GuestRequestRepository) Insert(req models.GuestRequest) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO guest_requests
			(booking_id, request_type, request_status, request_details, priority, assigned_to)
		VALUES (?,?,?,?,?,?)
	`,
		req.BookingID,
		req.RequestType,
		req.RequestStatus,
		strings.TrimSpace(req.RequestDetails),
		req.Priority,
		req.AssignedTo,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r GuestRequestRepository) GetByID(id int64) (models.GuestRequest, error) {
	row := r.db().QueryRow(`
		SELECT `+guestRequestColumns+`
		FROM guest_requests gr
		WHERE gr.request_id=? LIMIT 1
	`, id)
	return scanGuestRequest(row)
}

func (r GuestRequestRepository) ListByBooking(bookingID int64) ([]models.GuestRequest, error) {
	rows, err := r.db().Query(`
		SELECT `+guestRequestColumns+`
		FROM guest_requests gr
		WHERE gr.booking_id=?
		ORDER BY gr.request_id ASC
	`, bookingID)
	if err != nil {
		return nil, err
	}
	return collectGuestRequests(rows)
}

// ListByHotel walks requests through the booking table so hotel owners see
// every request against any of their bookings.
func (r GuestRequestRepository) ListByHotel(hotelID int64) ([]models.GuestRequest, error) {
	rows, err := r.db().Query(`
		SELECT `+guestRequestColumns+`
		FROM guest_requests gr
		JOIN hotel_bookings hb ON hb.booking_id = gr.booking_id
		WHERE hb.hotel_id=?
		ORDER BY gr.request_id ASC
	`, hotelID)
	if err != nil {
		return nil, err
	}
	return collectGuestRequests(rows)
}

// Update applies only the fields present in the patch; completedAt is set by
// the service when a request transitions to completed.
func (r GuestRequestRepository) Update(id int64, patch models.GuestRequestPatch, completedAt string) error {
	sets := []string{}
	args := []any{}

	if patch.RequestStatus != nil {
		sets = append(sets, "request_status=?")
		args = append(args, *patch.RequestStatus)
	}
	if patch.RequestDetails != nil {
		sets = append(sets, "request_details=?")
		args = append(args, strings.TrimSpace(*patch.RequestDetails))
	}
	if patch.Priority != nil {
		sets = append(sets, "priority=?")
		args = append(args, *patch.Priority)
	}
	if patch.AssignedTo != nil {
		sets = append(sets, "assigned_to=?")
		args = append(args, *patch.AssignedTo)
	}
	if completedAt != "" {
		sets = append(sets, "completed_at=?")
		args = append(args, completedAt)
	}
	if len(sets) == 0 {
		return nil
	}

	args = append(args, id)
	_, err := r.db().Exec(`UPDATE guest_requests SET `+strings.Join(sets, ",")+` WHERE request_id=?`, args...)
	return err
}

func collectGuestRequests(rows *sql.Rows) ([]models.GuestRequest, error) {
	defer rows.Close()
	out := []models.GuestRequest{}
	for rows.Next() {
		req, err := scanGuestRequest(rows)
		if err != nil {
			return out, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

func scanGuestRequest(row rowScanner) (models.GuestRequest, error) {
	var req models.GuestRequest
	var assigned sql.NullInt64
	err := row.Scan(
		&req.RequestID,
		&req.BookingID,
		&req.RequestType,
		&req.RequestStatus,
		&req.RequestDetails,
		&req.Priority,
		&assigned,
		&req.CreatedAt,
		&req.UpdatedAt,
		&req.CompletedAt,
	)
	if assigned.Valid {
		v := assigned.Int64
		req.AssignedTo = &v
	}
	return req, err
}
