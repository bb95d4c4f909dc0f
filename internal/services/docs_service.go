package services

import (
	"bytes"
	"database/sql"
	"fmt"
	"strings"
	"time"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	"travelapp/internal/domain/models"
	"travelapp/internal/repositories"
	"travelapp/internal/utils"

	"github.com/phpdave11/gofpdf"
)

// DocsService renders booking vouchers and invoices as PDFs.
type DocsService struct {
	BookingRepo repositories.BookingRepository
	HotelRepo   repositories.HotelRepository
	DB          *sql.DB
	RequestID   string
}

func (s DocsService) db() *sql.DB {
	if s.DB != nil {
		return s.DB
	}
	return intconfig.DB
}

func (s DocsService) bookings() repositories.BookingRepository {
	if s.BookingRepo.DB != nil {
		return s.BookingRepo
	}
	return repositories.BookingRepository{DB: s.db()}
}

func (s DocsService) hotels() repositories.HotelRepository {
	if s.HotelRepo.DB != nil {
		return s.HotelRepo
	}
	return repositories.HotelRepository{DB: s.db()}
}

func (s DocsService) GenerateVoucher(bookingID int64) ([]byte, string, error) {
	b, hotelName, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_voucher", fmt.Sprintf("booking_id=%d", bookingID))
	return buildVoucherPDF(b, hotelName)
}

func (s DocsService) GenerateInvoice(bookingID int64) ([]byte, string, error) {
	b, hotelName, err := s.loadBooking(bookingID)
	if err != nil {
		return nil, "", err
	}
	utils.LogEvent(s.RequestID, "docs", "generate_invoice", fmt.Sprintf("booking_id=%d", bookingID))
	return buildInvoicePDF(b, hotelName)
}

func (s DocsService) loadBooking(bookingID int64) (models.Booking, string, error) {
	b, err := s.bookings().GetByID(bookingID)
	if err != nil {
		if err == sql.ErrNoRows {
			return models.Booking{}, "", domain.NotFoundError{Resource: "booking"}
		}
		return models.Booking{}, "", domain.InternalError{Err: err}
	}
	hotelName, err := s.hotels().GetName(b.HotelID)
	if err != nil {
		hotelName = fmt.Sprintf("Hotel #%d", b.HotelID)
	}
	return b, hotelName, nil
}

func buildVoucherPDF(b models.Booking, hotelName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Booking Voucher", false)
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "BOOKING VOUCHER")
	pdf.Ln(12)

	nights := nightsBetween(b.CheckInDate, b.CheckOutDate)
	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Hotel        : %s", safe(hotelName, "-")),
		fmt.Sprintf("Room Type    : %s", safe(b.RoomType, "-")),
		fmt.Sprintf("Check-in     : %s", safe(b.CheckInDate, "-")),
		fmt.Sprintf("Check-out    : %s", safe(b.CheckOutDate, "-")),
		fmt.Sprintf("Nights       : %d", nights),
		fmt.Sprintf("Guests       : %d", b.NumGuests),
		fmt.Sprintf("Status       : %s", safe(b.BookingStatus, "-")),
		fmt.Sprintf("Total Price  : %s", utils.FormatMoney(b.TotalPrice)),
		fmt.Sprintf("Booking Code : BK-%d", b.BookingID),
	}
	for _, s := range lines {
		pdf.Cell(0, 7, s)
		pdf.Ln(7)
	}

	if strings.TrimSpace(b.SpecialRequests) != "" {
		pdf.Ln(4)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 7, "Special requests:")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 12)
		pdf.MultiCell(0, 6, b.SpecialRequests, "", "", false)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please present this voucher at check-in. The check-out date is not an occupied night.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("VOUCHER_%d.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}

func buildInvoicePDF(b models.Booking, hotelName string) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Invoice", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "INVOICE")
	pdf.Ln(12)

	invNo := fmt.Sprintf("INV-%d", b.BookingID)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 7, "Invoice No  : "+invNo)
	pdf.Ln(7)
	pdf.Cell(0, 7, "Date        : "+time.Now().Format("2006-01-02 15:04"))
	pdf.Ln(10)

	nights := nightsBetween(b.CheckInDate, b.CheckOutDate)
	nightly := 0.0
	if nights > 0 {
		nightly = utils.RoundMoney(b.TotalPrice / float64(nights))
	}

	desc := fmt.Sprintf("Stay at %s, %s (%s to %s)", safe(hotelName, "-"), safe(b.RoomType, "-"), b.CheckInDate, b.CheckOutDate)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Description")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 12)
	pdf.MultiCell(0, 6, desc, "", "", false)
	pdf.Ln(4)
	pdf.Cell(0, 7, fmt.Sprintf("%d night(s) x %s", nights, utils.FormatMoney(nightly)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, "TOTAL: "+utils.FormatMoney(b.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("INVOICE_%d.pdf", b.BookingID)
	return buf.Bytes(), filename, nil
}

func nightsBetween(checkIn, checkOut string) int {
	in, err1 := utils.ParseDate(checkIn)
	out, err2 := utils.ParseDate(checkOut)
	if err1 != nil || err2 != nil {
		return 0
	}
	return utils.Nights(in, out)
}

func safe(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
