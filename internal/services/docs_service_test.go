package services

import (
	"bytes"
	"testing"

	"travelapp/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestDocsServiceGenerate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, "confirmed"))
	mock.ExpectQuery("SELECT name FROM hotels").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Seaside Inn"))
	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(42)).
		WillReturnRows(bookingRow(42, "confirmed"))
	mock.ExpectQuery("SELECT name FROM hotels").
		WithArgs(int64(10)).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Seaside Inn"))

	svc := DocsService{DB: db}

	voucher, name, err := svc.GenerateVoucher(42)
	if err != nil {
		t.Fatalf("GenerateVoucher returned error: %v", err)
	}
	if len(voucher) == 0 || name != "VOUCHER_42.pdf" {
		t.Fatalf("voucher output unexpected: %d bytes, name %q", len(voucher), name)
	}
	if !bytes.HasPrefix(voucher, []byte("%PDF")) {
		t.Fatalf("voucher is not a PDF")
	}

	invoice, invName, err := svc.GenerateInvoice(42)
	if err != nil {
		t.Fatalf("GenerateInvoice returned error: %v", err)
	}
	if len(invoice) == 0 || invName != "INVOICE_42.pdf" {
		t.Fatalf("invoice output unexpected: %d bytes, name %q", len(invoice), invName)
	}
}

func TestDocsServiceMissingBooking(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM hotel_bookings").
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"booking_id"}))

	svc := DocsService{DB: db}
	if _, _, err := svc.GenerateVoucher(99); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
