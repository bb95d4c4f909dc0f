package handlers

import (
	"fmt"
	"net/http"

	"travelapp/internal/http/middleware"
	"travelapp/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/bookings/:id/voucher (traveler who owns it, or hotel owner)
func GetBookingVoucher(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if _, ok := authorizeBookingAccess(c, bookingID); !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.GenerateVoucher(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, data, filename)
}

// GET /api/bookings/:id/invoice (traveler who owns it, or hotel owner)
func GetBookingInvoice(c *gin.Context) {
	bookingID, ok := ParamID(c, "id")
	if !ok {
		return
	}
	if _, ok := authorizeBookingAccess(c, bookingID); !ok {
		return
	}

	svc := services.DocsService{RequestID: middleware.GetRequestID(c)}
	data, filename, err := svc.GenerateInvoice(bookingID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	servePDF(c, data, filename)
}

func servePDF(c *gin.Context, data []byte, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
