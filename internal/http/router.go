package api

import (
	"log"
	stdhttp "net/http"
	"time"

	intconfig "travelapp/internal/config"
	"travelapp/internal/domain"
	h "travelapp/internal/http/handlers"
	"travelapp/internal/http/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(env intconfig.Env) *gin.Engine {
	h.SetJWTSecret(env.JWTSecret)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	authRequired := middleware.JWTAuth([]byte(env.JWTSecret))
	travelerOnly := middleware.RequireRoles(domain.RoleTraveler)
	ownerOnly := middleware.RequireRoles(domain.RoleHotelOwner)
	travelerOrOwner := middleware.RequireRoles(domain.RoleTraveler, domain.RoleHotelOwner)

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		// Auth
		auth := api.Group("/auth")
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)

		// Room type catalog
		hotels := api.Group("/hotels")
		hotels.GET("/:id/room-types", h.GetRoomTypes)
		hotels.POST("/:id/room-types", authRequired, ownerOnly, h.CreateRoomType)
		api.PUT("/room-types/:id", authRequired, ownerOnly, h.UpdateRoomType)

		// Per-date room inventory
		hotels.GET("/:id/availability", h.GetAvailability)
		hotels.POST("/:id/availability", authRequired, ownerOnly, h.CreateAvailability)
		api.PUT("/availability/:id", authRequired, ownerOnly, h.UpdateAvailability)

		// Bookings
		hotels.POST("/:id/book", authRequired, travelerOnly, h.CreateBooking)
		hotels.GET("/:id/bookings", authRequired, ownerOnly, h.GetHotelBookings)
		api.GET("/traveler/bookings", authRequired, travelerOnly, h.GetTravelerBookings)

		bookings := api.Group("/bookings", authRequired, travelerOrOwner)
		bookings.PUT("/:id", h.UpdateBooking)
		bookings.POST("/:id/cancel", h.CancelBooking)
		bookings.GET("/:id/voucher", h.GetBookingVoucher)
		bookings.GET("/:id/invoice", h.GetBookingInvoice)

		// Guest requests
		bookings.POST("/:id/requests", travelerOnly, h.CreateGuestRequest)
		bookings.GET("/:id/requests", h.GetBookingRequests)
		hotels.GET("/:id/requests", authRequired, ownerOnly, h.GetHotelRequests)
		api.PUT("/requests/:id", authRequired, ownerOnly, h.UpdateGuestRequest)

		// Statistics
		hotels.GET("/:id/booking-statistics", authRequired, ownerOnly, h.GetHotelBookingStatistics)
	}

	return r
}
