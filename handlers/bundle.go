package handlers

import (
	"bookingschedule/services/auth"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the endpoint handlers wired by main.
type HandlerBundle struct {
	AuthService auth.AuthService
	TokenHeader string

	// Auth endpoints
	AuthenticateHandler gin.HandlerFunc
	VerifyTokenHandler  gin.HandlerFunc

	// Schedule endpoints
	GetDeliveryScheduleHandler gin.HandlerFunc

	// Booking endpoints
	CreateBookingHandler  gin.HandlerFunc
	SearchBookingsHandler gin.HandlerFunc
	GetBookingHandler     gin.HandlerFunc
	UpdateBookingHandler  gin.HandlerFunc
	DeleteBookingHandler  gin.HandlerFunc

	HealthCheckHandler gin.HandlerFunc
}

// NewHandlerBundle assembles the bundle from the individual handlers.
func NewHandlerBundle(authHandler *AuthHandler, schedule *ScheduleHandler, bookings *BookingHandler, health *HealthHandler) *HandlerBundle {
	return &HandlerBundle{
		AuthService: authHandler.Auth,
		TokenHeader: authHandler.TokenHeader,

		AuthenticateHandler: authHandler.AuthenticateHandler,
		VerifyTokenHandler:  authHandler.VerifyHandler,

		GetDeliveryScheduleHandler: schedule.GetDeliveryScheduleHandler,

		CreateBookingHandler:  bookings.CreateBookingHandler,
		SearchBookingsHandler: bookings.SearchBookingsHandler,
		GetBookingHandler:     bookings.GetBookingHandler,
		UpdateBookingHandler:  bookings.UpdateBookingHandler,
		DeleteBookingHandler:  bookings.DeleteBookingHandler,

		HealthCheckHandler: health.HealthCheckHandler,
	}
}
