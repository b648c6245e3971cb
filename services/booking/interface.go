package booking

import (
	"context"

	bookingRepo "bookingschedule/database/repository/booking"
	merchantRepo "bookingschedule/database/repository/merchant"
	"bookingschedule/models"
	"bookingschedule/utils"
)

// DeleteMode selects what Delete does to a booking record.
type DeleteMode string

const (
	// DeleteSoft flags the booking deleted and keeps the record.
	DeleteSoft DeleteMode = "soft"
	// DeleteHard removes the record.
	DeleteHard DeleteMode = "hard"
)

// ParseDeleteMode maps a configuration value to a DeleteMode; anything but
// "hard" is soft.
func ParseDeleteMode(s string) DeleteMode {
	if DeleteMode(s) == DeleteHard {
		return DeleteHard
	}
	return DeleteSoft
}

// BookingService is the write and lookup side of the booking ledger. Every
// operation is scoped to the caller's external merchant identity.
type BookingService interface {
	CreateBooking(ctx context.Context, merchantNsID string, input models.BookingInput) (*models.Booking, error)
	GetBooking(ctx context.Context, merchantNsID, id string) (*models.Booking, error)
	UpdateBooking(ctx context.Context, merchantNsID, id string, input models.BookingInput) (*models.Booking, error)
	DeleteBooking(ctx context.Context, merchantNsID, id string) error
	SearchBookings(ctx context.Context, merchantNsID string, filter models.BookingFilter) ([]models.Booking, error)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Merchants  merchantRepo.MerchantRepository
	Bookings   bookingRepo.BookingRepository
	Clock      utils.Clock
	DeleteMode DeleteMode
}
