// File: database/repository/booking/interface.go
package bookingRepo

import (
	"bookingschedule/models"
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// BookingRepository is the booking ledger. Lookups return (nil, nil) when the
// booking does not exist. Counts and searches never include bookings flagged
// deleted or inactive.
type BookingRepository interface {
	Create(ctx context.Context, booking *models.Booking) error
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	Update(ctx context.Context, id string, update models.BookingUpdate, at time.Time) (*models.Booking, error)
	SoftDelete(ctx context.Context, id string, at time.Time) error
	Delete(ctx context.Context, id string) error

	CountForSlot(ctx context.Context, merchantID, date, timeFrom, timeTo string) (int, error)
	CountForSlotByDates(ctx context.Context, merchantID, timeFrom, timeTo string, dates []string) (map[string]int, error)
	Search(ctx context.Context, merchantID string, filter models.BookingFilter) ([]models.Booking, error)

	EnsureIndexes(ctx context.Context) error
}

type mongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo constructs a MongoDB BookingRepository on db.
func NewMongoBookingRepo(db *mongo.Database) BookingRepository {
	return &mongoBookingRepo{
		coll: db.Collection("bookings"),
	}
}
