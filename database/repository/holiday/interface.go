package holidayRepo

import (
	"bookingschedule/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// HolidayRepository answers holiday lookups from the public holiday calendar.
type HolidayRepository interface {
	// IsHoliday reports whether an active holiday exists on date for the
	// merchant, or for every merchant.
	IsHoliday(ctx context.Context, merchantID, date string) (bool, error)
	Create(ctx context.Context, holiday *models.PublicHoliday) error
	EnsureIndexes(ctx context.Context) error
}

type mongoHolidayRepo struct {
	coll *mongo.Collection
}

// NewMongoHolidayRepo constructs a HolidayRepository on db.
func NewMongoHolidayRepo(db *mongo.Database) HolidayRepository {
	return &mongoHolidayRepo{coll: db.Collection("public_holidays")}
}
