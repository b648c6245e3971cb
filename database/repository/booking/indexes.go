// FILE: database/repository/booking/indexes.go
package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the bookings collection.
func (r *mongoBookingRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Slot counting: merchant + exact window + date.
		{
			Keys: bson.D{
				{Key: "merchant_id", Value: 1},
				{Key: "time_from", Value: 1},
				{Key: "time_to", Value: 1},
				{Key: "date", Value: 1},
			},
			Options: options.Index().SetName("merchant_slot_date_idx"),
		},
		{
			Keys:    bson.D{{Key: "merchant_id", Value: 1}, {Key: "date", Value: 1}},
			Options: options.Index().SetName("merchant_date_idx"),
		},
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create booking indexes: %w", err)
	}
	return nil
}
