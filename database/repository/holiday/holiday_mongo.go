package holidayRepo

import (
	"context"
	"fmt"
	"time"

	"bookingschedule/database"
	"bookingschedule/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoHolidayRepo) IsHoliday(ctx context.Context, merchantID, date string) (bool, error) {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	filter := bson.M{
		"date":     date,
		"deleted":  bson.M{"$ne": true},
		"inactive": bson.M{"$ne": true},
		"$or": bson.A{
			bson.M{"merchant_id": merchantID},
			bson.M{"merchant_id": ""},
			bson.M{"merchant_id": bson.M{"$exists": false}},
		},
	}
	n, err := r.coll.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("failed to look up holiday %s: %w", date, err)
	}
	return n > 0, nil
}

func (r *mongoHolidayRepo) Create(ctx context.Context, holiday *models.PublicHoliday) error {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	if holiday.ID == "" {
		holiday.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, holiday); err != nil {
		return fmt.Errorf("failed to create holiday: %w", err)
	}
	return nil
}

func (r *mongoHolidayRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "merchant_id", Value: 1}}, Options: options.Index().SetName("date_merchant_idx")},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create holiday indexes: %w", err)
	}
	return nil
}
