// File: database/repository/booking/queries.go
package bookingRepo

import (
	"context"
	"fmt"

	"bookingschedule/database"
	"bookingschedule/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// liveFilter matches the merchant's bookings that still consume capacity.
func liveFilter(merchantID string) bson.M {
	return bson.M{
		"merchant_id": merchantID,
		"deleted":     bson.M{"$ne": true},
		"inactive":    bson.M{"$ne": true},
	}
}

func (r *mongoBookingRepo) CountForSlot(ctx context.Context, merchantID, date, timeFrom, timeTo string) (int, error) {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	filter := liveFilter(merchantID)
	filter["date"] = date
	filter["time_from"] = timeFrom
	filter["time_to"] = timeTo

	n, err := r.coll.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("error counting bookings: %w", err)
	}
	return int(n), nil
}

// CountForSlotByDates counts the slot's bookings for every date in one
// aggregation. Dates without bookings are absent from the result.
func (r *mongoBookingRepo) CountForSlotByDates(ctx context.Context, merchantID, timeFrom, timeTo string, dates []string) (map[string]int, error) {
	counts := make(map[string]int, len(dates))
	if len(dates) == 0 {
		return counts, nil
	}

	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	match := liveFilter(merchantID)
	match["time_from"] = timeFrom
	match["time_to"] = timeTo
	match["date"] = bson.M{"$in": dates}

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$group", Value: bson.M{
			"_id":   "$date",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate booking counts: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Date  string `bson:"_id"`
		Count int    `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode error: %w", err)
	}
	for _, row := range rows {
		counts[row.Date] = row.Count
	}
	return counts, nil
}

func (r *mongoBookingRepo) Search(ctx context.Context, merchantID string, f models.BookingFilter) ([]models.Booking, error) {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	filter := liveFilter(merchantID)
	if f.Date != "" {
		filter["date"] = f.Date
	}
	if f.TimeFrom != "" {
		filter["time_from"] = bson.M{"$gte": f.TimeFrom}
	}
	if f.TimeTo != "" {
		filter["time_to"] = bson.M{"$lte": f.TimeTo}
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "time_from", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to search bookings: %w", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("error decoding bookings: %w", err)
	}
	return bookings, nil
}
