package merchantRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookingschedule/database"
	"bookingschedule/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoMerchantRepo) findOne(ctx context.Context, filter bson.M) (*models.Merchant, error) {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	var merchant models.Merchant
	if err := r.coll.FindOne(ctx, filter).Decode(&merchant); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &merchant, nil
}

func (r *MongoMerchantRepo) GetByNsID(ctx context.Context, merchantNsID string) (*models.Merchant, error) {
	merchant, err := r.findOne(ctx, bson.M{"merchant_ns_id": merchantNsID})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merchant with ns id %s: %w", merchantNsID, err)
	}
	return merchant, nil
}

func (r *MongoMerchantRepo) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	merchant, err := r.findOne(ctx, bson.M{"id": id})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch merchant with id %s: %w", id, err)
	}
	return merchant, nil
}

func (r *MongoMerchantRepo) Create(ctx context.Context, merchant *models.Merchant) error {
	ctx, cancel := database.NewContext(ctx, database.QueryTimeout)
	defer cancel()

	if merchant.ID == "" {
		merchant.ID = uuid.New().String()
	}
	if _, err := r.coll.InsertOne(ctx, merchant); err != nil {
		return fmt.Errorf("failed to create merchant: %w", err)
	}
	return nil
}

// EnsureIndexes creates indexes for fields frequently used in queries.
func (r *MongoMerchantRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "merchant_ns_id", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create merchant indexes: %w", err)
	}
	return nil
}
