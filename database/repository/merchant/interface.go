package merchantRepo

import (
	"bookingschedule/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MerchantRepository reads merchants and their embedded schedule rules.
// Lookups return (nil, nil) when no merchant matches.
type MerchantRepository interface {
	// GetByNsID resolves the external merchant identity.
	GetByNsID(ctx context.Context, merchantNsID string) (*models.Merchant, error)
	// GetByID resolves the internal identity.
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
	Create(ctx context.Context, merchant *models.Merchant) error
	EnsureIndexes(ctx context.Context) error
}

// MongoMerchantRepo implements MerchantRepository using MongoDB.
type MongoMerchantRepo struct {
	coll *mongo.Collection
}

// NewMongoMerchantRepo constructs a MerchantRepository on db.
func NewMongoMerchantRepo(db *mongo.Database) MerchantRepository {
	return &MongoMerchantRepo{coll: db.Collection("merchants")}
}
