package merchantUserRepo

import (
	"bookingschedule/models"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
)

// MerchantUserRepository defines methods for credential subject access.
type MerchantUserRepository interface {
	// GetByUsername returns (nil, nil) when no user has that username.
	GetByUsername(ctx context.Context, username string) (*models.MerchantUser, error)
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.MerchantUser) error
	EnsureIndexes(ctx context.Context) error
}

// MongoMerchantUserRepo implements MerchantUserRepository using MongoDB.
type MongoMerchantUserRepo struct {
	coll *mongo.Collection
}

// NewMongoMerchantUserRepo creates a MerchantUserRepository on db.
func NewMongoMerchantUserRepo(db *mongo.Database) MerchantUserRepository {
	return &MongoMerchantUserRepo{coll: db.Collection("merchant_users")}
}
