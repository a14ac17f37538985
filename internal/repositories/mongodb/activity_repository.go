package mongodb

import (
	"context"

	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure ActivityRepository implements the interface
var _ repositories.ActivityRepository = (*ActivityRepository)(nil)

// ActivityRepository handles MongoDB read access to the audit trail. Writes go
// through BalanceRepository.Award so that every record is created inside the
// same transaction as its balance increment.
type ActivityRepository struct {
	collection *mongo.Collection
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *mongo.Database) *ActivityRepository {
	return &ActivityRepository{
		collection: db.Collection("activities"),
	}
}

// FindByUserID finds all activity records for a player, newest first
func (r *ActivityRepository) FindByUserID(ctx context.Context, userID string) ([]*models.Activity, error) {
	var activities []*models.Activity
	filter := bson.M{"userId": userID}
	findOptions := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err = cursor.All(ctx, &activities); err != nil {
		return nil, err
	}

	// Return empty slice instead of nil if no documents found
	if activities == nil {
		activities = []*models.Activity{}
	}

	return activities, nil
}
