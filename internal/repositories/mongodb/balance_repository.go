package mongodb

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/repositories"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Compile-time check to ensure BalanceRepository implements the interface
var _ repositories.BalanceRepository = (*BalanceRepository)(nil)

// BalanceRepository handles MongoDB operations for player balances. The award
// path also writes the activities collection, inside the same transaction.
type BalanceRepository struct {
	client     *mongo.Client
	balances   *mongo.Collection
	activities *mongo.Collection
}

// NewBalanceRepository creates a new BalanceRepository
func NewBalanceRepository(db *mongo.Database) *BalanceRepository {
	return &BalanceRepository{
		client:     db.Client(),
		balances:   db.Collection("balances"),
		activities: db.Collection("activities"),
	}
}

// FindByUserID finds a balance document by player id
func (r *BalanceRepository) FindByUserID(ctx context.Context, userID string) (*models.Balance, error) {
	var balance models.Balance
	filter := bson.M{"_id": userID}
	err := r.balances.FindOne(ctx, filter).Decode(&balance)
	if err != nil {
		return nil, err // Includes mongo.ErrNoDocuments
	}
	return &balance, nil
}

// Award runs the reward transaction: snapshot read, policy check, $inc upsert of
// the balance, activity insert, commit. A policy rejection aborts the transaction
// and the policy's error is returned as-is. Transient transaction errors are
// retried by the driver, which re-runs the callback and therefore re-evaluates
// the policy against a fresh snapshot.
func (r *BalanceRepository) Award(ctx context.Context, userID string, points int64, dayKey string, policy repositories.PolicyCheck, activity *models.Activity) (int64, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return 0, err
	}
	defer session.EndSession(ctx)

	var total int64
	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		var snapshot models.Balance
		err := r.balances.FindOne(sc, bson.M{"_id": userID}).Decode(&snapshot)
		if err != nil {
			if !errors.Is(err, mongo.ErrNoDocuments) {
				return nil, err
			}
			// Absence is valid: treat as a zero-value record
			snapshot = models.Balance{UserID: userID}
		}

		if perr := policy(&snapshot); perr != nil {
			return nil, perr
		}

		now := time.Now().UTC()
		set := bson.M{"updatedAt": now}
		if dayKey != "" {
			set["lastAdRewardDay"] = dayKey
		}
		update := bson.M{
			"$inc":         bson.M{"points": points},
			"$set":         set,
			"$setOnInsert": bson.M{"createdAt": now},
		}
		opts := options.Update().SetUpsert(true)
		if _, err := r.balances.UpdateOne(sc, bson.M{"_id": userID}, update, opts); err != nil {
			return nil, err
		}

		activity.ID = primitive.NewObjectID()
		activity.UserID = userID
		activity.Timestamp = now
		if _, err := r.activities.InsertOne(sc, activity); err != nil {
			return nil, err
		}

		total = snapshot.Points + points
		return nil, nil
	})
	if err != nil {
		return 0, err
	}

	// Best-effort re-read of the committed total. A failure here does not roll
	// back the commit; the in-transaction total is reported instead.
	var committed models.Balance
	if err := r.balances.FindOne(ctx, bson.M{"_id": userID}).Decode(&committed); err != nil {
		log.Printf("[WARN] BalanceRepository.Award: post-commit re-read failed for %s: %v", userID, err)
		return total, nil
	}
	return committed.Points, nil
}
