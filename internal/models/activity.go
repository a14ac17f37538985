package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Activity is an append-only audit record written alongside every successful
// balance increment. Records are never mutated or deleted.
type Activity struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID      string             `bson:"userId" json:"userId"`
	Description string             `bson:"description" json:"description"`
	Timestamp   time.Time          `bson:"timestamp" json:"timestamp"` // assigned by the repository at insert time
	TotalScore  *float64           `bson:"totalScore,omitempty" json:"totalScore,omitempty"`
}
