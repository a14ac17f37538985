package models

import (
	"time"
)

// Balance is the per-player point balance document. The document is keyed by the
// verified subject id of the bearer token, so there is exactly one per player.
type Balance struct {
	UserID          string    `bson:"_id" json:"userId"`
	Points          int64     `bson:"points" json:"points"`
	LastAdRewardDay string    `bson:"lastAdRewardDay,omitempty" json:"lastAdRewardDay,omitempty"` // UTC day-key, e.g. "2026-08-31"
	CreatedAt       time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
	UpdatedAt       time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
