package models

// AdRewardRequest is the payload for POST /applyAdReward
type AdRewardRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// GamePointsRequest is the payload for POST /awardGamePoints.
// Points and Level are decoded as float64 so that fractional values can be
// rejected explicitly instead of failing deep inside JSON binding.
type GamePointsRequest struct {
	UserID     string   `json:"userId" binding:"required"`
	Points     float64  `json:"points"`
	Level      *float64 `json:"level,omitempty"`
	TotalScore *float64 `json:"totalScore,omitempty"`
}

// RewardResponse is the uniform body for both reward endpoints
type RewardResponse struct {
	OK     bool   `json:"ok"`
	Added  int64  `json:"added,omitempty"`
	Points int64  `json:"points,omitempty"`
	Error  string `json:"error,omitempty"`
}
