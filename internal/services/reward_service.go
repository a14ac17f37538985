package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/playforge/rewards-backend/internal/config"
	"github.com/playforge/rewards-backend/internal/models"
	"github.com/playforge/rewards-backend/internal/repositories"
	"github.com/playforge/rewards-backend/internal/utils"
	"go.mongodb.org/mongo-driver/mongo"
)

// ErrAlreadyClaimed is the policy rejection for a second ad reward within the
// same UTC calendar day. It is an expected business outcome, not a fault.
var ErrAlreadyClaimed = errors.New("already claimed today")

// RewardService defines the reward transaction operations
type RewardService interface {
	// ApplyAdReward grants the fixed daily ad reward to a player. Returns the
	// amount added and the resulting total, or ErrAlreadyClaimed when the
	// player's stored day-key already matches today's.
	ApplyAdReward(ctx context.Context, userID string) (added int64, total int64, err error)

	// AwardGamePoints grants a caller-supplied number of points. Range checks on
	// points and level happen at the handler boundary before any transaction is
	// opened; the transaction itself runs with an always-accept policy.
	AwardGamePoints(ctx context.Context, userID string, points int64, level *int64, totalScore *float64) (total int64, err error)

	// GetBalance returns the player's balance, zero-valued when absent.
	GetBalance(ctx context.Context, userID string) (*models.Balance, error)

	// GetActivities returns the player's audit trail, newest first.
	GetActivities(ctx context.Context, userID string) ([]*models.Activity, error)
}

type rewardService struct {
	balanceRepo  repositories.BalanceRepository
	activityRepo repositories.ActivityRepository
	cfg          config.RewardsConfig
}

// NewRewardService creates a new RewardService implementation
func NewRewardService(balanceRepo repositories.BalanceRepository, activityRepo repositories.ActivityRepository, cfg config.RewardsConfig) RewardService {
	return &rewardService{
		balanceRepo:  balanceRepo,
		activityRepo: activityRepo,
		cfg:          cfg,
	}
}

// ApplyAdReward grants the daily ad reward
func (s *rewardService) ApplyAdReward(ctx context.Context, userID string) (int64, int64, error) {
	today := utils.TodayKey()
	added := s.cfg.AdRewardPoints

	// The policy runs inside the transaction against the in-transaction
	// snapshot, so two simultaneous claims for the same day cannot both pass.
	policy := func(snapshot *models.Balance) error {
		if snapshot.LastAdRewardDay == today {
			return ErrAlreadyClaimed
		}
		return nil
	}

	activity := &models.Activity{
		Description: fmt.Sprintf("Ad reward +%d", added),
	}

	total, err := s.balanceRepo.Award(ctx, userID, added, today, policy, activity)
	if err != nil {
		return 0, 0, err
	}
	return added, total, nil
}

// AwardGamePoints grants game points with an always-accept transaction policy
func (s *rewardService) AwardGamePoints(ctx context.Context, userID string, points int64, level *int64, totalScore *float64) (int64, error) {
	description := fmt.Sprintf("Game points +%d", points)
	if level != nil {
		description = fmt.Sprintf("Game points +%d (level %d)", points, *level)
	}

	activity := &models.Activity{
		Description: description,
		TotalScore:  totalScore,
	}

	accept := func(*models.Balance) error { return nil }
	return s.balanceRepo.Award(ctx, userID, points, "", accept, activity)
}

// GetBalance returns the player's balance
func (s *rewardService) GetBalance(ctx context.Context, userID string) (*models.Balance, error) {
	balance, err := s.balanceRepo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// A player with no document simply has zero points
			return &models.Balance{UserID: userID}, nil
		}
		return nil, err
	}
	return balance, nil
}

// GetActivities returns the player's audit trail
func (s *rewardService) GetActivities(ctx context.Context, userID string) ([]*models.Activity, error) {
	return s.activityRepo.FindByUserID(ctx, userID)
}
