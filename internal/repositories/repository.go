package repositories

import (
	"context"

	"github.com/playforge/rewards-backend/internal/models"
)

// PolicyCheck decides whether an award may proceed, given a snapshot of the
// balance record taken inside the transaction (zero-value record when the player
// has no document yet). Returning an error aborts the transaction with no
// mutation and no audit record; the error is surfaced unchanged to the caller.
// The check is re-evaluated on every optimistic retry of the transaction.
type PolicyCheck func(snapshot *models.Balance) error

// BalanceRepository defines storage operations for player balances
type BalanceRepository interface {
	// FindByUserID returns the balance document for a player, or the store's
	// not-found error when no document exists.
	FindByUserID(ctx context.Context, userID string) (*models.Balance, error)

	// Award atomically increments the player's point total by points and appends
	// the given activity record, all in one transaction. dayKey, when non-empty,
	// is recorded as the player's last ad-reward day in the same write; unrelated
	// fields are merged, never overwritten. The returned total is re-read after
	// commit on a best-effort basis.
	Award(ctx context.Context, userID string, points int64, dayKey string, policy PolicyCheck, activity *models.Activity) (int64, error)
}

// ActivityRepository defines read access to the append-only audit trail
type ActivityRepository interface {
	FindByUserID(ctx context.Context, userID string) ([]*models.Activity, error)
}

// AccountRepository defines storage operations for issuer accounts
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
}
