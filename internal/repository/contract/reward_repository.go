package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type RewardRepository interface {
	CreateTier(ctx context.Context, tier *entity.RewardTier) error
	UpdateTier(ctx context.Context, tier *entity.RewardTier) error
	DeleteTier(ctx context.Context, id uuid.UUID) error
	FindTiers(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardTier, error)

	// FindByUser returns nil when the user has no ledger row yet.
	FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserReward, error)
	Create(ctx context.Context, reward *entity.UserReward) error

	// AddPoints adjusts the ledger in a single SQL statement.
	AddPoints(ctx context.Context, userId uuid.UUID, points int) error
	UnlockTier(ctx context.Context, rewardId, tierId uuid.UUID) error
}
