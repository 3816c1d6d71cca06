package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type DonationClaimRepository interface {
	// Create returns a duplicate-claim error when the claimant already has a
	// claim on the item, terminal or not.
	Create(ctx context.Context, claim *entity.DonationClaim) error
	Update(ctx context.Context, claim *entity.DonationClaim) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationClaim, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationClaim, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error
}
