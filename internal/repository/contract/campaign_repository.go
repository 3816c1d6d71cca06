package contract

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign *entity.Campaign) error
	Update(ctx context.Context, campaign *entity.Campaign) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus) error

	// IncrementCollected and DecrementCollected adjust the denormalized
	// running total in a single SQL statement. Decrement floors at zero.
	IncrementCollected(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error
	DecrementCollected(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error

	AddUpdate(ctx context.Context, update *entity.CampaignUpdate) error
	FindUpdates(ctx context.Context, campaignId uuid.UUID) ([]*entity.CampaignUpdate, error)
}
