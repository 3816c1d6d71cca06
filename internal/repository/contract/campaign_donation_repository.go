package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type CampaignDonationRepository interface {
	Create(ctx context.Context, donation *entity.CampaignDonation) error
	Update(ctx context.Context, donation *entity.CampaignDonation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CampaignDonation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CampaignDonation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}
