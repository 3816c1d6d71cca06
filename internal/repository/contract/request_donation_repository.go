package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type RequestDonationRepository interface {
	Create(ctx context.Context, donation *entity.RequestDonation) error
	Update(ctx context.Context, donation *entity.RequestDonation) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestDonation, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestDonation, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FulfillmentStatus) error
}
