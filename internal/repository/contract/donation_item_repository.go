package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type DonationItemRepository interface {
	Create(ctx context.Context, item *entity.DonationItem) error
	Update(ctx context.Context, item *entity.DonationItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error

	AddImage(ctx context.Context, image *entity.DonationImage) error
	FindImages(ctx context.Context, itemId uuid.UUID) ([]*entity.DonationImage, error)
	DeleteImage(ctx context.Context, id uuid.UUID) error
}
