package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error)

	CreateCampaignCategory(ctx context.Context, category *entity.CampaignCategory) error
	UpdateCampaignCategory(ctx context.Context, category *entity.CampaignCategory) error
	DeleteCampaignCategory(ctx context.Context, id uuid.UUID) error
	FindOneCampaignCategory(ctx context.Context, specs ...specification.Specification) (*entity.CampaignCategory, error)
	FindAllCampaignCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.CampaignCategory, error)
}
