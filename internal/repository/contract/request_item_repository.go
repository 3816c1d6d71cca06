package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type RequestItemRepository interface {
	Create(ctx context.Context, request *entity.RequestItem) error
	Update(ctx context.Context, request *entity.RequestItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestItem, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestItem, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error
}
