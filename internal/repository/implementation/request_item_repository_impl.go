package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/mapper"
	"givebridge-be/internal/model"
	"givebridge-be/internal/repository/contract"
	"givebridge-be/internal/repository/specification"
)

type RequestItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewRequestItemRepository(db *gorm.DB) contract.RequestItemRepository {
	return &RequestItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *RequestItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestItemRepositoryImpl) Create(ctx context.Context, request *entity.RequestItem) error {
	modelRequest := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Create(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(modelRequest)
	return nil
}

func (r *RequestItemRepositoryImpl) Update(ctx context.Context, request *entity.RequestItem) error {
	modelRequest := r.mapper.ToModel(request)
	if err := r.db.WithContext(ctx).Save(modelRequest).Error; err != nil {
		return err
	}
	*request = *r.mapper.ToEntity(modelRequest)
	return nil
}

func (r *RequestItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RequestItem{}).Error
}

func (r *RequestItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestItem, error) {
	var modelRequest model.RequestItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelRequest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelRequest), nil
}

func (r *RequestItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestItem, error) {
	var modelRequests []*model.RequestItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelRequests).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelRequests), nil
}

func (r *RequestItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RequestItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RequestItemRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.RequestStatus) error {
	return r.db.WithContext(ctx).Model(&model.RequestItem{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
