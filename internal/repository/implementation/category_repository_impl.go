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

type CategoryRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CategoryMapper
}

func NewCategoryRepository(db *gorm.DB) contract.CategoryRepository {
	return &CategoryRepositoryImpl{
		db:     db,
		mapper: mapper.NewCategoryMapper(),
	}
}

func (r *CategoryRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CategoryRepositoryImpl) Create(ctx context.Context, category *entity.Category) error {
	modelCategory := r.mapper.ToModel(category)
	if err := r.db.WithContext(ctx).Create(modelCategory).Error; err != nil {
		return err
	}
	*category = *r.mapper.ToEntity(modelCategory)
	return nil
}

func (r *CategoryRepositoryImpl) Update(ctx context.Context, category *entity.Category) error {
	return r.db.WithContext(ctx).Save(r.mapper.ToModel(category)).Error
}

func (r *CategoryRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Category{}).Error
}

func (r *CategoryRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Category, error) {
	var modelCategory model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelCategory), nil
}

func (r *CategoryRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Category, error) {
	var modelCategories []*model.Category
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCategories).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelCategories), nil
}

func (r *CategoryRepositoryImpl) CreateCampaignCategory(ctx context.Context, category *entity.CampaignCategory) error {
	modelCategory := r.mapper.CampaignCategoryToModel(category)
	if err := r.db.WithContext(ctx).Create(modelCategory).Error; err != nil {
		return err
	}
	*category = *r.mapper.CampaignCategoryToEntity(modelCategory)
	return nil
}

func (r *CategoryRepositoryImpl) UpdateCampaignCategory(ctx context.Context, category *entity.CampaignCategory) error {
	return r.db.WithContext(ctx).Save(r.mapper.CampaignCategoryToModel(category)).Error
}

func (r *CategoryRepositoryImpl) DeleteCampaignCategory(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CampaignCategory{}).Error
}

func (r *CategoryRepositoryImpl) FindOneCampaignCategory(ctx context.Context, specs ...specification.Specification) (*entity.CampaignCategory, error) {
	var modelCategory model.CampaignCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCategory).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.CampaignCategoryToEntity(&modelCategory), nil
}

func (r *CategoryRepositoryImpl) FindAllCampaignCategories(ctx context.Context, specs ...specification.Specification) ([]*entity.CampaignCategory, error) {
	var modelCategories []*model.CampaignCategory
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCategories).Error; err != nil {
		return nil, err
	}

	return r.mapper.CampaignCategoriesToEntities(modelCategories), nil
}
