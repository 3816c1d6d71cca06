package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/mapper"
	"givebridge-be/internal/model"
	"givebridge-be/internal/repository/contract"
	"givebridge-be/internal/repository/specification"
)

type CampaignRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CampaignMapper
}

func NewCampaignRepository(db *gorm.DB) contract.CampaignRepository {
	return &CampaignRepositoryImpl{
		db:     db,
		mapper: mapper.NewCampaignMapper(),
	}
}

func (r *CampaignRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CampaignRepositoryImpl) Create(ctx context.Context, campaign *entity.Campaign) error {
	modelCampaign := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Create(modelCampaign).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(modelCampaign)
	return nil
}

func (r *CampaignRepositoryImpl) Update(ctx context.Context, campaign *entity.Campaign) error {
	modelCampaign := r.mapper.ToModel(campaign)
	if err := r.db.WithContext(ctx).Save(modelCampaign).Error; err != nil {
		return err
	}
	*campaign = *r.mapper.ToEntity(modelCampaign)
	return nil
}

func (r *CampaignRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Campaign{}).Error
}

func (r *CampaignRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Campaign, error) {
	var modelCampaign model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelCampaign).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelCampaign), nil
}

func (r *CampaignRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Campaign, error) {
	var modelCampaigns []*model.Campaign
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelCampaigns).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelCampaigns), nil
}

func (r *CampaignRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.Campaign{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CampaignRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.CampaignStatus) error {
	return r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

// IncrementCollected adds to the running total without reading it first, so
// concurrent settlements never lose an update.
func (r *CampaignRepositoryImpl) IncrementCollected(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("collected_amount", gorm.Expr("collected_amount + ?", amount)).Error
}

func (r *CampaignRepositoryImpl) DecrementCollected(ctx context.Context, id uuid.UUID, amount decimal.Decimal) error {
	return r.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("collected_amount", gorm.Expr("GREATEST(collected_amount - ?, 0)", amount)).Error
}

func (r *CampaignRepositoryImpl) AddUpdate(ctx context.Context, update *entity.CampaignUpdate) error {
	modelUpdate := r.mapper.UpdateToModel(update)
	if err := r.db.WithContext(ctx).Create(modelUpdate).Error; err != nil {
		return err
	}
	*update = *r.mapper.UpdateToEntity(modelUpdate)
	return nil
}

func (r *CampaignRepositoryImpl) FindUpdates(ctx context.Context, campaignId uuid.UUID) ([]*entity.CampaignUpdate, error) {
	var modelUpdates []*model.CampaignUpdate
	err := r.db.WithContext(ctx).
		Where("campaign_id = ?", campaignId).
		Order("created_at DESC").
		Find(&modelUpdates).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.UpdatesToEntities(modelUpdates), nil
}
