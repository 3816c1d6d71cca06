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

type RewardRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RewardMapper
}

func NewRewardRepository(db *gorm.DB) contract.RewardRepository {
	return &RewardRepositoryImpl{
		db:     db,
		mapper: mapper.NewRewardMapper(),
	}
}

func (r *RewardRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RewardRepositoryImpl) CreateTier(ctx context.Context, tier *entity.RewardTier) error {
	modelTier := r.mapper.TierToModel(tier)
	if err := r.db.WithContext(ctx).Create(modelTier).Error; err != nil {
		return err
	}
	*tier = *r.mapper.TierToEntity(modelTier)
	return nil
}

func (r *RewardRepositoryImpl) UpdateTier(ctx context.Context, tier *entity.RewardTier) error {
	return r.db.WithContext(ctx).Save(r.mapper.TierToModel(tier)).Error
}

func (r *RewardRepositoryImpl) DeleteTier(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RewardTier{}).Error
}

func (r *RewardRepositoryImpl) FindTiers(ctx context.Context, specs ...specification.Specification) ([]*entity.RewardTier, error) {
	var modelTiers []*model.RewardTier
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Order("points_required ASC").Find(&modelTiers).Error; err != nil {
		return nil, err
	}

	return r.mapper.TiersToEntities(modelTiers), nil
}

func (r *RewardRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) (*entity.UserReward, error) {
	var modelReward model.UserReward
	err := r.db.WithContext(ctx).
		Preload("Unlocked").
		Where("user_id = ?", userId).
		First(&modelReward).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&modelReward), nil
}

func (r *RewardRepositoryImpl) Create(ctx context.Context, reward *entity.UserReward) error {
	modelReward := r.mapper.ToModel(reward)
	if err := r.db.WithContext(ctx).Create(modelReward).Error; err != nil {
		return err
	}
	*reward = *r.mapper.ToEntity(modelReward)
	return nil
}

func (r *RewardRepositoryImpl) AddPoints(ctx context.Context, userId uuid.UUID, points int) error {
	return r.db.WithContext(ctx).Model(&model.UserReward{}).
		Where("user_id = ?", userId).
		Update("points", gorm.Expr("points + ?", points)).Error
}

func (r *RewardRepositoryImpl) UnlockTier(ctx context.Context, rewardId, tierId uuid.UUID) error {
	reward := model.UserReward{Id: rewardId}
	tier := model.RewardTier{Id: tierId}
	return r.db.WithContext(ctx).Model(&reward).Association("Unlocked").Append(&tier)
}
