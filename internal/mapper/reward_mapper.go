package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type RewardMapper struct{}

func NewRewardMapper() *RewardMapper {
	return &RewardMapper{}
}

func (m *RewardMapper) TierToEntity(t *model.RewardTier) *entity.RewardTier {
	if t == nil {
		return nil
	}
	return &entity.RewardTier{
		Id:             t.Id,
		Name:           t.Name,
		PointsRequired: t.PointsRequired,
		TierOrder:      t.TierOrder,
	}
}

func (m *RewardMapper) TierToModel(t *entity.RewardTier) *model.RewardTier {
	if t == nil {
		return nil
	}
	return &model.RewardTier{
		Id:             t.Id,
		Name:           t.Name,
		PointsRequired: t.PointsRequired,
		TierOrder:      t.TierOrder,
	}
}

func (m *RewardMapper) TiersToEntities(tiers []*model.RewardTier) []*entity.RewardTier {
	entities := make([]*entity.RewardTier, len(tiers))
	for i, t := range tiers {
		entities[i] = m.TierToEntity(t)
	}
	return entities
}

func (m *RewardMapper) ToEntity(r *model.UserReward) *entity.UserReward {
	if r == nil {
		return nil
	}
	unlocked := make([]entity.RewardTier, len(r.Unlocked))
	for i, t := range r.Unlocked {
		unlocked[i] = *m.TierToEntity(&t)
	}
	return &entity.UserReward{
		Id:       r.Id,
		UserId:   r.UserId,
		Points:   r.Points,
		Unlocked: unlocked,
	}
}

func (m *RewardMapper) ToModel(r *entity.UserReward) *model.UserReward {
	if r == nil {
		return nil
	}
	unlocked := make([]model.RewardTier, len(r.Unlocked))
	for i, t := range r.Unlocked {
		unlocked[i] = *m.TierToModel(&t)
	}
	return &model.UserReward{
		Id:       r.Id,
		UserId:   r.UserId,
		Points:   r.Points,
		Unlocked: unlocked,
	}
}
