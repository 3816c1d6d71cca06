package dto

import "github.com/google/uuid"

type RewardTierResponse struct {
	Id             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PointsRequired int       `json:"points_required"`
	TierOrder      int       `json:"tier_order"`
}

type MyRewardsResponse struct {
	Points             int                  `json:"points"`
	Unlocked           []RewardTierResponse `json:"unlocked"`
	NextReward         *RewardTierResponse  `json:"next_reward,omitempty"`
	ProgressPercentage int                  `json:"progress_percentage"`
}

type UpsertRewardTierRequest struct {
	Name           string `json:"name" validate:"required,max=100"`
	PointsRequired int    `json:"points_required" validate:"required,gt=0"`
	TierOrder      int    `json:"tier_order"`
}
