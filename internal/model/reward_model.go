package model

import (
	"time"

	"github.com/google/uuid"
)

type RewardTier struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	PointsRequired int       `gorm:"not null"`
	TierOrder      int       `gorm:"not null;default:0"`
}

func (RewardTier) TableName() string {
	return "reward_tiers"
}

type UserReward struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	User      User      `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Points    int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	Unlocked []RewardTier `gorm:"many2many:user_reward_tiers"`
}

func (UserReward) TableName() string {
	return "user_rewards"
}
