package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Notification struct {
	Id        uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID      `gorm:"type:uuid;not null;index"`
	User      User           `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
	Type      string         `gorm:"type:varchar(50);not null"`
	Message   string         `gorm:"type:text;not null"`
	Link      string         `gorm:"type:text"`
	Metadata  datatypes.JSON `gorm:"type:jsonb"`
	IsRead    bool           `gorm:"default:false;index"`
	CreatedAt time.Time      `gorm:"autoCreateTime"`
}

func (Notification) TableName() string {
	return "notifications"
}
