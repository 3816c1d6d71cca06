package model

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
}

func (Category) TableName() string {
	return "categories"
}

type CampaignCategory struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"type:varchar(100);uniqueIndex;not null"`
	Description string    `gorm:"type:text"`
	Icon        string    `gorm:"type:varchar(100)"`
}

func (CampaignCategory) TableName() string {
	return "campaign_categories"
}

type ContactMessage struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name      string    `gorm:"type:varchar(200);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ContactMessage) TableName() string {
	return "contact_messages"
}
