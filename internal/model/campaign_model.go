package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Campaign struct {
	Id              uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	NGOId           uuid.UUID         `gorm:"type:uuid;not null;index"`
	NGO             User              `gorm:"foreignKey:NGOId;constraint:OnDelete:CASCADE"`
	Title           string            `gorm:"type:varchar(200);not null"`
	Description     string            `gorm:"type:text"`
	ImageURL        *string           `gorm:"type:text"`
	GoalAmount      *decimal.Decimal  `gorm:"type:numeric(12,2)"`
	CollectedAmount decimal.Decimal   `gorm:"type:numeric(12,2);not null;default:0"`
	CategoryId      *uuid.UUID        `gorm:"type:uuid;index"`
	Category        *CampaignCategory `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL"`
	IsActive        bool              `gorm:"default:true"`
	Status          string            `gorm:"type:varchar(20);not null;default:'pending';index"`
	StartDate       time.Time
	EndDate         *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	ApprovedAt      *time.Time

	Updates []CampaignUpdate `gorm:"foreignKey:CampaignId"`
}

func (Campaign) TableName() string {
	return "campaigns"
}

type CampaignUpdate struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CampaignId uuid.UUID `gorm:"type:uuid;not null;index"`
	Title      string    `gorm:"type:varchar(200);not null"`
	Message    string    `gorm:"type:text"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

func (CampaignUpdate) TableName() string {
	return "campaign_updates"
}

type CampaignDonation struct {
	Id            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CampaignId    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Campaign      Campaign        `gorm:"foreignKey:CampaignId;constraint:OnDelete:CASCADE"`
	DonorId       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Donor         User            `gorm:"foreignKey:DonorId;constraint:OnDelete:CASCADE"`
	Amount        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Message       string          `gorm:"type:text"`
	PayerName     string          `gorm:"type:varchar(200)"`
	IsAnonymous   bool            `gorm:"default:false"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
	TransactionId *string         `gorm:"type:varchar(120);uniqueIndex"`
	PaymentStatus string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	DonatedAt     time.Time       `gorm:"autoCreateTime"`
}

func (CampaignDonation) TableName() string {
	return "campaign_donations"
}
