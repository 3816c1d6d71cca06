package model

import (
	"time"

	"github.com/google/uuid"
)

type DonationItem struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonorId           uuid.UUID  `gorm:"type:uuid;not null;index"`
	Donor             User       `gorm:"foreignKey:DonorId;constraint:OnDelete:CASCADE"`
	Title             string     `gorm:"type:varchar(200);not null"`
	Description       string     `gorm:"type:text"`
	CategoryId        *uuid.UUID `gorm:"type:uuid;index"`
	Category          *Category  `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL"`
	Quantity          int        `gorm:"not null;default:1"`
	Location          string     `gorm:"type:varchar(255)"`
	Latitude          *float64
	Longitude         *float64
	Status            string `gorm:"type:varchar(20);not null;default:'available';index"`
	Urgency           string `gorm:"type:varchar(10);not null;default:'medium'"`
	ExpiryDate        *time.Time
	NotifyImmediately bool      `gorm:"default:true"`
	IsVerified        bool      `gorm:"default:false"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`

	Images []DonationImage `gorm:"foreignKey:DonationItemId"`
}

func (DonationItem) TableName() string {
	return "donation_items"
}

type DonationImage struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonationItemId uuid.UUID `gorm:"type:uuid;not null;index"`
	ImageURL       string    `gorm:"type:text;not null"`
	Caption        string    `gorm:"type:varchar(255)"`
	IsPrimary      bool      `gorm:"default:false"`
	UploadedAt     time.Time `gorm:"autoCreateTime"`
}

func (DonationImage) TableName() string {
	return "donation_images"
}

type DonationClaim struct {
	Id             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonationItemId uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_claim_item_claimant"`
	DonationItem   DonationItem `gorm:"foreignKey:DonationItemId;constraint:OnDelete:CASCADE"`
	ClaimantId     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_claim_item_claimant"`
	Claimant       User         `gorm:"foreignKey:ClaimantId;constraint:OnDelete:CASCADE"`
	Message        string       `gorm:"type:text"`
	Status         string       `gorm:"type:varchar(20);not null;default:'pending';index"`
	PreferredDate  *time.Time
	ContactNumber  string    `gorm:"type:varchar(20)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (DonationClaim) TableName() string {
	return "donation_claims"
}

type DonationReview struct {
	Id             uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonationItemId uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_review_item_claimant"`
	DonationItem   DonationItem `gorm:"foreignKey:DonationItemId;constraint:OnDelete:CASCADE"`
	ClaimantId     uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_review_item_claimant"`
	Claimant       User         `gorm:"foreignKey:ClaimantId;constraint:OnDelete:CASCADE"`
	ClaimId        *uuid.UUID   `gorm:"type:uuid"`
	Rating         int          `gorm:"not null"`
	Comment        string       `gorm:"type:text"`
	CreatedAt      time.Time    `gorm:"autoCreateTime"`
}

func (DonationReview) TableName() string {
	return "donation_reviews"
}
