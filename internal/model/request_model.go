package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestItem struct {
	Id                uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	RequesterId       uuid.UUID  `gorm:"type:uuid;not null;index"`
	Requester         User       `gorm:"foreignKey:RequesterId;constraint:OnDelete:CASCADE"`
	Title             string     `gorm:"type:varchar(200);not null"`
	Description       string     `gorm:"type:text"`
	CategoryId        *uuid.UUID `gorm:"type:uuid;index"`
	Category          *Category  `gorm:"foreignKey:CategoryId;constraint:OnDelete:SET NULL"`
	Quantity          int        `gorm:"not null;default:1"`
	NeededBefore      *time.Time
	DeliveryLocation  string  `gorm:"type:varchar(255)"`
	ContactNumber     string  `gorm:"type:varchar(20)"`
	NotifyImmediately bool    `gorm:"default:true"`
	ImageURL          *string `gorm:"type:text"`
	Urgency           string  `gorm:"type:varchar(10);not null;default:'medium'"`
	Status            string  `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	ApprovedAt        *time.Time

	Donations []RequestDonation `gorm:"foreignKey:RequestItemId"`
}

func (RequestItem) TableName() string {
	return "request_items"
}

type RequestDonation struct {
	Id            uuid.UUID   `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	DonorId       uuid.UUID   `gorm:"type:uuid;not null;index"`
	Donor         User        `gorm:"foreignKey:DonorId;constraint:OnDelete:CASCADE"`
	RequestItemId uuid.UUID   `gorm:"type:uuid;not null;index"`
	RequestItem   RequestItem `gorm:"foreignKey:RequestItemId;constraint:OnDelete:CASCADE"`
	Title         string      `gorm:"type:varchar(200)"`
	Description   string      `gorm:"type:text"`
	Quantity      int         `gorm:"not null;default:1"`
	ImageURL      *string     `gorm:"type:text"`
	Status        string      `gorm:"type:varchar(20);not null;default:'pending';index"`
	CreatedAt     time.Time   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time   `gorm:"autoUpdateTime"`
}

func (RequestDonation) TableName() string {
	return "request_donations"
}
