package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByNGO struct {
	NGOID uuid.UUID
}

func (s ByNGO) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("ngo_id = ?", s.NGOID)
}

// ActiveCampaigns matches approved, active campaigns whose window covers now.
type ActiveCampaigns struct {
	Now time.Time
}

func (s ActiveCampaigns) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Where("status = ? AND is_active = ?", "approved", true).
		Where("start_date <= ?", s.Now).
		Where("end_date IS NULL OR end_date >= ?", s.Now)
}

type ForCampaign struct {
	CampaignID uuid.UUID
}

func (s ForCampaign) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("campaign_id = ?", s.CampaignID)
}

type ByTransactionId struct {
	TransactionId string
}

func (s ByTransactionId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("transaction_id = ?", s.TransactionId)
}

type ByPaymentStatus struct {
	Status string
}

func (s ByPaymentStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("payment_status = ?", s.Status)
}
