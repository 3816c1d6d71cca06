package specification

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonatedBy struct {
	DonorID uuid.UUID
}

func (s DonatedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("donor_id = ?", s.DonorID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByCategory struct {
	CategoryID uuid.UUID
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("category_id = ?", s.CategoryID)
}

type ByUrgency struct {
	Urgency string
}

func (s ByUrgency) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("urgency = ?", s.Urgency)
}

type TitleContains struct {
	Term string
}

func (s TitleContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title ILIKE ?", "%"+s.Term+"%")
}

type LocationContains struct {
	Term string
}

func (s LocationContains) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("location ILIKE ?", "%"+s.Term+"%")
}

// NotExpired keeps items with no expiry or one still in the future.
type NotExpired struct {
	Now time.Time
}

func (s NotExpired) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("expiry_date IS NULL OR expiry_date > ?", s.Now)
}

type ForItem struct {
	ItemID uuid.UUID
}

func (s ForItem) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("donation_item_id = ?", s.ItemID)
}

type ByClaimant struct {
	ClaimantID uuid.UUID
}

func (s ByClaimant) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("claimant_id = ?", s.ClaimantID)
}
