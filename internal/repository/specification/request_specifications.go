package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RequestedBy struct {
	RequesterID uuid.UUID
}

func (s RequestedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("requester_id = ?", s.RequesterID)
}

type ForRequest struct {
	RequestID uuid.UUID
}

func (s ForRequest) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("request_item_id = ?", s.RequestID)
}

// Fulfillable matches approved requests no donor has pledged to yet.
// A pledge of any status hides the request from the browse list.
type Fulfillable struct{}

func (s Fulfillable) Apply(db *gorm.DB) *gorm.DB {
	return db.
		Where("status = ?", "approved").
		Where("NOT EXISTS (SELECT 1 FROM request_donations rd WHERE rd.request_item_id = request_items.id)")
}

type UnreadOnly struct{}

func (s UnreadOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_read = ?", false)
}
