package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"givebridge-be/internal/pkg/apperr"
)

type CampaignStatus string

const (
	CampaignStatusPending  CampaignStatus = "pending"
	CampaignStatusApproved CampaignStatus = "approved"
	CampaignStatusRejected CampaignStatus = "rejected"
)

func ParseCampaignStatus(s string) (CampaignStatus, error) {
	switch CampaignStatus(strings.ToLower(strings.TrimSpace(s))) {
	case CampaignStatusPending:
		return CampaignStatusPending, nil
	case CampaignStatusApproved:
		return CampaignStatusApproved, nil
	case CampaignStatusRejected:
		return CampaignStatusRejected, nil
	}
	return "", apperr.Validationf("unknown campaign status %q", s)
}

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch PaymentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case PaymentStatusPending:
		return PaymentStatusPending, nil
	case PaymentStatusCompleted:
		return PaymentStatusCompleted, nil
	case PaymentStatusFailed:
		return PaymentStatusFailed, nil
	}
	return "", apperr.Validationf("unknown payment status %q", s)
}

type Campaign struct {
	Id          uuid.UUID
	NGOId       uuid.UUID
	Title       string
	Description string
	ImageURL    *string
	GoalAmount  *decimal.Decimal
	// CollectedAmount is denormalized: it must always equal the sum of
	// completed donations, maintained incrementally at the repository.
	CollectedAmount decimal.Decimal
	CategoryId      *uuid.UUID
	IsActive        bool
	Status          CampaignStatus
	StartDate       time.Time
	EndDate         *time.Time
	CreatedAt       time.Time
	ApprovedAt      *time.Time
}

// ProgressPercent is collected/goal*100, 0 without a positive goal.
// Over-funded campaigns report more than 100.
func (c *Campaign) ProgressPercent() float64 {
	if c.GoalAmount == nil || !c.GoalAmount.IsPositive() {
		return 0
	}
	pct, _ := c.CollectedAmount.Div(*c.GoalAmount).Mul(decimal.NewFromInt(100)).Float64()
	return pct
}

type CampaignUpdate struct {
	Id         uuid.UUID
	CampaignId uuid.UUID
	Title      string
	Message    string
	CreatedAt  time.Time
}

// CampaignDonation is a monetary donation to a campaign. It is created
// pending at checkout initiation and finalized only by a gateway callback.
type CampaignDonation struct {
	Id            uuid.UUID
	CampaignId    uuid.UUID
	DonorId       uuid.UUID
	Amount        decimal.Decimal
	Message       string
	PayerName     string
	IsAnonymous   bool
	PaymentMethod string
	TransactionId *string
	PaymentStatus PaymentStatus
	DonatedAt     time.Time
}
