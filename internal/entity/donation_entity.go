package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/pkg/apperr"
)

type ItemStatus string

const (
	ItemStatusAvailable ItemStatus = "available"
	ItemStatusReserved  ItemStatus = "reserved"
	ItemStatusClaimed   ItemStatus = "claimed"
	ItemStatusExpired   ItemStatus = "expired"
)

func ParseItemStatus(s string) (ItemStatus, error) {
	switch ItemStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ItemStatusAvailable:
		return ItemStatusAvailable, nil
	case ItemStatusReserved:
		return ItemStatusReserved, nil
	case ItemStatusClaimed:
		return ItemStatusClaimed, nil
	case ItemStatusExpired:
		return ItemStatusExpired, nil
	}
	return "", apperr.Validationf("unknown item status %q", s)
}

type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

func ParseUrgency(s string) (Urgency, error) {
	switch Urgency(strings.ToLower(strings.TrimSpace(s))) {
	case UrgencyLow:
		return UrgencyLow, nil
	case UrgencyMedium:
		return UrgencyMedium, nil
	case UrgencyHigh:
		return UrgencyHigh, nil
	}
	return "", apperr.Validationf("unknown urgency %q", s)
}

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "pending"
	ClaimStatusApproved  ClaimStatus = "approved"
	ClaimStatusRejected  ClaimStatus = "rejected"
	ClaimStatusCompleted ClaimStatus = "completed"
)

func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch ClaimStatus(strings.ToLower(strings.TrimSpace(s))) {
	case ClaimStatusPending:
		return ClaimStatusPending, nil
	case ClaimStatusApproved:
		return ClaimStatusApproved, nil
	case ClaimStatusRejected:
		return ClaimStatusRejected, nil
	case ClaimStatusCompleted:
		return ClaimStatusCompleted, nil
	}
	return "", apperr.Validationf("unknown claim status %q", s)
}

// IsTerminal reports whether no further transition is legal from this state.
func (s ClaimStatus) IsTerminal() bool {
	return s == ClaimStatusRejected || s == ClaimStatusCompleted
}

type DonationItem struct {
	Id          uuid.UUID
	DonorId     uuid.UUID
	Title       string
	Description string
	CategoryId  *uuid.UUID
	Quantity    int
	Location    string
	Latitude    *float64
	Longitude   *float64
	Status      ItemStatus
	Urgency     Urgency
	ExpiryDate  *time.Time
	// NotifyImmediately controls whether the donor is notified the moment a
	// claim is submitted.
	NotifyImmediately bool
	IsVerified        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DonationImage struct {
	Id             uuid.UUID
	DonationItemId uuid.UUID
	ImageURL       string
	Caption        string
	IsPrimary      bool
	UploadedAt     time.Time
}

type DonationClaim struct {
	Id             uuid.UUID
	DonationItemId uuid.UUID
	ClaimantId     uuid.UUID
	Message        string
	Status         ClaimStatus
	PreferredDate  *time.Time
	ContactNumber  string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type DonationReview struct {
	Id             uuid.UUID
	DonationItemId uuid.UUID
	ClaimantId     uuid.UUID
	// ClaimId stays nullable so the review survives claim removal.
	ClaimId   *uuid.UUID
	Rating    int
	Comment   string
	CreatedAt time.Time
}
