package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/pkg/apperr"
)

type RequestStatus string

const (
	RequestStatusPending  RequestStatus = "pending"
	RequestStatusApproved RequestStatus = "approved"
	RequestStatusRejected RequestStatus = "rejected"
)

func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(strings.ToLower(strings.TrimSpace(s))) {
	case RequestStatusPending:
		return RequestStatusPending, nil
	case RequestStatusApproved:
		return RequestStatusApproved, nil
	case RequestStatusRejected:
		return RequestStatusRejected, nil
	}
	return "", apperr.Validationf("unknown request status %q", s)
}

type FulfillmentStatus string

const (
	FulfillmentStatusPending   FulfillmentStatus = "pending"
	FulfillmentStatusCompleted FulfillmentStatus = "completed"
	FulfillmentStatusCancelled FulfillmentStatus = "cancelled"
)

func ParseFulfillmentStatus(s string) (FulfillmentStatus, error) {
	switch FulfillmentStatus(strings.ToLower(strings.TrimSpace(s))) {
	case FulfillmentStatusPending:
		return FulfillmentStatusPending, nil
	case FulfillmentStatusCompleted:
		return FulfillmentStatusCompleted, nil
	case FulfillmentStatusCancelled:
		return FulfillmentStatusCancelled, nil
	}
	return "", apperr.Validationf("unknown fulfillment status %q", s)
}

// RequestItem is a recipient's posted need, admin-gated before donors see it.
type RequestItem struct {
	Id                uuid.UUID
	RequesterId       uuid.UUID
	Title             string
	Description       string
	CategoryId        *uuid.UUID
	Quantity          int
	NeededBefore      *time.Time
	DeliveryLocation  string
	ContactNumber     string
	NotifyImmediately bool
	ImageURL          *string
	Urgency           Urgency
	Status            RequestStatus
	CreatedAt         time.Time
	ApprovedAt        *time.Time
}

// RequestDonation is a donor's fulfillment of one approved request.
type RequestDonation struct {
	Id            uuid.UUID
	DonorId       uuid.UUID
	RequestItemId uuid.UUID
	Title         string
	Description   string
	Quantity      int
	ImageURL      *string
	Status        FulfillmentStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
