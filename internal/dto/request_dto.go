package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateRequestItemRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description"`
	CategoryId        *uuid.UUID `json:"category_id"`
	Quantity          int        `json:"quantity" validate:"omitempty,gt=0"`
	NeededBefore      *time.Time `json:"needed_before"`
	DeliveryLocation  string     `json:"delivery_location"`
	ContactNumber     string     `json:"contact_number"`
	NotifyImmediately *bool      `json:"notify_immediately"`
	ImageURL          *string    `json:"image_url"`
	Urgency           string     `json:"urgency" validate:"omitempty,oneof=low medium high"`
}

type UpdateRequestItemRequest struct {
	Title            string     `json:"title" validate:"required,max=200"`
	Description      string     `json:"description"`
	CategoryId       *uuid.UUID `json:"category_id"`
	Quantity         int        `json:"quantity" validate:"omitempty,gt=0"`
	NeededBefore     *time.Time `json:"needed_before"`
	DeliveryLocation string     `json:"delivery_location"`
	ContactNumber    string     `json:"contact_number"`
	ImageURL         *string    `json:"image_url"`
	Urgency          string     `json:"urgency" validate:"omitempty,oneof=low medium high"`
}

type RequestItemResponse struct {
	Id               uuid.UUID  `json:"id"`
	RequesterId      uuid.UUID  `json:"requester_id"`
	Title            string     `json:"title"`
	Description      string     `json:"description"`
	CategoryId       *uuid.UUID `json:"category_id,omitempty"`
	Quantity         int        `json:"quantity"`
	NeededBefore     *time.Time `json:"needed_before,omitempty"`
	DeliveryLocation string     `json:"delivery_location"`
	ContactNumber    string     `json:"contact_number,omitempty"`
	ImageURL         *string    `json:"image_url,omitempty"`
	Urgency          string     `json:"urgency"`
	Status           string     `json:"status"`
	CreatedAt        time.Time  `json:"created_at"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
}

type DonateToRequestRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity" validate:"omitempty,gt=0"`
	ImageURL    *string `json:"image_url"`
}

type RequestDonationResponse struct {
	Id            uuid.UUID `json:"id"`
	DonorId       uuid.UUID `json:"donor_id"`
	RequestItemId uuid.UUID `json:"request_item_id"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Quantity      int       `json:"quantity"`
	ImageURL      *string   `json:"image_url,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}
