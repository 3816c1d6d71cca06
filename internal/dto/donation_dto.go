package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateDonationItemRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description"`
	CategoryId        *uuid.UUID `json:"category_id"`
	Quantity          int        `json:"quantity" validate:"omitempty,gt=0"`
	Location          string     `json:"location"`
	Latitude          *float64   `json:"latitude"`
	Longitude         *float64   `json:"longitude"`
	Urgency           string     `json:"urgency" validate:"omitempty,oneof=low medium high"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	NotifyImmediately *bool      `json:"notify_immediately"`
	ImageURLs         []string   `json:"image_urls"`
}

type UpdateDonationItemRequest struct {
	Title             string     `json:"title" validate:"required,max=200"`
	Description       string     `json:"description"`
	CategoryId        *uuid.UUID `json:"category_id"`
	Quantity          int        `json:"quantity" validate:"omitempty,gt=0"`
	Location          string     `json:"location"`
	Latitude          *float64   `json:"latitude"`
	Longitude         *float64   `json:"longitude"`
	Urgency           string     `json:"urgency" validate:"omitempty,oneof=low medium high"`
	ExpiryDate        *time.Time `json:"expiry_date"`
	NotifyImmediately *bool      `json:"notify_immediately"`
}

type ExploreItemsQuery struct {
	Search   string     `query:"search"`
	Category *uuid.UUID `query:"category"`
	Urgency  string     `query:"urgency"`
	Location string     `query:"location"`
	Page     int        `query:"page"`
	Limit    int        `query:"limit"`
}

type DonationImageResponse struct {
	Id        uuid.UUID `json:"id"`
	ImageURL  string    `json:"image_url"`
	Caption   string    `json:"caption,omitempty"`
	IsPrimary bool      `json:"is_primary"`
}

type DonationItemResponse struct {
	Id                uuid.UUID               `json:"id"`
	DonorId           uuid.UUID               `json:"donor_id"`
	Title             string                  `json:"title"`
	Description       string                  `json:"description"`
	CategoryId        *uuid.UUID              `json:"category_id,omitempty"`
	Quantity          int                     `json:"quantity"`
	Location          string                  `json:"location"`
	Latitude          *float64                `json:"latitude,omitempty"`
	Longitude         *float64                `json:"longitude,omitempty"`
	Status            string                  `json:"status"`
	Urgency           string                  `json:"urgency"`
	ExpiryDate        *time.Time              `json:"expiry_date,omitempty"`
	NotifyImmediately bool                    `json:"notify_immediately"`
	IsVerified        bool                    `json:"is_verified"`
	Images            []DonationImageResponse `json:"images,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

type DonationItemDetailResponse struct {
	DonationItemResponse
	AverageRating float64              `json:"average_rating"`
	ReviewCount   int64                `json:"review_count"`
	Reviews       []ItemReviewResponse `json:"reviews,omitempty"`
}

type SubmitClaimRequest struct {
	Message       string     `json:"message"`
	PreferredDate *time.Time `json:"preferred_date"`
	ContactNumber string     `json:"contact_number"`
}

type HandleClaimRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type ClaimResponse struct {
	Id             uuid.UUID  `json:"id"`
	DonationItemId uuid.UUID  `json:"donation_item_id"`
	ClaimantId     uuid.UUID  `json:"claimant_id"`
	Message        string     `json:"message,omitempty"`
	Status         string     `json:"status"`
	PreferredDate  *time.Time `json:"preferred_date,omitempty"`
	ContactNumber  string     `json:"contact_number,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

type SubmitReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}

type ItemReviewResponse struct {
	Id         uuid.UUID `json:"id"`
	ClaimantId uuid.UUID `json:"claimant_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
