package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateCampaignRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description"`
	ImageURL    *string          `json:"image_url"`
	GoalAmount  *decimal.Decimal `json:"goal_amount"`
	CategoryId  *uuid.UUID       `json:"category_id"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
}

type UpdateCampaignRequest struct {
	Title       string           `json:"title" validate:"required,max=200"`
	Description string           `json:"description"`
	ImageURL    *string          `json:"image_url"`
	GoalAmount  *decimal.Decimal `json:"goal_amount"`
	CategoryId  *uuid.UUID       `json:"category_id"`
	StartDate   *time.Time       `json:"start_date"`
	EndDate     *time.Time       `json:"end_date"`
}

type CampaignResponse struct {
	Id              uuid.UUID        `json:"id"`
	NGOId           uuid.UUID        `json:"ngo_id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	ImageURL        *string          `json:"image_url,omitempty"`
	GoalAmount      *decimal.Decimal `json:"goal_amount,omitempty"`
	CollectedAmount decimal.Decimal  `json:"collected_amount"`
	ProgressPercent float64          `json:"progress_percent"`
	DonorsCount     int64            `json:"donors_count"`
	CategoryId      *uuid.UUID       `json:"category_id,omitempty"`
	IsActive        bool             `json:"is_active"`
	Status          string           `json:"status"`
	StartDate       time.Time        `json:"start_date"`
	EndDate         *time.Time       `json:"end_date,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
}

type CampaignDetailResponse struct {
	CampaignResponse
	Updates   []CampaignUpdateResponse  `json:"updates,omitempty"`
	Donations []CampaignDonationSummary `json:"donations,omitempty"`
}

type AddCampaignUpdateRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Message string `json:"message" validate:"required"`
}

type CampaignUpdateResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// CampaignDonationSummary hides the donor for anonymous gifts.
type CampaignDonationSummary struct {
	Amount    decimal.Decimal `json:"amount"`
	PayerName string          `json:"payer_name"`
	Message   string          `json:"message,omitempty"`
	DonatedAt time.Time       `json:"donated_at"`
}

type CampaignDonationResponse struct {
	Id            uuid.UUID       `json:"id"`
	CampaignId    uuid.UUID       `json:"campaign_id"`
	DonorId       uuid.UUID       `json:"donor_id"`
	Amount        decimal.Decimal `json:"amount"`
	Message       string          `json:"message,omitempty"`
	PayerName     string          `json:"payer_name,omitempty"`
	IsAnonymous   bool            `json:"is_anonymous"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	TransactionId *string         `json:"transaction_id,omitempty"`
	PaymentStatus string          `json:"payment_status"`
	DonatedAt     time.Time       `json:"donated_at"`
}
