package dto

import "github.com/google/uuid"

type ApprovalRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type UpsertCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type CategoryResponse struct {
	Id          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
}

type PlatformStatsResponse struct {
	TotalUsers        int64 `json:"total_users"`
	PendingNGOs       int64 `json:"pending_ngos"`
	TotalItems        int64 `json:"total_items"`
	TotalClaims       int64 `json:"total_claims"`
	PendingRequests   int64 `json:"pending_requests"`
	PendingCampaigns  int64 `json:"pending_campaigns"`
	TotalCampaigns    int64 `json:"total_campaigns"`
	CompletedPayments int64 `json:"completed_payments"`
}
