package entity

import "github.com/google/uuid"

// Category classifies donation items and requests.
type Category struct {
	Id          uuid.UUID
	Name        string
	Description string
	Icon        string
}

// CampaignCategory classifies fundraising campaigns.
type CampaignCategory struct {
	Id          uuid.UUID
	Name        string
	Description string
	Icon        string
}
