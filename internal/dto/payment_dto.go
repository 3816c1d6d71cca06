package dto

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InitiateDonationRequest struct {
	CampaignId  uuid.UUID       `json:"campaign_id" validate:"required"`
	Amount      decimal.Decimal `json:"amount" validate:"required"`
	Message     string          `json:"message"`
	PayerName   string          `json:"payer_name"`
	IsAnonymous bool            `json:"is_anonymous"`
}

type InitiateDonationResponse struct {
	GatewayURL    string `json:"gateway_url"`
	TransactionId string `json:"transaction_id"`
}

// GatewayCallback is the form the payment gateway posts back on every
// outcome. Only tran_id and status are trusted; amounts are re-read from
// the pending donation row.
type GatewayCallback struct {
	TranId   string `json:"tran_id" form:"tran_id"`
	Status   string `json:"status" form:"status"`
	Amount   string `json:"amount" form:"amount"`
	CardType string `json:"card_type" form:"card_type"`
	ValueA   string `json:"value_a" form:"value_a"`
	ValueB   string `json:"value_b" form:"value_b"`
	ValueC   string `json:"value_c" form:"value_c"`
}
