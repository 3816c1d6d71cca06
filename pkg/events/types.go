package events

// Event codes published by the workflow services. The mail consumer and the
// reward ledger subscribe by code; external consumers see them on the NATS
// subject "events.<code>".
const (
	TypeUserRegistered   = "user.registered"
	TypeNGOApproved      = "ngo.approved"
	TypeItemPosted       = "item.posted"
	TypeClaimSubmitted   = "claim.submitted"
	TypeClaimApproved    = "claim.approved"
	TypeClaimRejected    = "claim.rejected"
	TypeClaimCompleted   = "claim.completed"
	TypeReviewSubmitted  = "review.submitted"
	TypeRequestApproved  = "request.approved"
	TypeRequestRejected  = "request.rejected"
	TypeRequestFulfilled = "request.fulfilled"
	TypeCampaignApproved = "campaign.approved"
	TypeCampaignRejected = "campaign.rejected"
	TypeDonationSettled  = "donation.settled"
	TypePointsEarned     = "points.earned"
)
