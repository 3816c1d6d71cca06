package unitofwork

import (
	"context"

	"givebridge-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	CategoryRepository() contract.CategoryRepository
	DonationItemRepository() contract.DonationItemRepository
	DonationClaimRepository() contract.DonationClaimRepository
	DonationReviewRepository() contract.DonationReviewRepository
	RequestItemRepository() contract.RequestItemRepository
	RequestDonationRepository() contract.RequestDonationRepository
	CampaignRepository() contract.CampaignRepository
	CampaignDonationRepository() contract.CampaignDonationRepository
	RewardRepository() contract.RewardRepository
	NotificationRepository() contract.NotificationRepository
}
