package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/repository/unitofwork"
)

func TestDatabaseWiring(t *testing.T) {
	db := setupDB(t)

	uowFactory := unitofwork.NewRepositoryFactory(db)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.CategoryRepository())
	assert.NotNil(t, uow.DonationItemRepository())
	assert.NotNil(t, uow.DonationClaimRepository())
	assert.NotNil(t, uow.DonationReviewRepository())
	assert.NotNil(t, uow.RequestItemRepository())
	assert.NotNil(t, uow.RequestDonationRepository())
	assert.NotNil(t, uow.CampaignRepository())
	assert.NotNil(t, uow.CampaignDonationRepository())
	assert.NotNil(t, uow.RewardRepository())
	assert.NotNil(t, uow.NotificationRepository())

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Ping())

	// Counting exercises every core table, so a missing migration fails here
	// rather than midway through a flow test.
	ctx := context.Background()
	t.Run("users table", func(t *testing.T) {
		_, err := uow.UserRepository().Count(ctx)
		assert.NoError(t, err)
	})
	t.Run("donation_items table", func(t *testing.T) {
		_, err := uow.DonationItemRepository().Count(ctx)
		assert.NoError(t, err)
	})
	t.Run("request_items table", func(t *testing.T) {
		_, err := uow.RequestItemRepository().Count(ctx)
		assert.NoError(t, err)
	})
	t.Run("campaigns table", func(t *testing.T) {
		_, err := uow.CampaignRepository().Count(ctx)
		assert.NoError(t, err)
	})
	t.Run("campaign_donations table", func(t *testing.T) {
		_, err := uow.CampaignDonationRepository().Count(ctx)
		assert.NoError(t, err)
	})
}
