package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/repository/specification"
)

func TestClaimLifecycle(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	donor := registerDonor(t, s)
	claimant := registerDonor(t, s)

	item, err := s.donation.Create(ctx, donor.Id, &dto.CreateDonationItemRequest{
		Title:       "Winter jackets",
		Description: "Three jackets in good condition",
		Location:    "Dhaka",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ItemStatusAvailable), item.Status)

	t.Run("donor cannot claim own item", func(t *testing.T) {
		_, err := s.donation.SubmitClaim(ctx, donor.Id, item.Id, &dto.SubmitClaimRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotEligible, domainErr.Kind)
	})

	claim, err := s.donation.SubmitClaim(ctx, claimant.Id, item.Id, &dto.SubmitClaimRequest{
		Message: "I could pick these up this week",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ClaimStatusPending), claim.Status)

	t.Run("claim reserves the item", func(t *testing.T) {
		detail, err := s.donation.Detail(ctx, item.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.ItemStatusReserved), detail.Status)
	})

	t.Run("second claim on reserved item is rejected", func(t *testing.T) {
		other := registerDonor(t, s)
		_, err := s.donation.SubmitClaim(ctx, other.Id, item.Id, &dto.SubmitClaimRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindInvalidTransition, domainErr.Kind)
	})

	t.Run("only the donor handles the claim", func(t *testing.T) {
		_, err := s.donation.HandleClaim(ctx, claimant.Id, claim.Id, &dto.HandleClaimRequest{Action: "approve"})
		assert.Error(t, err)
	})

	approved, err := s.donation.HandleClaim(ctx, donor.Id, claim.Id, &dto.HandleClaimRequest{Action: "approve"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ClaimStatusApproved), approved.Status)

	t.Run("approval marks the item claimed", func(t *testing.T) {
		detail, err := s.donation.Detail(ctx, item.Id)
		require.NoError(t, err)
		assert.Equal(t, string(entity.ItemStatusClaimed), detail.Status)
	})

	completed, err := s.donation.CompleteClaim(ctx, donor.Id, claim.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ClaimStatusCompleted), completed.Status)

	t.Run("completed claim unlocks review", func(t *testing.T) {
		review, err := s.donation.SubmitReview(ctx, claimant.Id, item.Id, &dto.SubmitReviewRequest{
			Rating:  5,
			Comment: "Smooth handover",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, review.Rating)

		detail, err := s.donation.Detail(ctx, item.Id)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, detail.AverageRating, 0.001)
		assert.EqualValues(t, 1, detail.ReviewCount)
	})

	t.Run("second review is rejected", func(t *testing.T) {
		_, err := s.donation.SubmitReview(ctx, claimant.Id, item.Id, &dto.SubmitReviewRequest{Rating: 4})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindAlreadyReviewed, domainErr.Kind)
	})
}

func TestClaimRejectionFreesItem(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	donor := registerDonor(t, s)
	claimant := registerDonor(t, s)

	item, err := s.donation.Create(ctx, donor.Id, &dto.CreateDonationItemRequest{
		Title:    "Desk lamp",
		Location: "Chittagong",
	})
	require.NoError(t, err)

	claim, err := s.donation.SubmitClaim(ctx, claimant.Id, item.Id, &dto.SubmitClaimRequest{})
	require.NoError(t, err)

	rejected, err := s.donation.HandleClaim(ctx, donor.Id, claim.Id, &dto.HandleClaimRequest{Action: "reject"})
	require.NoError(t, err)
	assert.Equal(t, string(entity.ClaimStatusRejected), rejected.Status)

	detail, err := s.donation.Detail(ctx, item.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ItemStatusAvailable), detail.Status)

	t.Run("same claimant cannot reclaim", func(t *testing.T) {
		_, err := s.donation.SubmitClaim(ctx, claimant.Id, item.Id, &dto.SubmitClaimRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindDuplicateClaim, domainErr.Kind)
	})

	t.Run("another claimant can claim the freed item", func(t *testing.T) {
		other := registerDonor(t, s)
		claim, err := s.donation.SubmitClaim(ctx, other.Id, item.Id, &dto.SubmitClaimRequest{})
		require.NoError(t, err)
		assert.Equal(t, string(entity.ClaimStatusPending), claim.Status)
	})
}

func TestItemPostingAwardsPoints(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	donor := registerDonor(t, s)

	before, err := s.reward.MyRewards(ctx, donor.Id)
	require.NoError(t, err)

	_, err = s.donation.Create(ctx, donor.Id, &dto.CreateDonationItemRequest{
		Title:    "Box of books",
		Location: "Sylhet",
	})
	require.NoError(t, err)

	after, err := s.reward.MyRewards(ctx, donor.Id)
	require.NoError(t, err)
	assert.Equal(t, before.Points+10, after.Points)
}

func TestExploreHidesNonAvailableItems(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	donor := registerDonor(t, s)
	claimant := registerDonor(t, s)

	item, err := s.donation.Create(ctx, donor.Id, &dto.CreateDonationItemRequest{
		Title:    "Explorable chair",
		Location: "Khulna",
	})
	require.NoError(t, err)

	_, err = s.donation.SubmitClaim(ctx, claimant.Id, item.Id, &dto.SubmitClaimRequest{})
	require.NoError(t, err)

	results, err := s.donation.Explore(ctx, &dto.ExploreItemsQuery{Search: "Explorable chair"})
	require.NoError(t, err)
	for _, r := range results {
		assert.NotEqual(t, item.Id, r.Id, "reserved item should not appear in explore")
	}

	// The row itself is still reserved, not gone.
	uow := s.uow.NewUnitOfWork(ctx)
	stored, err := uow.DonationItemRepository().FindOne(ctx, specification.ByID{ID: item.Id})
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.ItemStatusReserved, stored.Status)
}
