package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
)

func TestRequestFulfillmentFlow(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	requester := registerDonor(t, s)
	donor := registerDonor(t, s)

	request, err := s.request.Create(ctx, requester.Id, &dto.CreateRequestItemRequest{
		Title:            "School supplies",
		Description:      "Notebooks and pens for two children",
		DeliveryLocation: "Rajshahi",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.RequestStatusPending), request.Status)

	t.Run("pending request is not fulfillable", func(t *testing.T) {
		_, err := s.request.DonateToRequest(ctx, donor.Id, request.Id, &dto.DonateToRequestRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindInvalidTransition, domainErr.Kind)
	})

	require.NoError(t, s.admin.HandleRequest(ctx, request.Id, &dto.ApprovalRequest{Action: "approve"}))

	t.Run("approved request shows up for donors", func(t *testing.T) {
		browsable, err := s.request.BrowseFulfillable(ctx)
		require.NoError(t, err)

		found := false
		for _, r := range browsable {
			if r.Id == request.Id {
				found = true
			}
		}
		assert.True(t, found, "approved request should be browsable")
	})

	t.Run("requester cannot fulfill own request", func(t *testing.T) {
		_, err := s.request.DonateToRequest(ctx, requester.Id, request.Id, &dto.DonateToRequestRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotEligible, domainErr.Kind)
	})

	pledge, err := s.request.DonateToRequest(ctx, donor.Id, request.Id, &dto.DonateToRequestRequest{
		Title: "Stationery set",
	})
	require.NoError(t, err)
	assert.Equal(t, string(entity.FulfillmentStatus("pending")), pledge.Status)

	t.Run("first pledge wins", func(t *testing.T) {
		late := registerDonor(t, s)
		_, err := s.request.DonateToRequest(ctx, late.Id, request.Id, &dto.DonateToRequestRequest{})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotEligible, domainErr.Kind)
	})

	t.Run("pledged request leaves the browse list", func(t *testing.T) {
		browsable, err := s.request.BrowseFulfillable(ctx)
		require.NoError(t, err)
		for _, r := range browsable {
			assert.NotEqual(t, request.Id, r.Id)
		}
	})

	t.Run("pledge awards points", func(t *testing.T) {
		rewards, err := s.reward.MyRewards(ctx, donor.Id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rewards.Points, 20)
	})

	t.Run("only the requester marks received", func(t *testing.T) {
		_, err := s.request.MarkReceived(ctx, donor.Id, pledge.Id)
		assert.Error(t, err)
	})

	received, err := s.request.MarkReceived(ctx, requester.Id, pledge.Id)
	require.NoError(t, err)
	assert.Equal(t, string(entity.FulfillmentStatusCompleted), received.Status)

	t.Run("mark received is not repeatable", func(t *testing.T) {
		_, err := s.request.MarkReceived(ctx, requester.Id, pledge.Id)
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindInvalidTransition, domainErr.Kind)
	})
}

func TestRequestValidation(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	requester := registerDonor(t, s)

	t.Run("needed_before cannot be in the past", func(t *testing.T) {
		past := pastTime()
		_, err := s.request.Create(ctx, requester.Id, &dto.CreateRequestItemRequest{
			Title:        "Expired need",
			NeededBefore: &past,
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindValidation, domainErr.Kind)
	})
}
