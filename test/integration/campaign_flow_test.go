package integration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/pkg/apperr"
)

func TestCampaignApprovalLifecycle(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	ngo := registerApprovedNGO(t, s)

	goal := mustDecimal(t, "5000")
	campaign, err := s.campaign.Create(ctx, ngo.Id, &dto.CreateCampaignRequest{
		Title:       "Winter clothes drive " + ngo.Username,
		Description: "Warm clothes for street children",
		GoalAmount:  &goal,
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", campaign.Status)

	t.Run("pending campaign hidden from explore", func(t *testing.T) {
		listed, err := s.campaign.Explore(ctx, ngo.Username, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, listed)
	})

	require.NoError(t, s.admin.HandleCampaign(ctx, campaign.Id, &dto.ApprovalRequest{Action: "approve"}))

	t.Run("approved campaign appears in explore", func(t *testing.T) {
		listed, err := s.campaign.Explore(ctx, ngo.Username, nil, nil)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.Equal(t, campaign.Id, listed[0].Id)
		assert.Equal(t, "approved", listed[0].Status)
	})

	t.Run("edit resets the campaign to pending", func(t *testing.T) {
		updated, err := s.campaign.Update(ctx, ngo.Id, campaign.Id, &dto.UpdateCampaignRequest{
			Title:       "Winter clothes drive, extended",
			Description: "Warm clothes and blankets",
			GoalAmount:  &goal,
		})
		require.NoError(t, err)
		assert.Equal(t, "pending", updated.Status)

		detail, err := s.campaign.Detail(ctx, campaign.Id)
		require.NoError(t, err)
		assert.Equal(t, "pending", detail.Status)

		listed, err := s.campaign.Explore(ctx, ngo.Username, nil, nil)
		require.NoError(t, err)
		assert.Empty(t, listed, "edited campaign should leave the public list until re-approved")
	})
}

func TestCampaignOwnership(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	owner := registerApprovedNGO(t, s)
	other := registerApprovedNGO(t, s)

	campaign, err := s.campaign.Create(ctx, owner.Id, &dto.CreateCampaignRequest{
		Title:       "School supplies " + owner.Username,
		Description: "Notebooks and pens",
	})
	require.NoError(t, err)

	t.Run("non-owner cannot post updates", func(t *testing.T) {
		_, err := s.campaign.AddUpdate(ctx, other.Id, campaign.Id, &dto.AddCampaignUpdateRequest{
			Title:   "Progress",
			Message: "First batch delivered",
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotFound, domainErr.Kind)
	})

	t.Run("owner posts an update", func(t *testing.T) {
		update, err := s.campaign.AddUpdate(ctx, owner.Id, campaign.Id, &dto.AddCampaignUpdateRequest{
			Title:   "Progress",
			Message: "First batch delivered",
		})
		require.NoError(t, err)
		assert.Equal(t, "Progress", update.Title)

		detail, err := s.campaign.Detail(ctx, campaign.Id)
		require.NoError(t, err)
		require.Len(t, detail.Updates, 1)
		assert.Equal(t, update.Id, detail.Updates[0].Id)
	})

	t.Run("non-owner cannot delete", func(t *testing.T) {
		err := s.campaign.Delete(ctx, other.Id, campaign.Id)
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotFound, domainErr.Kind)
	})

	require.NoError(t, s.campaign.Delete(ctx, owner.Id, campaign.Id))

	t.Run("deleted campaign is gone", func(t *testing.T) {
		_, err := s.campaign.Detail(ctx, campaign.Id)
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotFound, domainErr.Kind)
	})
}
