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

func createApprovedCampaign(t *testing.T, s *services) *dto.CampaignResponse {
	t.Helper()
	ctx := context.Background()

	ngo := registerApprovedNGO(t, s)

	goal := mustDecimal(t, "10000")
	campaign, err := s.campaign.Create(ctx, ngo.Id, &dto.CreateCampaignRequest{
		Title:       "Flood relief " + ngo.Username,
		Description: "Emergency shelter and food",
		GoalAmount:  &goal,
	})
	require.NoError(t, err)

	require.NoError(t, s.admin.HandleCampaign(ctx, campaign.Id, &dto.ApprovalRequest{Action: "approve"}))

	approved, err := s.campaign.Detail(ctx, campaign.Id)
	require.NoError(t, err)
	return &approved.CampaignResponse
}

func TestPaymentSettlementFlow(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	campaign := createApprovedCampaign(t, s)
	donor := registerDonor(t, s)

	initiated, err := s.payment.Initiate(ctx, donor.Id, &dto.InitiateDonationRequest{
		CampaignId: campaign.Id,
		Amount:     mustDecimal(t, "250.50"),
		Message:    "Stay strong",
	})
	require.NoError(t, err)
	assert.Contains(t, initiated.GatewayURL, initiated.TransactionId)
	require.NotNil(t, s.gateway.lastRequest)
	assert.Equal(t, initiated.TransactionId, s.gateway.lastRequest.TranRef)

	t.Run("initiation leaves a pending row and an untouched total", func(t *testing.T) {
		uow := s.uow.NewUnitOfWork(ctx)
		row, err := uow.CampaignDonationRepository().FindOne(ctx,
			specification.ByTransactionId{TransactionId: initiated.TransactionId})
		require.NoError(t, err)
		require.NotNil(t, row)
		assert.Equal(t, entity.PaymentStatusPending, row.PaymentStatus)

		stored, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaign.Id})
		require.NoError(t, err)
		assert.True(t, stored.CollectedAmount.Equal(campaign.CollectedAmount))
	})

	require.NoError(t, s.payment.HandleSuccess(ctx, &dto.GatewayCallback{
		TranId: initiated.TransactionId,
		Status: "VALID",
	}))

	t.Run("success settles the row and bumps the total", func(t *testing.T) {
		uow := s.uow.NewUnitOfWork(ctx)
		row, err := uow.CampaignDonationRepository().FindOne(ctx,
			specification.ByTransactionId{TransactionId: initiated.TransactionId})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusCompleted, row.PaymentStatus)

		stored, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaign.Id})
		require.NoError(t, err)
		expected := campaign.CollectedAmount.Add(mustDecimal(t, "250.50"))
		assert.True(t, stored.CollectedAmount.Equal(expected),
			"collected %s, want %s", stored.CollectedAmount, expected)
	})

	t.Run("replayed success callback is a no-op", func(t *testing.T) {
		require.NoError(t, s.payment.HandleSuccess(ctx, &dto.GatewayCallback{
			TranId: initiated.TransactionId,
			Status: "VALID",
		}))

		uow := s.uow.NewUnitOfWork(ctx)
		stored, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaign.Id})
		require.NoError(t, err)
		expected := campaign.CollectedAmount.Add(mustDecimal(t, "250.50"))
		assert.True(t, stored.CollectedAmount.Equal(expected))
	})

	t.Run("settlement awards donation points", func(t *testing.T) {
		rewards, err := s.reward.MyRewards(ctx, donor.Id)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, rewards.Points, 30)
	})

	t.Run("admin delete rolls the total back, floored at zero", func(t *testing.T) {
		uow := s.uow.NewUnitOfWork(ctx)
		row, err := uow.CampaignDonationRepository().FindOne(ctx,
			specification.ByTransactionId{TransactionId: initiated.TransactionId})
		require.NoError(t, err)

		require.NoError(t, s.payment.AdminDelete(ctx, row.Id))

		stored, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaign.Id})
		require.NoError(t, err)
		assert.True(t, stored.CollectedAmount.Equal(campaign.CollectedAmount))
	})
}

func TestPaymentFailureFlow(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	campaign := createApprovedCampaign(t, s)
	donor := registerDonor(t, s)

	initiated, err := s.payment.Initiate(ctx, donor.Id, &dto.InitiateDonationRequest{
		CampaignId: campaign.Id,
		Amount:     mustDecimal(t, "100"),
	})
	require.NoError(t, err)

	require.NoError(t, s.payment.HandleFailure(ctx, &dto.GatewayCallback{
		TranId: initiated.TransactionId,
		Status: "FAILED",
	}))

	uow := s.uow.NewUnitOfWork(ctx)
	row, err := uow.CampaignDonationRepository().FindOne(ctx,
		specification.ByTransactionId{TransactionId: initiated.TransactionId})
	require.NoError(t, err)
	assert.Equal(t, entity.PaymentStatusFailed, row.PaymentStatus)

	t.Run("failed row never settles", func(t *testing.T) {
		err := s.payment.HandleSuccess(ctx, &dto.GatewayCallback{
			TranId: initiated.TransactionId,
			Status: "VALID",
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindPaymentCallback, domainErr.Kind)

		row, err := uow.CampaignDonationRepository().FindOne(ctx,
			specification.ByTransactionId{TransactionId: initiated.TransactionId})
		require.NoError(t, err)
		assert.Equal(t, entity.PaymentStatusFailed, row.PaymentStatus)

		stored, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaign.Id})
		require.NoError(t, err)
		assert.True(t, stored.CollectedAmount.Equal(campaign.CollectedAmount))
	})
}

func TestPaymentEligibility(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	campaign := createApprovedCampaign(t, s)
	donor := registerDonor(t, s)

	t.Run("amount must be positive", func(t *testing.T) {
		_, err := s.payment.Initiate(ctx, donor.Id, &dto.InitiateDonationRequest{
			CampaignId: campaign.Id,
			Amount:     mustDecimal(t, "0"),
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindValidation, domainErr.Kind)
	})

	t.Run("ngo cannot donate to its own campaign", func(t *testing.T) {
		_, err := s.payment.Initiate(ctx, campaign.NGOId, &dto.InitiateDonationRequest{
			CampaignId: campaign.Id,
			Amount:     mustDecimal(t, "50"),
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindNotEligible, domainErr.Kind)
	})

	t.Run("unapproved campaign cannot take donations", func(t *testing.T) {
		ngo := registerApprovedNGO(t, s)
		pending, err := s.campaign.Create(ctx, ngo.Id, &dto.CreateCampaignRequest{
			Title: "Still pending",
		})
		require.NoError(t, err)

		_, err = s.payment.Initiate(ctx, donor.Id, &dto.InitiateDonationRequest{
			CampaignId: pending.Id,
			Amount:     mustDecimal(t, "50"),
		})
		var domainErr *apperr.Error
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, apperr.KindInvalidTransition, domainErr.Kind)
	})
}
