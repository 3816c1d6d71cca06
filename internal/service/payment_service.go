package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/config"
	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/events"
	"givebridge-be/pkg/paygate"
)

type IPaymentService interface {
	// Initiate creates a pending donation row and opens a gateway session.
	Initiate(ctx context.Context, donorId uuid.UUID, req *dto.InitiateDonationRequest) (*dto.InitiateDonationResponse, error)

	// HandleSuccess settles the pending row named by the callback. Everything
	// financial commits in one transaction.
	HandleSuccess(ctx context.Context, cb *dto.GatewayCallback) error
	HandleFailure(ctx context.Context, cb *dto.GatewayCallback) error

	MyDonations(ctx context.Context, donorId uuid.UUID) ([]*dto.CampaignDonationResponse, error)
	DonationDetail(ctx context.Context, donorId, donationId uuid.UUID) (*dto.CampaignDonationResponse, error)

	// AdminDelete removes a donation; completed ones decrement the campaign
	// total, floored at zero.
	AdminDelete(ctx context.Context, donationId uuid.UUID) error
}

type paymentService struct {
	uowFactory   unitofwork.RepositoryFactory
	gateway      paygate.Gateway
	cfg          *config.Config
	reward       IRewardService
	notification INotificationService
	bus          *eventbus.Bus
	logger       logger.ILogger
}

func NewPaymentService(
	uowFactory unitofwork.RepositoryFactory,
	gateway paygate.Gateway,
	cfg *config.Config,
	reward IRewardService,
	notification INotificationService,
	bus *eventbus.Bus,
	log logger.ILogger,
) IPaymentService {
	return &paymentService{
		uowFactory:   uowFactory,
		gateway:      gateway,
		cfg:          cfg,
		reward:       reward,
		notification: notification,
		bus:          bus,
		logger:       log,
	}
}

func toDonationResponse(d *entity.CampaignDonation) *dto.CampaignDonationResponse {
	return &dto.CampaignDonationResponse{
		Id:            d.Id,
		CampaignId:    d.CampaignId,
		DonorId:       d.DonorId,
		Amount:        d.Amount,
		Message:       d.Message,
		PayerName:     d.PayerName,
		IsAnonymous:   d.IsAnonymous,
		PaymentMethod: d.PaymentMethod,
		TransactionId: d.TransactionId,
		PaymentStatus: string(d.PaymentStatus),
		DonatedAt:     d.DonatedAt,
	}
}

func (s *paymentService) Initiate(ctx context.Context, donorId uuid.UUID, req *dto.InitiateDonationRequest) (*dto.InitiateDonationResponse, error) {
	if !req.Amount.IsPositive() {
		return nil, apperr.Validationf("amount must be positive")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: req.CampaignId})
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperr.NotFound("campaign")
	}
	if campaign.NGOId == donorId {
		return nil, apperr.NotEligible("you cannot donate to your own campaign")
	}
	if campaign.Status != entity.CampaignStatusApproved || !campaign.IsActive {
		return nil, apperr.NotEligible("campaign is not accepting donations")
	}
	if campaign.EndDate != nil && campaign.EndDate.Before(time.Now()) {
		return nil, apperr.NotEligible("campaign has ended")
	}

	donor, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: donorId})
	if err != nil {
		return nil, err
	}
	if donor == nil {
		return nil, apperr.NotFound("user")
	}

	payerName := req.PayerName
	if payerName == "" {
		payerName = donor.Username
	}

	tranRef := paygate.NewTranRef(campaign.Id, donorId)
	donation := &entity.CampaignDonation{
		Id:            uuid.New(),
		CampaignId:    campaign.Id,
		DonorId:       donorId,
		Amount:        req.Amount,
		Message:       req.Message,
		PayerName:     payerName,
		IsAnonymous:   req.IsAnonymous,
		PaymentMethod: "SSLCommerz",
		TransactionId: &tranRef,
		PaymentStatus: entity.PaymentStatusPending,
		DonatedAt:     time.Now(),
	}
	if err := uow.CampaignDonationRepository().Create(ctx, donation); err != nil {
		return nil, err
	}

	anonymity := "named"
	if req.IsAnonymous {
		anonymity = "anonymous"
	}
	gatewayURL, err := s.gateway.InitiateSession(ctx, &paygate.SessionRequest{
		Amount:        req.Amount,
		Currency:      s.cfg.Payment.Currency,
		TranRef:       tranRef,
		SuccessURL:    s.cfg.App.BaseURL + "/api/payments/success",
		FailURL:       s.cfg.App.BaseURL + "/api/payments/fail",
		CancelURL:     s.cfg.App.BaseURL + "/api/payments/cancel",
		CustomerName:  payerName,
		CustomerEmail: donor.Email,
		ProductName:   campaign.Title,
		ValueA:        req.Message,
		ValueB:        anonymity,
		ValueC:        donation.Id.String(),
	})
	if err != nil {
		// The pending row stays behind; the gateway never saw it, so a fail
		// callback will not arrive and it remains inert.
		return nil, err
	}

	return &dto.InitiateDonationResponse{
		GatewayURL:    gatewayURL,
		TransactionId: tranRef,
	}, nil
}

func (s *paymentService) HandleSuccess(ctx context.Context, cb *dto.GatewayCallback) error {
	if !paygate.IsSuccessStatus(cb.Status) {
		return apperr.PaymentCallback("unexpected status %q on success callback", cb.Status)
	}
	campaignId, _, err := paygate.ParseTranRef(cb.TranId)
	if err != nil {
		return apperr.PaymentCallback("malformed transaction reference")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	donation, err := uow.CampaignDonationRepository().FindOne(ctx,
		specification.ByTransactionId{TransactionId: cb.TranId},
	)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperr.PaymentCallback("unknown transaction %s", cb.TranId)
	}
	if donation.PaymentStatus == entity.PaymentStatusCompleted {
		// Gateway retried a settled callback; nothing to do.
		return uow.Commit()
	}
	if donation.PaymentStatus != entity.PaymentStatusPending {
		return apperr.PaymentCallback("transaction %s is not pending", cb.TranId)
	}

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaignId})
	if err != nil {
		return err
	}
	if campaign == nil {
		return apperr.PaymentCallback("campaign for transaction %s no longer exists", cb.TranId)
	}

	if err := uow.CampaignDonationRepository().UpdatePaymentStatus(ctx, donation.Id, entity.PaymentStatusCompleted); err != nil {
		return err
	}
	if err := uow.CampaignRepository().IncrementCollected(ctx, campaign.Id, donation.Amount); err != nil {
		return err
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	if err := s.reward.Award(ctx, donation.DonorId, ReasonCampaignDonation); err != nil {
		s.logger.Warn("payment", "failed to award donation points", map[string]interface{}{
			"donor_id": donation.DonorId.String(),
			"error":    err.Error(),
		})
	}

	if err := s.notification.Notify(ctx, campaign.NGOId, "donation_received",
		fmt.Sprintf("Your campaign %q received a donation of %s.", campaign.Title, donation.Amount.StringFixed(2)),
		fmt.Sprintf("/campaigns/%s", campaign.Id),
		map[string]any{"donation_id": donation.Id.String()}); err != nil {
		s.logger.Warn("payment", "notification failed", map[string]interface{}{
			"user_id": campaign.NGOId.String(),
			"error":   err.Error(),
		})
	}

	s.bus.Publish(ctx, events.New(events.TypeDonationSettled, map[string]interface{}{
		"donation_id": donation.Id.String(),
		"campaign_id": campaign.Id.String(),
		"amount":      donation.Amount.String(),
	}))
	return nil
}

// HandleFailure covers both fail and cancel callbacks: the pending row is
// marked failed and the campaign total is untouched.
func (s *paymentService) HandleFailure(ctx context.Context, cb *dto.GatewayCallback) error {
	if _, _, err := paygate.ParseTranRef(cb.TranId); err != nil {
		return apperr.PaymentCallback("malformed transaction reference")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	donation, err := uow.CampaignDonationRepository().FindOne(ctx,
		specification.ByTransactionId{TransactionId: cb.TranId},
	)
	if err != nil {
		return err
	}
	if donation == nil {
		return apperr.PaymentCallback("unknown transaction %s", cb.TranId)
	}
	if donation.PaymentStatus != entity.PaymentStatusPending {
		// Settled or already failed; a late callback changes nothing.
		return nil
	}

	return uow.CampaignDonationRepository().UpdatePaymentStatus(ctx, donation.Id, entity.PaymentStatusFailed)
}

func (s *paymentService) MyDonations(ctx context.Context, donorId uuid.UUID) ([]*dto.CampaignDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donations, err := uow.CampaignDonationRepository().FindAll(ctx,
		specification.DonatedBy{DonorID: donorId},
		specification.OrderBy{Field: "donated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignDonationResponse, len(donations))
	for i, d := range donations {
		result[i] = toDonationResponse(d)
	}
	return result, nil
}

func (s *paymentService) DonationDetail(ctx context.Context, donorId, donationId uuid.UUID) (*dto.CampaignDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donation, err := uow.CampaignDonationRepository().FindOne(ctx,
		specification.ByID{ID: donationId},
		specification.DonatedBy{DonorID: donorId},
	)
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperr.NotFound("donation")
	}
	return toDonationResponse(donation), nil
}

func (s *paymentService) AdminDelete(ctx context.Context, donationId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	donation, err := uow.CampaignDonationRepository().FindOne(ctx, specification.ByID{ID: donationId})
	if err != nil {
		return err
	}
	if donation == nil {
		return apperr.NotFound("donation")
	}

	if donation.PaymentStatus == entity.PaymentStatusCompleted {
		if err := uow.CampaignRepository().DecrementCollected(ctx, donation.CampaignId, donation.Amount); err != nil {
			return err
		}
	}
	if err := uow.CampaignDonationRepository().Delete(ctx, donation.Id); err != nil {
		return err
	}

	return uow.Commit()
}
