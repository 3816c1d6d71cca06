package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/events"
)

type IRequestService interface {
	Create(ctx context.Context, requesterId uuid.UUID, req *dto.CreateRequestItemRequest) (*dto.RequestItemResponse, error)
	Update(ctx context.Context, requesterId, requestId uuid.UUID, req *dto.UpdateRequestItemRequest) (*dto.RequestItemResponse, error)
	Delete(ctx context.Context, requesterId, requestId uuid.UUID) error
	MyRequests(ctx context.Context, requesterId uuid.UUID) ([]*dto.RequestItemResponse, error)
	Detail(ctx context.Context, requestId uuid.UUID) (*dto.RequestItemResponse, error)

	// BrowseFulfillable lists approved requests nobody has pledged to yet.
	BrowseFulfillable(ctx context.Context) ([]*dto.RequestItemResponse, error)
	DonateToRequest(ctx context.Context, donorId, requestId uuid.UUID, req *dto.DonateToRequestRequest) (*dto.RequestDonationResponse, error)
	MarkReceived(ctx context.Context, requesterId, donationId uuid.UUID) (*dto.RequestDonationResponse, error)
	MyPledges(ctx context.Context, donorId uuid.UUID) ([]*dto.RequestDonationResponse, error)
}

type requestService struct {
	uowFactory   unitofwork.RepositoryFactory
	reward       IRewardService
	notification INotificationService
	bus          *eventbus.Bus
	logger       logger.ILogger
}

func NewRequestService(
	uowFactory unitofwork.RepositoryFactory,
	reward IRewardService,
	notification INotificationService,
	bus *eventbus.Bus,
	log logger.ILogger,
) IRequestService {
	return &requestService{
		uowFactory:   uowFactory,
		reward:       reward,
		notification: notification,
		bus:          bus,
		logger:       log,
	}
}

func toRequestResponse(r *entity.RequestItem) *dto.RequestItemResponse {
	return &dto.RequestItemResponse{
		Id:               r.Id,
		RequesterId:      r.RequesterId,
		Title:            r.Title,
		Description:      r.Description,
		CategoryId:       r.CategoryId,
		Quantity:         r.Quantity,
		NeededBefore:     r.NeededBefore,
		DeliveryLocation: r.DeliveryLocation,
		ContactNumber:    r.ContactNumber,
		ImageURL:         r.ImageURL,
		Urgency:          string(r.Urgency),
		Status:           string(r.Status),
		CreatedAt:        r.CreatedAt,
		ApprovedAt:       r.ApprovedAt,
	}
}

func toRequestDonationResponse(d *entity.RequestDonation) *dto.RequestDonationResponse {
	return &dto.RequestDonationResponse{
		Id:            d.Id,
		DonorId:       d.DonorId,
		RequestItemId: d.RequestItemId,
		Title:         d.Title,
		Description:   d.Description,
		Quantity:      d.Quantity,
		ImageURL:      d.ImageURL,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
	}
}

func (s *requestService) Create(ctx context.Context, requesterId uuid.UUID, req *dto.CreateRequestItemRequest) (*dto.RequestItemResponse, error) {
	if req.NeededBefore != nil && req.NeededBefore.Before(time.Now()) {
		return nil, apperr.Validationf("needed_before cannot be in the past")
	}

	urgency := entity.UrgencyMedium
	if req.Urgency != "" {
		parsed, err := entity.ParseUrgency(req.Urgency)
		if err != nil {
			return nil, err
		}
		urgency = parsed
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}
	notify := true
	if req.NotifyImmediately != nil {
		notify = *req.NotifyImmediately
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request := &entity.RequestItem{
		Id:                uuid.New(),
		RequesterId:       requesterId,
		Title:             req.Title,
		Description:       req.Description,
		CategoryId:        req.CategoryId,
		Quantity:          quantity,
		NeededBefore:      req.NeededBefore,
		DeliveryLocation:  req.DeliveryLocation,
		ContactNumber:     req.ContactNumber,
		NotifyImmediately: notify,
		ImageURL:          req.ImageURL,
		Urgency:           urgency,
		Status:            entity.RequestStatusPending,
		CreatedAt:         time.Now(),
	}
	if err := uow.RequestItemRepository().Create(ctx, request); err != nil {
		return nil, err
	}

	return toRequestResponse(request), nil
}

func (s *requestService) findOwnedRequest(ctx context.Context, uow unitofwork.UnitOfWork, requesterId, requestId uuid.UUID) (*entity.RequestItem, error) {
	request, err := uow.RequestItemRepository().FindOne(ctx,
		specification.ByID{ID: requestId},
		specification.RequestedBy{RequesterID: requesterId},
	)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("request")
	}
	return request, nil
}

func (s *requestService) Update(ctx context.Context, requesterId, requestId uuid.UUID, req *dto.UpdateRequestItemRequest) (*dto.RequestItemResponse, error) {
	if req.NeededBefore != nil && req.NeededBefore.Before(time.Now()) {
		return nil, apperr.Validationf("needed_before cannot be in the past")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := s.findOwnedRequest(ctx, uow, requesterId, requestId)
	if err != nil {
		return nil, err
	}

	if req.Urgency != "" {
		urgency, err := entity.ParseUrgency(req.Urgency)
		if err != nil {
			return nil, err
		}
		request.Urgency = urgency
	}

	request.Title = req.Title
	request.Description = req.Description
	request.CategoryId = req.CategoryId
	if req.Quantity > 0 {
		request.Quantity = req.Quantity
	}
	request.NeededBefore = req.NeededBefore
	request.DeliveryLocation = req.DeliveryLocation
	request.ContactNumber = req.ContactNumber
	request.ImageURL = req.ImageURL

	if err := uow.RequestItemRepository().Update(ctx, request); err != nil {
		return nil, err
	}
	return toRequestResponse(request), nil
}

func (s *requestService) Delete(ctx context.Context, requesterId, requestId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedRequest(ctx, uow, requesterId, requestId); err != nil {
		return err
	}
	return uow.RequestItemRepository().Delete(ctx, requestId)
}

func (s *requestService) MyRequests(ctx context.Context, requesterId uuid.UUID) ([]*dto.RequestItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestItemRepository().FindAll(ctx,
		specification.RequestedBy{RequesterID: requesterId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RequestItemResponse, len(requests))
	for i, r := range requests {
		result[i] = toRequestResponse(r)
	}
	return result, nil
}

func (s *requestService) Detail(ctx context.Context, requestId uuid.UUID) (*dto.RequestItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestItemRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("request")
	}
	return toRequestResponse(request), nil
}

func (s *requestService) BrowseFulfillable(ctx context.Context) ([]*dto.RequestItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestItemRepository().FindAll(ctx,
		specification.Fulfillable{},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RequestItemResponse, len(requests))
	for i, r := range requests {
		result[i] = toRequestResponse(r)
	}
	return result, nil
}

func (s *requestService) DonateToRequest(ctx context.Context, donorId, requestId uuid.UUID, req *dto.DonateToRequestRequest) (*dto.RequestDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	request, err := uow.RequestItemRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, apperr.NotFound("request")
	}
	if request.RequesterId == donorId {
		return nil, apperr.NotEligible("you cannot fulfill your own request")
	}
	if request.Status != entity.RequestStatusApproved {
		return nil, apperr.InvalidTransition("request is not open for donations")
	}

	// First committed pledge wins; later donors no longer see the request.
	count, err := uow.RequestDonationRepository().Count(ctx, specification.ForRequest{RequestID: requestId})
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.NotEligible("this request already has a donor")
	}

	title := req.Title
	if title == "" {
		title = request.Title
	}
	quantity := req.Quantity
	if quantity == 0 {
		quantity = request.Quantity
	}

	donation := &entity.RequestDonation{
		Id:            uuid.New(),
		DonorId:       donorId,
		RequestItemId: requestId,
		Title:         title,
		Description:   req.Description,
		Quantity:      quantity,
		ImageURL:      req.ImageURL,
		Status:        entity.FulfillmentStatusPending,
		CreatedAt:     time.Now(),
	}
	if err := uow.RequestDonationRepository().Create(ctx, donation); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.reward.Award(ctx, donorId, ReasonRequestFulfilled); err != nil {
		s.logger.Warn("request", "failed to award fulfillment points", map[string]interface{}{
			"donor_id": donorId.String(),
			"error":    err.Error(),
		})
	}

	if request.NotifyImmediately {
		if err := s.notification.Notify(ctx, request.RequesterId, "request_pledged",
			fmt.Sprintf("A donor pledged to fulfill your request %q.", request.Title),
			fmt.Sprintf("/requests/%s", request.Id),
			map[string]any{"donation_id": donation.Id.String()}); err != nil {
			s.logger.Warn("request", "notification failed", map[string]interface{}{
				"user_id": request.RequesterId.String(),
				"error":   err.Error(),
			})
		}
	}

	s.bus.Publish(ctx, events.New(events.TypeRequestFulfilled, map[string]interface{}{
		"request_id":  request.Id.String(),
		"donation_id": donation.Id.String(),
		"donor_id":    donorId.String(),
	}))

	return toRequestDonationResponse(donation), nil
}

func (s *requestService) MarkReceived(ctx context.Context, requesterId, donationId uuid.UUID) (*dto.RequestDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	donation, err := uow.RequestDonationRepository().FindOne(ctx, specification.ByID{ID: donationId})
	if err != nil {
		return nil, err
	}
	if donation == nil {
		return nil, apperr.NotFound("pledge")
	}

	request, err := s.findOwnedRequest(ctx, uow, requesterId, donation.RequestItemId)
	if err != nil {
		return nil, err
	}

	if donation.Status != entity.FulfillmentStatusPending {
		return nil, apperr.InvalidTransition("pledge is already %s", donation.Status)
	}

	donation.Status = entity.FulfillmentStatusCompleted
	if err := uow.RequestDonationRepository().UpdateStatus(ctx, donation.Id, donation.Status); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.notification.Notify(ctx, donation.DonorId, "pledge_received",
		fmt.Sprintf("The recipient confirmed receiving your donation for %q.", request.Title),
		fmt.Sprintf("/requests/%s", request.Id),
		map[string]any{"donation_id": donation.Id.String()}); err != nil {
		s.logger.Warn("request", "notification failed", map[string]interface{}{
			"user_id": donation.DonorId.String(),
			"error":   err.Error(),
		})
	}

	return toRequestDonationResponse(donation), nil
}

func (s *requestService) MyPledges(ctx context.Context, donorId uuid.UUID) ([]*dto.RequestDonationResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	donations, err := uow.RequestDonationRepository().FindAll(ctx,
		specification.DonatedBy{DonorID: donorId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RequestDonationResponse, len(donations))
	for i, d := range donations {
		result[i] = toRequestDonationResponse(d)
	}
	return result, nil
}
