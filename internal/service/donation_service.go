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

type IDonationService interface {
	Create(ctx context.Context, donorId uuid.UUID, req *dto.CreateDonationItemRequest) (*dto.DonationItemResponse, error)
	Update(ctx context.Context, donorId, itemId uuid.UUID, req *dto.UpdateDonationItemRequest) (*dto.DonationItemResponse, error)
	Delete(ctx context.Context, donorId, itemId uuid.UUID) error
	Explore(ctx context.Context, query *dto.ExploreItemsQuery) ([]*dto.DonationItemResponse, error)
	Detail(ctx context.Context, itemId uuid.UUID) (*dto.DonationItemDetailResponse, error)
	MyDonations(ctx context.Context, donorId uuid.UUID) ([]*dto.DonationItemResponse, error)

	SubmitClaim(ctx context.Context, claimantId, itemId uuid.UUID, req *dto.SubmitClaimRequest) (*dto.ClaimResponse, error)
	HandleClaim(ctx context.Context, donorId, claimId uuid.UUID, req *dto.HandleClaimRequest) (*dto.ClaimResponse, error)
	CompleteClaim(ctx context.Context, donorId, claimId uuid.UUID) (*dto.ClaimResponse, error)
	MyClaims(ctx context.Context, claimantId uuid.UUID) ([]*dto.ClaimResponse, error)
	ItemClaims(ctx context.Context, donorId, itemId uuid.UUID) ([]*dto.ClaimResponse, error)

	SubmitReview(ctx context.Context, claimantId, itemId uuid.UUID, req *dto.SubmitReviewRequest) (*dto.ItemReviewResponse, error)
}

type donationService struct {
	uowFactory   unitofwork.RepositoryFactory
	reward       IRewardService
	notification INotificationService
	bus          *eventbus.Bus
	logger       logger.ILogger
}

func NewDonationService(
	uowFactory unitofwork.RepositoryFactory,
	reward IRewardService,
	notification INotificationService,
	bus *eventbus.Bus,
	log logger.ILogger,
) IDonationService {
	return &donationService{
		uowFactory:   uowFactory,
		reward:       reward,
		notification: notification,
		bus:          bus,
		logger:       log,
	}
}

func toItemResponse(item *entity.DonationItem, images []*entity.DonationImage) *dto.DonationItemResponse {
	resp := &dto.DonationItemResponse{
		Id:                item.Id,
		DonorId:           item.DonorId,
		Title:             item.Title,
		Description:       item.Description,
		CategoryId:        item.CategoryId,
		Quantity:          item.Quantity,
		Location:          item.Location,
		Latitude:          item.Latitude,
		Longitude:         item.Longitude,
		Status:            string(item.Status),
		Urgency:           string(item.Urgency),
		ExpiryDate:        item.ExpiryDate,
		NotifyImmediately: item.NotifyImmediately,
		IsVerified:        item.IsVerified,
		CreatedAt:         item.CreatedAt,
	}
	for _, img := range images {
		resp.Images = append(resp.Images, dto.DonationImageResponse{
			Id:        img.Id,
			ImageURL:  img.ImageURL,
			Caption:   img.Caption,
			IsPrimary: img.IsPrimary,
		})
	}
	return resp
}

func toClaimResponse(claim *entity.DonationClaim) *dto.ClaimResponse {
	return &dto.ClaimResponse{
		Id:             claim.Id,
		DonationItemId: claim.DonationItemId,
		ClaimantId:     claim.ClaimantId,
		Message:        claim.Message,
		Status:         string(claim.Status),
		PreferredDate:  claim.PreferredDate,
		ContactNumber:  claim.ContactNumber,
		CreatedAt:      claim.CreatedAt,
	}
}

func (s *donationService) Create(ctx context.Context, donorId uuid.UUID, req *dto.CreateDonationItemRequest) (*dto.DonationItemResponse, error) {
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
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	item := &entity.DonationItem{
		Id:                uuid.New(),
		DonorId:           donorId,
		Title:             req.Title,
		Description:       req.Description,
		CategoryId:        req.CategoryId,
		Quantity:          quantity,
		Location:          req.Location,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Status:            entity.ItemStatusAvailable,
		Urgency:           urgency,
		ExpiryDate:        req.ExpiryDate,
		NotifyImmediately: notify,
		CreatedAt:         time.Now(),
	}
	if err := uow.DonationItemRepository().Create(ctx, item); err != nil {
		return nil, err
	}

	var images []*entity.DonationImage
	for i, url := range req.ImageURLs {
		image := &entity.DonationImage{
			Id:             uuid.New(),
			DonationItemId: item.Id,
			ImageURL:       url,
			IsPrimary:      i == 0,
		}
		if err := uow.DonationItemRepository().AddImage(ctx, image); err != nil {
			return nil, err
		}
		images = append(images, image)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if err := s.reward.Award(ctx, donorId, ReasonItemPosted); err != nil {
		s.logger.Warn("donation", "failed to award posting points", map[string]interface{}{
			"donor_id": donorId.String(),
			"error":    err.Error(),
		})
	}

	s.bus.Publish(ctx, events.New(events.TypeItemPosted, map[string]interface{}{
		"item_id":  item.Id.String(),
		"donor_id": donorId.String(),
	}))

	return toItemResponse(item, images), nil
}

func (s *donationService) findOwnedItem(ctx context.Context, uow unitofwork.UnitOfWork, donorId, itemId uuid.UUID) (*entity.DonationItem, error) {
	item, err := uow.DonationItemRepository().FindOne(ctx,
		specification.ByID{ID: itemId},
		specification.DonatedBy{DonorID: donorId},
	)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("donation item")
	}
	return item, nil
}

// Update edits the listing fields only; status is driven by the claim
// workflow and never touched here.
func (s *donationService) Update(ctx context.Context, donorId, itemId uuid.UUID, req *dto.UpdateDonationItemRequest) (*dto.DonationItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := s.findOwnedItem(ctx, uow, donorId, itemId)
	if err != nil {
		return nil, err
	}

	if req.Urgency != "" {
		urgency, err := entity.ParseUrgency(req.Urgency)
		if err != nil {
			return nil, err
		}
		item.Urgency = urgency
	}

	item.Title = req.Title
	item.Description = req.Description
	item.CategoryId = req.CategoryId
	if req.Quantity > 0 {
		item.Quantity = req.Quantity
	}
	item.Location = req.Location
	item.Latitude = req.Latitude
	item.Longitude = req.Longitude
	item.ExpiryDate = req.ExpiryDate
	if req.NotifyImmediately != nil {
		item.NotifyImmediately = *req.NotifyImmediately
	}

	if err := uow.DonationItemRepository().Update(ctx, item); err != nil {
		return nil, err
	}

	images, err := uow.DonationItemRepository().FindImages(ctx, item.Id)
	if err != nil {
		return nil, err
	}
	return toItemResponse(item, images), nil
}

func (s *donationService) Delete(ctx context.Context, donorId, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedItem(ctx, uow, donorId, itemId); err != nil {
		return err
	}
	return uow.DonationItemRepository().Delete(ctx, itemId)
}

func (s *donationService) Explore(ctx context.Context, query *dto.ExploreItemsQuery) ([]*dto.DonationItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ByStatus{Status: string(entity.ItemStatusAvailable)},
		specification.NotExpired{Now: time.Now()},
	}
	if query.Search != "" {
		specs = append(specs, specification.TitleContains{Term: query.Search})
	}
	if query.Category != nil {
		specs = append(specs, specification.ByCategory{CategoryID: *query.Category})
	}
	if query.Urgency != "" {
		specs = append(specs, specification.ByUrgency{Urgency: query.Urgency})
	}
	if query.Location != "" {
		specs = append(specs, specification.LocationContains{Term: query.Location})
	}

	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	if query.Limit > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		specs = append(specs, specification.Pagination{Limit: query.Limit, Offset: (page - 1) * query.Limit})
	}

	items, err := uow.DonationItemRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DonationItemResponse, 0, len(items))
	for _, item := range items {
		images, err := uow.DonationItemRepository().FindImages(ctx, item.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, toItemResponse(item, images))
	}
	return result, nil
}

func (s *donationService) Detail(ctx context.Context, itemId uuid.UUID) (*dto.DonationItemDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	item, err := uow.DonationItemRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("donation item")
	}

	images, err := uow.DonationItemRepository().FindImages(ctx, item.Id)
	if err != nil {
		return nil, err
	}

	avg, count, err := uow.DonationReviewRepository().AverageRating(ctx, item.Id)
	if err != nil {
		return nil, err
	}

	reviews, err := uow.DonationReviewRepository().FindAll(ctx,
		specification.ForItem{ItemID: item.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.DonationItemDetailResponse{
		DonationItemResponse: *toItemResponse(item, images),
		AverageRating:        avg,
		ReviewCount:          count,
	}
	for _, r := range reviews {
		resp.Reviews = append(resp.Reviews, dto.ItemReviewResponse{
			Id:         r.Id,
			ClaimantId: r.ClaimantId,
			Rating:     r.Rating,
			Comment:    r.Comment,
			CreatedAt:  r.CreatedAt,
		})
	}
	return resp, nil
}

func (s *donationService) MyDonations(ctx context.Context, donorId uuid.UUID) ([]*dto.DonationItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.DonationItemRepository().FindAll(ctx,
		specification.DonatedBy{DonorID: donorId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DonationItemResponse, 0, len(items))
	for _, item := range items {
		images, err := uow.DonationItemRepository().FindImages(ctx, item.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, toItemResponse(item, images))
	}
	return result, nil
}

func (s *donationService) SubmitClaim(ctx context.Context, claimantId, itemId uuid.UUID, req *dto.SubmitClaimRequest) (*dto.ClaimResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	item, err := uow.DonationItemRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("donation item")
	}
	if item.DonorId == claimantId {
		return nil, apperr.NotEligible("you cannot claim your own donation")
	}
	if item.Status != entity.ItemStatusAvailable {
		return nil, apperr.InvalidTransition("item is not available for claiming")
	}

	existing, err := uow.DonationClaimRepository().FindOne(ctx,
		specification.ForItem{ItemID: itemId},
		specification.ByClaimant{ClaimantID: claimantId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.DuplicateClaim()
	}

	claim := &entity.DonationClaim{
		Id:             uuid.New(),
		DonationItemId: itemId,
		ClaimantId:     claimantId,
		Message:        req.Message,
		Status:         entity.ClaimStatusPending,
		PreferredDate:  req.PreferredDate,
		ContactNumber:  req.ContactNumber,
		CreatedAt:      time.Now(),
	}
	if err := uow.DonationClaimRepository().Create(ctx, claim); err != nil {
		return nil, err
	}

	if err := uow.DonationItemRepository().UpdateStatus(ctx, itemId, entity.ItemStatusReserved); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	if item.NotifyImmediately {
		s.notifyQuietly(ctx, item.DonorId, "claim_submitted",
			fmt.Sprintf("Someone wants to claim %q.", item.Title),
			fmt.Sprintf("/donations/%s/claims", item.Id),
			map[string]any{"item_id": item.Id.String(), "claim_id": claim.Id.String()})
	}

	s.bus.Publish(ctx, events.New(events.TypeClaimSubmitted, map[string]interface{}{
		"claim_id":    claim.Id.String(),
		"item_id":     item.Id.String(),
		"claimant_id": claimantId.String(),
	}))

	return toClaimResponse(claim), nil
}

func (s *donationService) notifyQuietly(ctx context.Context, userId uuid.UUID, typ, message, link string, metadata map[string]any) {
	if err := s.notification.Notify(ctx, userId, typ, message, link, metadata); err != nil {
		s.logger.Warn("donation", "notification failed", map[string]interface{}{
			"user_id": userId.String(),
			"type":    typ,
			"error":   err.Error(),
		})
	}
}

func (s *donationService) HandleClaim(ctx context.Context, donorId, claimId uuid.UUID, req *dto.HandleClaimRequest) (*dto.ClaimResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	claim, err := uow.DonationClaimRepository().FindOne(ctx, specification.ByID{ID: claimId})
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, apperr.NotFound("claim")
	}

	item, err := s.findOwnedItem(ctx, uow, donorId, claim.DonationItemId)
	if err != nil {
		return nil, err
	}

	if claim.Status != entity.ClaimStatusPending {
		return nil, apperr.InvalidTransition("claim is already %s", claim.Status)
	}

	var eventType, message string
	if req.Action == "approve" {
		claim.Status = entity.ClaimStatusApproved
		eventType = events.TypeClaimApproved
		message = fmt.Sprintf("Your claim for %q was approved.", item.Title)
		if err := uow.DonationItemRepository().UpdateStatus(ctx, item.Id, entity.ItemStatusClaimed); err != nil {
			return nil, err
		}
	} else {
		claim.Status = entity.ClaimStatusRejected
		eventType = events.TypeClaimRejected
		message = fmt.Sprintf("Your claim for %q was rejected.", item.Title)
		// Rejection frees the item for other claimants.
		if err := uow.DonationItemRepository().UpdateStatus(ctx, item.Id, entity.ItemStatusAvailable); err != nil {
			return nil, err
		}
	}

	if err := uow.DonationClaimRepository().UpdateStatus(ctx, claim.Id, claim.Status); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifyQuietly(ctx, claim.ClaimantId, "claim_"+string(claim.Status), message,
		fmt.Sprintf("/items/%s", item.Id),
		map[string]any{"claim_id": claim.Id.String()})

	s.bus.Publish(ctx, events.New(eventType, map[string]interface{}{
		"claim_id": claim.Id.String(),
		"item_id":  item.Id.String(),
	}))

	return toClaimResponse(claim), nil
}

func (s *donationService) CompleteClaim(ctx context.Context, donorId, claimId uuid.UUID) (*dto.ClaimResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	claim, err := uow.DonationClaimRepository().FindOne(ctx, specification.ByID{ID: claimId})
	if err != nil {
		return nil, err
	}
	if claim == nil {
		return nil, apperr.NotFound("claim")
	}

	item, err := s.findOwnedItem(ctx, uow, donorId, claim.DonationItemId)
	if err != nil {
		return nil, err
	}

	if claim.Status != entity.ClaimStatusApproved {
		return nil, apperr.InvalidTransition("only approved claims can be completed")
	}

	// The item stays claimed; completion closes the handover.
	claim.Status = entity.ClaimStatusCompleted
	if err := uow.DonationClaimRepository().UpdateStatus(ctx, claim.Id, claim.Status); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifyQuietly(ctx, claim.ClaimantId, "claim_completed",
		fmt.Sprintf("The donation %q is marked as handed over. You can now leave a review.", item.Title),
		fmt.Sprintf("/items/%s/review", item.Id),
		map[string]any{"claim_id": claim.Id.String()})

	s.bus.Publish(ctx, events.New(events.TypeClaimCompleted, map[string]interface{}{
		"claim_id": claim.Id.String(),
		"item_id":  item.Id.String(),
	}))

	return toClaimResponse(claim), nil
}

func (s *donationService) MyClaims(ctx context.Context, claimantId uuid.UUID) ([]*dto.ClaimResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	claims, err := uow.DonationClaimRepository().FindAll(ctx,
		specification.ByClaimant{ClaimantID: claimantId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ClaimResponse, len(claims))
	for i, c := range claims {
		result[i] = toClaimResponse(c)
	}
	return result, nil
}

func (s *donationService) ItemClaims(ctx context.Context, donorId, itemId uuid.UUID) ([]*dto.ClaimResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedItem(ctx, uow, donorId, itemId); err != nil {
		return nil, err
	}

	claims, err := uow.DonationClaimRepository().FindAll(ctx,
		specification.ForItem{ItemID: itemId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ClaimResponse, len(claims))
	for i, c := range claims {
		result[i] = toClaimResponse(c)
	}
	return result, nil
}

func (s *donationService) SubmitReview(ctx context.Context, claimantId, itemId uuid.UUID, req *dto.SubmitReviewRequest) (*dto.ItemReviewResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	item, err := uow.DonationItemRepository().FindOne(ctx, specification.ByID{ID: itemId})
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("donation item")
	}

	claim, err := uow.DonationClaimRepository().FindOne(ctx,
		specification.ForItem{ItemID: itemId},
		specification.ByClaimant{ClaimantID: claimantId},
	)
	if err != nil {
		return nil, err
	}
	if claim == nil || claim.Status != entity.ClaimStatusCompleted {
		return nil, apperr.NotEligible("only completed claims can be reviewed")
	}

	existing, err := uow.DonationReviewRepository().FindOne(ctx,
		specification.ForItem{ItemID: itemId},
		specification.ByClaimant{ClaimantID: claimantId},
	)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyReviewed()
	}

	claimId := claim.Id
	review := &entity.DonationReview{
		Id:             uuid.New(),
		DonationItemId: itemId,
		ClaimantId:     claimantId,
		ClaimId:        &claimId,
		Rating:         req.Rating,
		Comment:        req.Comment,
		CreatedAt:      time.Now(),
	}
	if err := uow.DonationReviewRepository().Create(ctx, review); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.notifyQuietly(ctx, item.DonorId, "review_submitted",
		fmt.Sprintf("You received a %d-star review on %q.", req.Rating, item.Title),
		fmt.Sprintf("/items/%s", item.Id),
		map[string]any{"review_id": review.Id.String()})

	s.bus.Publish(ctx, events.New(events.TypeReviewSubmitted, map[string]interface{}{
		"review_id": review.Id.String(),
		"item_id":   item.Id.String(),
	}))

	return &dto.ItemReviewResponse{
		Id:         review.Id,
		ClaimantId: review.ClaimantId,
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}, nil
}
