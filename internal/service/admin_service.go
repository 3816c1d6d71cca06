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

type IAdminService interface {
	// NGO approval
	PendingNGOs(ctx context.Context) ([]*dto.NGOProfileResponse, error)
	HandleNGO(ctx context.Context, ngoId uuid.UUID, req *dto.ApprovalRequest) error

	// Campaign approval
	PendingCampaigns(ctx context.Context) ([]*dto.CampaignResponse, error)
	HandleCampaign(ctx context.Context, campaignId uuid.UUID, req *dto.ApprovalRequest) error

	// Request approval
	PendingRequests(ctx context.Context) ([]*dto.RequestItemResponse, error)
	HandleRequest(ctx context.Context, requestId uuid.UUID, req *dto.ApprovalRequest) error

	// Listings and deletions
	ListUsers(ctx context.Context) ([]*dto.UserResponse, error)
	DeleteUser(ctx context.Context, userId uuid.UUID) error
	ListItems(ctx context.Context) ([]*dto.DonationItemResponse, error)
	DeleteItem(ctx context.Context, itemId uuid.UUID) error
	ListCampaigns(ctx context.Context) ([]*dto.CampaignResponse, error)
	DeleteCampaign(ctx context.Context, campaignId uuid.UUID) error

	// Categories
	CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
	ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error)
	CreateCampaignCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	UpdateCampaignCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCampaignCategory(ctx context.Context, id uuid.UUID) error
	ListCampaignCategories(ctx context.Context) ([]*dto.CategoryResponse, error)

	// Reward tiers
	CreateRewardTier(ctx context.Context, req *dto.UpsertRewardTierRequest) (*dto.RewardTierResponse, error)
	UpdateRewardTier(ctx context.Context, id uuid.UUID, req *dto.UpsertRewardTierRequest) (*dto.RewardTierResponse, error)
	DeleteRewardTier(ctx context.Context, id uuid.UUID) error

	ListContactMessages(ctx context.Context) ([]*dto.ContactMessageResponse, error)
	Stats(ctx context.Context) (*dto.PlatformStatsResponse, error)
}

type adminService struct {
	uowFactory   unitofwork.RepositoryFactory
	reward       IRewardService
	notification INotificationService
	bus          *eventbus.Bus
	logger       logger.ILogger
}

func NewAdminService(
	uowFactory unitofwork.RepositoryFactory,
	reward IRewardService,
	notification INotificationService,
	bus *eventbus.Bus,
	log logger.ILogger,
) IAdminService {
	return &adminService{
		uowFactory:   uowFactory,
		reward:       reward,
		notification: notification,
		bus:          bus,
		logger:       log,
	}
}

func (s *adminService) notifyQuietly(ctx context.Context, userId uuid.UUID, typ, message, link string, metadata map[string]any) {
	if err := s.notification.Notify(ctx, userId, typ, message, link, metadata); err != nil {
		s.logger.Warn("admin", "notification failed", map[string]interface{}{
			"user_id": userId.String(),
			"type":    typ,
			"error":   err.Error(),
		})
	}
}

// NGO approval

func (s *adminService) PendingNGOs(ctx context.Context) ([]*dto.NGOProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx,
		specification.PendingNGOs{},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NGOProfileResponse, 0, len(users))
	for _, user := range users {
		profile, err := uow.UserRepository().FindNGOProfile(ctx, user.Id)
		if err != nil {
			return nil, err
		}
		result = append(result, toNGOProfileResponse(user, profile))
	}
	return result, nil
}

func (s *adminService) HandleNGO(ctx context.Context, ngoId uuid.UUID, req *dto.ApprovalRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ngoId})
	if err != nil {
		return err
	}
	if user == nil || user.Role != entity.UserRoleNGO {
		return apperr.NotFound("NGO account")
	}
	if user.IsApproved {
		return apperr.InvalidTransition("NGO is already approved")
	}

	if req.Action == "reject" {
		// Rejection removes the account entirely.
		return uow.UserRepository().Delete(ctx, ngoId)
	}

	if err := uow.UserRepository().Approve(ctx, ngoId); err != nil {
		return err
	}

	profile, err := uow.UserRepository().FindNGOProfile(ctx, ngoId)
	if err != nil {
		return err
	}
	ngoName := user.Username
	if profile != nil && profile.NGOName != "" {
		ngoName = profile.NGOName
	}

	s.notifyQuietly(ctx, ngoId, "ngo_approved",
		"Your NGO account has been approved. You can now create campaigns.",
		"/campaigns/new", nil)

	s.bus.Publish(ctx, events.New(events.TypeNGOApproved, map[string]interface{}{
		"user_id":  ngoId.String(),
		"ngo_name": ngoName,
		"email":    user.Email,
	}))
	return nil
}

// Campaign approval

func (s *adminService) PendingCampaigns(ctx context.Context) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.CampaignStatusPending)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		result[i] = toCampaignResponse(c)
	}
	return result, nil
}

func (s *adminService) HandleCampaign(ctx context.Context, campaignId uuid.UUID, req *dto.ApprovalRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaignId})
	if err != nil {
		return err
	}
	if campaign == nil {
		return apperr.NotFound("campaign")
	}
	if campaign.Status != entity.CampaignStatusPending {
		return apperr.InvalidTransition("campaign is already %s", campaign.Status)
	}

	if req.Action == "approve" {
		now := time.Now()
		campaign.Status = entity.CampaignStatusApproved
		campaign.ApprovedAt = &now
		if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
			return err
		}

		owner, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: campaign.NGOId})
		if err != nil {
			return err
		}

		s.notifyQuietly(ctx, campaign.NGOId, "campaign_approved",
			fmt.Sprintf("Your campaign %q has been approved.", campaign.Title),
			fmt.Sprintf("/campaigns/%s", campaign.Id), nil)

		payload := map[string]interface{}{
			"campaign_id": campaign.Id.String(),
			"title":       campaign.Title,
		}
		if owner != nil {
			payload["email"] = owner.Email
		}
		s.bus.Publish(ctx, events.New(events.TypeCampaignApproved, payload))
		return nil
	}

	if err := uow.CampaignRepository().UpdateStatus(ctx, campaignId, entity.CampaignStatusRejected); err != nil {
		return err
	}

	s.notifyQuietly(ctx, campaign.NGOId, "campaign_rejected",
		fmt.Sprintf("Your campaign %q was not approved.", campaign.Title),
		"/campaigns", nil)

	s.bus.Publish(ctx, events.New(events.TypeCampaignRejected, map[string]interface{}{
		"campaign_id": campaign.Id.String(),
	}))
	return nil
}

// Request approval

func (s *adminService) PendingRequests(ctx context.Context) ([]*dto.RequestItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	requests, err := uow.RequestItemRepository().FindAll(ctx,
		specification.ByStatus{Status: string(entity.RequestStatusPending)},
		specification.OrderBy{Field: "created_at", Desc: false},
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

func (s *adminService) HandleRequest(ctx context.Context, requestId uuid.UUID, req *dto.ApprovalRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	request, err := uow.RequestItemRepository().FindOne(ctx, specification.ByID{ID: requestId})
	if err != nil {
		return err
	}
	if request == nil {
		return apperr.NotFound("request")
	}
	if request.Status != entity.RequestStatusPending {
		return apperr.InvalidTransition("request is already %s", request.Status)
	}

	if req.Action == "approve" {
		now := time.Now()
		request.Status = entity.RequestStatusApproved
		request.ApprovedAt = &now
		if err := uow.RequestItemRepository().Update(ctx, request); err != nil {
			return err
		}

		s.notifyQuietly(ctx, request.RequesterId, "request_approved",
			fmt.Sprintf("Your request %q is now visible to donors.", request.Title),
			fmt.Sprintf("/requests/%s", request.Id), nil)

		s.bus.Publish(ctx, events.New(events.TypeRequestApproved, map[string]interface{}{
			"request_id": request.Id.String(),
		}))
		return nil
	}

	if err := uow.RequestItemRepository().UpdateStatus(ctx, requestId, entity.RequestStatusRejected); err != nil {
		return err
	}

	s.notifyQuietly(ctx, request.RequesterId, "request_rejected",
		fmt.Sprintf("Your request %q was not approved.", request.Title),
		"/requests", nil)

	s.bus.Publish(ctx, events.New(events.TypeRequestRejected, map[string]interface{}{
		"request_id": request.Id.String(),
	}))
	return nil
}

// Listings and deletions

func (s *adminService) ListUsers(ctx context.Context) ([]*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	users, err := uow.UserRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.UserResponse, len(users))
	for i, u := range users {
		result[i] = toUserResponse(u)
	}
	return result, nil
}

func (s *adminService) DeleteUser(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}
	if user.IsSuperuser {
		return apperr.Forbidden("superuser accounts cannot be deleted")
	}
	return uow.UserRepository().Delete(ctx, userId)
}

func (s *adminService) ListItems(ctx context.Context) ([]*dto.DonationItemResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	items, err := uow.DonationItemRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.DonationItemResponse, len(items))
	for i, item := range items {
		result[i] = toItemResponse(item, nil)
	}
	return result, nil
}

func (s *adminService) DeleteItem(ctx context.Context, itemId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.DonationItemRepository().Delete(ctx, itemId)
}

func (s *adminService) ListCampaigns(ctx context.Context) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaigns, err := uow.CampaignRepository().FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		result[i] = toCampaignResponse(c)
	}
	return result, nil
}

func (s *adminService) DeleteCampaign(ctx context.Context, campaignId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CampaignRepository().Delete(ctx, campaignId)
}

// Categories

func toCategoryResponse(id uuid.UUID, name, description, icon string) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		Id:          id,
		Name:        name,
		Description: description,
		Icon:        icon,
	}
}

func (s *adminService) CreateCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := &entity.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := uow.CategoryRepository().Create(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category.Id, category.Name, category.Description, category.Icon), nil
}

func (s *adminService) UpdateCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("category")
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon
	if err := uow.CategoryRepository().Update(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category.Id, category.Name, category.Description, category.Icon), nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CategoryRepository().Delete(ctx, id)
}

func (s *adminService) ListCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAll(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = toCategoryResponse(c.Id, c.Name, c.Description, c.Icon)
	}
	return result, nil
}

func (s *adminService) CreateCampaignCategory(ctx context.Context, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category := &entity.CampaignCategory{
		Id:          uuid.New(),
		Name:        req.Name,
		Description: req.Description,
		Icon:        req.Icon,
	}
	if err := uow.CategoryRepository().CreateCampaignCategory(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category.Id, category.Name, category.Description, category.Icon), nil
}

func (s *adminService) UpdateCampaignCategory(ctx context.Context, id uuid.UUID, req *dto.UpsertCategoryRequest) (*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	category, err := uow.CategoryRepository().FindOneCampaignCategory(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("campaign category")
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Icon = req.Icon
	if err := uow.CategoryRepository().UpdateCampaignCategory(ctx, category); err != nil {
		return nil, err
	}
	return toCategoryResponse(category.Id, category.Name, category.Description, category.Icon), nil
}

func (s *adminService) DeleteCampaignCategory(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.CategoryRepository().DeleteCampaignCategory(ctx, id)
}

func (s *adminService) ListCampaignCategories(ctx context.Context) ([]*dto.CategoryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	categories, err := uow.CategoryRepository().FindAllCampaignCategories(ctx, specification.OrderBy{Field: "name", Desc: false})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CategoryResponse, len(categories))
	for i, c := range categories {
		result[i] = toCategoryResponse(c.Id, c.Name, c.Description, c.Icon)
	}
	return result, nil
}

// Reward tiers

func (s *adminService) CreateRewardTier(ctx context.Context, req *dto.UpsertRewardTierRequest) (*dto.RewardTierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tier := &entity.RewardTier{
		Id:             uuid.New(),
		Name:           req.Name,
		PointsRequired: req.PointsRequired,
		TierOrder:      req.TierOrder,
	}
	if err := uow.RewardRepository().CreateTier(ctx, tier); err != nil {
		return nil, err
	}
	s.reward.InvalidateTierCache()
	return toTierResponse(tier), nil
}

func (s *adminService) UpdateRewardTier(ctx context.Context, id uuid.UUID, req *dto.UpsertRewardTierRequest) (*dto.RewardTierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tiers, err := uow.RewardRepository().FindTiers(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, err
	}
	if len(tiers) == 0 {
		return nil, apperr.NotFound("reward tier")
	}

	tier := tiers[0]
	tier.Name = req.Name
	tier.PointsRequired = req.PointsRequired
	tier.TierOrder = req.TierOrder
	if err := uow.RewardRepository().UpdateTier(ctx, tier); err != nil {
		return nil, err
	}
	s.reward.InvalidateTierCache()
	return toTierResponse(tier), nil
}

func (s *adminService) DeleteRewardTier(ctx context.Context, id uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.RewardRepository().DeleteTier(ctx, id); err != nil {
		return err
	}
	s.reward.InvalidateTierCache()
	return nil
}

func (s *adminService) ListContactMessages(ctx context.Context) ([]*dto.ContactMessageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	messages, err := uow.UserRepository().FindContactMessages(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	result := make([]*dto.ContactMessageResponse, len(messages))
	for i, m := range messages {
		result[i] = &dto.ContactMessageResponse{
			Id:        m.Id,
			Name:      m.Name,
			Email:     m.Email,
			Message:   m.Message,
			CreatedAt: m.CreatedAt,
		}
	}
	return result, nil
}

func (s *adminService) Stats(ctx context.Context) (*dto.PlatformStatsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	totalUsers, err := uow.UserRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingNGOs, err := uow.UserRepository().Count(ctx, specification.PendingNGOs{})
	if err != nil {
		return nil, err
	}
	totalItems, err := uow.DonationItemRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	totalClaims, err := uow.DonationClaimRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	pendingRequests, err := uow.RequestItemRepository().Count(ctx, specification.ByStatus{Status: string(entity.RequestStatusPending)})
	if err != nil {
		return nil, err
	}
	pendingCampaigns, err := uow.CampaignRepository().Count(ctx, specification.ByStatus{Status: string(entity.CampaignStatusPending)})
	if err != nil {
		return nil, err
	}
	totalCampaigns, err := uow.CampaignRepository().Count(ctx)
	if err != nil {
		return nil, err
	}
	completedPayments, err := uow.CampaignDonationRepository().Count(ctx, specification.ByPaymentStatus{Status: string(entity.PaymentStatusCompleted)})
	if err != nil {
		return nil, err
	}

	return &dto.PlatformStatsResponse{
		TotalUsers:        totalUsers,
		PendingNGOs:       pendingNGOs,
		TotalItems:        totalItems,
		TotalClaims:       totalClaims,
		PendingRequests:   pendingRequests,
		PendingCampaigns:  pendingCampaigns,
		TotalCampaigns:    totalCampaigns,
		CompletedPayments: completedPayments,
	}, nil
}
