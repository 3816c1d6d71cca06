package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
)

type ICampaignService interface {
	Create(ctx context.Context, ngoId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error)
	Update(ctx context.Context, ngoId, campaignId uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error)
	Delete(ctx context.Context, ngoId, campaignId uuid.UUID) error
	MyCampaigns(ctx context.Context, ngoId uuid.UUID) ([]*dto.CampaignResponse, error)
	Explore(ctx context.Context, search string, categoryId, ngoId *uuid.UUID) ([]*dto.CampaignResponse, error)
	Detail(ctx context.Context, campaignId uuid.UUID) (*dto.CampaignDetailResponse, error)
	AddUpdate(ctx context.Context, ngoId, campaignId uuid.UUID, req *dto.AddCampaignUpdateRequest) (*dto.CampaignUpdateResponse, error)
}

type campaignService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewCampaignService(uowFactory unitofwork.RepositoryFactory) ICampaignService {
	return &campaignService{
		uowFactory: uowFactory,
	}
}

func toCampaignResponse(c *entity.Campaign) *dto.CampaignResponse {
	return &dto.CampaignResponse{
		Id:              c.Id,
		NGOId:           c.NGOId,
		Title:           c.Title,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		GoalAmount:      c.GoalAmount,
		CollectedAmount: c.CollectedAmount,
		ProgressPercent: c.ProgressPercent(),
		CategoryId:      c.CategoryId,
		IsActive:        c.IsActive,
		Status:          string(c.Status),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CreatedAt:       c.CreatedAt,
	}
}

func (s *campaignService) requireApprovedNGO(ctx context.Context, uow unitofwork.UnitOfWork, ngoId uuid.UUID) error {
	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: ngoId})
	if err != nil {
		return err
	}
	if user == nil || user.Role != entity.UserRoleNGO {
		return apperr.Forbidden("only NGO accounts can run campaigns")
	}
	if !user.IsApproved {
		return apperr.Forbidden("NGO account is awaiting approval")
	}
	return nil
}

func (s *campaignService) Create(ctx context.Context, ngoId uuid.UUID, req *dto.CreateCampaignRequest) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if err := s.requireApprovedNGO(ctx, uow, ngoId); err != nil {
		return nil, err
	}
	if req.GoalAmount != nil && !req.GoalAmount.IsPositive() {
		return nil, apperr.Validationf("goal_amount must be positive")
	}
	if req.StartDate != nil && req.EndDate != nil && req.EndDate.Before(*req.StartDate) {
		return nil, apperr.Validationf("end_date cannot be before start_date")
	}

	startDate := time.Now()
	if req.StartDate != nil {
		startDate = *req.StartDate
	}

	campaign := &entity.Campaign{
		Id:              uuid.New(),
		NGOId:           ngoId,
		Title:           req.Title,
		Description:     req.Description,
		ImageURL:        req.ImageURL,
		GoalAmount:      req.GoalAmount,
		CollectedAmount: decimal.Zero,
		CategoryId:      req.CategoryId,
		IsActive:        true,
		Status:          entity.CampaignStatusPending,
		StartDate:       startDate,
		EndDate:         req.EndDate,
		CreatedAt:       time.Now(),
	}
	if err := uow.CampaignRepository().Create(ctx, campaign); err != nil {
		return nil, err
	}

	return toCampaignResponse(campaign), nil
}

func (s *campaignService) findOwnedCampaign(ctx context.Context, uow unitofwork.UnitOfWork, ngoId, campaignId uuid.UUID) (*entity.Campaign, error) {
	campaign, err := uow.CampaignRepository().FindOne(ctx,
		specification.ByID{ID: campaignId},
		specification.ByNGO{NGOID: ngoId},
	)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperr.NotFound("campaign")
	}
	return campaign, nil
}

// Update resets the campaign to pending so edits always pass back through
// admin review before reaching donors.
func (s *campaignService) Update(ctx context.Context, ngoId, campaignId uuid.UUID, req *dto.UpdateCampaignRequest) (*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := s.findOwnedCampaign(ctx, uow, ngoId, campaignId)
	if err != nil {
		return nil, err
	}
	if req.GoalAmount != nil && !req.GoalAmount.IsPositive() {
		return nil, apperr.Validationf("goal_amount must be positive")
	}

	campaign.Title = req.Title
	campaign.Description = req.Description
	campaign.ImageURL = req.ImageURL
	campaign.GoalAmount = req.GoalAmount
	campaign.CategoryId = req.CategoryId
	if req.StartDate != nil {
		campaign.StartDate = *req.StartDate
	}
	campaign.EndDate = req.EndDate
	campaign.Status = entity.CampaignStatusPending
	campaign.ApprovedAt = nil

	if err := uow.CampaignRepository().Update(ctx, campaign); err != nil {
		return nil, err
	}
	return toCampaignResponse(campaign), nil
}

func (s *campaignService) Delete(ctx context.Context, ngoId, campaignId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedCampaign(ctx, uow, ngoId, campaignId); err != nil {
		return err
	}
	return uow.CampaignRepository().Delete(ctx, campaignId)
}

func (s *campaignService) MyCampaigns(ctx context.Context, ngoId uuid.UUID) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaigns, err := uow.CampaignRepository().FindAll(ctx,
		specification.ByNGO{NGOID: ngoId},
		specification.OrderBy{Field: "created_at", Desc: true},
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

func (s *campaignService) Explore(ctx context.Context, search string, categoryId, ngoId *uuid.UUID) ([]*dto.CampaignResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.ActiveCampaigns{Now: time.Now()},
	}
	if search != "" {
		specs = append(specs, specification.TitleContains{Term: search})
	}
	if categoryId != nil {
		specs = append(specs, specification.ByCategory{CategoryID: *categoryId})
	}
	if ngoId != nil {
		specs = append(specs, specification.ByNGO{NGOID: *ngoId})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})

	campaigns, err := uow.CampaignRepository().FindAll(ctx, specs...)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignResponse, len(campaigns))
	for i, c := range campaigns {
		result[i] = toCampaignResponse(c)
		count, err := uow.CampaignDonationRepository().Count(ctx,
			specification.ForCampaign{CampaignID: c.Id},
			specification.ByPaymentStatus{Status: string(entity.PaymentStatusCompleted)},
		)
		if err != nil {
			return nil, err
		}
		result[i].DonorsCount = count
	}
	return result, nil
}

func (s *campaignService) Detail(ctx context.Context, campaignId uuid.UUID) (*dto.CampaignDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	campaign, err := uow.CampaignRepository().FindOne(ctx, specification.ByID{ID: campaignId})
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperr.NotFound("campaign")
	}

	updates, err := uow.CampaignRepository().FindUpdates(ctx, campaignId)
	if err != nil {
		return nil, err
	}

	donations, err := uow.CampaignDonationRepository().FindAll(ctx,
		specification.ForCampaign{CampaignID: campaignId},
		specification.ByPaymentStatus{Status: string(entity.PaymentStatusCompleted)},
		specification.OrderBy{Field: "donated_at", Desc: true},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.CampaignDetailResponse{
		CampaignResponse: *toCampaignResponse(campaign),
	}
	resp.DonorsCount = int64(len(donations))
	for _, u := range updates {
		resp.Updates = append(resp.Updates, dto.CampaignUpdateResponse{
			Id:        u.Id,
			Title:     u.Title,
			Message:   u.Message,
			CreatedAt: u.CreatedAt,
		})
	}
	for _, d := range donations {
		payer := d.PayerName
		if d.IsAnonymous {
			payer = "Anonymous"
		}
		resp.Donations = append(resp.Donations, dto.CampaignDonationSummary{
			Amount:    d.Amount,
			PayerName: payer,
			Message:   d.Message,
			DonatedAt: d.DonatedAt,
		})
	}
	return resp, nil
}

func (s *campaignService) AddUpdate(ctx context.Context, ngoId, campaignId uuid.UUID, req *dto.AddCampaignUpdateRequest) (*dto.CampaignUpdateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if _, err := s.findOwnedCampaign(ctx, uow, ngoId, campaignId); err != nil {
		return nil, err
	}

	update := &entity.CampaignUpdate{
		Id:         uuid.New(),
		CampaignId: campaignId,
		Title:      req.Title,
		Message:    req.Message,
		CreatedAt:  time.Now(),
	}
	if err := uow.CampaignRepository().AddUpdate(ctx, update); err != nil {
		return nil, err
	}

	return &dto.CampaignUpdateResponse{
		Id:        update.Id,
		Title:     update.Title,
		Message:   update.Message,
		CreatedAt: update.CreatedAt,
	}, nil
}
