package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type CampaignMapper struct{}

func NewCampaignMapper() *CampaignMapper {
	return &CampaignMapper{}
}

func (m *CampaignMapper) ToEntity(c *model.Campaign) *entity.Campaign {
	if c == nil {
		return nil
	}
	return &entity.Campaign{
		Id:              c.Id,
		NGOId:           c.NGOId,
		Title:           c.Title,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		GoalAmount:      c.GoalAmount,
		CollectedAmount: c.CollectedAmount,
		CategoryId:      c.CategoryId,
		IsActive:        c.IsActive,
		Status:          entity.CampaignStatus(c.Status),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CreatedAt:       c.CreatedAt,
		ApprovedAt:      c.ApprovedAt,
	}
}

func (m *CampaignMapper) ToModel(c *entity.Campaign) *model.Campaign {
	if c == nil {
		return nil
	}
	return &model.Campaign{
		Id:              c.Id,
		NGOId:           c.NGOId,
		Title:           c.Title,
		Description:     c.Description,
		ImageURL:        c.ImageURL,
		GoalAmount:      c.GoalAmount,
		CollectedAmount: c.CollectedAmount,
		CategoryId:      c.CategoryId,
		IsActive:        c.IsActive,
		Status:          string(c.Status),
		StartDate:       c.StartDate,
		EndDate:         c.EndDate,
		CreatedAt:       c.CreatedAt,
		ApprovedAt:      c.ApprovedAt,
	}
}

func (m *CampaignMapper) ToEntities(campaigns []*model.Campaign) []*entity.Campaign {
	entities := make([]*entity.Campaign, len(campaigns))
	for i, c := range campaigns {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CampaignMapper) UpdateToEntity(u *model.CampaignUpdate) *entity.CampaignUpdate {
	if u == nil {
		return nil
	}
	return &entity.CampaignUpdate{
		Id:         u.Id,
		CampaignId: u.CampaignId,
		Title:      u.Title,
		Message:    u.Message,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *CampaignMapper) UpdateToModel(u *entity.CampaignUpdate) *model.CampaignUpdate {
	if u == nil {
		return nil
	}
	return &model.CampaignUpdate{
		Id:         u.Id,
		CampaignId: u.CampaignId,
		Title:      u.Title,
		Message:    u.Message,
		CreatedAt:  u.CreatedAt,
	}
}

func (m *CampaignMapper) UpdatesToEntities(updates []*model.CampaignUpdate) []*entity.CampaignUpdate {
	entities := make([]*entity.CampaignUpdate, len(updates))
	for i, u := range updates {
		entities[i] = m.UpdateToEntity(u)
	}
	return entities
}

func (m *CampaignMapper) DonationToEntity(d *model.CampaignDonation) *entity.CampaignDonation {
	if d == nil {
		return nil
	}
	return &entity.CampaignDonation{
		Id:            d.Id,
		CampaignId:    d.CampaignId,
		DonorId:       d.DonorId,
		Amount:        d.Amount,
		Message:       d.Message,
		PayerName:     d.PayerName,
		IsAnonymous:   d.IsAnonymous,
		PaymentMethod: d.PaymentMethod,
		TransactionId: d.TransactionId,
		PaymentStatus: entity.PaymentStatus(d.PaymentStatus),
		DonatedAt:     d.DonatedAt,
	}
}

func (m *CampaignMapper) DonationToModel(d *entity.CampaignDonation) *model.CampaignDonation {
	if d == nil {
		return nil
	}
	return &model.CampaignDonation{
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

func (m *CampaignMapper) DonationsToEntities(donations []*model.CampaignDonation) []*entity.CampaignDonation {
	entities := make([]*entity.CampaignDonation, len(donations))
	for i, d := range donations {
		entities[i] = m.DonationToEntity(d)
	}
	return entities
}
