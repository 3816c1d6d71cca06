package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type RequestMapper struct{}

func NewRequestMapper() *RequestMapper {
	return &RequestMapper{}
}

func (m *RequestMapper) ToEntity(r *model.RequestItem) *entity.RequestItem {
	if r == nil {
		return nil
	}
	return &entity.RequestItem{
		Id:                r.Id,
		RequesterId:       r.RequesterId,
		Title:             r.Title,
		Description:       r.Description,
		CategoryId:        r.CategoryId,
		Quantity:          r.Quantity,
		NeededBefore:      r.NeededBefore,
		DeliveryLocation:  r.DeliveryLocation,
		ContactNumber:     r.ContactNumber,
		NotifyImmediately: r.NotifyImmediately,
		ImageURL:          r.ImageURL,
		Urgency:           entity.Urgency(r.Urgency),
		Status:            entity.RequestStatus(r.Status),
		CreatedAt:         r.CreatedAt,
		ApprovedAt:        r.ApprovedAt,
	}
}

func (m *RequestMapper) ToModel(r *entity.RequestItem) *model.RequestItem {
	if r == nil {
		return nil
	}
	return &model.RequestItem{
		Id:                r.Id,
		RequesterId:       r.RequesterId,
		Title:             r.Title,
		Description:       r.Description,
		CategoryId:        r.CategoryId,
		Quantity:          r.Quantity,
		NeededBefore:      r.NeededBefore,
		DeliveryLocation:  r.DeliveryLocation,
		ContactNumber:     r.ContactNumber,
		NotifyImmediately: r.NotifyImmediately,
		ImageURL:          r.ImageURL,
		Urgency:           string(r.Urgency),
		Status:            string(r.Status),
		CreatedAt:         r.CreatedAt,
		ApprovedAt:        r.ApprovedAt,
	}
}

func (m *RequestMapper) ToEntities(requests []*model.RequestItem) []*entity.RequestItem {
	entities := make([]*entity.RequestItem, len(requests))
	for i, r := range requests {
		entities[i] = m.ToEntity(r)
	}
	return entities
}

func (m *RequestMapper) DonationToEntity(d *model.RequestDonation) *entity.RequestDonation {
	if d == nil {
		return nil
	}
	return &entity.RequestDonation{
		Id:            d.Id,
		DonorId:       d.DonorId,
		RequestItemId: d.RequestItemId,
		Title:         d.Title,
		Description:   d.Description,
		Quantity:      d.Quantity,
		ImageURL:      d.ImageURL,
		Status:        entity.FulfillmentStatus(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m *RequestMapper) DonationToModel(d *entity.RequestDonation) *model.RequestDonation {
	if d == nil {
		return nil
	}
	return &model.RequestDonation{
		Id:            d.Id,
		DonorId:       d.DonorId,
		RequestItemId: d.RequestItemId,
		Title:         d.Title,
		Description:   d.Description,
		Quantity:      d.Quantity,
		ImageURL:      d.ImageURL,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}

func (m *RequestMapper) DonationsToEntities(donations []*model.RequestDonation) []*entity.RequestDonation {
	entities := make([]*entity.RequestDonation, len(donations))
	for i, d := range donations {
		entities[i] = m.DonationToEntity(d)
	}
	return entities
}
