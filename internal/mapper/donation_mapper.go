package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type DonationMapper struct{}

func NewDonationMapper() *DonationMapper {
	return &DonationMapper{}
}

func (m *DonationMapper) ToEntity(d *model.DonationItem) *entity.DonationItem {
	if d == nil {
		return nil
	}
	return &entity.DonationItem{
		Id:                d.Id,
		DonorId:           d.DonorId,
		Title:             d.Title,
		Description:       d.Description,
		CategoryId:        d.CategoryId,
		Quantity:          d.Quantity,
		Location:          d.Location,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Status:            entity.ItemStatus(d.Status),
		Urgency:           entity.Urgency(d.Urgency),
		ExpiryDate:        d.ExpiryDate,
		NotifyImmediately: d.NotifyImmediately,
		IsVerified:        d.IsVerified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (m *DonationMapper) ToModel(d *entity.DonationItem) *model.DonationItem {
	if d == nil {
		return nil
	}
	return &model.DonationItem{
		Id:                d.Id,
		DonorId:           d.DonorId,
		Title:             d.Title,
		Description:       d.Description,
		CategoryId:        d.CategoryId,
		Quantity:          d.Quantity,
		Location:          d.Location,
		Latitude:          d.Latitude,
		Longitude:         d.Longitude,
		Status:            string(d.Status),
		Urgency:           string(d.Urgency),
		ExpiryDate:        d.ExpiryDate,
		NotifyImmediately: d.NotifyImmediately,
		IsVerified:        d.IsVerified,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (m *DonationMapper) ToEntities(items []*model.DonationItem) []*entity.DonationItem {
	entities := make([]*entity.DonationItem, len(items))
	for i, d := range items {
		entities[i] = m.ToEntity(d)
	}
	return entities
}

func (m *DonationMapper) ImageToEntity(img *model.DonationImage) *entity.DonationImage {
	if img == nil {
		return nil
	}
	return &entity.DonationImage{
		Id:             img.Id,
		DonationItemId: img.DonationItemId,
		ImageURL:       img.ImageURL,
		Caption:        img.Caption,
		IsPrimary:      img.IsPrimary,
		UploadedAt:     img.UploadedAt,
	}
}

func (m *DonationMapper) ImageToModel(img *entity.DonationImage) *model.DonationImage {
	if img == nil {
		return nil
	}
	return &model.DonationImage{
		Id:             img.Id,
		DonationItemId: img.DonationItemId,
		ImageURL:       img.ImageURL,
		Caption:        img.Caption,
		IsPrimary:      img.IsPrimary,
		UploadedAt:     img.UploadedAt,
	}
}

func (m *DonationMapper) ImagesToEntities(imgs []*model.DonationImage) []*entity.DonationImage {
	entities := make([]*entity.DonationImage, len(imgs))
	for i, img := range imgs {
		entities[i] = m.ImageToEntity(img)
	}
	return entities
}

func (m *DonationMapper) ClaimToEntity(c *model.DonationClaim) *entity.DonationClaim {
	if c == nil {
		return nil
	}
	return &entity.DonationClaim{
		Id:             c.Id,
		DonationItemId: c.DonationItemId,
		ClaimantId:     c.ClaimantId,
		Message:        c.Message,
		Status:         entity.ClaimStatus(c.Status),
		PreferredDate:  c.PreferredDate,
		ContactNumber:  c.ContactNumber,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *DonationMapper) ClaimToModel(c *entity.DonationClaim) *model.DonationClaim {
	if c == nil {
		return nil
	}
	return &model.DonationClaim{
		Id:             c.Id,
		DonationItemId: c.DonationItemId,
		ClaimantId:     c.ClaimantId,
		Message:        c.Message,
		Status:         string(c.Status),
		PreferredDate:  c.PreferredDate,
		ContactNumber:  c.ContactNumber,
		CreatedAt:      c.CreatedAt,
		UpdatedAt:      c.UpdatedAt,
	}
}

func (m *DonationMapper) ClaimsToEntities(claims []*model.DonationClaim) []*entity.DonationClaim {
	entities := make([]*entity.DonationClaim, len(claims))
	for i, c := range claims {
		entities[i] = m.ClaimToEntity(c)
	}
	return entities
}

func (m *DonationMapper) ReviewToEntity(r *model.DonationReview) *entity.DonationReview {
	if r == nil {
		return nil
	}
	return &entity.DonationReview{
		Id:             r.Id,
		DonationItemId: r.DonationItemId,
		ClaimantId:     r.ClaimantId,
		ClaimId:        r.ClaimId,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *DonationMapper) ReviewToModel(r *entity.DonationReview) *model.DonationReview {
	if r == nil {
		return nil
	}
	return &model.DonationReview{
		Id:             r.Id,
		DonationItemId: r.DonationItemId,
		ClaimantId:     r.ClaimantId,
		ClaimId:        r.ClaimId,
		Rating:         r.Rating,
		Comment:        r.Comment,
		CreatedAt:      r.CreatedAt,
	}
}

func (m *DonationMapper) ReviewsToEntities(reviews []*model.DonationReview) []*entity.DonationReview {
	entities := make([]*entity.DonationReview, len(reviews))
	for i, r := range reviews {
		entities[i] = m.ReviewToEntity(r)
	}
	return entities
}
