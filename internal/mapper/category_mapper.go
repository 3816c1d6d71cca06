package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type CategoryMapper struct{}

func NewCategoryMapper() *CategoryMapper {
	return &CategoryMapper{}
}

func (m *CategoryMapper) ToEntity(c *model.Category) *entity.Category {
	if c == nil {
		return nil
	}
	return &entity.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func (m *CategoryMapper) ToModel(c *entity.Category) *model.Category {
	if c == nil {
		return nil
	}
	return &model.Category{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func (m *CategoryMapper) ToEntities(categories []*model.Category) []*entity.Category {
	entities := make([]*entity.Category, len(categories))
	for i, c := range categories {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *CategoryMapper) CampaignCategoryToEntity(c *model.CampaignCategory) *entity.CampaignCategory {
	if c == nil {
		return nil
	}
	return &entity.CampaignCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func (m *CategoryMapper) CampaignCategoryToModel(c *entity.CampaignCategory) *model.CampaignCategory {
	if c == nil {
		return nil
	}
	return &model.CampaignCategory{
		Id:          c.Id,
		Name:        c.Name,
		Description: c.Description,
		Icon:        c.Icon,
	}
}

func (m *CategoryMapper) CampaignCategoriesToEntities(categories []*model.CampaignCategory) []*entity.CampaignCategory {
	entities := make([]*entity.CampaignCategory, len(categories))
	for i, c := range categories {
		entities[i] = m.CampaignCategoryToEntity(c)
	}
	return entities
}
