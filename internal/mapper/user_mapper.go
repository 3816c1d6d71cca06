package mapper

import (
	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}
	return &entity.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         entity.UserRole(u.Role),
		IsApproved:   u.IsApproved,
		IsSuperuser:  u.IsSuperuser,
		IsActive:     u.IsActive,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}
	return &model.User{
		Id:           u.Id,
		Username:     u.Username,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         string(u.Role),
		IsApproved:   u.IsApproved,
		IsSuperuser:  u.IsSuperuser,
		IsActive:     u.IsActive,
		AvatarURL:    u.AvatarURL,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (m *UserMapper) ToEntities(users []*model.User) []*entity.User {
	entities := make([]*entity.User, len(users))
	for i, u := range users {
		entities[i] = m.ToEntity(u)
	}
	return entities
}

func (m *UserMapper) DonorProfileToEntity(p *model.DonorProfile) *entity.DonorProfile {
	if p == nil {
		return nil
	}
	return &entity.DonorProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		FullName:     p.FullName,
		Email:        p.Email,
		DocumentURL:  p.DocumentURL,
		CityPostal:   p.CityPostal,
		Address:      p.Address,
		MobileNumber: p.MobileNumber,
	}
}

func (m *UserMapper) DonorProfileToModel(p *entity.DonorProfile) *model.DonorProfile {
	if p == nil {
		return nil
	}
	return &model.DonorProfile{
		Id:           p.Id,
		UserId:       p.UserId,
		FullName:     p.FullName,
		Email:        p.Email,
		DocumentURL:  p.DocumentURL,
		CityPostal:   p.CityPostal,
		Address:      p.Address,
		MobileNumber: p.MobileNumber,
	}
}

func (m *UserMapper) NGOProfileToEntity(p *model.NGOProfile) *entity.NGOProfile {
	if p == nil {
		return nil
	}
	return &entity.NGOProfile{
		Id:                p.Id,
		UserId:            p.UserId,
		NGOName:           p.NGOName,
		RegCertificateURL: p.RegCertificateURL,
		Email:             p.Email,
		ContactPerson:     p.ContactPerson,
		DocumentURL:       p.DocumentURL,
		CityPostal:        p.CityPostal,
		Address:           p.Address,
		NGOType:           p.NGOType,
		SocialLink:        p.SocialLink,
		MobileNumber:      p.MobileNumber,
		IsVerified:        p.IsVerified,
	}
}

func (m *UserMapper) NGOProfileToModel(p *entity.NGOProfile) *model.NGOProfile {
	if p == nil {
		return nil
	}
	return &model.NGOProfile{
		Id:                p.Id,
		UserId:            p.UserId,
		NGOName:           p.NGOName,
		RegCertificateURL: p.RegCertificateURL,
		Email:             p.Email,
		ContactPerson:     p.ContactPerson,
		DocumentURL:       p.DocumentURL,
		CityPostal:        p.CityPostal,
		Address:           p.Address,
		NGOType:           p.NGOType,
		SocialLink:        p.SocialLink,
		MobileNumber:      p.MobileNumber,
		IsVerified:        p.IsVerified,
	}
}

func (m *UserMapper) ContactMessageToEntity(c *model.ContactMessage) *entity.ContactMessage {
	if c == nil {
		return nil
	}
	return &entity.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *UserMapper) ContactMessageToModel(c *entity.ContactMessage) *model.ContactMessage {
	if c == nil {
		return nil
	}
	return &model.ContactMessage{
		Id:        c.Id,
		Name:      c.Name,
		Email:     c.Email,
		Message:   c.Message,
		CreatedAt: c.CreatedAt,
	}
}

func (m *UserMapper) ContactMessagesToEntities(msgs []*model.ContactMessage) []*entity.ContactMessage {
	entities := make([]*entity.ContactMessage, len(msgs))
	for i, c := range msgs {
		entities[i] = m.ContactMessageToEntity(c)
	}
	return entities
}
