package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
)

type IUserService interface {
	// Profile returns the role-shaped profile payload for the account.
	Profile(ctx context.Context, userId uuid.UUID) (interface{}, error)
	UpdateDonorProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorProfileResponse, error)
	UpdateNGOProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateNGOProfileRequest) (*dto.NGOProfileResponse, error)
	UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error
	DeleteAccount(ctx context.Context, userId uuid.UUID) error
	SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error
}

type userService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewUserService(uowFactory unitofwork.RepositoryFactory) IUserService {
	return &userService{
		uowFactory: uowFactory,
	}
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func toDonorProfileResponse(user *entity.User, profile *entity.DonorProfile) *dto.DonorProfileResponse {
	resp := &dto.DonorProfileResponse{UserResponse: *toUserResponse(user)}
	if profile != nil {
		resp.FullName = profile.FullName
		resp.CityPostal = profile.CityPostal
		resp.Address = profile.Address
		resp.MobileNumber = profile.MobileNumber
		resp.DocumentURL = strOrEmpty(profile.DocumentURL)
	}
	return resp
}

func toNGOProfileResponse(user *entity.User, profile *entity.NGOProfile) *dto.NGOProfileResponse {
	resp := &dto.NGOProfileResponse{UserResponse: *toUserResponse(user)}
	if profile != nil {
		resp.NGOName = profile.NGOName
		resp.ContactPerson = profile.ContactPerson
		resp.RegCertificateURL = strOrEmpty(profile.RegCertificateURL)
		resp.DocumentURL = strOrEmpty(profile.DocumentURL)
		resp.CityPostal = profile.CityPostal
		resp.Address = profile.Address
		resp.NGOType = profile.NGOType
		resp.SocialLink = profile.SocialLink
		resp.MobileNumber = profile.MobileNumber
		resp.IsVerified = profile.IsVerified
	}
	return resp
}

func (s *userService) Profile(ctx context.Context, userId uuid.UUID) (interface{}, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	switch user.Role {
	case entity.UserRoleNGO:
		profile, err := uow.UserRepository().FindNGOProfile(ctx, userId)
		if err != nil {
			return nil, err
		}
		return toNGOProfileResponse(user, profile), nil
	default:
		profile, err := uow.UserRepository().FindDonorProfile(ctx, userId)
		if err != nil {
			return nil, err
		}
		return toDonorProfileResponse(user, profile), nil
	}
}

func (s *userService) UpdateDonorProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateDonorProfileRequest) (*dto.DonorProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	profile, err := uow.UserRepository().FindDonorProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.DonorProfile{
			Id:     uuid.New(),
			UserId: userId,
			Email:  user.Email,
		}
		if err := uow.UserRepository().CreateDonorProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	profile.FullName = req.FullName
	profile.CityPostal = req.CityPostal
	profile.Address = req.Address
	profile.MobileNumber = req.MobileNumber
	if req.DocumentURL != "" {
		profile.DocumentURL = &req.DocumentURL
	}

	if err := uow.UserRepository().UpdateDonorProfile(ctx, profile); err != nil {
		return nil, err
	}
	return toDonorProfileResponse(user, profile), nil
}

func (s *userService) UpdateNGOProfile(ctx context.Context, userId uuid.UUID, req *dto.UpdateNGOProfileRequest) (*dto.NGOProfileResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	if user.Role != entity.UserRoleNGO {
		return nil, apperr.Forbidden("account is not an NGO")
	}

	profile, err := uow.UserRepository().FindNGOProfile(ctx, userId)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		profile = &entity.NGOProfile{
			Id:     uuid.New(),
			UserId: userId,
			Email:  user.Email,
		}
		if err := uow.UserRepository().CreateNGOProfile(ctx, profile); err != nil {
			return nil, err
		}
	}

	profile.NGOName = req.NGOName
	profile.ContactPerson = req.ContactPerson
	profile.CityPostal = req.CityPostal
	profile.Address = req.Address
	profile.NGOType = req.NGOType
	profile.SocialLink = req.SocialLink
	profile.MobileNumber = req.MobileNumber
	if req.DocumentURL != "" {
		profile.DocumentURL = &req.DocumentURL
	}

	if err := uow.UserRepository().UpdateNGOProfile(ctx, profile); err != nil {
		return nil, err
	}
	return toNGOProfileResponse(user, profile), nil
}

func (s *userService) UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.UserRepository().UpdateAvatar(ctx, userId, avatarURL)
}

func (s *userService) DeleteAccount(ctx context.Context, userId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil {
		return apperr.NotFound("user")
	}
	return uow.UserRepository().Delete(ctx, userId)
}

func (s *userService) SubmitContactMessage(ctx context.Context, req *dto.ContactMessageRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	msg := &entity.ContactMessage{
		Id:        uuid.New(),
		Name:      req.Name,
		Email:     req.Email,
		Message:   req.Message,
		CreatedAt: time.Now(),
	}
	return uow.UserRepository().CreateContactMessage(ctx, msg)
}
