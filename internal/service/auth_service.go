package service

import (
	"context"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/repository/specification"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/events"
)

type IAuthService interface {
	RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.UserResponse, error)
	RegisterNGO(ctx context.Context, req *dto.RegisterNGORequest) (*dto.UserResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error)
	ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error
}

type authService struct {
	uowFactory unitofwork.RepositoryFactory
	bus        *eventbus.Bus
}

func NewAuthService(uowFactory unitofwork.RepositoryFactory, bus *eventbus.Bus) IAuthService {
	return &authService{
		uowFactory: uowFactory,
		bus:        bus,
	}
}

func toUserResponse(user *entity.User) *dto.UserResponse {
	avatar := ""
	if user.AvatarURL != nil {
		avatar = *user.AvatarURL
	}
	return &dto.UserResponse{
		Id:          user.Id,
		Username:    user.Username,
		Email:       user.Email,
		Role:        string(user.Role),
		IsApproved:  user.IsApproved,
		IsSuperuser: user.IsSuperuser,
		AvatarURL:   avatar,
		CreatedAt:   user.CreatedAt,
	}
}

func (s *authService) createUser(ctx context.Context, uow unitofwork.UnitOfWork, username, email, password string, role entity.UserRole) (*entity.User, error) {
	existing, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validationf("email %s is already registered", email)
	}

	existing, err = uow.UserRepository().FindOne(ctx, specification.ByUsername{Username: username})
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.Validationf("username %s is taken", username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	hashStr := string(hash)

	user := &entity.User{
		Id:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: &hashStr,
		Role:         role,
		// Donor accounts are usable immediately; NGOs wait for approval.
		IsApproved: role != entity.UserRoleNGO,
		IsActive:   true,
		CreatedAt:  time.Now(),
	}
	if err := uow.UserRepository().Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) RegisterDonor(ctx context.Context, req *dto.RegisterDonorRequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := s.createUser(ctx, uow, req.Username, req.Email, req.Password, entity.UserRoleDonorRecipient)
	if err != nil {
		return nil, err
	}

	profile := &entity.DonorProfile{
		Id:           uuid.New(),
		UserId:       user.Id,
		FullName:     req.FullName,
		Email:        req.Email,
		CityPostal:   req.CityPostal,
		Address:      req.Address,
		MobileNumber: req.MobileNumber,
	}
	if req.DocumentURL != "" {
		profile.DocumentURL = &req.DocumentURL
	}
	if err := uow.UserRepository().CreateDonorProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
	}))

	return toUserResponse(user), nil
}

func (s *authService) RegisterNGO(ctx context.Context, req *dto.RegisterNGORequest) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	user, err := s.createUser(ctx, uow, req.Username, req.Email, req.Password, entity.UserRoleNGO)
	if err != nil {
		return nil, err
	}

	profile := &entity.NGOProfile{
		Id:            uuid.New(),
		UserId:        user.Id,
		NGOName:       req.NGOName,
		Email:         req.Email,
		ContactPerson: req.ContactPerson,
		CityPostal:    req.CityPostal,
		Address:       req.Address,
		NGOType:       req.NGOType,
		SocialLink:    req.SocialLink,
		MobileNumber:  req.MobileNumber,
	}
	if req.RegCertificateURL != "" {
		profile.RegCertificateURL = &req.RegCertificateURL
	}
	if req.DocumentURL != "" {
		profile.DocumentURL = &req.DocumentURL
	}
	if err := uow.UserRepository().CreateNGOProfile(ctx, profile); err != nil {
		return nil, err
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	s.bus.Publish(ctx, events.New(events.TypeUserRegistered, map[string]interface{}{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
	}))

	return toUserResponse(user), nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: req.Email})
	if err != nil {
		return nil, err
	}
	if user == nil || user.PasswordHash == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if !user.IsActive {
		return nil, apperr.Forbidden("account is deactivated")
	}
	if user.Role == entity.UserRoleNGO && !user.IsApproved {
		return nil, apperr.Forbidden("NGO account is awaiting approval")
	}

	claims := jwt.MapClaims{
		"user_id": user.Id.String(),
		"role":    string(user.Role),
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "default_secret"
	}
	signedToken, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, err
	}

	return &dto.LoginResponse{
		Token: signedToken,
		User:  *toUserResponse(user),
	}, nil
}

func (s *authService) Me(ctx context.Context, userId uuid.UUID) (*dto.UserResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return toUserResponse(user), nil
}

func (s *authService) ChangePassword(ctx context.Context, userId uuid.UUID, req *dto.ChangePasswordRequest) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: userId})
	if err != nil {
		return err
	}
	if user == nil || user.PasswordHash == nil {
		return apperr.NotFound("user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return apperr.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return uow.UserRepository().UpdatePassword(ctx, userId, string(hash))
}
