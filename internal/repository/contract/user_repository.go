package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)

	UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error
	UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error
	Approve(ctx context.Context, userId uuid.UUID) error

	// Profiles
	CreateDonorProfile(ctx context.Context, profile *entity.DonorProfile) error
	UpdateDonorProfile(ctx context.Context, profile *entity.DonorProfile) error
	FindDonorProfile(ctx context.Context, userId uuid.UUID) (*entity.DonorProfile, error)
	CreateNGOProfile(ctx context.Context, profile *entity.NGOProfile) error
	UpdateNGOProfile(ctx context.Context, profile *entity.NGOProfile) error
	FindNGOProfile(ctx context.Context, userId uuid.UUID) (*entity.NGOProfile, error)

	// Contact form
	CreateContactMessage(ctx context.Context, msg *entity.ContactMessage) error
	FindContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error)
	DeleteContactMessage(ctx context.Context, id uuid.UUID) error
}
