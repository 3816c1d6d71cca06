package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/mapper"
	"givebridge-be/internal/model"
	"givebridge-be/internal/repository/contract"
	"givebridge-be/internal/repository/specification"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) Update(ctx context.Context, user *entity.User) error {
	modelUser := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Save(modelUser).Error; err != nil {
		return err
	}
	*user = *r.mapper.ToEntity(modelUser)
	return nil
}

func (r *UserRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.User{}).Error
}

func (r *UserRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	var modelUser model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelUser).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelUser), nil
}

func (r *UserRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	var modelUsers []*model.User
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelUsers).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelUsers), nil
}

func (r *UserRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.User{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userId uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Update("password_hash", hash).Error
}

func (r *UserRepositoryImpl) UpdateAvatar(ctx context.Context, userId uuid.UUID, avatarURL string) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Update("avatar_url", avatarURL).Error
}

func (r *UserRepositoryImpl) Approve(ctx context.Context, userId uuid.UUID) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", userId).
		Update("is_approved", true).Error
}

// Profiles

func (r *UserRepositoryImpl) CreateDonorProfile(ctx context.Context, profile *entity.DonorProfile) error {
	modelProfile := r.mapper.DonorProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.DonorProfileToEntity(modelProfile)
	return nil
}

func (r *UserRepositoryImpl) UpdateDonorProfile(ctx context.Context, profile *entity.DonorProfile) error {
	return r.db.WithContext(ctx).Save(r.mapper.DonorProfileToModel(profile)).Error
}

func (r *UserRepositoryImpl) FindDonorProfile(ctx context.Context, userId uuid.UUID) (*entity.DonorProfile, error) {
	var modelProfile model.DonorProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&modelProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.DonorProfileToEntity(&modelProfile), nil
}

func (r *UserRepositoryImpl) CreateNGOProfile(ctx context.Context, profile *entity.NGOProfile) error {
	modelProfile := r.mapper.NGOProfileToModel(profile)
	if err := r.db.WithContext(ctx).Create(modelProfile).Error; err != nil {
		return err
	}
	*profile = *r.mapper.NGOProfileToEntity(modelProfile)
	return nil
}

func (r *UserRepositoryImpl) UpdateNGOProfile(ctx context.Context, profile *entity.NGOProfile) error {
	return r.db.WithContext(ctx).Save(r.mapper.NGOProfileToModel(profile)).Error
}

func (r *UserRepositoryImpl) FindNGOProfile(ctx context.Context, userId uuid.UUID) (*entity.NGOProfile, error) {
	var modelProfile model.NGOProfile
	err := r.db.WithContext(ctx).Where("user_id = ?", userId).First(&modelProfile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.NGOProfileToEntity(&modelProfile), nil
}

// Contact form

func (r *UserRepositoryImpl) CreateContactMessage(ctx context.Context, msg *entity.ContactMessage) error {
	modelMsg := r.mapper.ContactMessageToModel(msg)
	if err := r.db.WithContext(ctx).Create(modelMsg).Error; err != nil {
		return err
	}
	*msg = *r.mapper.ContactMessageToEntity(modelMsg)
	return nil
}

func (r *UserRepositoryImpl) FindContactMessages(ctx context.Context, specs ...specification.Specification) ([]*entity.ContactMessage, error) {
	var modelMsgs []*model.ContactMessage
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelMsgs).Error; err != nil {
		return nil, err
	}

	return r.mapper.ContactMessagesToEntities(modelMsgs), nil
}

func (r *UserRepositoryImpl) DeleteContactMessage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ContactMessage{}).Error
}
