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

type RequestDonationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.RequestMapper
}

func NewRequestDonationRepository(db *gorm.DB) contract.RequestDonationRepository {
	return &RequestDonationRepositoryImpl{
		db:     db,
		mapper: mapper.NewRequestMapper(),
	}
}

func (r *RequestDonationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *RequestDonationRepositoryImpl) Create(ctx context.Context, donation *entity.RequestDonation) error {
	modelDonation := r.mapper.DonationToModel(donation)
	if err := r.db.WithContext(ctx).Create(modelDonation).Error; err != nil {
		return err
	}
	*donation = *r.mapper.DonationToEntity(modelDonation)
	return nil
}

func (r *RequestDonationRepositoryImpl) Update(ctx context.Context, donation *entity.RequestDonation) error {
	modelDonation := r.mapper.DonationToModel(donation)
	if err := r.db.WithContext(ctx).Save(modelDonation).Error; err != nil {
		return err
	}
	*donation = *r.mapper.DonationToEntity(modelDonation)
	return nil
}

func (r *RequestDonationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.RequestDonation{}).Error
}

func (r *RequestDonationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.RequestDonation, error) {
	var modelDonation model.RequestDonation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelDonation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.DonationToEntity(&modelDonation), nil
}

func (r *RequestDonationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.RequestDonation, error) {
	var modelDonations []*model.RequestDonation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelDonations).Error; err != nil {
		return nil, err
	}

	return r.mapper.DonationsToEntities(modelDonations), nil
}

func (r *RequestDonationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.RequestDonation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RequestDonationRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.FulfillmentStatus) error {
	return r.db.WithContext(ctx).Model(&model.RequestDonation{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
