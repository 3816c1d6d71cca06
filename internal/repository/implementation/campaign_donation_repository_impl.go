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

type CampaignDonationRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CampaignMapper
}

func NewCampaignDonationRepository(db *gorm.DB) contract.CampaignDonationRepository {
	return &CampaignDonationRepositoryImpl{
		db:     db,
		mapper: mapper.NewCampaignMapper(),
	}
}

func (r *CampaignDonationRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CampaignDonationRepositoryImpl) Create(ctx context.Context, donation *entity.CampaignDonation) error {
	modelDonation := r.mapper.DonationToModel(donation)
	if err := r.db.WithContext(ctx).Create(modelDonation).Error; err != nil {
		return err
	}
	*donation = *r.mapper.DonationToEntity(modelDonation)
	return nil
}

func (r *CampaignDonationRepositoryImpl) Update(ctx context.Context, donation *entity.CampaignDonation) error {
	modelDonation := r.mapper.DonationToModel(donation)
	if err := r.db.WithContext(ctx).Save(modelDonation).Error; err != nil {
		return err
	}
	*donation = *r.mapper.DonationToEntity(modelDonation)
	return nil
}

func (r *CampaignDonationRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.CampaignDonation{}).Error
}

func (r *CampaignDonationRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CampaignDonation, error) {
	var modelDonation model.CampaignDonation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelDonation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.DonationToEntity(&modelDonation), nil
}

func (r *CampaignDonationRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CampaignDonation, error) {
	var modelDonations []*model.CampaignDonation
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelDonations).Error; err != nil {
		return nil, err
	}

	return r.mapper.DonationsToEntities(modelDonations), nil
}

func (r *CampaignDonationRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CampaignDonation{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *CampaignDonationRepositoryImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(&model.CampaignDonation{}).
		Where("id = ?", id).
		Update("payment_status", string(status)).Error
}
