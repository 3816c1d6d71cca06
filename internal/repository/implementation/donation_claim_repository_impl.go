package implementation

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/mapper"
	"givebridge-be/internal/model"
	"givebridge-be/internal/pkg/apperr"
	"givebridge-be/internal/repository/contract"
	"givebridge-be/internal/repository/specification"
)

type DonationClaimRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationClaimRepository(db *gorm.DB) contract.DonationClaimRepository {
	return &DonationClaimRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationClaimRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DonationClaimRepositoryImpl) Create(ctx context.Context, claim *entity.DonationClaim) error {
	modelClaim := r.mapper.ClaimToModel(claim)
	if err := r.db.WithContext(ctx).Create(modelClaim).Error; err != nil {
		// The (item, claimant) unique index is the source of truth for the
		// one-claim-per-item rule, so races surface here too.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.DuplicateClaim()
		}
		return err
	}
	*claim = *r.mapper.ClaimToEntity(modelClaim)
	return nil
}

func (r *DonationClaimRepositoryImpl) Update(ctx context.Context, claim *entity.DonationClaim) error {
	modelClaim := r.mapper.ClaimToModel(claim)
	if err := r.db.WithContext(ctx).Save(modelClaim).Error; err != nil {
		return err
	}
	*claim = *r.mapper.ClaimToEntity(modelClaim)
	return nil
}

func (r *DonationClaimRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DonationClaim{}).Error
}

func (r *DonationClaimRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationClaim, error) {
	var modelClaim model.DonationClaim
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelClaim).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ClaimToEntity(&modelClaim), nil
}

func (r *DonationClaimRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationClaim, error) {
	var modelClaims []*model.DonationClaim
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelClaims).Error; err != nil {
		return nil, err
	}

	return r.mapper.ClaimsToEntities(modelClaims), nil
}

func (r *DonationClaimRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DonationClaim{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DonationClaimRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ClaimStatus) error {
	return r.db.WithContext(ctx).Model(&model.DonationClaim{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}
