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

type DonationReviewRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationReviewRepository(db *gorm.DB) contract.DonationReviewRepository {
	return &DonationReviewRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationReviewRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DonationReviewRepositoryImpl) Create(ctx context.Context, review *entity.DonationReview) error {
	modelReview := r.mapper.ReviewToModel(review)
	if err := r.db.WithContext(ctx).Create(modelReview).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.AlreadyReviewed()
		}
		return err
	}
	*review = *r.mapper.ReviewToEntity(modelReview)
	return nil
}

func (r *DonationReviewRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DonationReview{}).Error
}

func (r *DonationReviewRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationReview, error) {
	var modelReview model.DonationReview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelReview).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ReviewToEntity(&modelReview), nil
}

func (r *DonationReviewRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationReview, error) {
	var modelReviews []*model.DonationReview
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelReviews).Error; err != nil {
		return nil, err
	}

	return r.mapper.ReviewsToEntities(modelReviews), nil
}

func (r *DonationReviewRepositoryImpl) AverageRating(ctx context.Context, itemId uuid.UUID) (float64, int64, error) {
	var result struct {
		Avg   float64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&model.DonationReview{}).
		Select("COALESCE(AVG(rating), 0) AS avg, COUNT(*) AS count").
		Where("donation_item_id = ?", itemId).
		Scan(&result).Error
	if err != nil {
		return 0, 0, err
	}
	return result.Avg, result.Count, nil
}
