package contract

import (
	"context"

	"github.com/google/uuid"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/repository/specification"
)

type DonationReviewRepository interface {
	// Create returns an already-reviewed error when the claimant has a
	// review on the item.
	Create(ctx context.Context, review *entity.DonationReview) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationReview, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationReview, error)

	// AverageRating returns 0 with a zero count when the item has no reviews.
	AverageRating(ctx context.Context, itemId uuid.UUID) (float64, int64, error)
}
