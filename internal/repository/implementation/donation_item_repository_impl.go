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

type DonationItemRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DonationMapper
}

func NewDonationItemRepository(db *gorm.DB) contract.DonationItemRepository {
	return &DonationItemRepositoryImpl{
		db:     db,
		mapper: mapper.NewDonationMapper(),
	}
}

func (r *DonationItemRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DonationItemRepositoryImpl) Create(ctx context.Context, item *entity.DonationItem) error {
	modelItem := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Create(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(modelItem)
	return nil
}

func (r *DonationItemRepositoryImpl) Update(ctx context.Context, item *entity.DonationItem) error {
	modelItem := r.mapper.ToModel(item)
	if err := r.db.WithContext(ctx).Save(modelItem).Error; err != nil {
		return err
	}
	*item = *r.mapper.ToEntity(modelItem)
	return nil
}

func (r *DonationItemRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DonationItem{}).Error
}

func (r *DonationItemRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.DonationItem, error) {
	var modelItem model.DonationItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.First(&modelItem).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelItem), nil
}

func (r *DonationItemRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.DonationItem, error) {
	var modelItems []*model.DonationItem
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)

	if err := query.Find(&modelItems).Error; err != nil {
		return nil, err
	}

	return r.mapper.ToEntities(modelItems), nil
}

func (r *DonationItemRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DonationItem{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *DonationItemRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.ItemStatus) error {
	return r.db.WithContext(ctx).Model(&model.DonationItem{}).
		Where("id = ?", id).
		Update("status", string(status)).Error
}

func (r *DonationItemRepositoryImpl) AddImage(ctx context.Context, image *entity.DonationImage) error {
	modelImage := r.mapper.ImageToModel(image)
	if err := r.db.WithContext(ctx).Create(modelImage).Error; err != nil {
		return err
	}
	*image = *r.mapper.ImageToEntity(modelImage)
	return nil
}

func (r *DonationItemRepositoryImpl) FindImages(ctx context.Context, itemId uuid.UUID) ([]*entity.DonationImage, error) {
	var modelImages []*model.DonationImage
	err := r.db.WithContext(ctx).
		Where("donation_item_id = ?", itemId).
		Order("is_primary DESC, uploaded_at ASC").
		Find(&modelImages).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ImagesToEntities(modelImages), nil
}

func (r *DonationItemRepositoryImpl) DeleteImage(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DonationImage{}).Error
}
