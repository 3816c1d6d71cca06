package unitofwork

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"givebridge-be/internal/repository/contract"
	"givebridge-be/internal/repository/implementation"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	u.tx = u.db.WithContext(ctx).Begin()
	return u.tx.Error
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to rollback")
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CategoryRepository() contract.CategoryRepository {
	return implementation.NewCategoryRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationItemRepository() contract.DonationItemRepository {
	return implementation.NewDonationItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationClaimRepository() contract.DonationClaimRepository {
	return implementation.NewDonationClaimRepository(u.getDB())
}

func (u *UnitOfWorkImpl) DonationReviewRepository() contract.DonationReviewRepository {
	return implementation.NewDonationReviewRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequestItemRepository() contract.RequestItemRepository {
	return implementation.NewRequestItemRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RequestDonationRepository() contract.RequestDonationRepository {
	return implementation.NewRequestDonationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CampaignRepository() contract.CampaignRepository {
	return implementation.NewCampaignRepository(u.getDB())
}

func (u *UnitOfWorkImpl) CampaignDonationRepository() contract.CampaignDonationRepository {
	return implementation.NewCampaignDonationRepository(u.getDB())
}

func (u *UnitOfWorkImpl) RewardRepository() contract.RewardRepository {
	return implementation.NewRewardRepository(u.getDB())
}

func (u *UnitOfWorkImpl) NotificationRepository() contract.NotificationRepository {
	return implementation.NewNotificationRepository(u.getDB())
}
