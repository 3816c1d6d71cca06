package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/entity"
	"givebridge-be/internal/pkg/logger"
	"givebridge-be/internal/repository/unitofwork"
	"givebridge-be/pkg/eventbus"
	"givebridge-be/pkg/events"
)

// Reward reasons. Each maps to a fixed award.
const (
	ReasonItemPosted       = "item_posted"
	ReasonRequestFulfilled = "request_fulfilled"
	ReasonCampaignDonation = "campaign_donation"
)

var rewardPolicy = map[string]int{
	ReasonItemPosted:       10,
	ReasonRequestFulfilled: 20,
	ReasonCampaignDonation: 30,
}

const tierCacheKey = "reward_tiers"

type IRewardService interface {
	// Award credits the policy amount for the reason. Unknown reasons are an
	// error; award failures never bubble into the triggering workflow, so
	// callers log rather than return the error.
	Award(ctx context.Context, userId uuid.UUID, reason string) error
	MyRewards(ctx context.Context, userId uuid.UUID) (*dto.MyRewardsResponse, error)
	ListTiers(ctx context.Context) ([]*dto.RewardTierResponse, error)
	InvalidateTierCache()
}

type rewardService struct {
	uowFactory   unitofwork.RepositoryFactory
	notification INotificationService
	bus          *eventbus.Bus
	cache        *gocache.Cache
	logger       logger.ILogger
}

func NewRewardService(
	uowFactory unitofwork.RepositoryFactory,
	notification INotificationService,
	bus *eventbus.Bus,
	log logger.ILogger,
) IRewardService {
	return &rewardService{
		uowFactory:   uowFactory,
		notification: notification,
		bus:          bus,
		cache:        gocache.New(10*time.Minute, 15*time.Minute),
		logger:       log,
	}
}

func toTierResponse(t *entity.RewardTier) *dto.RewardTierResponse {
	return &dto.RewardTierResponse{
		Id:             t.Id,
		Name:           t.Name,
		PointsRequired: t.PointsRequired,
		TierOrder:      t.TierOrder,
	}
}

func (s *rewardService) tiers(ctx context.Context, uow unitofwork.UnitOfWork) ([]*entity.RewardTier, error) {
	if cached, ok := s.cache.Get(tierCacheKey); ok {
		return cached.([]*entity.RewardTier), nil
	}

	tiers, err := uow.RewardRepository().FindTiers(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.SetDefault(tierCacheKey, tiers)
	return tiers, nil
}

func (s *rewardService) InvalidateTierCache() {
	s.cache.Delete(tierCacheKey)
}

func (s *rewardService) Award(ctx context.Context, userId uuid.UUID, reason string) error {
	points, ok := rewardPolicy[reason]
	if !ok {
		return fmt.Errorf("unknown reward reason %q", reason)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	reward, err := uow.RewardRepository().FindByUser(ctx, userId)
	if err != nil {
		return err
	}
	if reward == nil {
		reward = &entity.UserReward{
			Id:     uuid.New(),
			UserId: userId,
			Points: 0,
		}
		if err := uow.RewardRepository().Create(ctx, reward); err != nil {
			return err
		}
	}

	if err := uow.RewardRepository().AddPoints(ctx, userId, points); err != nil {
		return err
	}

	// The increment is a single SQL statement; re-read so the tier scan and
	// the published total see points added by concurrent awards.
	reward, err = uow.RewardRepository().FindByUser(ctx, userId)
	if err != nil {
		return err
	}
	newTotal := reward.Points

	tiers, err := s.tiers(ctx, uow)
	if err != nil {
		return err
	}

	var newlyUnlocked []*entity.RewardTier
	for _, tier := range tiers {
		if tier.PointsRequired <= newTotal && !reward.HasUnlocked(tier.Id) {
			if err := uow.RewardRepository().UnlockTier(ctx, reward.Id, tier.Id); err != nil {
				return err
			}
			newlyUnlocked = append(newlyUnlocked, tier)
		}
	}

	if err := uow.Commit(); err != nil {
		return err
	}

	s.bus.Publish(ctx, events.New(events.TypePointsEarned, map[string]interface{}{
		"user_id": userId.String(),
		"reason":  reason,
		"points":  points,
		"total":   newTotal,
	}))

	for _, tier := range newlyUnlocked {
		if err := s.notification.Notify(ctx, userId, "reward_unlocked",
			fmt.Sprintf("Congratulations! You reached the %s tier.", tier.Name),
			"/rewards", map[string]any{"tier": tier.Name}); err != nil {
			s.logger.Warn("reward", "failed to notify tier unlock", map[string]interface{}{
				"user_id": userId.String(),
				"tier":    tier.Name,
				"error":   err.Error(),
			})
		}
	}
	return nil
}

func (s *rewardService) MyRewards(ctx context.Context, userId uuid.UUID) (*dto.MyRewardsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	reward, err := uow.RewardRepository().FindByUser(ctx, userId)
	if err != nil {
		return nil, err
	}

	points := 0
	var unlocked []dto.RewardTierResponse
	if reward != nil {
		points = reward.Points
		for i := range reward.Unlocked {
			unlocked = append(unlocked, *toTierResponse(&reward.Unlocked[i]))
		}
	}

	tierPtrs, err := s.tiers(ctx, uow)
	if err != nil {
		return nil, err
	}
	tiers := make([]entity.RewardTier, len(tierPtrs))
	for i, t := range tierPtrs {
		tiers[i] = *t
	}

	resp := &dto.MyRewardsResponse{
		Points:             points,
		Unlocked:           unlocked,
		ProgressPercentage: entity.TierProgress(tiers, points),
	}
	if next := entity.NextTier(tiers, points); next != nil {
		resp.NextReward = toTierResponse(next)
	}
	return resp, nil
}

func (s *rewardService) ListTiers(ctx context.Context) ([]*dto.RewardTierResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	tiers, err := s.tiers(ctx, uow)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RewardTierResponse, len(tiers))
	for i, t := range tiers {
		result[i] = toTierResponse(t)
	}
	return result, nil
}
