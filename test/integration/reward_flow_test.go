package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/dto"
	"givebridge-be/internal/service"
)

func TestConcurrentAwardsUnlockTier(t *testing.T) {
	db := setupDB(t)
	s := newServices(t, db)
	ctx := context.Background()

	tierName := "Bronze " + uuid.New().String()[:8]
	tier, err := s.admin.CreateRewardTier(ctx, &dto.UpsertRewardTierRequest{
		Name:           tierName,
		PointsRequired: 50,
		TierOrder:      1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.admin.DeleteRewardTier(context.Background(), tier.Id) })

	donor := registerDonor(t, s)

	// Seed the ledger row so the concurrent awards race on the increment,
	// not on row creation.
	require.NoError(t, s.reward.Award(ctx, donor.Id, service.ReasonItemPosted))

	var wg sync.WaitGroup
	errs := make([]error, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			errs[i] = s.reward.Award(ctx, donor.Id, service.ReasonItemPosted)
		}(i)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	rewards, err := s.reward.MyRewards(ctx, donor.Id)
	require.NoError(t, err)
	assert.Equal(t, 50, rewards.Points)

	unlocked := false
	for _, u := range rewards.Unlocked {
		if u.Id == tier.Id {
			unlocked = true
		}
	}
	assert.True(t, unlocked, "the award that crossed the threshold should unlock the tier")
}
