package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tiers() []RewardTier {
	return []RewardTier{
		{Id: uuid.New(), Name: "Silver", PointsRequired: 50, TierOrder: 1},
		{Id: uuid.New(), Name: "Gold", PointsRequired: 150, TierOrder: 2},
		{Id: uuid.New(), Name: "Diamond", PointsRequired: 400, TierOrder: 3},
	}
}

func TestNextTier(t *testing.T) {
	ts := tiers()

	next := NextTier(ts, 0)
	require.NotNil(t, next)
	assert.Equal(t, "Silver", next.Name)

	next = NextTier(ts, 50)
	require.NotNil(t, next)
	assert.Equal(t, "Gold", next.Name)

	next = NextTier(ts, 399)
	require.NotNil(t, next)
	assert.Equal(t, "Diamond", next.Name)

	assert.Nil(t, NextTier(ts, 400))
	assert.Nil(t, NextTier(ts, 9999))
}

// The next tier's threshold is always strictly greater than current points.
func TestNextTierStrictlyAbovePoints(t *testing.T) {
	ts := tiers()
	for points := 0; points <= 400; points += 10 {
		next := NextTier(ts, points)
		if next == nil {
			assert.GreaterOrEqual(t, points, 400)
			continue
		}
		assert.Greater(t, next.PointsRequired, points)
	}
}

func TestTierProgress(t *testing.T) {
	ts := tiers()

	assert.Equal(t, 0, TierProgress(ts, 0))
	assert.Equal(t, 50, TierProgress(ts, 25))
	// Exactly at a threshold: progress restarts toward the next tier.
	assert.Equal(t, 0, TierProgress(ts, 50))
	assert.Equal(t, 50, TierProgress(ts, 100))
	assert.Equal(t, 100, TierProgress(ts, 400))
	assert.Equal(t, 100, TierProgress(ts, 1000))
}

func TestTierProgressNoTiers(t *testing.T) {
	assert.Equal(t, 100, TierProgress(nil, 0))
}

func TestHasUnlocked(t *testing.T) {
	ts := tiers()
	reward := &UserReward{Unlocked: []RewardTier{ts[0]}}

	assert.True(t, reward.HasUnlocked(ts[0].Id))
	assert.False(t, reward.HasUnlocked(ts[1].Id))
}

func TestSortTiers(t *testing.T) {
	ts := []RewardTier{
		{Name: "Diamond", PointsRequired: 400},
		{Name: "Silver", PointsRequired: 50},
		{Name: "Gold", PointsRequired: 150},
	}
	SortTiers(ts)
	assert.Equal(t, []string{"Silver", "Gold", "Diamond"}, []string{ts[0].Name, ts[1].Name, ts[2].Name})
}
