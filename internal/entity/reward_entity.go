package entity

import (
	"sort"

	"github.com/google/uuid"
)

// RewardTier is a points threshold that unlocks a named badge.
type RewardTier struct {
	Id             uuid.UUID
	Name           string
	PointsRequired int
	TierOrder      int
}

// UserReward is the per-account points ledger with its unlocked tiers.
type UserReward struct {
	Id       uuid.UUID
	UserId   uuid.UUID
	Points   int
	Unlocked []RewardTier
}

// HasUnlocked reports whether the tier is already recorded as unlocked.
func (r *UserReward) HasUnlocked(tierID uuid.UUID) bool {
	for _, t := range r.Unlocked {
		if t.Id == tierID {
			return true
		}
	}
	return false
}

// NextTier returns the lowest-threshold tier whose requirement exceeds the
// current points, or nil when every tier is met.
func NextTier(tiers []RewardTier, points int) *RewardTier {
	var next *RewardTier
	for i := range tiers {
		if tiers[i].PointsRequired <= points {
			continue
		}
		if next == nil || tiers[i].PointsRequired < next.PointsRequired {
			next = &tiers[i]
		}
	}
	return next
}

// TierProgress is the percent of the way from the previous met threshold
// (or 0) to the next unmet one. Returns 100 when all tiers are met.
func TierProgress(tiers []RewardTier, points int) int {
	next := NextTier(tiers, points)
	if next == nil {
		return 100
	}

	prev := 0
	for _, t := range tiers {
		if t.PointsRequired <= points && t.PointsRequired > prev {
			prev = t.PointsRequired
		}
	}

	return (points - prev) * 100 / (next.PointsRequired - prev)
}

// SortTiers orders tiers by ascending threshold.
func SortTiers(tiers []RewardTier) {
	sort.Slice(tiers, func(i, j int) bool {
		return tiers[i].PointsRequired < tiers[j].PointsRequired
	})
}
