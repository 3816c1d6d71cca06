package entity

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClaimStatusNormalizes(t *testing.T) {
	for input, want := range map[string]ClaimStatus{
		"pending":     ClaimStatusPending,
		" Approved ":  ClaimStatusApproved,
		"REJECTED":    ClaimStatusRejected,
		"Completed\t": ClaimStatusCompleted,
	} {
		got, err := ParseClaimStatus(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, got)
	}

	_, err := ParseClaimStatus("cancelled")
	assert.Error(t, err)
	_, err = ParseClaimStatus("")
	assert.Error(t, err)
}

func TestClaimStatusTerminal(t *testing.T) {
	assert.False(t, ClaimStatusPending.IsTerminal())
	assert.False(t, ClaimStatusApproved.IsTerminal())
	assert.True(t, ClaimStatusRejected.IsTerminal())
	assert.True(t, ClaimStatusCompleted.IsTerminal())
}

func TestParseItemStatus(t *testing.T) {
	got, err := ParseItemStatus(" Available ")
	require.NoError(t, err)
	assert.Equal(t, ItemStatusAvailable, got)

	_, err = ParseItemStatus("sold")
	assert.Error(t, err)
}

func TestParseUserRole(t *testing.T) {
	got, err := ParseUserRole("NGO")
	require.NoError(t, err)
	assert.Equal(t, UserRoleNGO, got)

	_, err = ParseUserRole("superhero")
	assert.Error(t, err)
}

func TestCampaignProgressPercent(t *testing.T) {
	goal := decimal.NewFromInt(1000)

	c := &Campaign{GoalAmount: &goal, CollectedAmount: decimal.NewFromInt(250)}
	assert.InDelta(t, 25.0, c.ProgressPercent(), 0.001)

	// Over-funded campaigns report more than 100.
	c.CollectedAmount = decimal.NewFromInt(1500)
	assert.InDelta(t, 150.0, c.ProgressPercent(), 0.001)

	// No goal means no meaningful progress.
	c = &Campaign{CollectedAmount: decimal.NewFromInt(500)}
	assert.Equal(t, 0.0, c.ProgressPercent())

	zero := decimal.Zero
	c = &Campaign{GoalAmount: &zero, CollectedAmount: decimal.NewFromInt(500)}
	assert.Equal(t, 0.0, c.ProgressPercent())
}
