package paygate

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranRefRoundTrip(t *testing.T) {
	campaignID := uuid.New()
	donorID := uuid.New()

	ref := NewTranRef(campaignID, donorID)

	gotCampaign, gotDonor, err := ParseTranRef(ref)
	require.NoError(t, err)
	assert.Equal(t, campaignID, gotCampaign)
	assert.Equal(t, donorID, gotDonor)
}

func TestTranRefUniqueness(t *testing.T) {
	campaignID := uuid.New()
	donorID := uuid.New()

	a := NewTranRef(campaignID, donorID)
	b := NewTranRef(campaignID, donorID)
	assert.NotEqual(t, a, b)
}

func TestParseTranRefMalformed(t *testing.T) {
	cases := []string{
		"",
		"not-a-ref",
		"onlyone_part",
		"a_b_c_d",
		"not-a-uuid_" + uuid.New().String() + "_abcd1234",
		uuid.New().String() + "_not-a-uuid_abcd1234",
	}

	for _, ref := range cases {
		_, _, err := ParseTranRef(ref)
		assert.Error(t, err, "ref %q should not parse", ref)
	}
}

func TestIsSuccessStatus(t *testing.T) {
	assert.True(t, IsSuccessStatus("VALID"))
	assert.True(t, IsSuccessStatus("SUCCESS"))
	assert.True(t, IsSuccessStatus(" valid "))
	assert.True(t, IsSuccessStatus("success"))

	assert.False(t, IsSuccessStatus("FAILED"))
	assert.False(t, IsSuccessStatus("CANCELLED"))
	assert.False(t, IsSuccessStatus("PENDING"))
	assert.False(t, IsSuccessStatus(""))
}
