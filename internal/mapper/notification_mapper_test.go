package mapper

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

func TestNotificationMetadataSurvivesMapping(t *testing.T) {
	m := NewNotificationMapper()

	e := &entity.Notification{
		Id:      uuid.New(),
		UserId:  uuid.New(),
		Type:    "claim_submitted",
		Message: "Someone claimed your item",
		Link:    "/donations/abc",
		Metadata: map[string]any{
			"claim_id": "deadbeef",
			"count":    float64(2),
		},
	}

	back := m.ToEntity(m.ToModel(e))
	require.NotNil(t, back)
	assert.Equal(t, e.Type, back.Type)
	assert.Equal(t, "deadbeef", back.Metadata["claim_id"])
	assert.Equal(t, float64(2), back.Metadata["count"])
}

func TestNotificationMalformedMetadataDegrades(t *testing.T) {
	m := NewNotificationMapper()

	row := &model.Notification{
		Id:       uuid.New(),
		UserId:   uuid.New(),
		Type:     "ngo_approved",
		Message:  "Approved",
		Metadata: []byte("{not json"),
	}

	e := m.ToEntity(row)
	require.NotNil(t, e)
	assert.Nil(t, e.Metadata)
	assert.Equal(t, "ngo_approved", e.Type)
}

func TestNotificationNilMapping(t *testing.T) {
	m := NewNotificationMapper()
	assert.Nil(t, m.ToEntity(nil))
	assert.Nil(t, m.ToModel(nil))
}
