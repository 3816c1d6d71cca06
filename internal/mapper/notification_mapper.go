package mapper

import (
	"encoding/json"

	"gorm.io/datatypes"

	"givebridge-be/internal/entity"
	"givebridge-be/internal/model"
)

type NotificationMapper struct{}

func NewNotificationMapper() *NotificationMapper {
	return &NotificationMapper{}
}

func (m *NotificationMapper) ToEntity(n *model.Notification) *entity.Notification {
	if n == nil {
		return nil
	}

	var metadata map[string]any
	if len(n.Metadata) > 0 {
		// Malformed rows degrade to nil metadata instead of failing the read.
		_ = json.Unmarshal(n.Metadata, &metadata)
	}

	return &entity.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Message:   n.Message,
		Link:      n.Link,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToModel(n *entity.Notification) *model.Notification {
	if n == nil {
		return nil
	}

	var metadata datatypes.JSON
	if n.Metadata != nil {
		raw, err := json.Marshal(n.Metadata)
		if err == nil {
			metadata = raw
		}
	}

	return &model.Notification{
		Id:        n.Id,
		UserId:    n.UserId,
		Type:      n.Type,
		Message:   n.Message,
		Link:      n.Link,
		Metadata:  metadata,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

func (m *NotificationMapper) ToEntities(notifications []*model.Notification) []*entity.Notification {
	entities := make([]*entity.Notification, len(notifications))
	for i, n := range notifications {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
