package entity

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an in-app message addressed to a single user.
type Notification struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Type      string
	Message   string
	Link      string
	Metadata  map[string]any
	IsRead    bool
	CreatedAt time.Time
}
