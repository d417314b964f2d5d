package entity

import (
	"time"

	"github.com/google/uuid"
)

type Conversation struct {
	Id            uuid.UUID
	UserId        uuid.UUID
	Title         string
	IsActive      bool
	LastMessageAt time.Time
	Metadata      map[string]any
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
