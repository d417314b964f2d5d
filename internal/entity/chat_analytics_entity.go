package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatAnalytics accumulates one row per user per calendar day. Only genuine
// completed exchanges count; crisis replies and provider fallbacks do not.
type ChatAnalytics struct {
	Id           uuid.UUID
	UserId       uuid.UUID
	Date         time.Time
	MessagesSent int
	MinutesSpent float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
