package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatAnalytics struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_chat_analytics_user_date"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex:idx_chat_analytics_user_date"`
	MessagesSent int       `gorm:"not null;default:0"`
	MinutesSpent float64   `gorm:"not null;default:0"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime"`
}

func (ChatAnalytics) TableName() string {
	return "chat_analytics"
}
