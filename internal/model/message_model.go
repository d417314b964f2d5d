package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Message struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConversationId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Sender            string    `gorm:"type:varchar(20);not null"`
	Content           string    `gorm:"type:text;not null"`
	MessageType       string    `gorm:"type:varchar(50);not null;default:'text'"`
	ResponseLatencyMs *int64
	Confidence        *float64
	TriggerKeywords   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt         time.Time      `gorm:"autoCreateTime;index"`
}

func (Message) TableName() string {
	return "messages"
}
