package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type CrisisLog struct {
	Id               uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId           uuid.UUID      `gorm:"type:uuid;not null;index"`
	MessageId        *uuid.UUID     `gorm:"type:uuid;uniqueIndex"` // 1:1 with the triggering user message
	TriggerText      string         `gorm:"type:text;not null"`
	DetectedKeywords datatypes.JSON `gorm:"type:jsonb"`
	RiskLevel        string         `gorm:"type:varchar(20);not null;index"`
	ResponseText     string         `gorm:"type:text;not null"`
	ResourcesShared  datatypes.JSON `gorm:"type:jsonb"`
	HotlinesShared   datatypes.JSON `gorm:"type:jsonb"`
	FollowUpNeeded   bool           `gorm:"not null;default:false"`
	AdminNotified    bool           `gorm:"not null;default:false"`
	CreatedAt        time.Time      `gorm:"autoCreateTime;index"`
}

func (CrisisLog) TableName() string {
	return "crisis_logs"
}
