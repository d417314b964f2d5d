package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ByConversationID scopes messages to one conversation
type ByConversationID struct {
	ConversationID uuid.UUID
}

func (s ByConversationID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversation_id = ?", s.ConversationID)
}

// ActiveOnly filters to conversations not yet closed
type ActiveOnly struct{}

func (s ActiveOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true)
}

// ByRiskLevel filters crisis logs by severity tier
type ByRiskLevel struct {
	Level string
}

func (s ByRiskLevel) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("risk_level = ?", s.Level)
}
