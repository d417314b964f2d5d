package dto

import (
	"time"

	"github.com/google/uuid"
)

type SendMessageRequest struct {
	ConversationId *uuid.UUID `json:"conversation_id,omitempty"`
	Content        string     `json:"content" validate:"required,min=1,max=2000"`
}

type MessageDTO struct {
	Id          uuid.UUID `json:"id"`
	Sender      string    `json:"sender"`
	Content     string    `json:"content"`
	MessageType string    `json:"message_type"`
	CreatedAt   time.Time `json:"created_at"`
}

type ConversationDTO struct {
	Id            uuid.UUID `json:"id"`
	Title         string    `json:"title"`
	IsActive      bool      `json:"is_active"`
	LastMessageAt time.Time `json:"last_message_at"`
	CreatedAt     time.Time `json:"created_at"`
}

type ResponseMetadata struct {
	ResponseTimeMs int64    `json:"response_time_ms"`
	Confidence     float64  `json:"confidence"`
	MessageType    string   `json:"message_type"`
	Keywords       []string `json:"keywords,omitempty"`
}

type SendMessageResponse struct {
	Conversation     ConversationDTO  `json:"conversation"`
	UserMessage      MessageDTO       `json:"user_message"`
	AssistantMessage MessageDTO       `json:"assistant_message"`
	CrisisDetected   bool             `json:"crisis_detected"`
	RiskLevel        string           `json:"risk_level,omitempty"`
	Metadata         ResponseMetadata `json:"metadata"`
}

type GetConversationHistoryResponse struct {
	Conversation ConversationDTO `json:"conversation"`
	Messages     []MessageDTO    `json:"messages"`
}

type CrisisLogDTO struct {
	Id               uuid.UUID `json:"id"`
	UserId           uuid.UUID `json:"user_id"`
	RiskLevel        string    `json:"risk_level"`
	DetectedKeywords []string  `json:"detected_keywords"`
	FollowUpNeeded   bool      `json:"follow_up_needed"`
	AdminNotified    bool      `json:"admin_notified"`
	CreatedAt        time.Time `json:"created_at"`
}
