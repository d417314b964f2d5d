package entity

import (
	"time"

	"github.com/google/uuid"
)

type MessageSender string

const (
	SenderUser      MessageSender = "user"
	SenderAssistant MessageSender = "assistant"
)

type MessageType string

const (
	MessageTypeText           MessageType = "text"
	MessageTypeSuggestion     MessageType = "suggestion"
	MessageTypeExercise       MessageType = "exercise"
	MessageTypeRecipe         MessageType = "recipe"
	MessageTypeMentalHealth   MessageType = "mental_health"
	MessageTypeCrisisResponse MessageType = "crisis_response"
	MessageTypeGoalSetting    MessageType = "goal_setting"
	MessageTypeProgressUpdate MessageType = "progress_update"
)

// Message is one entry in a conversation's append-only log. Latency,
// confidence, and trigger keywords are assistant-only.
type Message struct {
	Id                uuid.UUID
	ConversationId    uuid.UUID
	Sender            MessageSender
	Content           string
	MessageType       MessageType
	ResponseLatencyMs *int64
	Confidence        *float64
	TriggerKeywords   []string
	CreatedAt         time.Time
}
