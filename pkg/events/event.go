package events

import "time"

// Event defines the contract for all system events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "CRISIS_DETECTED").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// BaseEvent carries the common fields; concrete events embed or construct it.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewCrisisDetectedEvent is published when a high-severity crisis message
// is detected. The payload carries identifiers and classification only,
// never the raw message text.
func NewCrisisDetectedEvent(userId, crisisLogId, riskLevel string, keywords []string) Event {
	return BaseEvent{
		Type: "CRISIS_DETECTED",
		Data: map[string]interface{}{
			"user_id":       userId,
			"crisis_log_id": crisisLogId,
			"risk_level":    riskLevel,
			"keywords":      keywords,
		},
		OccurredAt: time.Now(),
	}
}
