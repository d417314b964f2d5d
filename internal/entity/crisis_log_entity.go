package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/coach/risk"
)

// CrisisLog records one detected crisis message: the trigger snapshot, the
// classification, and what was shared with the user. Created exactly once
// per detection; FollowUpNeeded and AdminNotified are set only for the high
// tier.
type CrisisLog struct {
	Id               uuid.UUID
	UserId           uuid.UUID
	MessageId        *uuid.UUID
	TriggerText      string
	DetectedKeywords []string
	RiskLevel        risk.Level
	ResponseText     string
	ResourcesShared  []string
	HotlinesShared   []string
	FollowUpNeeded   bool
	AdminNotified    bool
	CreatedAt        time.Time
}
