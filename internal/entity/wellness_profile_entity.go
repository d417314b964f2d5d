package entity

import (
	"time"

	"github.com/google/uuid"
)

// WellnessProfile is the per-user personalization record. Region feeds
// hotline selection; the rest feeds the system prompt. CrisisMonitoring is
// captured but detection runs unconditionally regardless of its value.
type WellnessProfile struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	Age                 int
	Gender              string
	Region              string
	FitnessLevel        string
	BudgetTier          string
	Goals               []string
	DietaryRestrictions []string
	CrisisMonitoring    bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
