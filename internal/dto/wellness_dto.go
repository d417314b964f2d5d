package dto

import "time"

type UpsertWellnessProfileRequest struct {
	Age                 int      `json:"age" validate:"omitempty,gte=13,lte=120"`
	Gender              string   `json:"gender" validate:"omitempty,max=50"`
	Region              string   `json:"region" validate:"omitempty,max=100"`
	FitnessLevel        string   `json:"fitness_level" validate:"omitempty,oneof=beginner intermediate advanced"`
	BudgetTier          string   `json:"budget_tier" validate:"omitempty,oneof=low medium high"`
	Goals               []string `json:"goals" validate:"omitempty,max=10"`
	DietaryRestrictions []string `json:"dietary_restrictions" validate:"omitempty,max=10"`
	CrisisMonitoring    *bool    `json:"crisis_monitoring,omitempty"`
}

type WellnessProfileResponse struct {
	Age                 int       `json:"age,omitempty"`
	Gender              string    `json:"gender,omitempty"`
	Region              string    `json:"region,omitempty"`
	FitnessLevel        string    `json:"fitness_level,omitempty"`
	BudgetTier          string    `json:"budget_tier,omitempty"`
	Goals               []string  `json:"goals"`
	DietaryRestrictions []string  `json:"dietary_restrictions"`
	CrisisMonitoring    bool      `json:"crisis_monitoring"`
	UpdatedAt           time.Time `json:"updated_at"`
}
