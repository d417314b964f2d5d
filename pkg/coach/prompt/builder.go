package prompt

import (
	"fmt"
	"strings"
)

// Profile carries the personalization fields the prompt may use. Zero-value
// fields are omitted from the rendered prompt, never printed as blanks.
type Profile struct {
	Age                 int
	Gender              string
	Region              string
	FitnessLevel        string
	BudgetTier          string
	Goals               []string
	DietaryRestrictions []string
}

const persona = `You are JoJo, a friendly and supportive AI wellness coach inside a fitness tracking app. You help users with workouts, nutrition, mental wellbeing, and sleep habits.

Guidelines:
- Be warm, encouraging, and practical. Keep replies concise.
- Give actionable advice the user can apply today.
- Never give medical diagnoses. For medical concerns, recommend seeing a professional.
- Never provide crisis counseling; you are not a substitute for professional care.`

// Builder assembles the system prompt: fixed persona preamble plus an
// optional personalization block from the wellness profile.
type Builder struct{}

func NewBuilder() *Builder {
	return &Builder{}
}

// Build renders the system prompt. A nil profile yields the bare persona.
func (b *Builder) Build(profile *Profile) string {
	if profile == nil {
		return persona
	}

	var lines []string
	if profile.Age > 0 {
		lines = append(lines, fmt.Sprintf("- Age: %d", profile.Age))
	}
	if profile.Gender != "" {
		lines = append(lines, "- Gender: "+profile.Gender)
	}
	if profile.Region != "" {
		lines = append(lines, "- Region: "+profile.Region)
	}
	if profile.FitnessLevel != "" {
		lines = append(lines, "- Fitness level: "+profile.FitnessLevel)
	}
	if profile.BudgetTier != "" {
		lines = append(lines, "- Budget: "+profile.BudgetTier)
	}
	if len(profile.Goals) > 0 {
		lines = append(lines, "- Goals: "+strings.Join(profile.Goals, ", "))
	}
	if len(profile.DietaryRestrictions) > 0 {
		lines = append(lines, "- Dietary restrictions: "+strings.Join(profile.DietaryRestrictions, ", "))
	}

	if len(lines) == 0 {
		return persona
	}

	return persona + "\n\nAbout this user:\n" + strings.Join(lines, "\n")
}
