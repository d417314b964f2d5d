package topic

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name       string
		input      string
		output     string
		wantType   Type
		wantTopics []string
	}{
		{
			name:       "exercise reply",
			input:      "What's a good beginner workout?",
			output:     "Try three sets of squats and push-ups, then some light cardio.",
			wantType:   TypeExercise,
			wantTopics: []string{"exercise"},
		},
		{
			name:       "nutrition reply tagged recipe",
			input:      "What should I eat?",
			output:     "A high protein breakfast like eggs keeps your calorie intake balanced.",
			wantType:   TypeRecipe,
			wantTopics: []string{"nutrition"},
		},
		{
			name:       "mental health reply",
			input:      "I'm stressed at work",
			output:     "A short breathing exercise can lower stress before bed.",
			wantType:   TypeMentalHealth,
			wantTopics: []string{"exercise", "mental_health"},
		},
		{
			name:       "sleep wins as the last matching rule",
			input:      "How do I recover faster?",
			output:     "Good rest matters: aim for consistent sleep and a fixed bedtime.",
			wantType:   TypeSleep,
			wantTopics: []string{"sleep"},
		},
		{
			name:       "multiple topics accumulate, last match sets type",
			input:      "Plan my day",
			output:     "Morning workout, a protein-rich lunch, and an early bedtime for proper sleep.",
			wantType:   TypeSleep,
			wantTopics: []string{"exercise", "nutrition", "sleep"},
		},
		{
			name:     "no match defaults to suggestion",
			input:    "Tell me something",
			output:   "I can help you build healthy habits across many areas.",
			wantType: TypeSuggestion,
		},
		{
			name:       "greeting input overrides output classification",
			input:      "Hey JoJo!",
			output:     "Hello! Ready for today's workout?",
			wantType:   TypeGreeting,
			wantTopics: []string{"exercise", "greeting"},
		},
		{
			name:     "greeting word inside input does not trigger override",
			input:    "is this weather too hot for running",
			output:   "I can help you build healthy habits.",
			wantType: TypeSuggestion,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.input, tt.output)

			if got.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", got.Type, tt.wantType)
			}
			if got.Confidence != 0.85 {
				t.Errorf("Confidence = %v, want constant 0.85", got.Confidence)
			}
			if len(got.Topics) != len(tt.wantTopics) {
				t.Fatalf("Topics = %v, want %v", got.Topics, tt.wantTopics)
			}
			for i := range got.Topics {
				if got.Topics[i] != tt.wantTopics[i] {
					t.Errorf("Topics[%d] = %q, want %q", i, got.Topics[i], tt.wantTopics[i])
				}
			}
		})
	}
}

func TestClassifyCollectsKeywords(t *testing.T) {
	c := NewClassifier()

	got := c.Classify("plan", "Do a workout with three sets, then a protein snack.")
	want := []string{"workout", "sets", "protein", "snack"}

	if len(got.Keywords) != len(want) {
		t.Fatalf("Keywords = %v, want %v", got.Keywords, want)
	}
	for i := range want {
		if got.Keywords[i] != want[i] {
			t.Errorf("Keywords[%d] = %q, want %q", i, got.Keywords[i], want[i])
		}
	}
}
