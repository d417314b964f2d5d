package risk

import (
	"testing"
)

func TestClassify(t *testing.T) {
	c := NewClassifier()

	tests := []struct {
		name         string
		text         string
		wantDetected bool
		wantLevel    Level
		wantKeywords []string
	}{
		{
			name:         "no risk",
			text:         "What's a good beginner workout?",
			wantDetected: false,
		},
		{
			name:         "high tier phrase",
			text:         "I want to kill myself",
			wantDetected: true,
			wantLevel:    LevelHigh,
			wantKeywords: []string{"kill myself"},
		},
		{
			name:         "high wins over co-occurring medium and low",
			text:         "I'm depressed and hopeless, I want to end my life",
			wantDetected: true,
			wantLevel:    LevelHigh,
			wantKeywords: []string{"end my life"},
		},
		{
			name:         "medium tier phrase",
			text:         "sometimes I think about self harm",
			wantDetected: true,
			wantLevel:    LevelMedium,
			wantKeywords: []string{"self harm"},
		},
		{
			name:         "medium wins over low",
			text:         "I feel worthless and so overwhelmed",
			wantDetected: true,
			wantLevel:    LevelMedium,
			wantKeywords: []string{"worthless"},
		},
		{
			name:         "low tier phrase",
			text:         "I'm feeling a bit overwhelmed today",
			wantDetected: true,
			wantLevel:    LevelLow,
			wantKeywords: []string{"overwhelmed"},
		},
		{
			name:         "case insensitive",
			text:         "I WANT TO KILL MYSELF",
			wantDetected: true,
			wantLevel:    LevelHigh,
			wantKeywords: []string{"kill myself"},
		},
		{
			name:         "multiple matches within winning tier are all reported",
			text:         "no reason to live, I should just end my life",
			wantDetected: true,
			wantLevel:    LevelHigh,
			wantKeywords: []string{"end my life", "no reason to live"},
		},
		{
			name:         "substring matching has no negation handling",
			text:         "I do NOT want to die",
			wantDetected: true,
			wantLevel:    LevelMedium,
			wantKeywords: []string{"want to die"},
		},
		{
			name:         "empty input",
			text:         "",
			wantDetected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.text)

			if got.Detected != tt.wantDetected {
				t.Fatalf("Detected = %v, want %v", got.Detected, tt.wantDetected)
			}
			if !tt.wantDetected {
				if got.Level != "" || len(got.Keywords) != 0 {
					t.Errorf("no-risk result should be zero value, got %+v", got)
				}
				return
			}
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
			if len(got.Keywords) != len(tt.wantKeywords) {
				t.Fatalf("Keywords = %v, want %v", got.Keywords, tt.wantKeywords)
			}
			for i := range got.Keywords {
				if got.Keywords[i] != tt.wantKeywords[i] {
					t.Errorf("Keywords[%d] = %q, want %q", i, got.Keywords[i], tt.wantKeywords[i])
				}
			}
		})
	}
}

func TestClassifyNeverEmitsCritical(t *testing.T) {
	c := NewClassifier()
	all := append(append(append([]string{}, highKeywords...), mediumKeywords...), lowKeywords...)
	for _, kw := range all {
		if got := c.Classify(kw); got.Level == LevelCritical {
			t.Errorf("Classify(%q) emitted the reserved critical level", kw)
		}
	}
}
