package risk

import "strings"

// Level is the closed set of crisis severity tiers.
type Level string

const (
	LevelLow    Level = "low"
	LevelMedium Level = "medium"
	LevelHigh   Level = "high"

	// LevelCritical is reserved for a future escalation tier. The keyword
	// classifier never emits it; it exists so downstream storage and the
	// template engine handle it without a schema change.
	LevelCritical Level = "critical"
)

// Result is the outcome of classifying one inbound message.
// Detected is false (and Level empty) when no tier matched.
type Result struct {
	Detected bool
	Level    Level
	Keywords []string // all matches within the winning tier, in list order
}

// Tiered keyword lists. The tiers are disjoint and checked high-first:
// a single high-severity phrase must never be diluted by co-occurring
// lower-severity language. Matching is substring containment, not
// tokenized, so "I do NOT want to die" still matches medium. That
// trade-off is deliberate: precision on the severe phrases beats recall
// refinements that could miss a real crisis.
var (
	highKeywords = []string{
		"kill myself",
		"suicide",
		"end my life",
		"want to end it all",
		"better off dead",
		"no reason to live",
		"take my own life",
	}

	mediumKeywords = []string{
		"want to die",
		"self harm",
		"self-harm",
		"hurt myself",
		"hopeless",
		"can't go on",
		"worthless",
	}

	lowKeywords = []string{
		"depressed",
		"overwhelmed",
		"struggling",
		"anxious",
		"can't cope",
		"burnt out",
	}
)

// Classifier maps raw message text to a risk tier. Pure, no I/O.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify checks the high tier first and short-circuits on any match,
// then medium, then low. It returns every matched phrase within the
// winning tier so the crisis log records the full trigger set.
func (c *Classifier) Classify(text string) Result {
	lowered := strings.ToLower(text)

	if matched := matchAll(lowered, highKeywords); len(matched) > 0 {
		return Result{Detected: true, Level: LevelHigh, Keywords: matched}
	}
	if matched := matchAll(lowered, mediumKeywords); len(matched) > 0 {
		return Result{Detected: true, Level: LevelMedium, Keywords: matched}
	}
	if matched := matchAll(lowered, lowKeywords); len(matched) > 0 {
		return Result{Detected: true, Level: LevelLow, Keywords: matched}
	}

	return Result{}
}

func matchAll(lowered string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}
