package topic

import "strings"

// Type tags a model reply for storage and UI routing.
type Type string

const (
	TypeExercise     Type = "exercise"
	TypeRecipe       Type = "recipe"
	TypeMentalHealth Type = "mental_health"
	TypeSleep        Type = "sleep"
	TypeGreeting     Type = "greeting"
	TypeSuggestion   Type = "suggestion"
)

// Result is the heuristic tag for one exchange.
type Result struct {
	Type       Type
	Topics     []string
	Keywords   []string
	Confidence float64
}

// Heuristic confidence. This is keyword presence, not a calibrated model,
// so every classification reports the same score.
const heuristicConfidence = 0.85

type rule struct {
	topic    string
	typ      Type
	keywords []string
}

// Rules run in fixed order over the model OUTPUT; topics accumulate but the
// stored type is single-valued, last matching rule wins. The greeting check
// runs last, over the user INPUT, and overrides everything.
var rules = []rule{
	{
		topic: "exercise",
		typ:   TypeExercise,
		keywords: []string{
			"workout", "exercise", "training", "reps", "sets",
			"cardio", "strength", "stretch", "push-up", "squat",
		},
	},
	{
		topic: "nutrition",
		typ:   TypeRecipe,
		keywords: []string{
			"meal", "recipe", "protein", "calorie", "nutrition",
			"diet", "breakfast", "lunch", "dinner", "snack",
		},
	},
	{
		topic: "mental_health",
		typ:   TypeMentalHealth,
		keywords: []string{
			"stress", "anxiety", "mindfulness", "meditation",
			"mental health", "breathing", "relax", "mood",
		},
	},
	{
		topic: "sleep",
		typ:   TypeSleep,
		keywords: []string{
			"sleep", "bedtime", "insomnia", "rest", "nap",
		},
	},
}

var greetingKeywords = []string{"hi", "hello", "hey", "good morning", "good afternoon", "good evening"}

// Classifier tags model output with a topic/type for storage. Pure, no I/O.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// Classify inspects the model output against the topic rules in order, then
// checks the user input for a greeting, which overrides the type. Defaults
// to the generic suggestion type when nothing matches.
func (c *Classifier) Classify(userInput, aiOutput string) Result {
	loweredOutput := strings.ToLower(aiOutput)

	result := Result{
		Type:       TypeSuggestion,
		Confidence: heuristicConfidence,
	}

	for _, r := range rules {
		matched := containedKeywords(loweredOutput, r.keywords)
		if len(matched) == 0 {
			continue
		}
		result.Type = r.typ
		result.Topics = append(result.Topics, r.topic)
		result.Keywords = append(result.Keywords, matched...)
	}

	if isGreeting(userInput) {
		result.Type = TypeGreeting
		result.Topics = append(result.Topics, "greeting")
	}

	return result
}

func containedKeywords(lowered string, keywords []string) []string {
	var matched []string
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			matched = append(matched, kw)
		}
	}
	return matched
}

// isGreeting matches on the leading word of the input rather than bare
// containment: "hi" appears inside too many ordinary words ("this",
// "high") for substring matching to be usable here.
func isGreeting(input string) bool {
	lowered := strings.ToLower(strings.TrimSpace(input))
	for _, kw := range greetingKeywords {
		if lowered == kw || strings.HasPrefix(lowered, kw+" ") || strings.HasPrefix(lowered, kw+",") || strings.HasPrefix(lowered, kw+"!") {
			return true
		}
	}
	return false
}
