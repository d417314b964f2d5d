package constant

const (
	// FallbackReply is the static assistant reply substituted when the
	// completion provider fails or times out. It is never AI-generated.
	FallbackReply = `I'm having a little trouble thinking right now, but I'm still here for you! Here's what I can help with:

- Workout plans and exercise form
- Meal ideas and nutrition tips
- Stress management and mindfulness
- Sleep habits and recovery

Ask me about any of these and I'll do my best. If it keeps failing, try again in a moment.`

	// ConversationTitleWords is how many leading words of the first message
	// become the auto-generated conversation title.
	ConversationTitleWords = 6

	// Ollama Configuration
	OllamaDefaultBaseURL = "http://localhost:11434"
	OllamaDefaultModel   = "llama3.1:8b"

	// Crisis alert event routing
	CrisisAlertTopic = "crisis.alert"
)
