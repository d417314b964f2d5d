package history

import (
	"unicode/utf8"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
)

const (
	// Most recent messages carried into the prompt, across both senders.
	maxMessages = 5
	// Per-message character ceiling, bounds prompt size against pasted walls
	// of text.
	maxMessageChars = 1000
)

// Trim bounds the conversation history sent to the completion provider:
// it keeps the maxMessages most recent entries (input is oldest-first) and
// truncates each message body to maxMessageChars.
func Trim(messages []llm.Message) []llm.Message {
	if len(messages) > maxMessages {
		messages = messages[len(messages)-maxMessages:]
	}

	trimmed := make([]llm.Message, len(messages))
	for i, m := range messages {
		// Truncate on rune boundaries; a byte cut could split a UTF-8
		// sequence and hand the provider invalid text.
		if utf8.RuneCountInString(m.Content) > maxMessageChars {
			runes := []rune(m.Content)
			m.Content = string(runes[:maxMessageChars])
		}
		trimmed[i] = m
	}
	return trimmed
}
