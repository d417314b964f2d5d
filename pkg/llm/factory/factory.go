package factory

import (
	"fmt"
	"time"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm/ollama"
	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm/openai"
)

func NewCompletionProvider(providerType, modelName, baseURL, apiKey string, timeout time.Duration) (llm.CompletionProvider, error) {
	switch providerType {
	case "ollama":
		if baseURL == "" {
			baseURL = "http://localhost:11434" // Default
		}
		return ollama.NewOllamaProvider(baseURL, modelName, timeout), nil
	case "openai":
		if apiKey == "" {
			return nil, fmt.Errorf("openai provider requires an API key")
		}
		return openai.NewOpenAIProvider(apiKey, modelName), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", providerType)
	}
}
