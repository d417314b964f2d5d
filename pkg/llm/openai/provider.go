package openai

import (
	"context"
	"fmt"
	"time"

	"github.com/sashabaranov/go-openai"

	"github.com/AnjolaoluwaAdigun/jojo-fitness-tracker/pkg/llm"
)

type OpenAIProvider struct {
	client    *openai.Client
	modelName string
}

var _ llm.CompletionProvider = &OpenAIProvider{}

func NewOpenAIProvider(apiKey, modelName string) *OpenAIProvider {
	return &OpenAIProvider{
		client:    openai.NewClient(apiKey),
		modelName: modelName,
	}
}

func (p *OpenAIProvider) Complete(ctx context.Context, req llm.CompletionRequest, opts ...llm.Option) (*llm.Completion, error) {
	options := &llm.Options{
		Temperature: 0.7,
	}
	for _, opt := range opts {
		opt(options)
	}

	messages := make([]openai.ChatCompletionMessage, 0, len(req.History)+2)
	if req.SystemPrompt != "" {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: req.SystemPrompt,
		})
	}
	for _, msg := range req.History {
		role := openai.ChatMessageRoleUser
		if msg.Role == "assistant" || msg.Role == "model" {
			role = openai.ChatMessageRoleAssistant
		}
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    role,
			Content: msg.Content,
		})
	}
	messages = append(messages, openai.ChatCompletionMessage{
		Role:    openai.ChatMessageRoleUser,
		Content: req.UserMessage,
	})

	model := p.modelName
	if options.Model != "" {
		model = options.Model
	}

	completionReq := openai.ChatCompletionRequest{
		Model:       model,
		Messages:    messages,
		Temperature: float32(options.Temperature),
	}
	if options.MaxTokens > 0 {
		completionReq.MaxTokens = options.MaxTokens
	}

	started := time.Now()
	resp, err := p.client.CreateChatCompletion(ctx, completionReq)
	if err != nil {
		return nil, &llm.ProviderError{Provider: "openai", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return nil, &llm.ProviderError{Provider: "openai", Cause: fmt.Errorf("empty choices in response")}
	}

	return &llm.Completion{
		Content:    resp.Choices[0].Message.Content,
		Model:      resp.Model,
		TokensUsed: resp.Usage.TotalTokens,
		LatencyMs:  time.Since(started).Milliseconds(),
	}, nil
}
