package services

import (
	"context"
	"errors"
	"math"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"cvinsight/cv-parser/internal/config"
)

// go-openai omits a zero temperature from the request body, which makes the
// server fall back to its default; the smallest positive float is sent instead.
const deterministicTemperature = math.SmallestNonzeroFloat32

// chatCompletionProvider talks to any backend exposing the OpenAI chat
// completions API: OpenAI itself, DeepSeek and Ollama's /v1 endpoint.
type chatCompletionProvider struct {
	name      string
	model     string
	maxTokens int
	client    *openai.Client
}

func NewOpenAIProvider(cfg config.ProviderConfig, maxTokens int) Provider {
	return newChatCompletionProvider("openai", cfg.APIKey, cfg.BaseURL, cfg.Model, maxTokens)
}

func NewDeepSeekProvider(cfg config.ProviderConfig, maxTokens int) Provider {
	return newChatCompletionProvider("deepseek", cfg.APIKey, cfg.BaseURL, cfg.Model, maxTokens)
}

// NewOllamaProvider targets a locally hosted Ollama server. Ollama ignores
// the API key but the client requires one.
func NewOllamaProvider(host, model string, maxTokens int) Provider {
	baseURL := strings.TrimRight(host, "/") + "/v1"
	return newChatCompletionProvider("ollama", "ollama", baseURL, model, maxTokens)
}

func newChatCompletionProvider(name, apiKey, baseURL, model string, maxTokens int) *chatCompletionProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &chatCompletionProvider{
		name:      name,
		model:     model,
		maxTokens: maxTokens,
		client:    openai.NewClientWithConfig(cfg),
	}
}

func (p *chatCompletionProvider) Name() string  { return p.name }
func (p *chatCompletionProvider) Model() string { return p.model }

// Complete implements Provider.
func (p *chatCompletionProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: p.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userMessage},
		},
		MaxTokens:   p.maxTokens,
		Temperature: deterministicTemperature,
	})
	if err != nil {
		return "", backendError(p.name, err)
	}

	if len(resp.Choices) == 0 {
		return "", backendError(p.name, errors.New("no choices in response"))
	}

	text := strings.TrimSpace(resp.Choices[0].Message.Content)
	if text == "" {
		return "", backendError(p.name, errors.New("empty response"))
	}

	return text, nil
}
