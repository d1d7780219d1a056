package services

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"cvinsight/cv-parser/internal/config"
)

// ClaudeProvider implements Provider using Anthropic's Messages API.
type ClaudeProvider struct {
	client    anthropic.Client
	model     string
	maxTokens int
}

// NewClaudeProvider creates a Claude provider. The SDK's built-in retries are
// turned off; a failed call surfaces to the caller as is.
func NewClaudeProvider(cfg config.ProviderConfig, maxTokens int) *ClaudeProvider {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &ClaudeProvider{
		client:    anthropic.NewClient(opts...),
		model:     cfg.Model,
		maxTokens: maxTokens,
	}
}

func (cp *ClaudeProvider) Name() string  { return "claude" }
func (cp *ClaudeProvider) Model() string { return cp.model }

// Complete implements Provider.
func (cp *ClaudeProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	response, err := cp.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       anthropic.Model(cp.model),
		MaxTokens:   int64(cp.maxTokens),
		Temperature: anthropic.Float(0),
		System:      []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(userMessage)),
		},
	})
	if err != nil {
		return "", backendError(cp.Name(), err)
	}

	var text strings.Builder
	for _, block := range response.Content {
		if block.Type == "text" {
			text.WriteString(block.AsText().Text)
		}
	}

	if strings.TrimSpace(text.String()) == "" {
		return "", backendError(cp.Name(), errors.New("no text content in Claude response"))
	}

	return text.String(), nil
}
