package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"cvinsight/cv-parser/internal/config"
)

// contentGenerator is the subset of genai.Models used by GeminiProvider.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiProvider implements Provider using the Gemini API.
type GeminiProvider struct {
	models    contentGenerator
	model     string
	maxTokens int
}

func NewGeminiProvider(ctx context.Context, cfg config.ProviderConfig, maxTokens int) (*GeminiProvider, error) {
	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if cfg.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &GeminiProvider{
		models:    client.Models,
		model:     cfg.Model,
		maxTokens: maxTokens,
	}, nil
}

func (g *GeminiProvider) Name() string  { return "gemini" }
func (g *GeminiProvider) Model() string { return g.model }

// Complete implements Provider.
func (g *GeminiProvider) Complete(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	temperature := float32(0)
	config := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt, genai.RoleUser),
		Temperature:       &temperature,
		MaxOutputTokens:   int32(g.maxTokens),
	}

	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(userMessage), config)
	if err != nil {
		return "", backendError(g.Name(), err)
	}

	if resp == nil {
		return "", backendError(g.Name(), errors.New("no response generated (nil response)"))
	}

	text := resp.Text()
	if strings.TrimSpace(text) == "" {
		return "", backendError(g.Name(), errors.New("no text content in response"))
	}

	return text, nil
}
