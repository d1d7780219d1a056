package services

import (
	"context"
	"strings"
	"testing"

	"cvinsight/cv-parser/internal/config"
)

func TestDispatcherUnknownModelType(t *testing.T) {
	provider := &fakeProvider{name: "fake", reply: `{"name":"A"}`}
	dispatcher := NewDispatcherWithProviders(map[ModelType]Provider{ModelGemini: provider})
	processor := NewCVProcessor(dispatcher, &fakePDFParser{}, 0, nil)

	_, err := processor.ParseCV(context.Background(), "Jane Doe", "gpt-17")
	if err == nil {
		t.Fatalf("expected error for unknown model type")
	}
	if kind := KindOf(err); kind != KindConfiguration {
		t.Fatalf("kind = %q, want %q", kind, KindConfiguration)
	}
	if provider.callCount() != 0 {
		t.Fatalf("provider called %d times", provider.callCount())
	}
}

func TestNewDispatcherWithoutCredentials(t *testing.T) {
	cfg := &config.Config{
		LLM:    config.LLMConfig{MaxTokens: 1024},
		Ollama: config.OllamaConfig{Host: "http://localhost:11434"},
	}

	dispatcher, err := NewDispatcher(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, id := range []ModelType{ModelChatGPT, ModelDeepSeekAPI, ModelGemini, ModelClaude, ModelOllama} {
		_, err := dispatcher.Provider(string(id))
		if kind := KindOf(err); kind != KindConfiguration {
			t.Errorf("%s: kind = %q, want %q", id, kind, KindConfiguration)
		}
		if err != nil && !strings.Contains(err.Error(), "not configured") {
			t.Errorf("%s: unexpected message %q", id, err.Error())
		}
	}

	provider, err := dispatcher.Provider(string(ModelMistral))
	if err != nil {
		t.Fatalf("local model should always be registered: %v", err)
	}
	if provider.Name() != "ollama" || provider.Model() != "mistral" {
		t.Fatalf("got %s/%s", provider.Name(), provider.Model())
	}
}

func TestDispatcherModels(t *testing.T) {
	cfg := &config.Config{
		LLM:    config.LLMConfig{MaxTokens: 1024},
		OpenAI: config.ProviderConfig{APIKey: "sk-test", Model: "gpt-4o"},
		Claude: config.ProviderConfig{APIKey: "sk-ant-test", Model: "claude-sonnet-4-5"},
		Ollama: config.OllamaConfig{Host: "http://localhost:11434", Model: "llama3"},
	}

	dispatcher, err := NewDispatcher(context.Background(), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	infos := dispatcher.Models()
	if len(infos) != len(ModelTypes) {
		t.Fatalf("got %d models, want %d", len(infos), len(ModelTypes))
	}

	byID := make(map[string]int, len(infos))
	for i, info := range infos {
		if info.ID != string(ModelTypes[i]) {
			t.Fatalf("models out of order at %d: %s", i, info.ID)
		}
		byID[info.ID] = i
	}

	tests := []struct {
		id        ModelType
		provider  string
		model     string
		available bool
	}{
		{id: ModelChatGPT, provider: "openai", model: "gpt-4o", available: true},
		{id: ModelClaude, provider: "claude", model: "claude-sonnet-4-5", available: true},
		{id: ModelOllama, provider: "ollama", model: "llama3", available: true},
		{id: ModelQwen14, provider: "ollama", model: "qwen:14b", available: true},
		{id: ModelGemini, provider: "gemini", available: false},
		{id: ModelDeepSeekAPI, provider: "deepseek", available: false},
	}

	for _, tt := range tests {
		info := infos[byID[string(tt.id)]]
		if info.Provider != tt.provider || info.Model != tt.model || info.Available != tt.available {
			t.Errorf("%s: got %+v", tt.id, info)
		}
		if !tt.available && info.Reason == "" {
			t.Errorf("%s: missing reason", tt.id)
		}
	}
}
