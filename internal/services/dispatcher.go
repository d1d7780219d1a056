package services

import (
	"context"

	"cvinsight/cv-parser/internal/config"
	"cvinsight/cv-parser/internal/models"
)

// ModelType is the caller-facing identifier of a backend and model variant.
type ModelType string

const (
	ModelChatGPT        ModelType = "chatgpt"
	ModelDeepSeekAPI    ModelType = "deepseek_api"
	ModelGemini         ModelType = "gemini"
	ModelClaude         ModelType = "claude"
	ModelOllama         ModelType = "ollama"
	ModelDeepSeekR1_1_5 ModelType = "deepseek-r1:1.5b"
	ModelDeepSeekR1_8   ModelType = "deepseek-r1:8b"
	ModelDeepSeekR1_14  ModelType = "deepseek-r1:14b"
	ModelMistral        ModelType = "mistral"
	ModelQwen1_8        ModelType = "qwen:1.8b"
	ModelQwen14         ModelType = "qwen:14b"
)

// ModelTypes lists every identifier in display order.
var ModelTypes = []ModelType{
	ModelChatGPT,
	ModelDeepSeekAPI,
	ModelGemini,
	ModelClaude,
	ModelOllama,
	ModelDeepSeekR1_1_5,
	ModelDeepSeekR1_8,
	ModelDeepSeekR1_14,
	ModelMistral,
	ModelQwen1_8,
	ModelQwen14,
}

// localModels are Ollama tags that double as model names.
var localModels = []ModelType{
	ModelDeepSeekR1_1_5,
	ModelDeepSeekR1_8,
	ModelDeepSeekR1_14,
	ModelMistral,
	ModelQwen1_8,
	ModelQwen14,
}

type registration struct {
	provider     Provider
	providerName string
	reason       string
}

// Dispatcher maps model identifiers to providers. The mapping is fixed at
// construction and read-only afterwards.
type Dispatcher struct {
	entries map[ModelType]registration
}

// NewDispatcher builds one provider per identifier whose credentials and
// model name are present in cfg. Identifiers without them stay registered as
// unavailable so callers get a configuration error instead of a network call.
func NewDispatcher(ctx context.Context, cfg *config.Config) (*Dispatcher, error) {
	d := &Dispatcher{entries: make(map[ModelType]registration, len(ModelTypes))}
	maxTokens := cfg.LLM.MaxTokens

	if cfg.OpenAI.Configured() {
		d.register(ModelChatGPT, NewOpenAIProvider(cfg.OpenAI, maxTokens))
	} else {
		d.unavailable(ModelChatGPT, "openai", "OPENAI_API_KEY and OPENAI_MODEL must be set")
	}

	if cfg.DeepSeek.Configured() {
		d.register(ModelDeepSeekAPI, NewDeepSeekProvider(cfg.DeepSeek, maxTokens))
	} else {
		d.unavailable(ModelDeepSeekAPI, "deepseek", "DEEPSEEK_API_KEY and DEEPSEEK_MODEL must be set")
	}

	if cfg.Gemini.Configured() {
		gemini, err := NewGeminiProvider(ctx, cfg.Gemini, maxTokens)
		if err != nil {
			return nil, err
		}
		d.register(ModelGemini, gemini)
	} else {
		d.unavailable(ModelGemini, "gemini", "GEMINI_API_KEY and GEMINI_MODEL must be set")
	}

	if cfg.Claude.Configured() {
		d.register(ModelClaude, NewClaudeProvider(cfg.Claude, maxTokens))
	} else {
		d.unavailable(ModelClaude, "claude", "ANTHROPIC_API_KEY and ANTHROPIC_MODEL must be set")
	}

	if cfg.Ollama.Model != "" {
		d.register(ModelOllama, NewOllamaProvider(cfg.Ollama.Host, cfg.Ollama.Model, maxTokens))
	} else {
		d.unavailable(ModelOllama, "ollama", "OLLAMA_MODEL must be set")
	}

	for _, id := range localModels {
		d.register(id, NewOllamaProvider(cfg.Ollama.Host, string(id), maxTokens))
	}

	return d, nil
}

// NewDispatcherWithProviders builds a dispatcher from an explicit mapping.
func NewDispatcherWithProviders(providers map[ModelType]Provider) *Dispatcher {
	d := &Dispatcher{entries: make(map[ModelType]registration, len(providers))}
	for id, provider := range providers {
		d.register(id, provider)
	}
	return d
}

func (d *Dispatcher) register(id ModelType, provider Provider) {
	d.entries[id] = registration{provider: provider, providerName: provider.Name()}
}

func (d *Dispatcher) unavailable(id ModelType, providerName, reason string) {
	d.entries[id] = registration{providerName: providerName, reason: reason}
}

// Provider returns the provider registered for id.
func (d *Dispatcher) Provider(id string) (Provider, error) {
	entry, ok := d.entries[ModelType(id)]
	if !ok {
		return nil, newError(KindConfiguration, nil, "unknown model type %q", id)
	}
	if entry.provider == nil {
		return nil, newError(KindConfiguration, nil, "model type %q is not configured: %s", id, entry.reason)
	}
	return entry.provider, nil
}

// Models describes every known identifier and whether it can be used.
func (d *Dispatcher) Models() []models.ModelInfo {
	infos := make([]models.ModelInfo, 0, len(d.entries))
	for _, id := range ModelTypes {
		entry, ok := d.entries[id]
		if !ok {
			continue
		}

		info := models.ModelInfo{
			ID:        string(id),
			Provider:  entry.providerName,
			Available: entry.provider != nil,
			Reason:    entry.reason,
		}
		if entry.provider != nil {
			info.Model = entry.provider.Model()
		}
		infos = append(infos, info)
	}
	return infos
}
