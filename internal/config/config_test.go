package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "UPLOAD_PATH", "MAX_FILE_SIZE", "LLM_TIMEOUT", "LLM_MAX_TOKENS",
		"OPENAI_API_KEY", "OPENAI_MODEL", "DEEPSEEK_BASE_URL", "OLLAMA_HOST", "OLLAMA_MODEL",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Server.Port != "3000" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Storage.UploadPath != "./temp" || cfg.Storage.MaxFileSize != 10485760 {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.LLM.Timeout != 120*time.Second || cfg.LLM.MaxTokens != 4096 {
		t.Errorf("llm = %+v", cfg.LLM)
	}
	if cfg.DeepSeek.BaseURL != "https://api.deepseek.com/v1" {
		t.Errorf("deepseek base url = %q", cfg.DeepSeek.BaseURL)
	}
	if cfg.Ollama.Host != "http://localhost:11434" {
		t.Errorf("ollama host = %q", cfg.Ollama.Host)
	}
	if cfg.OpenAI.Configured() {
		t.Errorf("openai should not be configured without credentials")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_JSON", "true")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("LLM_TIMEOUT", "45s")
	t.Setenv("LLM_MAX_TOKENS", "not-a-number")
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant-test")
	t.Setenv("ANTHROPIC_MODEL", "claude-sonnet-4-5")
	t.Setenv("GEMINI_API_KEY", "key-only")
	t.Setenv("GEMINI_MODEL", "")

	cfg := Load()

	if cfg.Server.Port != "8080" || !cfg.Server.LogJSON {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Storage.MaxFileSize != 2048 {
		t.Errorf("max file size = %d", cfg.Storage.MaxFileSize)
	}
	if cfg.LLM.Timeout != 45*time.Second {
		t.Errorf("timeout = %v", cfg.LLM.Timeout)
	}
	if cfg.LLM.MaxTokens != 4096 {
		t.Errorf("invalid LLM_MAX_TOKENS should fall back to default, got %d", cfg.LLM.MaxTokens)
	}
	if !cfg.Claude.Configured() {
		t.Errorf("claude should be configured: %+v", cfg.Claude)
	}
	if cfg.Gemini.Configured() {
		t.Errorf("gemini without a model should not be configured")
	}
}

func TestGetEnvAsDurationInvalid(t *testing.T) {
	t.Setenv("LLM_TIMEOUT", "soon")

	if got := getEnvAsDuration("LLM_TIMEOUT", "30s"); got != 30*time.Second {
		t.Fatalf("got %v, want 30s", got)
	}
}
