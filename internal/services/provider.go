package services

import "context"

// Provider sends one system/user message pair to an LLM backend and returns
// the raw text of the reply. Implementations wrap every failure in an *Error
// of kind KindBackend.
type Provider interface {
	Name() string
	Model() string
	Complete(ctx context.Context, systemPrompt, userMessage string) (string, error)
}

func backendError(provider string, err error) error {
	return newError(KindBackend, err, "%s API error", provider)
}
