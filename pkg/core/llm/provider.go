package llm

import (
	"context"
)

// Provider is the interface for all generative-language providers.
type Provider interface {
	GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error)
}

// StaticProvider returns a fixed reply regardless of the prompt. It stands in
// for the remote service in tests and when no API key is configured.
type StaticProvider struct {
	Reply string
	Err   error
}

func (p *StaticProvider) GenerateResponse(ctx context.Context, prompt string, systemPrompt string, options map[string]interface{}) (string, error) {
	if p.Err != nil {
		return "", p.Err
	}
	return p.Reply, nil
}
