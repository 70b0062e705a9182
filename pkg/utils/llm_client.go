package utils

import (
	"context"
	"fmt"
	"strings"
)

// GenerationRequest is a single prompt sent to a generative model.
type GenerationRequest struct {
	Prompt string
	// JSONOutput asks the provider to constrain the response to JSON.
	JSONOutput  bool
	Temperature *float32
}

// GenerativeClientInterface is the only surface the planning services use to
// talk to a hosted model. The returned text is untrusted.
type GenerativeClientInterface interface {
	Generate(ctx context.Context, req GenerationRequest) (string, error)
	Provider() string
	Close() error
}

type LLMClientConfig struct {
	Provider string
	APIKey   string
	Model    string
	BaseURL  string
}

// NewGenerativeClient picks a provider implementation. A missing API key does
// not fail construction; every Generate call returns ErrMissingAPIKey instead.
func NewGenerativeClient(ctx context.Context, cfg LLMClientConfig) (GenerativeClientInterface, error) {
	switch strings.ToLower(cfg.Provider) {
	case "gemini":
		return NewGeminiClient(ctx, cfg.APIKey, cfg.Model)
	case "openai":
		return NewOpenAIClient(cfg.APIKey, cfg.Model, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unsupported provider: %s. Use 'openai' or 'gemini'", cfg.Provider)
	}
}

func Float32(v float32) *float32 {
	return &v
}
