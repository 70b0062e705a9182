package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"tripsmith/pkg/metrics"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiClient implements GenerativeClientInterface using Google's Gemini models
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if model == "" {
		model = defaultGeminiModel
	}
	if apiKey == "" {
		return &GeminiClient{model: model}, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Provider() string {
	return "gemini"
}

func (c *GeminiClient) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if c.client == nil {
		return "", ErrMissingAPIKey
	}

	m := c.client.GenerativeModel(c.model)
	if req.JSONOutput {
		m.ResponseMIMEType = "application/json"
	}
	if req.Temperature != nil {
		m.SetTemperature(*req.Temperature)
	}

	start := time.Now()
	resp, err := m.GenerateContent(ctx, genai.Text(req.Prompt))
	metrics.ObserveModel(c.Provider(), err, time.Since(start))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	return geminiText(resp)
}

func geminiText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrEmptyModelResponse
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", ErrEmptyModelResponse
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if strings.TrimSpace(b.String()) == "" {
		return "", ErrEmptyModelResponse
	}
	return b.String(), nil
}

func (c *GeminiClient) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}
