package utils

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAIClient_Generate(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{{
				"index":         0,
				"finish_reason": "stop",
				"message":       map[string]any{"role": "assistant", "content": "{\"names\":[\"Matara\"]}"},
			}},
		})
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "gpt-4o-mini", server.URL)
	out, err := client.Generate(context.Background(), GenerationRequest{
		Prompt:      "fix names",
		JSONOutput:  true,
		Temperature: Float32(0.2),
	})

	require.NoError(t, err)
	assert.Equal(t, `{"names":["Matara"]}`, out)
	assert.Equal(t, "gpt-4o-mini", captured["model"])
	format, ok := captured["response_format"].(map[string]any)
	require.True(t, ok, "response_format should be sent in JSON mode")
	assert.Equal(t, "json_object", format["type"])
}

func TestOpenAIClient_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "", server.URL)
	_, err := client.Generate(context.Background(), GenerationRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrEmptyModelResponse)
}

func TestOpenAIClient_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "", server.URL)
	_, err := client.Generate(context.Background(), GenerationRequest{Prompt: "hi"})
	assert.Error(t, err)
}

func TestOpenAIClient_MissingKey(t *testing.T) {
	client := NewOpenAIClient("", "", "")
	_, err := client.Generate(context.Background(), GenerationRequest{Prompt: "hi"})
	assert.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestOpenAIClient_ZeroTemperatureIsSent(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"[]"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-key", "", server.URL)
	_, err := client.Generate(context.Background(), GenerationRequest{Prompt: "hi", Temperature: Float32(0)})
	require.NoError(t, err)

	temp, ok := captured["temperature"].(float64)
	require.True(t, ok, "temperature must be present in the request body")
	assert.Greater(t, temp, 0.0)
	assert.Less(t, temp, 1e-6)
}

func TestOpenAIClient_TemperatureOmittedWhenUnset(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"x","object":"chat.completion","choices":[{"index":0,"message":{"role":"assistant","content":"{}"}}]}`))
	}))
	defer server.Close()

	_, err := NewOpenAIClient("test-key", "", server.URL).Generate(context.Background(), GenerationRequest{Prompt: "hi"})
	require.NoError(t, err)

	_, present := captured["temperature"]
	assert.False(t, present)
}
