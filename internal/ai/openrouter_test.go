// internal/ai/openrouter_test.go
package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRouterGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req oaiChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, ModelMistralSmall, req.Model)
		require.Len(t, req.Messages, 1)
		assert.Equal(t, "user", req.Messages[0].Role)
		assert.Equal(t, "ping", req.Messages[0].Content)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": "  pong  "}},
			},
		})
	}))
	defer server.Close()

	gen := NewOpenRouterGenerator(server.URL, "test-key", ModelMistralSmall, 5*time.Second)
	out, err := gen.Generate(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestOpenRouterGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "rate limited", "type": "requests"},
		})
	}))
	defer server.Close()

	gen := NewOpenRouterGenerator(server.URL, "test-key", ModelQwen3, 5*time.Second)
	_, err := gen.Generate(context.Background(), "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestOpenRouterGenerateEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"choices": []interface{}{}})
	}))
	defer server.Close()

	gen := NewOpenRouterGenerator(server.URL, "test-key", ModelQwen3, 5*time.Second)
	_, err := gen.Generate(context.Background(), "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty response")
}

func TestOpenRouterGenerateRequiresCredentials(t *testing.T) {
	gen := NewOpenRouterGenerator("https://openrouter.ai/api/v1", "", ModelQwen3, 0)
	_, err := gen.Generate(context.Background(), "ping")
	assert.Error(t, err)
}
