// internal/ai/gemini_test.go
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

func TestGeminiGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/models/"+GeminiModel+":generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		var req geminiGenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Contents, 1)
		require.Len(t, req.Contents[0].Parts, 1)
		assert.Equal(t, "ping", req.Contents[0].Parts[0].Text)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"candidates": []map[string]interface{}{
				{"content": map[string]interface{}{
					"parts": []map[string]string{{"text": "pong"}},
				}},
			},
		})
	}))
	defer server.Close()

	gen := NewGeminiGenerator(server.URL, "test-key", "", 5*time.Second)
	out, err := gen.Generate(context.Background(), "ping")
	require.NoError(t, err)
	assert.Equal(t, "pong", out)
}

func TestGeminiGenerateAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"message": "API key not valid"},
		})
	}))
	defer server.Close()

	gen := NewGeminiGenerator(server.URL, "bad-key", GeminiModel, 5*time.Second)
	_, err := gen.Generate(context.Background(), "ping")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestNormalizeModel(t *testing.T) {
	assert.Equal(t, GeminiModel, normalizeModel("models/"+GeminiModel))
	assert.Equal(t, GeminiModel, normalizeModel(" "+GeminiModel+" "))
}
