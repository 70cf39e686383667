// internal/services/google_search_test.go
package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGoogleImageSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "api-key", q.Get("key"))
		assert.Equal(t, "cx-id", q.Get("cx"))
		assert.Equal(t, "image", q.Get("searchType"))
		assert.Equal(t, "5", q.Get("num"))
		assert.Equal(t, "Honda CBR150R tahun 2023 white background", q.Get("q"))

		json.NewEncoder(w).Encode(map[string]interface{}{
			"items": []map[string]string{
				{"link": "https://example.com/a.png"},
				{"link": "https://example.com/b.png"},
			},
		})
	}))
	defer server.Close()

	g := &GoogleImageSearcher{
		baseURL:    server.URL,
		apiKey:     "api-key",
		cx:         "cx-id",
		httpClient: server.Client(),
	}

	links, err := g.SearchImages(context.Background(), "Honda CBR150R tahun 2023 white background")
	require.NoError(t, err)
	assert.Equal(t, []string{"https://example.com/a.png", "https://example.com/b.png"}, links)
}

func TestGoogleImageSearchAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]interface{}{"code": 403, "message": "quota exceeded"},
		})
	}))
	defer server.Close()

	g := &GoogleImageSearcher{
		baseURL:    server.URL,
		apiKey:     "api-key",
		cx:         "cx-id",
		httpClient: server.Client(),
	}

	_, err := g.SearchImages(context.Background(), "anything")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "quota exceeded")
}
