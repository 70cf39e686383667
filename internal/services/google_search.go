// internal/services/google_search.go
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// ImageSearcher finds candidate image URLs for a text query.
type ImageSearcher interface {
	SearchImages(ctx context.Context, query string) ([]string, error)
}

// GoogleImageSearcher queries the Google Custom Search JSON API in image mode.
type GoogleImageSearcher struct {
	baseURL    string
	apiKey     string
	cx         string
	httpClient *http.Client
}

const googleSearchBaseURL = "https://www.googleapis.com/customsearch/v1"

func NewGoogleImageSearcher(apiKey, cx string, timeout time.Duration) *GoogleImageSearcher {
	return &GoogleImageSearcher{
		baseURL:    googleSearchBaseURL,
		apiKey:     apiKey,
		cx:         cx,
		httpClient: &http.Client{Timeout: timeout},
	}
}

type googleSearchResponse struct {
	Items []struct {
		Link string `json:"link"`
	} `json:"items"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (g *GoogleImageSearcher) SearchImages(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("key", g.apiKey)
	params.Set("cx", g.cx)
	params.Set("q", query)
	params.Set("searchType", "image")
	params.Set("num", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	var parsed googleSearchResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}
	if parsed.Error != nil {
		return nil, fmt.Errorf("image search error %d: %s", parsed.Error.Code, parsed.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search returned status %d", resp.StatusCode)
	}

	links := make([]string, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		if item.Link != "" {
			links = append(links, item.Link)
		}
	}
	return links, nil
}
