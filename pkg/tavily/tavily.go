package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is the Tavily search API endpoint
	DefaultBaseURL = "https://api.tavily.com"
)

// ISearcher defines the interface for the Tavily search client
type ISearcher interface {
	Search(ctx context.Context, req SearchRequest) (*SearchResponse, error)
}

// Client is the Tavily HTTP API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ ISearcher = (*Client)(nil)

// New creates a new Tavily client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("tavily: API key is required")
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// SetBaseURL overrides the API endpoint. Used by tests with httptest servers.
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// Search issues a search request. A non-2xx status is a hard error.
func (c *Client) Search(ctx context.Context, req SearchRequest) (*SearchResponse, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewBuffer(body))
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("tavily: failed to call API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("tavily: API error %d: %s", resp.StatusCode, string(raw))
	}

	var result SearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("tavily: failed to decode response: %w", err)
	}

	return &result, nil
}
