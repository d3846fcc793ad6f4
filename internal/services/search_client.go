package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/uiforge/uiforge-backend/internal/logger"
	"github.com/uiforge/uiforge-backend/internal/utils"
)

// SearchResult is one web search hit handed to the research agent.
type SearchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

// SearchClient is the web-search tool available to agents that declare it.
type SearchClient interface {
	Search(ctx context.Context, query string) ([]SearchResult, error)
}

type tavilyClient struct {
	log        *logger.Logger
	baseURL    string
	apiKey     string
	maxResults int
	httpClient *http.Client
}

// NewSearchClient builds a Tavily-backed search client. Returns an error when
// TAVILY_API_KEY is unset; callers treat the tool as unavailable in that case.
func NewSearchClient(log *logger.Logger) (SearchClient, error) {
	apiKey := strings.TrimSpace(utils.GetEnv("TAVILY_API_KEY", "", nil))
	if apiKey == "" {
		return nil, fmt.Errorf("missing TAVILY_API_KEY")
	}

	baseURL := strings.TrimRight(utils.GetEnv("TAVILY_BASE_URL", "https://api.tavily.com", nil), "/")
	maxResults := utils.GetEnvAsInt("TAVILY_MAX_RESULTS", 5, nil)
	timeoutSec := utils.GetEnvAsInt("TAVILY_TIMEOUT_SECONDS", 30, nil)

	return &tavilyClient{
		log:        log.With("service", "SearchClient"),
		baseURL:    baseURL,
		apiKey:     apiKey,
		maxResults: maxResults,
		httpClient: &http.Client{Timeout: time.Duration(timeoutSec) * time.Second},
	}, nil
}

type tavilySearchRequest struct {
	APIKey     string `json:"api_key"`
	Query      string `json:"query"`
	MaxResults int    `json:"max_results,omitempty"`
}

type tavilySearchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

func (c *tavilyClient) Search(ctx context.Context, query string) ([]SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []SearchResult{}, nil
	}

	body := tavilySearchRequest{
		APIKey:     c.apiKey,
		Query:      query,
		MaxResults: c.maxResults,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.baseURL+"/search", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return nil, readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tavily http %d: %s", resp.StatusCode, string(raw))
	}

	var decoded tavilySearchResponse
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("tavily decode error: %w", err)
	}

	results := make([]SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, SearchResult{Title: r.Title, URL: r.URL, Content: r.Content})
	}
	return results, nil
}
