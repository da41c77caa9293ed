package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

const (
	DefaultURL   = "https://newsapi.org/v2/everything"
	DefaultQuery = "technology"
	fetchTimeout = 10 * time.Second
)

var _ datasources.FeedFetcher = (*Client)(nil)

// Client fetches articles from the NewsAPI "everything" endpoint.
type Client struct {
	apiURL     string
	apiKey     string
	query      string
	httpClient *http.Client
}

func NewClient(apiURL, apiKey, query string) *Client {
	return &Client{
		apiURL:     apiURL,
		apiKey:     apiKey,
		query:      query,
		httpClient: &http.Client{Timeout: fetchTimeout},
	}
}

type articlesResponse struct {
	Status   string            `json:"status"`
	Articles []domain.FeedItem `json:"articles"`
}

func (c *Client) FetchFeedItems(ctx context.Context) []domain.FeedItem {
	logger := domain.LoggerFromContext(ctx)

	items, err := c.fetch(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "error calling News API", "error", err, "query", c.query)
		return nil
	}

	logger.InfoContext(ctx, "fetched articles from News API", "count", len(items), "query", c.query)
	return items
}

func (c *Client) fetch(ctx context.Context) ([]domain.FeedItem, error) {
	u, err := url.Parse(c.apiURL)
	if err != nil {
		return nil, fmt.Errorf("parsing News API URL: %w", err)
	}

	params := u.Query()
	params.Set("q", c.query)
	params.Set("language", "en")
	params.Set("sortBy", "publishedAt")
	params.Set("apiKey", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("News API error (status %d): %s", resp.StatusCode, string(body))
	}

	var result articlesResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	return result.Articles, nil
}
