// Package client provides an HTTP client for the news summarizer API.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// ErrNotFound is returned when the API has no article with the requested ID.
var ErrNotFound = errors.New("article not found")

// ArticlesResponse represents the paginated response for article lists.
type ArticlesResponse struct {
	Data     []domain.ArticleListItem   `json:"data"`
	Metadata domain.ArticleListMetadata `json:"metadata"`
}

// Client is an HTTP client for the news summarizer API.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new API client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			// Summaries may wait on the provider, so allow more than its timeout.
			Timeout: 30 * time.Second,
		},
	}
}

func (c *Client) doRequest(ctx context.Context, method, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}

	return resp, nil
}

func (c *Client) handleResponse(resp *http.Response, result any) error {
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}

	return nil
}

// ListArticles returns one page of the latest articles.
func (c *Client) ListArticles(ctx context.Context, page, pageSize int) (*ArticlesResponse, error) {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}

	path := "/articles"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	resp, err := c.doRequest(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	var result ArticlesResponse
	if err := c.handleResponse(resp, &result); err != nil {
		return nil, err
	}

	return &result, nil
}

// GetArticle returns a single article including its content.
func (c *Client) GetArticle(ctx context.Context, articleID int64) (*domain.Article, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/articles/%d", articleID))
	if err != nil {
		return nil, err
	}

	var article domain.Article
	if err := c.handleResponse(resp, &article); err != nil {
		return nil, err
	}

	return &article, nil
}

// GetArticleSummary returns the article's summary, generating it if it is not cached.
func (c *Client) GetArticleSummary(ctx context.Context, articleID int64) (*domain.ArticleSummary, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, fmt.Sprintf("/articles/%d/summary", articleID))
	if err != nil {
		return nil, err
	}

	var summary domain.ArticleSummary
	if err := c.handleResponse(resp, &summary); err != nil {
		return nil, err
	}

	return &summary, nil
}
