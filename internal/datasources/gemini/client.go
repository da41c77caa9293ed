package gemini

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"google.golang.org/genai"
)

const (
	DefaultModel   = "gemini-2.0-flash"
	DefaultTimeout = 10 * time.Second
)

var _ datasources.Summarizer = (*Client)(nil)

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Timeout time.Duration
}

// Client summarizes articles with the Gemini API.
type Client struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("Gemini API key is empty")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      cfg.APIKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: cfg.BaseURL},
	})
	if err != nil {
		return nil, fmt.Errorf("creating Gemini client: %w", err)
	}

	return &Client{
		client:  client,
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *Client) SummarizeArticle(ctx context.Context, title, content string) string {
	logger := domain.LoggerFromContext(ctx)

	summary, err := c.summarize(ctx, title, content)
	if err != nil {
		if isAPIError(err) {
			logger.ErrorContext(ctx, "Gemini API error while summarizing article",
				"error", err, "title", title)
			return datasources.ProviderAPIErrorSummary(err)
		}

		logger.ErrorContext(ctx, "unexpected error while summarizing article",
			"error", err, "title", title, "model", c.model)
		return datasources.GeneralErrorSummary(err)
	}

	logger.InfoContext(ctx, "summarized article with Gemini",
		"title", title, "model", c.model, "summary_length", len(summary))
	return summary
}

func (c *Client) summarize(ctx context.Context, title, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	result, err := c.client.Models.GenerateContent(
		ctx,
		c.model,
		genai.Text(datasources.SummaryUserPrompt(title, content)),
		&genai.GenerateContentConfig{
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: datasources.SystemPrompt}}},
			Temperature:       genai.Ptr[float32](datasources.SummaryTemperature),
		},
	)
	if err != nil {
		return "", fmt.Errorf("generating content: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", errors.New("generated content has no text")
	}

	return text, nil
}

func isAPIError(err error) bool {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return true
	}

	var apiErrPtr *genai.APIError
	return errors.As(err, &apiErrPtr)
}
