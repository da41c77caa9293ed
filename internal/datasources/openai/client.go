package openai

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

const (
	DefaultModel   = string(openai.ChatModelGPT3_5Turbo)
	DefaultTimeout = 10 * time.Second
)

var _ datasources.Summarizer = (*Client)(nil)

type Config struct {
	APIKey string
	Model  string
	// BaseURL overrides the API endpoint; empty uses the SDK default.
	BaseURL string
	Timeout time.Duration
}

// Client summarizes articles with the OpenAI Chat Completions API.
type Client struct {
	client  openai.Client
	model   string
	timeout time.Duration
}

func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("OpenAI API key is empty")
	}

	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		// One request per summary; a failure is reported rather than retried.
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Client{
		client:  openai.NewClient(opts...),
		model:   model,
		timeout: timeout,
	}, nil
}

func (c *Client) SummarizeArticle(ctx context.Context, title, content string) string {
	logger := domain.LoggerFromContext(ctx)

	summary, err := c.summarize(ctx, title, content)
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			logger.ErrorContext(ctx, "OpenAI API error while summarizing article",
				"error", err, "status_code", apiErr.StatusCode, "title", title)
			return datasources.ProviderAPIErrorSummary(err)
		}

		logger.ErrorContext(ctx, "unexpected error while summarizing article",
			"error", err, "title", title, "model", c.model)
		return datasources.GeneralErrorSummary(err)
	}

	logger.InfoContext(ctx, "summarized article with OpenAI",
		"title", title, "model", c.model, "summary_length", len(summary))
	return summary
}

func (c *Client) summarize(ctx context.Context, title, content string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(datasources.SystemPrompt),
			openai.UserMessage(datasources.SummaryUserPrompt(title, content)),
		},
		Temperature: openai.Float(datasources.SummaryTemperature),
	})
	if err != nil {
		return "", fmt.Errorf("creating chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}

	return resp.Choices[0].Message.Content, nil
}
