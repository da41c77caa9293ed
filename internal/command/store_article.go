package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// DefaultArticleSource is recorded for items whose feed gave no source name.
const DefaultArticleSource = "N/A"

var (
	ErrFeedItemMissingURL   = errors.New("feed item has no url")
	ErrFeedItemMissingTitle = errors.New("feed item has no title")
)

// StoreArticle creates or updates the article for a feed item, keyed on its URL.
// It returns true if a new article was created.
type StoreArticle struct {
	Upserter datasources.ArticleUpserter
	Now      func() time.Time
}

var _ Command[domain.FeedItem, bool] = (*StoreArticle)(nil)

func NewStoreArticle(upserter datasources.ArticleUpserter) *StoreArticle {
	return &StoreArticle{
		Upserter: upserter,
		Now:      time.Now,
	}
}

func (c *StoreArticle) Execute(ctx context.Context, item domain.FeedItem) (bool, error) {
	logger := domain.LoggerFromContext(ctx)

	if item.URL == "" {
		return false, ErrFeedItemMissingURL
	}
	if item.Title == "" {
		return false, fmt.Errorf("storing article [%s]: %w", item.URL, ErrFeedItemMissingTitle)
	}

	source := item.Source.Name
	if source == "" {
		source = DefaultArticleSource
	}

	created, err := c.Upserter.UpsertArticle(ctx, domain.ArticleUpsert{
		URL:         item.URL,
		Title:       item.Title,
		Content:     item.Content,
		PublishedAt: c.publishedAt(ctx, item),
		Source:      source,
	})
	if err != nil {
		return false, fmt.Errorf("storing article [%s]: %w", item.URL, err)
	}

	logger.DebugContext(ctx, "stored article", "url", item.URL, "created", created)
	return created, nil
}

// HandleFeedItem adapts the command for use as a queue handler.
func (c *StoreArticle) HandleFeedItem(ctx context.Context, item domain.FeedItem) error {
	_, err := c.Execute(ctx, item)
	return err
}

func (c *StoreArticle) publishedAt(ctx context.Context, item domain.FeedItem) time.Time {
	if item.PublishedAt == "" {
		return c.Now().UTC()
	}

	t, err := time.Parse(time.RFC3339, item.PublishedAt)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "invalid article publish time, using current time",
			"error", err, "url", item.URL, "publishedAt", item.PublishedAt)
		return c.Now().UTC()
	}
	return t.UTC()
}
