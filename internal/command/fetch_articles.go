package command

import (
	"context"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// FetchArticles pulls the current feed and queues every item for storage.
// It returns the number of items queued.
type FetchArticles struct {
	Feed  datasources.FeedFetcher
	Queue datasources.ArticleQueue
}

var _ Command[Empty, int] = (*FetchArticles)(nil)

func NewFetchArticles(feed datasources.FeedFetcher, queue datasources.ArticleQueue) *FetchArticles {
	return &FetchArticles{
		Feed:  feed,
		Queue: queue,
	}
}

func (c *FetchArticles) Execute(ctx context.Context, _ Empty) (int, error) {
	logger := domain.LoggerFromContext(ctx)

	items := c.Feed.FetchFeedItems(ctx)
	if len(items) == 0 {
		logger.WarnContext(ctx, "no articles fetched")
		return 0, nil
	}

	queued := 0
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return queued, err
		}
		if err := c.Queue.Enqueue(ctx, item); err != nil {
			logger.ErrorContext(ctx, "failed to queue article", "error", err, "url", item.URL)
			continue
		}
		queued++
	}

	logger.InfoContext(ctx, "queued fetched articles", "fetched", len(items), "queued", queued)
	return queued, nil
}
