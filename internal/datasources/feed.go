package datasources

import (
	"context"

	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// FeedFetcher retrieves the current batch of items from a news feed.
// Fetch failures are logged and result in no items.
type FeedFetcher interface {
	FetchFeedItems(ctx context.Context) []domain.FeedItem
}

// ArticleQueue accepts feed items for asynchronous storage.
type ArticleQueue interface {
	Enqueue(ctx context.Context, item domain.FeedItem) error
}

// FeedItemHandler processes one dequeued feed item.
type FeedItemHandler func(ctx context.Context, item domain.FeedItem) error
