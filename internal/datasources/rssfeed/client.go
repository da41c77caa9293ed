package rssfeed

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

const fetchTimeout = 10 * time.Second

var _ datasources.FeedFetcher = (*Client)(nil)

// Client reads items from an RSS or Atom feed.
type Client struct {
	feedURL string
	parser  *gofeed.Parser
}

func NewClient(feedURL string) *Client {
	parser := gofeed.NewParser()
	parser.Client = &http.Client{Timeout: fetchTimeout}

	return &Client{
		feedURL: feedURL,
		parser:  parser,
	}
}

func (c *Client) FetchFeedItems(ctx context.Context) []domain.FeedItem {
	logger := domain.LoggerFromContext(ctx)

	feed, err := c.parser.ParseURLWithContext(c.feedURL, ctx)
	if err != nil {
		logger.ErrorContext(ctx, "error fetching RSS feed", "error", err, "feed_url", c.feedURL)
		return nil
	}

	source := strings.TrimSpace(feed.Title)

	items := make([]domain.FeedItem, 0, len(feed.Items))
	for _, item := range feed.Items {
		items = append(items, feedItemFromRSS(item, source))
	}

	logger.InfoContext(ctx, "fetched articles from RSS feed", "count", len(items), "feed_url", c.feedURL)
	return items
}

func feedItemFromRSS(item *gofeed.Item, source string) domain.FeedItem {
	content := strings.TrimSpace(item.Content)
	if content == "" {
		content = strings.TrimSpace(item.Description)
	}

	publishedAt := item.Published
	if item.PublishedParsed != nil {
		publishedAt = item.PublishedParsed.UTC().Format(time.RFC3339)
	} else if item.UpdatedParsed != nil {
		publishedAt = item.UpdatedParsed.UTC().Format(time.RFC3339)
	}

	return domain.FeedItem{
		URL:         strings.TrimSpace(item.Link),
		Title:       strings.TrimSpace(item.Title),
		Content:     content,
		PublishedAt: publishedAt,
		Source:      domain.FeedItemSource{Name: source},
	}
}
