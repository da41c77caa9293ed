package rssfeed

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Example News</title>
    <link>https://example.com</link>
    <description>Example feed</description>
    <item>
      <title>Tech News</title>
      <link>https://example.com/tech-news</link>
      <description>Lots of interesting content.</description>
      <pubDate>Sat, 27 Apr 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title> Undated </title>
      <link>https://example.com/undated</link>
    </item>
  </channel>
</rss>`

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestClient_FetchFeedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(testRSS))
	}))
	defer srv.Close()

	items := NewClient(srv.URL).FetchFeedItems(testContext())

	require.Len(t, items, 2)
	assert.Equal(t, domain.FeedItem{
		URL:         "https://example.com/tech-news",
		Title:       "Tech News",
		Content:     "Lots of interesting content.",
		PublishedAt: "2024-04-27T12:00:00Z",
		Source:      domain.FeedItemSource{Name: "Example News"},
	}, items[0])

	assert.Equal(t, "Undated", items[1].Title)
	assert.Empty(t, items[1].PublishedAt)
}

func TestClient_FetchFeedItems_FailureDegradesToNoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	assert.Empty(t, NewClient(srv.URL).FetchFeedItems(testContext()))
}
