package newsapi

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

func testContext() context.Context {
	return domain.ContextWithLogger(context.Background(), slog.New(slog.DiscardHandler))
}

func TestClient_FetchFeedItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "technology", q.Get("q"))
		assert.Equal(t, "en", q.Get("language"))
		assert.Equal(t, "publishedAt", q.Get("sortBy"))
		assert.Equal(t, "news-key", q.Get("apiKey"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": "ok",
			"totalResults": 2,
			"articles": [
				{
					"source": {"id": null, "name": "Example News"},
					"author": "Jane Doe",
					"title": "Tech News",
					"url": "https://example.com/tech-news",
					"content": "Lots of interesting content.",
					"publishedAt": "2024-04-27T12:00:00Z"
				},
				{
					"source": {"id": "other", "name": "Other"},
					"title": "No content",
					"url": "https://example.com/no-content",
					"content": null,
					"publishedAt": "2024-04-27T13:00:00Z"
				}
			]
		}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, "news-key", "technology")
	items := client.FetchFeedItems(testContext())

	require.Len(t, items, 2)
	assert.Equal(t, domain.FeedItem{
		URL:         "https://example.com/tech-news",
		Title:       "Tech News",
		Content:     "Lots of interesting content.",
		PublishedAt: "2024-04-27T12:00:00Z",
		Source:      domain.FeedItemSource{Name: "Example News"},
	}, items[0])
	assert.Empty(t, items[1].Content)
}

func TestClient_FetchFeedItems_FailuresDegradeToNoItems(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server_error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "unauthorized",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"status": "error", "code": "apiKeyInvalid"}`))
			},
		},
		{
			name: "malformed_body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			client := NewClient(srv.URL, "news-key", "technology")
			assert.Empty(t, client.FetchFeedItems(testContext()))
		})
	}
}

func TestClient_FetchFeedItems_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewClient(url, "news-key", "technology")
	assert.Empty(t, client.FetchFeedItems(testContext()))
}
