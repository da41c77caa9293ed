package command

import (
	"errors"
	"testing"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources/mocks"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreArticle_Execute(t *testing.T) {
	now := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)

	cases := []struct {
		name    string
		item    domain.FeedItem
		want    domain.ArticleUpsert
		created bool
	}{
		{
			name: "full_item",
			item: domain.FeedItem{
				URL:         "https://example.com/tech-news",
				Title:       "Tech News",
				Content:     "Lots of interesting content.",
				PublishedAt: "2024-04-27T12:00:00Z",
				Source:      domain.FeedItemSource{Name: "Example News"},
			},
			want: domain.ArticleUpsert{
				URL:         "https://example.com/tech-news",
				Title:       "Tech News",
				Content:     "Lots of interesting content.",
				PublishedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
				Source:      "Example News",
			},
			created: true,
		},
		{
			name: "offset_time_normalized_to_utc",
			item: domain.FeedItem{
				URL:         "https://example.com/a",
				Title:       "A",
				PublishedAt: "2024-04-27T14:00:00+02:00",
				Source:      domain.FeedItemSource{Name: "Example News"},
			},
			want: domain.ArticleUpsert{
				URL:         "https://example.com/a",
				Title:       "A",
				PublishedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
				Source:      "Example News",
			},
		},
		{
			name: "missing_source_and_time_use_defaults",
			item: domain.FeedItem{URL: "https://example.com/b", Title: "B"},
			want: domain.ArticleUpsert{
				URL:         "https://example.com/b",
				Title:       "B",
				PublishedAt: now,
				Source:      DefaultArticleSource,
			},
			created: true,
		},
		{
			name: "invalid_time_uses_now",
			item: domain.FeedItem{URL: "https://example.com/c", Title: "C", PublishedAt: "yesterday"},
			want: domain.ArticleUpsert{
				URL:         "https://example.com/c",
				Title:       "C",
				PublishedAt: now,
				Source:      DefaultArticleSource,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upserter := mocks.NewMockArticleUpserter(t)
			upserter.EXPECT().
				UpsertArticle(mock.Anything, mock.MatchedBy(func(a domain.ArticleUpsert) bool {
					return a.URL == tc.want.URL &&
						a.Title == tc.want.Title &&
						a.Content == tc.want.Content &&
						a.Source == tc.want.Source &&
						a.PublishedAt.Equal(tc.want.PublishedAt)
				})).
				Return(tc.created, nil)

			cmd := NewStoreArticle(upserter)
			cmd.Now = func() time.Time { return now }

			created, err := cmd.Execute(testContext(), tc.item)
			require.NoError(t, err)
			assert.Equal(t, tc.created, created)
		})
	}
}

func TestStoreArticle_Execute_Errors(t *testing.T) {
	upsertErr := errors.New("deadlock")

	cases := []struct {
		name      string
		item      domain.FeedItem
		upsertErr error
		wantErr   error
	}{
		{
			name:    "missing_url",
			item:    domain.FeedItem{Title: "Tech News"},
			wantErr: ErrFeedItemMissingURL,
		},
		{
			name:    "missing_title",
			item:    domain.FeedItem{URL: "https://example.com/tech-news"},
			wantErr: ErrFeedItemMissingTitle,
		},
		{
			name:      "upsert_failure",
			item:      domain.FeedItem{URL: "https://example.com/tech-news", Title: "Tech News"},
			upsertErr: upsertErr,
			wantErr:   upsertErr,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			upserter := mocks.NewMockArticleUpserter(t)
			if tc.upsertErr != nil {
				upserter.EXPECT().
					UpsertArticle(mock.Anything, mock.Anything).
					Return(false, tc.upsertErr)
			}

			_, err := NewStoreArticle(upserter).Execute(testContext(), tc.item)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
