package controller

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources/mocks"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testContext() func(r *http.Request) *http.Request {
	return func(r *http.Request) *http.Request {
		ctx := domain.ContextWithLogger(r.Context(), slog.New(slog.DiscardHandler))
		return r.WithContext(ctx)
	}
}

func TestArticlesList_ServeHTTP(t *testing.T) {
	testTime := time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC)

	articles := []domain.Article{
		{ID: 2, Title: "Article 2", Content: "Body 2", URL: "https://example.com/2", PublishedAt: testTime, Source: "Example"},
		{ID: 1, Title: "Article 1", Content: "Body 1", URL: "https://example.com/1", PublishedAt: testTime, Source: "Example"},
	}

	cases := []struct {
		name         string
		queryString  string
		wantOptions  domain.ArticleListOptions
		articles     []domain.Article
		listErr      error
		total        int64
		countErr     error
		wantStatus   int
		wantResponse ArticlesListResponse
		skipList     bool
		skipCount    bool
	}{
		{
			name:        "default_pagination",
			wantOptions: domain.ArticleListOptions{Page: 1, PageSize: 50},
			articles:    articles,
			total:       2,
			wantStatus:  http.StatusOK,
			wantResponse: ArticlesListResponse{
				Data: []domain.ArticleListItem{
					{ID: 2, Title: "Article 2", URL: "https://example.com/2", PublishedAt: testTime, Source: "Example"},
					{ID: 1, Title: "Article 1", URL: "https://example.com/1", PublishedAt: testTime, Source: "Example"},
				},
				Metadata: domain.ArticleListMetadata{TotalRows: 2, Page: 1, PageSize: 50},
			},
		},
		{
			name:        "explicit_pagination",
			queryString: "page=3&page_size=10",
			wantOptions: domain.ArticleListOptions{Page: 3, PageSize: 10},
			articles:    []domain.Article{},
			total:       2,
			wantStatus:  http.StatusOK,
			wantResponse: ArticlesListResponse{
				Data:     []domain.ArticleListItem{},
				Metadata: domain.ArticleListMetadata{TotalRows: 2, Page: 3, PageSize: 10},
			},
		},
		{
			name:        "invalid_page",
			queryString: "page=0",
			wantStatus:  http.StatusBadRequest,
			skipList:    true,
			skipCount:   true,
		},
		{
			name:        "non_numeric_page_size",
			queryString: "page_size=many",
			wantStatus:  http.StatusBadRequest,
			skipList:    true,
			skipCount:   true,
		},
		{
			name:        "page_size_over_limit",
			queryString: "page_size=201",
			wantStatus:  http.StatusBadRequest,
			skipList:    true,
			skipCount:   true,
		},
		{
			name:        "list_error",
			wantOptions: domain.ArticleListOptions{Page: 1, PageSize: 50},
			listErr:     errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
			skipCount:   true,
		},
		{
			name:        "count_error",
			wantOptions: domain.ArticleListOptions{Page: 1, PageSize: 50},
			articles:    articles,
			countErr:    errors.New("database error"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockLatestArticleLister(t)

			if !tc.skipList {
				lister.EXPECT().
					ListLatestArticles(mock.Anything, tc.wantOptions).
					Return(tc.articles, tc.listErr)
			}
			if !tc.skipCount {
				lister.EXPECT().
					TotalArticles(mock.Anything).
					Return(tc.total, tc.countErr)
			}

			controller := ArticlesList{
				Lister:      lister,
				CacheMaxAge: time.Hour,
			}

			req := httptest.NewRequest(http.MethodGet, "/articles?"+tc.queryString, nil)
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				assert.Equal(t, "max-age=3600", rec.Header().Get("Cache-Control"))

				var response ArticlesListResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantResponse, response)
			}
		})
	}
}

func TestArticlesList_ServeHTTP_OmitsContent(t *testing.T) {
	lister := mocks.NewMockLatestArticleLister(t)
	lister.EXPECT().
		ListLatestArticles(mock.Anything, mock.Anything).
		Return([]domain.Article{{ID: 1, Title: "Tech News", Content: "secret body"}}, nil)
	lister.EXPECT().TotalArticles(mock.Anything).Return(int64(1), nil)

	req := testContext()(httptest.NewRequest(http.MethodGet, "/articles", nil))
	rec := httptest.NewRecorder()

	ArticlesList{Lister: lister}.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "content")
	assert.Contains(t, rec.Body.String(), `"published_date"`)
}
