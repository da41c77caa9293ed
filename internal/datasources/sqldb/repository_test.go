package sqldb

import (
	"context"
	"testing"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := OpenSQLite(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.EnsureSchema(context.Background()))
	return db
}

func seedArticles(t *testing.T, repo *Repository) {
	t.Helper()

	for _, a := range []domain.ArticleUpsert{
		{
			URL:         "https://example.com/older",
			Title:       "Older story",
			Content:     "Older content",
			PublishedAt: time.Date(2024, 4, 27, 11, 13, 6, 0, time.UTC),
			Source:      "Example",
		},
		{
			URL:         "https://example.com/newer",
			Title:       "Newer story",
			PublishedAt: time.Date(2024, 4, 27, 16, 4, 46, 0, time.UTC),
			Source:      "Example",
		},
		{
			URL:         "https://example.com/newest",
			Title:       "Newest story",
			Content:     "Newest content",
			PublishedAt: time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC),
			Source:      "Other",
		},
	} {
		created, err := repo.UpsertArticle(context.Background(), a)
		require.NoError(t, err)
		require.True(t, created)
	}
}

func TestRepository_ListLatestArticles(t *testing.T) {
	repo := New(setupTestDB(t))
	seedArticles(t, repo)

	articles, err := repo.ListLatestArticles(context.Background(), domain.ArticleListOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, articles, 3)

	assert.Equal(t, "Newest story", articles[0].Title)
	assert.Equal(t, "Newer story", articles[1].Title)
	assert.Equal(t, "Older story", articles[2].Title)
	assert.Empty(t, articles[1].Content)
	assert.True(t, articles[0].PublishedAt.Equal(time.Date(2024, 4, 28, 9, 0, 0, 0, time.UTC)))
}

func TestRepository_ListLatestArticles_Pagination(t *testing.T) {
	repo := New(setupTestDB(t))
	seedArticles(t, repo)

	page2, err := repo.ListLatestArticles(context.Background(), domain.ArticleListOptions{Page: 2, PageSize: 2})
	require.NoError(t, err)
	require.Len(t, page2, 1)
	assert.Equal(t, "Older story", page2[0].Title)

	page3, err := repo.ListLatestArticles(context.Background(), domain.ArticleListOptions{Page: 3, PageSize: 2})
	require.NoError(t, err)
	assert.Empty(t, page3)

	total, err := repo.TotalArticles(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestRepository_FetchArticleByID(t *testing.T) {
	repo := New(setupTestDB(t))
	seedArticles(t, repo)

	articles, err := repo.ListLatestArticles(context.Background(), domain.ArticleListOptions{Page: 1, PageSize: 1})
	require.NoError(t, err)
	require.Len(t, articles, 1)

	article, err := repo.FetchArticleByID(context.Background(), articles[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "Newest story", article.Title)
	assert.Equal(t, "Newest content", article.Content)
	assert.Equal(t, "https://example.com/newest", article.URL)
	assert.Equal(t, "Other", article.Source)
}

func TestRepository_FetchArticleByID_NotFound(t *testing.T) {
	repo := New(setupTestDB(t))

	_, err := repo.FetchArticleByID(context.Background(), 999)
	assert.ErrorIs(t, err, datasources.ErrArticleNotFound)
}

func TestRepository_UpsertArticle_UpdatesExistingURL(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.UpsertArticle(ctx, domain.ArticleUpsert{
		URL:         "https://example.com/story",
		Title:       "First title",
		Content:     "First content",
		PublishedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
		Source:      "Example",
	})
	require.NoError(t, err)
	assert.True(t, created)

	created, err = repo.UpsertArticle(ctx, domain.ArticleUpsert{
		URL:         "https://example.com/story",
		Title:       "Second title",
		Content:     "Second content",
		PublishedAt: time.Date(2024, 4, 28, 12, 0, 0, 0, time.UTC),
		Source:      "Example Updated",
	})
	require.NoError(t, err)
	assert.False(t, created)

	total, err := repo.TotalArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	articles, err := repo.ListLatestArticles(ctx, domain.ArticleListOptions{Page: 1, PageSize: 10})
	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Second title", articles[0].Title)
	assert.Equal(t, "Second content", articles[0].Content)
	assert.Equal(t, "Example Updated", articles[0].Source)
}

func TestRepository_UpsertArticle_URLsDifferingInCaseAreDistinct(t *testing.T) {
	repo := New(setupTestDB(t))
	ctx := context.Background()

	for _, url := range []string{"https://example.com/Story", "https://example.com/story"} {
		created, err := repo.UpsertArticle(ctx, domain.ArticleUpsert{
			URL:         url,
			Title:       "Story",
			PublishedAt: time.Date(2024, 4, 27, 12, 0, 0, 0, time.UTC),
			Source:      "Example",
		})
		require.NoError(t, err)
		assert.True(t, created, url)
	}

	total, err := repo.TotalArticles(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func TestPaginationToLimitOffset(t *testing.T) {
	cases := []struct {
		name       string
		page       int
		pageSize   int
		wantLimit  int
		wantOffset int
	}{
		{name: "first_page", page: 1, pageSize: 50, wantLimit: 50, wantOffset: 0},
		{name: "third_page", page: 3, pageSize: 20, wantLimit: 20, wantOffset: 40},
		{name: "zero_page_clamped", page: 0, pageSize: 20, wantLimit: 20, wantOffset: 0},
		{name: "huge_page_clamped", page: 1 << 40, pageSize: 200, wantLimit: 200, wantOffset: 1<<31 - 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := paginationToLimitOffset(tc.page, tc.pageSize)
			assert.Equal(t, tc.wantLimit, limit)
			assert.Equal(t, tc.wantOffset, offset)
		})
	}
}
