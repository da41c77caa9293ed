package datasources

import (
	"context"
	"errors"

	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// ErrArticleNotFound is returned when no article has the requested ID.
var ErrArticleNotFound = errors.New("article not found")

type DatasetRepository interface {
	LatestArticleLister
	ArticleFetcher
	ArticleUpserter
}

type LatestArticleLister interface {
	ListLatestArticles(ctx context.Context, options domain.ArticleListOptions) ([]domain.Article, error)
	TotalArticles(ctx context.Context) (int64, error)
}

type ArticleFetcher interface {
	FetchArticleByID(ctx context.Context, id int64) (domain.Article, error)
}

// ArticleUpserter creates or updates an article keyed on its URL.
// It reports whether a new row was created.
type ArticleUpserter interface {
	UpsertArticle(ctx context.Context, article domain.ArticleUpsert) (bool, error)
}
