package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/huandu/go-sqlbuilder"
	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

var _ datasources.DatasetRepository = (*Repository)(nil)

var articleColumns = []string{"id", "title", "content", "url", "published_at", "source"}

type Repository struct {
	db *DB
}

func New(db *DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) ListLatestArticles(
	ctx context.Context,
	options domain.ArticleListOptions,
) ([]domain.Article, error) {
	limit, offset := paginationToLimitOffset(options.Page, options.PageSize)

	sb := r.db.Flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.OrderBy("published_at DESC", "id DESC")
	sb.Limit(limit)
	sb.Offset(offset)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running articles query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := []domain.Article{}
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning articles: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return articles, nil
}

func (r *Repository) TotalArticles(ctx context.Context) (int64, error) {
	sb := r.db.Flavor.NewSelectBuilder()
	sb.Select("COUNT(*)")
	sb.From("articles")

	query, args := sb.Build()

	var count int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting articles: %w", err)
	}
	return count, nil
}

func (r *Repository) FetchArticleByID(ctx context.Context, id int64) (domain.Article, error) {
	sb := r.db.Flavor.NewSelectBuilder()
	sb.Select(articleColumns...)
	sb.From("articles")
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()

	article, err := scanArticle(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Article{}, fmt.Errorf("fetching article [%d]: %w", id, datasources.ErrArticleNotFound)
	}
	if err != nil {
		return domain.Article{}, fmt.Errorf("fetching article [%d]: %w", id, err)
	}

	return article, nil
}

// UpsertArticle updates the article with a matching URL, or inserts it if none exists.
func (r *Repository) UpsertArticle(ctx context.Context, article domain.ArticleUpsert) (bool, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	sb := r.db.Flavor.NewSelectBuilder()
	sb.Select("id")
	sb.From("articles")
	sb.Where(sb.Equal("url", article.URL))
	if r.db.Flavor == sqlbuilder.MySQL {
		sb.ForUpdate()
	}

	query, args := sb.Build()

	var id int64
	err = tx.QueryRowContext(ctx, query, args...).Scan(&id)
	created := errors.Is(err, sql.ErrNoRows)
	if err != nil && !created {
		return false, fmt.Errorf("looking up article by URL: %w", err)
	}

	content := sql.NullString{String: article.Content, Valid: article.Content != ""}
	publishedAt := article.PublishedAt.UTC()

	if created {
		ib := r.db.Flavor.NewInsertBuilder()
		ib.InsertInto("articles")
		ib.Cols("title", "content", "url", "published_at", "source")
		ib.Values(article.Title, content, article.URL, publishedAt, article.Source)

		query, args = ib.Build()
	} else {
		ub := r.db.Flavor.NewUpdateBuilder()
		ub.Update("articles")
		ub.Set(
			ub.Assign("title", article.Title),
			ub.Assign("content", content),
			ub.Assign("published_at", publishedAt),
			ub.Assign("source", article.Source),
		)
		ub.Where(ub.Equal("id", id))

		query, args = ub.Build()
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return false, fmt.Errorf("writing article: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("committing transaction: %w", err)
	}

	return created, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (domain.Article, error) {
	var article domain.Article
	var content sql.NullString

	if err := row.Scan(
		&article.ID,
		&article.Title,
		&content,
		&article.URL,
		&article.PublishedAt,
		&article.Source,
	); err != nil {
		return domain.Article{}, err
	}

	article.Content = content.String
	return article, nil
}

// paginationToLimitOffset converts page/pageSize to limit/offset with bounds checking.
func paginationToLimitOffset(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	if page-1 > math.MaxInt32/pageSize {
		return pageSize, math.MaxInt32
	}

	return pageSize, (page - 1) * pageSize
}
