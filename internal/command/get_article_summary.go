package command

import (
	"context"
	"fmt"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

type GetArticleSummaryRequest struct {
	ArticleID int64
}

// GetArticleSummary summarizes a stored article by ID.
type GetArticleSummary struct {
	Fetcher  datasources.ArticleFetcher
	Pipeline *SummarizeArticle
}

var _ Command[GetArticleSummaryRequest, domain.ArticleSummary] = (*GetArticleSummary)(nil)

func NewGetArticleSummary(fetcher datasources.ArticleFetcher, pipeline *SummarizeArticle) *GetArticleSummary {
	return &GetArticleSummary{
		Fetcher:  fetcher,
		Pipeline: pipeline,
	}
}

// Execute returns an error wrapping datasources.ErrArticleNotFound if the article does not exist.
func (c *GetArticleSummary) Execute(ctx context.Context, req GetArticleSummaryRequest) (domain.ArticleSummary, error) {
	article, err := c.Fetcher.FetchArticleByID(ctx, req.ArticleID)
	if err != nil {
		return domain.ArticleSummary{}, fmt.Errorf("loading article to summarize: %w", err)
	}

	return c.Pipeline.Summarize(ctx, article.Title, article.Content), nil
}
