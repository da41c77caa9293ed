package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

type ArticlesList struct {
	Lister      datasources.LatestArticleLister
	CacheMaxAge time.Duration
}

type ArticlesListResponse struct {
	Data     []domain.ArticleListItem   `json:"data"`
	Metadata domain.ArticleListMetadata `json:"metadata"`
}

func (c ArticlesList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse article list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	articles, err := c.Lister.ListLatestArticles(r.Context(), options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to list articles", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	total, err := c.Lister.TotalArticles(r.Context())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to count articles", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	items := make([]domain.ArticleListItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, a.ListItem())
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(ArticlesListResponse{
		Data: items,
		Metadata: domain.ArticleListMetadata{
			TotalRows: total,
			Page:      options.Page,
			PageSize:  options.PageSize,
		},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write articles to response", "error", err)
	}
}
