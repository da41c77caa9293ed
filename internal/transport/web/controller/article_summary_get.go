package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/news-summarizer/news-summarizer/internal/command"
	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// ArticleSummaryGet answers with the article's summary, generating it on a cache miss.
type ArticleSummaryGet struct {
	SummaryCmd command.Command[command.GetArticleSummaryRequest, domain.ArticleSummary]
}

func (c ArticleSummaryGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := articleIDFromVars(mux.Vars(r))
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.InfoContext(ctx, "rejected article summary request", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	summary, err := c.SummaryCmd.Execute(r.Context(), command.GetArticleSummaryRequest{ArticleID: id})
	if errors.Is(err, datasources.ErrArticleNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to summarize article", "error", err, "articleID", id)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")

	if err := json.NewEncoder(w).Encode(summary); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write summary to response", "error", err)
	}
}
