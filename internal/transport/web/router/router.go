package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/news-summarizer/news-summarizer/internal/command"
	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/news-summarizer/news-summarizer/internal/transport/web/controller"
)

func MakeRouter(
	dataset datasources.DatasetRepository,
	summaryCmd command.Command[command.GetArticleSummaryRequest, domain.ArticleSummary],
	rssFeedBaseURL string,
	latestCacheMaxAge time.Duration,
) (http.Handler, error) {
	r := mux.NewRouter()
	r.Use(requestLoggerMiddleware)
	r.Use(corsMiddleware)

	r.Handle("/articles", controller.ArticlesList{
		Lister:      dataset,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/articles/{article_id}", controller.ArticleGet{
		Fetcher:     dataset,
		CacheMaxAge: latestCacheMaxAge,
	}).Methods(http.MethodGet, http.MethodOptions)

	r.Handle("/articles/{article_id}/summary", controller.ArticleSummaryGet{
		SummaryCmd: summaryCmd,
	}).Methods(http.MethodGet, http.MethodOptions)

	rssFeeds := []controller.RSS{
		{
			FeedHostname: rssFeedBaseURL,
			FeedPath:     "/rss",
			Lister:       dataset,
			CacheMaxAge:  latestCacheMaxAge,
		},
	}

	for _, feed := range rssFeeds {
		r.Handle(feed.FeedPath, feed).Methods(http.MethodGet, http.MethodOptions)
	}

	return r, nil
}
