package app

import (
	"context"
	"fmt"

	"github.com/news-summarizer/news-summarizer/internal/command"
	"github.com/news-summarizer/news-summarizer/internal/datasources/memqueue"
	"github.com/news-summarizer/news-summarizer/internal/scheduler"
	"github.com/news-summarizer/news-summarizer/internal/transport/web/router"
	"github.com/news-summarizer/news-summarizer/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

// Service is the long-running service: the HTTP server, the article queue consumer and,
// if FETCH_SCHEDULE is set, the fetch scheduler.
type Service struct {
	Components []Component
	Queue      ArticleQueue
}

// Close releases the article queue, flushing anything still buffered for the broker.
// It must be called once every component has returned.
func (s *Service) Close(ctx context.Context) {
	s.Queue.Close(ctx)
}

// Setup builds the components of the long-running service.
func Setup(ctx context.Context) (*Service, error) {
	db, err := setupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	dataset := setupDatasetRepository(db)

	cache, err := setupSummaryCache(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("setting up summary cache: %w", err)
	}

	summarizer, err := setupSummarizer(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up summarizer: %w", err)
	}

	feed, err := setupFeedFetcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up feed fetcher: %w", err)
	}

	cfg := DefaultIngestionConfig()
	cfg.QueueWorkers = MustGetEnvAsIntOrDefault(ctx, "QUEUE_WORKERS", cfg.QueueWorkers)

	storeArticleCmd := command.NewStoreArticle(dataset)
	queue, err := setupArticleQueue(ctx, cfg, storeArticleCmd.HandleFeedItem)
	if err != nil {
		return nil, fmt.Errorf("setting up article queue: %w", err)
	}

	summarizeArticle := command.NewSummarizeArticle(cache, summarizer)
	getArticleSummaryCmd := command.NewGetArticleSummary(dataset, summarizeArticle)
	fetchArticlesCmd := command.NewFetchArticles(feed, queue)

	httpRouter, err := router.MakeRouter(
		dataset,
		getArticleSummaryCmd,
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		MustGetEnvAsDuration(ctx, "ARTICLES_CACHE_MAX_AGE"),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	components := []Component{
		&server.Server{
			TLSDisabled:      MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:  MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostname: MustGetEnvAsString(ctx, "HTTP_AUTOCERT_HOSTNAME"),
			Router:           httpRouter,
		},
		queue,
	}

	if spec := GetEnvAsStringOrDefault("FETCH_SCHEDULE", ""); spec != "" {
		s, err := scheduler.New(spec, fetchArticlesCmd, cfg.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("setting up fetch scheduler: %w", err)
		}
		components = append(components, s)
	}

	return &Service{Components: components, Queue: queue}, nil
}

// Ingestion is a one-shot fetch: the FetchArticles command plus the queue it feeds.
type Ingestion struct {
	FetchArticles command.Command[command.Empty, int]
	Queue         ArticleQueue

	// InProcessQueue is set when the queue's own workers store the items, so it must be
	// run and drained by the caller.
	InProcessQueue bool
}

// SetupIngestion builds the fetch path without the HTTP server, for running a single fetch.
func SetupIngestion(ctx context.Context) (*Ingestion, error) {
	db, err := setupDatabase(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up database: %w", err)
	}
	dataset := setupDatasetRepository(db)

	feed, err := setupFeedFetcher(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up feed fetcher: %w", err)
	}

	cfg := DefaultIngestionConfig()
	cfg.QueueWorkers = MustGetEnvAsIntOrDefault(ctx, "QUEUE_WORKERS", cfg.QueueWorkers)

	storeArticleCmd := command.NewStoreArticle(dataset)
	queue, err := setupArticleQueue(ctx, cfg, storeArticleCmd.HandleFeedItem)
	if err != nil {
		return nil, fmt.Errorf("setting up article queue: %w", err)
	}

	_, inProcess := queue.(*memqueue.Queue)

	return &Ingestion{
		FetchArticles:  command.NewFetchArticles(feed, queue),
		Queue:          queue,
		InProcessQueue: inProcess,
	}, nil
}
