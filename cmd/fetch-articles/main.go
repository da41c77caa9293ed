package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/news-summarizer/news-summarizer/internal/app"
	"github.com/news-summarizer/news-summarizer/internal/command"
	"github.com/news-summarizer/news-summarizer/internal/domain"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: app.MustGetLogLevel(slog.LevelInfo),
	}))
	slog.SetDefault(logger)
	ctx = domain.ContextWithLogger(ctx, logger)

	if err := run(ctx); err != nil {
		logger.ErrorContext(ctx, "article fetch failed", "error", err)
		os.Exit(1)
	}

	logger.InfoContext(ctx, "article fetch completed successfully")
}

func run(ctx context.Context) error {
	ingestion, err := app.SetupIngestion(ctx)
	if err != nil {
		return fmt.Errorf("setting up ingestion: %w", err)
	}

	// An in-process queue stores items on its own workers, and its Run returns once Close
	// has been called and the queued items are drained. A broker-backed queue is consumed
	// by the long-running service instead.
	drained := make(chan error, 1)
	if ingestion.InProcessQueue {
		go func() { drained <- ingestion.Queue.Run(ctx) }()
	} else {
		drained <- nil
	}

	queued, err := ingestion.FetchArticles.Execute(ctx, command.Empty{})
	ingestion.Queue.Close(ctx)
	if err != nil {
		return fmt.Errorf("fetching articles: %w", err)
	}

	if err := <-drained; err != nil {
		return fmt.Errorf("storing queued articles: %w", err)
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "fetched articles", "queued", queued)
	return nil
}
