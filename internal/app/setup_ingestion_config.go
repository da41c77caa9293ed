package app

import (
	"time"

	"github.com/news-summarizer/news-summarizer/internal/scheduler"
)

// IngestionConfig tunes the fetch-and-store path.
type IngestionConfig struct {
	QueueCapacity int
	QueueWorkers  int
	FetchTimeout  time.Duration
}

// DefaultIngestionConfig returns the defaults used when the environment does not override them.
func DefaultIngestionConfig() IngestionConfig {
	return IngestionConfig{
		QueueCapacity: 100,
		QueueWorkers:  4,
		FetchTimeout:  scheduler.DefaultFetchTimeout,
	}
}
