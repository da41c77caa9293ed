package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/news-summarizer/news-summarizer/internal/command"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"github.com/robfig/cron/v3"
)

const DefaultFetchTimeout = 15 * time.Minute

// Scheduler periodically pulls the news feed into the article store.
type Scheduler struct {
	schedule cron.Schedule
	spec     string
	fetchCmd command.Command[command.Empty, int]
	timeout  time.Duration
}

func New(spec string, fetchCmd command.Command[command.Empty, int], timeout time.Duration) (*Scheduler, error) {
	schedule, err := cron.ParseStandard(spec)
	if err != nil {
		return nil, fmt.Errorf("parsing fetch schedule [%s]: %w", spec, err)
	}

	return &Scheduler{
		schedule: schedule,
		spec:     spec,
		fetchCmd: fetchCmd,
		timeout:  timeout,
	}, nil
}

// Run triggers fetches on the schedule until ctx is done, waiting for an in-progress fetch to finish.
func (s *Scheduler) Run(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	c := cron.New(cron.WithLocation(time.UTC))
	c.Schedule(s.schedule, cron.FuncJob(func() {
		s.fetchOnce(ctx)
	}))
	c.Start()

	logger.InfoContext(ctx, "article fetch scheduler started", "schedule", s.spec)

	<-ctx.Done()

	logger.InfoContext(ctx, "article fetch scheduler stopping", "error", ctx.Err())
	<-c.Stop().Done()

	return ctx.Err()
}

func (s *Scheduler) fetchOnce(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	logger := domain.LoggerFromContext(ctx)

	select {
	case <-ctx.Done():
		logger.InfoContext(ctx, "scheduler context is done", "error", ctx.Err())
		return
	default:
	}

	queued, err := s.fetchCmd.Execute(ctx, command.Empty{})
	if err != nil {
		logger.ErrorContext(ctx, "scheduled article fetch failed", "error", err, "queued", queued)
		return
	}

	logger.InfoContext(ctx, "scheduled article fetch complete", "queued", queued)
}
