// Package memqueue is an in-process article queue drained by a fixed pool of workers.
package memqueue

import (
	"context"
	"errors"
	"sync"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
	"golang.org/x/sync/errgroup"
)

// ErrClosed is returned by Enqueue after Close.
var ErrClosed = errors.New("queue is closed")

var _ datasources.ArticleQueue = (*Queue)(nil)

type Queue struct {
	items   chan domain.FeedItem
	workers int
	handler datasources.FeedItemHandler

	mu     sync.RWMutex
	closed bool
}

func New(capacity, workers int, handler datasources.FeedItemHandler) *Queue {
	if workers < 1 {
		workers = 1
	}

	return &Queue{
		items:   make(chan domain.FeedItem, capacity),
		workers: workers,
		handler: handler,
	}
}

// Enqueue blocks until the item is accepted, the context is done, or the queue is closed.
func (q *Queue) Enqueue(ctx context.Context, item domain.FeedItem) error {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		return ErrClosed
	}

	select {
	case q.items <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Close stops accepting items. Workers finish the items already queued and Run returns.
func (q *Queue) Close(_ context.Context) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.closed {
		q.closed = true
		close(q.items)
	}
}

// Run processes queued items until the queue is closed and drained, or ctx is done.
// Handler failures are logged and do not stop the workers.
func (q *Queue) Run(ctx context.Context) error {
	grp, grpCtx := errgroup.WithContext(ctx)

	for range q.workers {
		grp.Go(func() error {
			return q.work(grpCtx)
		})
	}

	return grp.Wait()
}

func (q *Queue) work(ctx context.Context) error {
	logger := domain.LoggerFromContext(ctx)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case item, ok := <-q.items:
			if !ok {
				return nil
			}

			if err := q.handler(ctx, item); err != nil {
				logger.ErrorContext(ctx, "error processing queued article", "error", err, "url", item.URL)
			}
		}
	}
}
