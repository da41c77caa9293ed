package command

import (
	"context"

	"github.com/news-summarizer/news-summarizer/internal/datasources"
	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// SummarizeArticle produces article summaries, reusing a cached summary for the same title
// while it is fresh.
//
// Concurrent misses on one key are not coalesced: each calls the Summarizer and the last
// write to the cache wins.
type SummarizeArticle struct {
	Cache      datasources.SummaryCache
	Summarizer datasources.Summarizer
}

func NewSummarizeArticle(cache datasources.SummaryCache, summarizer datasources.Summarizer) *SummarizeArticle {
	return &SummarizeArticle{
		Cache:      cache,
		Summarizer: summarizer,
	}
}

// Summarize returns the summary for an article and whether it came from the cache.
// It never fails; cache store errors degrade to generating a fresh summary.
//
// The provider call and the cache write are detached from ctx cancellation, so a caller
// that goes away cannot leave a cancellation error cached as the summary. The Summarizer
// still bounds the call with its own timeout.
func (c *SummarizeArticle) Summarize(ctx context.Context, title, content string) domain.ArticleSummary {
	logger := domain.LoggerFromContext(ctx)
	key := domain.SummaryCacheKey(title)

	cached, found, err := c.Cache.Get(ctx, key)
	if err != nil {
		logger.WarnContext(ctx, "failed to read summary cache, generating summary", "error", err, "title", title)
	} else if found {
		logger.InfoContext(ctx, "summary cache hit", "title", title)
		return domain.ArticleSummary{Summary: cached, Cached: true}
	}

	logger.InfoContext(ctx, "summary cache miss, generating summary", "title", title)
	genCtx := context.WithoutCancel(ctx)
	summary := c.Summarizer.SummarizeArticle(genCtx, title, content)

	if err := c.Cache.Set(genCtx, key, summary, domain.SummaryCacheTTL); err != nil {
		logger.WarnContext(ctx, "failed to store summary in cache", "error", err, "title", title)
	}

	return domain.ArticleSummary{Summary: summary, Cached: false}
}
