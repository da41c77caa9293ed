package domain

import "time"

const (
	// SummaryCacheTTL is how long a generated summary is reused.
	SummaryCacheTTL = 24 * time.Hour

	// SummaryCacheNamespace names the cache reserved for article summaries.
	SummaryCacheNamespace = "summaries"

	summaryCacheKeyPrefix      = "summary:"
	summaryCacheKeyTitleLength = 50
)

// ArticleSummary is the result of a summary request.
// Cached reports whether Summary came from the cache rather than a fresh generation.
type ArticleSummary struct {
	Summary string `json:"summary"`
	Cached  bool   `json:"cached"`
}

// SummaryCacheKey derives the cache key for an article summary from the first
// 50 characters of its title. Content is not part of the key, so two articles
// whose titles share that prefix share one cached summary.
func SummaryCacheKey(title string) string {
	runes := []rune(title)
	if len(runes) > summaryCacheKeyTitleLength {
		runes = runes[:summaryCacheKeyTitleLength]
	}

	return summaryCacheKeyPrefix + string(runes)
}
