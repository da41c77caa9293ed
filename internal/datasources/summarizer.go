package datasources

import (
	"context"
	"fmt"

	"github.com/news-summarizer/news-summarizer/internal/domain"
)

// Summarizer turns an article into a short summary.
// Implementations never fail: problems are reported in the returned text.
type Summarizer interface {
	SummarizeArticle(ctx context.Context, title, content string) string
}

const (
	// SystemPrompt is the instruction given to every summarization provider.
	SystemPrompt = "You are an expert news summarizer. Your task is to provide a concise, " +
		"objective summary of the provided article content. Keep the summary under 100 words."

	// SummaryTemperature keeps provider output close to deterministic.
	SummaryTemperature = 0.3
)

// SummaryUserPrompt builds the user message sent to a provider.
func SummaryUserPrompt(title, content string) string {
	return fmt.Sprintf("Title: %s\n\nContent:\n%s", title, content)
}

// ProviderAPIErrorSummary is returned in place of a summary when the provider rejects the request.
func ProviderAPIErrorSummary(err error) string {
	return fmt.Sprintf("Provider API Error: Could not summarize the article (%v).", err)
}

// GeneralErrorSummary is returned in place of a summary on any other failure.
func GeneralErrorSummary(err error) string {
	return fmt.Sprintf("General summarization error: (%v).", err)
}

// UnavailableSummarizer stands in for a provider that is not configured.
// It returns a fallback summary without any network I/O.
type UnavailableSummarizer struct {
	Reason string
}

var _ Summarizer = UnavailableSummarizer{}

func (s UnavailableSummarizer) SummarizeArticle(ctx context.Context, title, _ string) string {
	logger := domain.LoggerFromContext(ctx)
	logger.WarnContext(ctx, "summarization provider is unavailable, falling back to a mock summary",
		"reason", s.Reason, "title", title)

	return FallbackSummary(title)
}

// FallbackSummary is the placeholder used when no provider is configured.
func FallbackSummary(title string) string {
	return fmt.Sprintf("**Mock Summary (Fallback):** The article discusses the topic %s. "+
		"An API key must be configured.", title)
}
