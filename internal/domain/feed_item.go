package domain

// FeedItem is a single article as delivered by a news feed, before it is stored.
// The JSON shape follows the NewsAPI article object and is also used on the article queue.
type FeedItem struct {
	URL         string         `json:"url"`
	Title       string         `json:"title"`
	Content     string         `json:"content"`
	PublishedAt string         `json:"publishedAt"`
	Source      FeedItemSource `json:"source"`
}

type FeedItemSource struct {
	Name string `json:"name"`
}
