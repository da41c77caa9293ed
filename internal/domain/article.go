package domain

import (
	"time"
)

// Article is a stored news article. URL is unique across articles.
type Article struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_date"`
	Source      string    `json:"source"`
}

// ArticleListItem is the projection of an Article served by listings.
type ArticleListItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	PublishedAt time.Time `json:"published_date"`
	Source      string    `json:"source"`
}

func (a Article) ListItem() ArticleListItem {
	return ArticleListItem{
		ID:          a.ID,
		Title:       a.Title,
		URL:         a.URL,
		PublishedAt: a.PublishedAt,
		Source:      a.Source,
	}
}

type ArticleListMetadata struct {
	TotalRows int64 `json:"total_rows"`
	Page      int   `json:"page"`
	PageSize  int   `json:"page_size"`
}

type ArticleListOptions struct {
	Page, PageSize int
}

// ArticleUpsert carries the fields written when a feed item is stored.
type ArticleUpsert struct {
	URL         string
	Title       string
	Content     string
	PublishedAt time.Time
	Source      string
}
