package models

import "time"

// NewsItem is one normalized feed entry. Items missing Link or PublishedAt
// are dropped during normalization and never reach callers.
type NewsItem struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Source      string    `json:"source"`
	PublishedAt time.Time `json:"published_at"`
	Summary     string    `json:"summary"`
}

// Category is the closed set of news tabs the dashboard serves.
type Category string

const (
	CategoryAI      Category = "ai"
	CategoryEconomy Category = "economy"
	CategoryIkehaya Category = "ikehaya"
)

// Categories lists every valid category in display order.
var Categories = []Category{CategoryAI, CategoryEconomy, CategoryIkehaya}

// ParseCategory validates a raw query value against the closed enum.
func ParseCategory(s string) (Category, bool) {
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	return "", false
}
