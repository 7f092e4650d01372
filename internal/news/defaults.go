package news

import (
	"time"

	"github.com/bilgisen/dayboard/internal/models"
)

// DefaultNews is the compiled-in placeholder set served when a category's
// merged result is empty. Timestamps are relative to now so the list always
// reads as recent.
func DefaultNews(category models.Category) []models.NewsItem {
	now := time.Now()

	switch category {
	case models.CategoryAI:
		return []models.NewsItem{
			{
				Title:       "New technique speeds up large language model inference",
				Link:        "https://example.com/ai/1",
				Source:      "Example AI",
				PublishedAt: now.Add(-5 * time.Minute),
				Summary:     "Researchers announce an inference optimization that keeps accuracy while cutting latency.",
			},
			{
				Title:       "Generative AI reshapes UX workflows",
				Link:        "https://example.com/ai/2",
				Source:      "Example AI",
				PublishedAt: now.Add(-1 * time.Hour),
				Summary:     "From prototyping to production, generative tooling keeps gaining ground.",
			},
			{
				Title:       "Image model benchmark refreshed",
				Link:        "https://example.com/ai/3",
				Source:      "Example AI",
				PublishedAt: now.Add(-2 * time.Hour),
				Summary:     "Top models swap places under the updated evaluation suite.",
			},
		}
	case models.CategoryEconomy:
		return []models.NewsItem{
			{
				Title:       "Central bank holds interest rates steady",
				Link:        "https://example.com/economy/1",
				Source:      "Example Economy",
				PublishedAt: now.Add(-10 * time.Minute),
				Summary:     "Markets react as expected; currency moves stay muted.",
			},
			{
				Title:       "Jobs report beats expectations",
				Link:        "https://example.com/economy/2",
				Source:      "Example Economy",
				PublishedAt: now.Add(-90 * time.Minute),
				Summary:     "Employment figures confirm a resilient labor market.",
			},
			{
				Title:       "Raw material prices stay elevated",
				Link:        "https://example.com/economy/3",
				Source:      "Example Economy",
				PublishedAt: now.Add(-3 * time.Hour),
				Summary:     "Manufacturers face prolonged cost pressure and pass-through decisions.",
			},
		}
	case models.CategoryIkehaya:
		return []models.NewsItem{
			{
				Title:       "Ikehaya's new post: latest Web3 trends",
				Link:        "https://example.com/ikehaya/1",
				Source:      "Ikehaya Blog",
				PublishedAt: now.Add(-15 * time.Minute),
				Summary:     "Community-driven projects are on the rise; here is what to watch.",
			},
			{
				Title:       "How to grow your personal reach",
				Link:        "https://example.com/ikehaya/2",
				Source:      "Ikehaya Blog",
				PublishedAt: now.Add(-2 * time.Hour),
				Summary:     "Consistency and systems beat bursts of effort; practical tips inside.",
			},
			{
				Title:       "Crypto market outlook",
				Link:        "https://example.com/ikehaya/3",
				Source:      "Ikehaya Blog",
				PublishedAt: now.Add(-5 * time.Hour),
				Summary:     "Position for volatility and keep a long-term stance.",
			},
		}
	}
	return nil
}
