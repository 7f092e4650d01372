package news

import (
	"context"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/mmcdole/gofeed"

	"github.com/bilgisen/dayboard/internal/cache"
	"github.com/bilgisen/dayboard/internal/config"
	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
)

const (
	// maxItems caps the merged result per category.
	maxItems = 20
	// maxSummaryLen caps the normalized summary length in runes.
	maxSummaryLen = 280

	untitledItem = "(no title)"
)

// Aggregator fetches a category's configured feeds in parallel, tolerating
// partial failure, and serves the merged result with cache-aside semantics.
type Aggregator struct {
	cache  cache.Store
	ttl    time.Duration
	feeds  map[models.Category][]string
	client *resty.Client
}

// NewAggregator wires the aggregator to an explicitly constructed cache and
// the per-category feed URL lists. A non-positive TTL is coerced to the
// default.
func NewAggregator(store cache.Store, ttl time.Duration, feeds map[models.Category][]string) *Aggregator {
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	return &Aggregator{
		cache: store,
		ttl:   ttl,
		feeds: feeds,
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(5 * time.Second),
	}
}

// GetNews returns at most 20 items for the category, descending by publish
// time. force bypasses the cache read but the result is still written back.
func (a *Aggregator) GetNews(ctx context.Context, category models.Category, force bool) []models.NewsItem {
	key := "news:" + string(category)

	if !force {
		if v, ok := a.cache.Get(key); ok {
			return v.([]models.NewsItem)
		}
	}

	items := a.gather(ctx, a.feeds[category])

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].PublishedAt.After(items[j].PublishedAt)
	})
	if len(items) > maxItems {
		items = items[:maxItems]
	}

	if len(items) == 0 {
		logger.Info().
			Str("category", string(category)).
			Msg("Serving built-in default news")
		items = DefaultNews(category)
	}

	a.cache.Set(key, items, a.ttl)
	return items
}

// gather fetches every feed URL concurrently. Each fetch settles on its own:
// a feed that times out or errors contributes zero items and never cancels
// its siblings. Results are merged in feed-list order so the stable sort
// breaks publish-time ties by input order.
func (a *Aggregator) gather(ctx context.Context, urls []string) []models.NewsItem {
	if len(urls) == 0 {
		return nil
	}

	batches := make([][]models.NewsItem, len(urls))
	var wg sync.WaitGroup

	for i, u := range urls {
		wg.Add(1)
		go func(slot int, feedURL string) {
			defer wg.Done()
			batches[slot] = a.fetchFeed(ctx, feedURL)
		}(i, u)
	}
	wg.Wait()

	var merged []models.NewsItem
	for _, batch := range batches {
		merged = append(merged, batch...)
	}
	return merged
}

// fetchFeed retrieves and normalizes a single feed. Failures are logged and
// reported as an empty batch.
func (a *Aggregator) fetchFeed(ctx context.Context, feedURL string) []models.NewsItem {
	resp, err := a.client.R().
		SetContext(ctx).
		Get(feedURL)
	if err != nil {
		logger.Warn().Err(err).Str("url", feedURL).Msg("Feed fetch failed")
		return nil
	}
	if resp.StatusCode() != http.StatusOK {
		logger.Warn().
			Int("status", resp.StatusCode()).
			Str("url", feedURL).
			Msg("Feed fetch returned non-OK status")
		return nil
	}

	feed, err := gofeed.NewParser().ParseString(resp.String())
	if err != nil {
		logger.Warn().Err(err).Str("url", feedURL).Msg("Feed parse failed")
		return nil
	}

	source := feed.Title
	if source == "" {
		source = hostOf(feed.Link)
	}
	if source == "" {
		source = hostOf(feedURL)
	}

	items := make([]models.NewsItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		published := publishedAt(it)
		if it.Link == "" || published == nil {
			continue
		}
		items = append(items, models.NewsItem{
			Title:       titleOf(it),
			Link:        it.Link,
			Source:      source,
			PublishedAt: *published,
			Summary:     truncate(summaryOf(it), maxSummaryLen),
		})
	}
	return items
}

func publishedAt(it *gofeed.Item) *time.Time {
	if it.PublishedParsed != nil {
		return it.PublishedParsed
	}
	return it.UpdatedParsed
}

func titleOf(it *gofeed.Item) string {
	if it.Title != "" {
		return it.Title
	}
	return untitledItem
}

func summaryOf(it *gofeed.Item) string {
	if it.Description != "" {
		return it.Description
	}
	return it.Content
}

// hostOf extracts the hostname with any leading "www." stripped, for use as
// a source label when the feed has no title.
func hostOf(raw string) string {
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return ""
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
