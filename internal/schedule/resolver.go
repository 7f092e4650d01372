package schedule

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/bilgisen/dayboard/internal/cache"
	"github.com/bilgisen/dayboard/internal/config"
	"github.com/bilgisen/dayboard/internal/errs"
	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
)

// cacheKeyToday is the single shared slot for today's schedule.
const cacheKeyToday = "schedule:today"

// RemoteSource is the managed calendar service. The resolver treats it as
// the highest-priority stage and the only one that can create events.
type RemoteSource interface {
	ListDay(ctx context.Context, w Window) ([]models.ScheduleItem, error)
	CreateEvent(ctx context.Context, req models.CreateScheduleRequest) (models.ScheduleItem, error)
}

// FeedSource is the calendar-feed fallback stage.
type FeedSource interface {
	ListDay(ctx context.Context, w Window) ([]models.ScheduleItem, error)
}

// Resolver orchestrates the schedule fallback chain with cache-aside
// semantics: remote service, then calendar feed, then built-in defaults.
// A stage is consulted only when every stage before it errored or came back
// empty, so reads never fail outright.
type Resolver struct {
	cache    cache.Store
	ttl      time.Duration
	remote   RemoteSource // nil when no credentials are configured
	feed     FeedSource   // nil when no feed URL is configured
	validate *validator.Validate
}

// NewResolver wires the resolver to an explicitly constructed cache and the
// configured sources. Either source may be nil; its stage is then skipped.
// A non-positive TTL is coerced to the default.
func NewResolver(store cache.Store, ttl time.Duration, remote RemoteSource, feed FeedSource) *Resolver {
	if ttl <= 0 {
		ttl = config.DefaultCacheTTL
	}
	return &Resolver{
		cache:    store,
		ttl:      ttl,
		remote:   remote,
		feed:     feed,
		validate: validator.New(),
	}
}

// GetToday returns the events visible today. force bypasses the cache read
// but the result is still written back.
func (r *Resolver) GetToday(ctx context.Context, force bool) []models.ScheduleItem {
	if !force {
		if v, ok := r.cache.Get(cacheKeyToday); ok {
			return v.([]models.ScheduleItem)
		}
	}

	w := Today()
	items := r.resolve(ctx, w)

	r.cache.Set(cacheKeyToday, items, r.ttl)
	return items
}

// resolve runs the fallback chain for the given window. Each stage's
// failure is logged and degrades to the next stage; the compiled-in default
// table cannot fail.
func (r *Resolver) resolve(ctx context.Context, w Window) []models.ScheduleItem {
	if r.remote != nil {
		items, err := r.remote.ListDay(ctx, w)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("Remote calendar stage failed, falling back")
		case len(items) > 0:
			return items
		}
	}

	if r.feed != nil {
		items, err := r.feed.ListDay(ctx, w)
		switch {
		case err != nil:
			logger.Warn().Err(err).Msg("Calendar feed stage failed, falling back")
		case len(items) > 0:
			return items
		}
	}

	logger.Info().Msg("Serving built-in default schedule")
	return DefaultSchedule(w)
}

// CreateEvent validates the request and submits it to the remote service.
// Creation has no degraded mode: without a configured remote stage it fails
// fast. On success the today slot is invalidated so the next read includes
// the new event.
func (r *Resolver) CreateEvent(ctx context.Context, req models.CreateScheduleRequest) (models.ScheduleItem, error) {
	if r.remote == nil {
		return models.ScheduleItem{}, fmt.Errorf("%w: remote calendar", errs.ErrNotConfigured)
	}
	if err := r.validate.Struct(req); err != nil {
		return models.ScheduleItem{}, fmt.Errorf("%w: %v", errs.ErrInvalidArgument, err)
	}

	item, err := r.remote.CreateEvent(ctx, req)
	if err != nil {
		return models.ScheduleItem{}, err
	}

	r.cache.Delete(cacheKeyToday)

	logger.Info().
		Str("title", item.Title).
		Time("start_at", item.StartAt).
		Msg("Created calendar event")

	return item, nil
}
