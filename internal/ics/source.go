package ics

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bilgisen/dayboard/internal/errs"
	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
	"github.com/bilgisen/dayboard/internal/schedule"
	"github.com/go-resty/resty/v2"
)

// Source serves today's schedule from a single ICS subscription URL.
// It implements schedule.FeedSource.
type Source struct {
	client *resty.Client
	url    string
}

// NewSource creates a Source for the given ICS URL.
func NewSource(url string) *Source {
	return &Source{
		client: resty.New().
			SetTimeout(15 * time.Second).
			SetRetryCount(2).
			SetRetryWaitTime(1 * time.Second).
			SetRetryMaxWaitTime(5 * time.Second),
		url: url,
	}
}

// ListDay fetches the calendar feed and returns the events overlapping the
// window, ascending by start time. A fetch failure is a typed error; a parse
// failure inside the payload degrades to an empty result instead (see
// Normalize).
func (s *Source) ListDay(ctx context.Context, w schedule.Window) ([]models.ScheduleItem, error) {
	body, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Normalize(body, w), nil
}

func (s *Source) fetch(ctx context.Context) (string, error) {
	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/calendar").
		Get(s.url)
	if err != nil {
		return "", fmt.Errorf("%w: ics fetch from %s: %v", errs.ErrSourceUnavailable, s.url, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d from %s", errs.ErrSourceUnavailable, resp.StatusCode(), s.url)
	}

	logger.Debug().
		Str("url", s.url).
		Int("bytes", len(resp.Body())).
		Msg("Fetched calendar feed")

	return resp.String(), nil
}
