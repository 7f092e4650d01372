package gcal

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"

	"github.com/bilgisen/dayboard/internal/errs"
	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
	"github.com/bilgisen/dayboard/internal/schedule"
)

const dateOnly = "2006-01-02"

// Client talks to the managed calendar on behalf of a service account.
// It makes no fallback decisions; every failure surfaces as a typed error
// for the resolver to act on. It implements schedule.RemoteSource.
type Client struct {
	service    *calendar.Service
	calendarID string
}

// NewClient builds an authenticated calendar client from a validated
// credential and a calendar identifier.
func NewClient(ctx context.Context, cred Credential, calendarID string) (*Client, error) {
	if err := cred.Validate(); err != nil {
		return nil, err
	}
	if calendarID == "" {
		return nil, fmt.Errorf("%w: missing calendar id", errs.ErrNotConfigured)
	}

	conf := &jwt.Config{
		Email:      cred.ClientEmail,
		PrivateKey: []byte(cred.PrivateKey),
		Scopes:     []string{calendar.CalendarEventsScope},
		TokenURL:   google.JWTTokenURL,
	}

	service, err := calendar.NewService(ctx, option.WithTokenSource(conf.TokenSource(ctx)))
	if err != nil {
		return nil, fmt.Errorf("%w: create calendar service: %v", errs.ErrSourceUnavailable, err)
	}

	return &Client{service: service, calendarID: calendarID}, nil
}

// ListDay fetches the events intersecting the window, with recurring events
// pre-expanded by the remote service.
func (c *Client) ListDay(ctx context.Context, w schedule.Window) ([]models.ScheduleItem, error) {
	events, err := c.service.Events.List(c.calendarID).
		ShowDeleted(false).
		SingleEvents(true).
		TimeMin(w.Start.Format(time.RFC3339)).
		TimeMax(w.End.Format(time.RFC3339)).
		OrderBy("startTime").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("%w: list events: %v", errs.ErrSourceUnavailable, err)
	}

	items := make([]models.ScheduleItem, 0, len(events.Items))
	for _, ev := range events.Items {
		item, ok := eventToItem(ev)
		if !ok {
			logger.Warn().
				Str("event_id", ev.Id).
				Msg("Skipping remote event without usable boundaries")
			continue
		}
		items = append(items, item)
	}

	logger.Debug().
		Int("count", len(items)).
		Str("calendar_id", c.calendarID).
		Msg("Fetched remote calendar events")

	return items, nil
}

// CreateEvent submits a validated creation request and returns the created
// event normalized to a ScheduleItem.
func (c *Client) CreateEvent(ctx context.Context, req models.CreateScheduleRequest) (models.ScheduleItem, error) {
	if req.Title == "" || req.StartAt.IsZero() || req.EndAt.IsZero() {
		return models.ScheduleItem{}, fmt.Errorf("%w: title, start_at and end_at are required", errs.ErrInvalidArgument)
	}

	ev := &calendar.Event{
		Summary:  req.Title,
		Location: req.Location,
	}
	if req.AllDay {
		// Date-only boundaries; the end date is the day after the last
		// included day, per the remote service's exclusive-end convention.
		ev.Start = &calendar.EventDateTime{Date: req.StartAt.Format(dateOnly)}
		ev.End = &calendar.EventDateTime{Date: dayAfter(req.EndAt).Format(dateOnly)}
	} else {
		ev.Start = &calendar.EventDateTime{DateTime: req.StartAt.Format(time.RFC3339)}
		ev.End = &calendar.EventDateTime{DateTime: req.EndAt.Format(time.RFC3339)}
	}

	created, err := c.service.Events.Insert(c.calendarID, ev).Context(ctx).Do()
	if err != nil {
		return models.ScheduleItem{}, fmt.Errorf("%w: insert event: %v", errs.ErrSourceUnavailable, err)
	}

	return createdToItem(created, req), nil
}

// eventToItem maps a remote event to a ScheduleItem. AllDay is true iff the
// event carries a date-only start rather than a date-time.
func eventToItem(ev *calendar.Event) (models.ScheduleItem, bool) {
	if ev == nil || ev.Start == nil {
		return models.ScheduleItem{}, false
	}

	allDay := ev.Start.Date != ""
	start, ok := parseBoundary(ev.Start)
	if !ok {
		return models.ScheduleItem{}, false
	}
	end, ok := parseBoundary(ev.End)
	if !ok {
		end = start
	}

	return models.ScheduleItem{
		Title:    ev.Summary,
		StartAt:  start,
		EndAt:    end,
		Location: ev.Location,
		AllDay:   allDay,
	}, true
}

// createdToItem normalizes an insert response, falling back to the request
// values for any field the remote service omitted.
func createdToItem(ev *calendar.Event, req models.CreateScheduleRequest) models.ScheduleItem {
	item, ok := eventToItem(ev)
	if !ok {
		item = models.ScheduleItem{}
	}
	if item.Title == "" {
		item.Title = req.Title
	}
	if item.StartAt.IsZero() {
		item.StartAt = req.StartAt
	}
	if item.EndAt.IsZero() {
		item.EndAt = req.EndAt
	}
	if item.Location == "" {
		item.Location = req.Location
	}
	if !ok {
		item.AllDay = req.AllDay
	}
	return item
}

func parseBoundary(b *calendar.EventDateTime) (time.Time, bool) {
	if b == nil {
		return time.Time{}, false
	}
	if b.Date != "" {
		t, err := time.ParseInLocation(dateOnly, b.Date, time.Local)
		return t, err == nil
	}
	if b.DateTime != "" {
		t, err := time.Parse(time.RFC3339, b.DateTime)
		return t, err == nil
	}
	return time.Time{}, false
}

func dayAfter(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location()).AddDate(0, 0, 1)
}
