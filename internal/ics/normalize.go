package ics

import (
	"sort"
	"strings"

	ical "github.com/arran4/golang-ical"
	"github.com/teambition/rrule-go"

	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/models"
	"github.com/bilgisen/dayboard/internal/schedule"
)

// maxOccurrences caps recurrence expansion per event so a malformed or
// unbounded RRULE cannot spin forever.
const maxOccurrences = 500

const untitledEvent = "(no title)"

// Normalize parses an ICS payload and returns the events overlapping the
// window, ascending by start time.
//
// Failures are contained at two levels: a payload that does not parse yields
// an empty result (logged as a warning), and a VEVENT that cannot be
// normalized or expanded is skipped without affecting its siblings.
func Normalize(body string, w schedule.Window) []models.ScheduleItem {
	cal, err := ical.ParseCalendar(strings.NewReader(body))
	if err != nil {
		logger.Warn().Err(err).Msg("Calendar feed parse failed")
		return []models.ScheduleItem{}
	}

	items := make([]models.ScheduleItem, 0)
	for _, ve := range cal.Events() {
		item, ok := normalizeEvent(ve, w)
		if ok {
			items = append(items, item)
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartAt.Before(items[j].StartAt)
	})
	return items
}

// normalizeEvent resolves a single VEVENT against the window. The primary
// occurrence wins; only when it misses the window is the recurrence rule
// consulted for the first occurrence that hits it.
func normalizeEvent(ve *ical.VEvent, w schedule.Window) (models.ScheduleItem, bool) {
	start, err := ve.GetStartAt()
	if err != nil {
		start, err = ve.GetAllDayStartAt()
		if err != nil {
			logger.Warn().Err(err).Msg("Skipping VEVENT without a usable DTSTART")
			return models.ScheduleItem{}, false
		}
	}

	// Missing DTEND means a zero-duration event; it goes through the same
	// half-open overlap test as everything else.
	end, err := ve.GetEndAt()
	if err != nil {
		if allDayEnd, allDayErr := ve.GetAllDayEndAt(); allDayErr == nil {
			end = allDayEnd
		} else {
			end = start
		}
	}

	item := models.ScheduleItem{
		Title:    summaryOf(ve),
		StartAt:  start,
		EndAt:    end,
		Location: locationOf(ve),
		AllDay:   isAllDay(ve),
	}

	if schedule.Overlaps(start, end, w.Start, w.End) {
		return item, true
	}

	if raw := rawRRule(ve); raw != "" {
		return firstOccurrenceIn(item, raw, w)
	}

	return models.ScheduleItem{}, false
}

// firstOccurrenceIn walks the recurrence rule from the event's DTSTART and
// returns the first occurrence overlapping the window. Occurrences are
// monotonically increasing, so the scan stops as soon as one starts past the
// window end, and never evaluates more than maxOccurrences candidates.
func firstOccurrenceIn(base models.ScheduleItem, rawRule string, w schedule.Window) (models.ScheduleItem, bool) {
	r, err := rrule.StrToRRule(rawRule)
	if err != nil {
		logger.Warn().
			Err(err).
			Str("title", base.Title).
			Str("rrule", rawRule).
			Msg("Recurrence expansion failed")
		return models.ScheduleItem{}, false
	}
	r.DTStart(base.StartAt)

	duration := base.EndAt.Sub(base.StartAt)
	next := r.Iterator()

	for i := 0; i < maxOccurrences; i++ {
		occStart, ok := next()
		if !ok {
			break
		}
		occEnd := occStart.Add(duration)

		if schedule.Overlaps(occStart, occEnd, w.Start, w.End) {
			occ := base
			occ.StartAt = occStart
			occ.EndAt = occEnd
			return occ, true
		}
		if occStart.After(w.End) {
			break
		}
	}

	return models.ScheduleItem{}, false
}

func summaryOf(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil && p.Value != "" {
		return p.Value
	}
	return untitledEvent
}

func locationOf(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyLocation); p != nil {
		return p.Value
	}
	return ""
}

func rawRRule(ve *ical.VEvent) string {
	if p := ve.GetProperty(ical.ComponentPropertyRrule); p != nil {
		return p.Value
	}
	return ""
}

// isAllDay detects date-only events: DTSTART with VALUE=DATE, or a value in
// the bare YYYYMMDD form.
func isAllDay(ve *ical.VEvent) bool {
	p := ve.GetProperty(ical.ComponentPropertyDtStart)
	if p == nil {
		return false
	}
	if params := p.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			return true
		}
	}
	return !strings.Contains(p.Value, "T")
}
