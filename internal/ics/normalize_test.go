package ics

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/bilgisen/dayboard/internal/logger"
	"github.com/bilgisen/dayboard/internal/schedule"
)

func TestMain(m *testing.M) {
	logger.Init(logger.Config{Level: "error", Output: "stderr"})
	os.Exit(m.Run())
}

// windowUTC is a fixed day so tests are independent of wall-clock time:
// 2025-06-10 in UTC.
func windowUTC() schedule.Window {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	return schedule.Window{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}
}

func calendarWith(events ...string) string {
	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:-//test//EN",
	}
	for _, ev := range events {
		lines = append(lines, "BEGIN:VEVENT")
		lines = append(lines, strings.Split(ev, "\n")...)
		lines = append(lines, "END:VEVENT")
	}
	lines = append(lines, "END:VCALENDAR")
	return strings.Join(lines, "\r\n") + "\r\n"
}

func TestNormalizeTimedEventInWindow(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Planning\nLOCATION:Room 2\nDTSTART:20250610T090000Z\nDTEND:20250610T100000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	got := items[0]
	if got.Title != "Planning" || got.Location != "Room 2" || got.AllDay {
		t.Errorf("unexpected item: %+v", got)
	}
	want := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	if !got.StartAt.Equal(want) {
		t.Errorf("StartAt = %v, want %v", got.StartAt, want)
	}
	if !got.EndAt.Equal(want.Add(time.Hour)) {
		t.Errorf("EndAt = %v, want %v", got.EndAt, want.Add(time.Hour))
	}
}

func TestNormalizeFiltersEventsOutsideWindow(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Yesterday\nDTSTART:20250609T090000Z\nDTEND:20250609T100000Z",
		"UID:2@test\nSUMMARY:Tomorrow\nDTSTART:20250611T090000Z\nDTEND:20250611T100000Z",
		"UID:3@test\nSUMMARY:Today\nDTSTART:20250610T140000Z\nDTEND:20250610T150000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 || items[0].Title != "Today" {
		t.Fatalf("expected only the in-window event, got %+v", items)
	}
}

func TestNormalizeSortsAscendingByStart(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Late\nDTSTART:20250610T160000Z\nDTEND:20250610T170000Z",
		"UID:2@test\nSUMMARY:Early\nDTSTART:20250610T080000Z\nDTEND:20250610T090000Z",
		"UID:3@test\nSUMMARY:Middle\nDTSTART:20250610T120000Z\nDTEND:20250610T130000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, want := range []string{"Early", "Middle", "Late"} {
		if items[i].Title != want {
			t.Errorf("items[%d] = %q, want %q", i, items[i].Title, want)
		}
	}
}

func TestNormalizeAllDayEvent(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Conference\nDTSTART;VALUE=DATE:20250610\nDTEND;VALUE=DATE:20250611",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].AllDay {
		t.Error("expected date-only event to be flagged all-day")
	}
}

func TestNormalizeMissingEndIsZeroDuration(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Ping\nDTSTART:20250610T120000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if !items[0].EndAt.Equal(items[0].StartAt) {
		t.Errorf("expected zero-duration event, got end %v", items[0].EndAt)
	}
}

func TestNormalizeMissingSummaryGetsPlaceholder(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nDTSTART:20250610T120000Z\nDTEND:20250610T130000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 || items[0].Title != untitledEvent {
		t.Fatalf("expected placeholder title, got %+v", items)
	}
}

func TestNormalizeRecurringEventFirstOccurrence(t *testing.T) {
	// Daily 09:00-10:00 since June 1st; only the June 10th occurrence is
	// inside the window, and only that one must be emitted.
	body := calendarWith(
		"UID:1@test\nSUMMARY:Daily sync\nDTSTART:20250601T090000Z\nDTEND:20250601T100000Z\nRRULE:FREQ=DAILY",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(items))
	}
	want := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	if !items[0].StartAt.Equal(want) {
		t.Errorf("StartAt = %v, want %v", items[0].StartAt, want)
	}
	if !items[0].EndAt.Equal(want.Add(time.Hour)) {
		t.Errorf("EndAt = %v, want first occurrence keeping the base duration", items[0].EndAt)
	}
}

func TestNormalizeRecurringEventPastWindowStops(t *testing.T) {
	// Weekly from Wednesday June 4th; occurrences hit June 4 and June 11,
	// both outside the June 10 window, so nothing is emitted.
	body := calendarWith(
		"UID:1@test\nSUMMARY:Weekly review\nDTSTART:20250604T090000Z\nDTEND:20250604T100000Z\nRRULE:FREQ=WEEKLY",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 0 {
		t.Fatalf("expected no occurrences, got %+v", items)
	}
}

func TestNormalizeRecurrenceGuardCapsExpansion(t *testing.T) {
	// The window sits more than 500 daily occurrences past DTSTART; the
	// guard has to stop the scan before it ever reaches the window.
	start := time.Date(2027, 6, 10, 0, 0, 0, 0, time.UTC)
	w := schedule.Window{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}

	body := calendarWith(
		"UID:1@test\nSUMMARY:Far future\nDTSTART:20250601T090000Z\nDTEND:20250601T100000Z\nRRULE:FREQ=DAILY",
	)

	done := make(chan int, 1)
	go func() { done <- len(Normalize(body, w)) }()

	select {
	case n := <-done:
		if n != 0 {
			t.Fatalf("expected no occurrences past the guard, got %d", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("recurrence expansion did not terminate")
	}
}

func TestNormalizeBadRRuleSkipsEventOnly(t *testing.T) {
	body := calendarWith(
		"UID:1@test\nSUMMARY:Broken rule\nDTSTART:20250601T090000Z\nDTEND:20250601T100000Z\nRRULE:FREQ=NONSENSE",
		"UID:2@test\nSUMMARY:Fine\nDTSTART:20250610T140000Z\nDTEND:20250610T150000Z",
	)

	items := Normalize(body, windowUTC())

	if len(items) != 1 || items[0].Title != "Fine" {
		t.Fatalf("expected the healthy event to survive, got %+v", items)
	}
}

func TestNormalizeUnparseablePayloadIsEmpty(t *testing.T) {
	items := Normalize("this is not a calendar", windowUTC())
	if len(items) != 0 {
		t.Fatalf("expected empty result for garbage payload, got %+v", items)
	}
	if items == nil {
		t.Fatal("expected an empty slice, not nil")
	}
}
