package schedule

import "time"

// Window is the local-time interval a schedule read covers.
type Window struct {
	Start time.Time
	End   time.Time
}

// Today returns the current local day as [midnight, midnight+24h-1ms].
// It must be recomputed per request; "today" rolls over at midnight.
func Today() Window {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	end := start.Add(24*time.Hour - time.Millisecond)
	return Window{Start: start, End: end}
}

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Both intervals are half-open: touching at a boundary is not an overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Contains reports whether t falls inside the window per the same half-open
// rule, treating t as a zero-duration interval.
func (w Window) Contains(t time.Time) bool {
	return Overlaps(t, t, w.Start, w.End)
}
