package schedule

import (
	"testing"
	"time"
)

func TestTodayBounds(t *testing.T) {
	w := Today()
	now := time.Now()

	if w.Start.Hour() != 0 || w.Start.Minute() != 0 || w.Start.Second() != 0 || w.Start.Nanosecond() != 0 {
		t.Errorf("window start is not local midnight: %v", w.Start)
	}
	if w.Start.Day() != now.Day() {
		t.Errorf("window start is not today: %v", w.Start)
	}
	if got, want := w.End.Sub(w.Start), 24*time.Hour-time.Millisecond; got != want {
		t.Errorf("window length = %v, want %v", got, want)
	}
}

func TestOverlapsHalfOpen(t *testing.T) {
	base := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return base.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name                         string
		aStart, aEnd, bStart, bEnd   time.Time
		want                         bool
	}{
		{"contained", at(10), at(11), at(9), at(17), true},
		{"straddles start", at(8), at(10), at(9), at(17), true},
		{"straddles end", at(16), at(18), at(9), at(17), true},
		{"covers entirely", at(8), at(18), at(9), at(17), true},
		{"before", at(6), at(8), at(9), at(17), false},
		{"after", at(18), at(20), at(9), at(17), false},
		{"ends exactly at window start", at(8), at(9), at(9), at(17), false},
		{"starts exactly at window end", at(17), at(18), at(9), at(17), false},
		{"zero duration inside", at(10), at(10), at(9), at(17), true},
		{"zero duration at window start", at(9), at(9), at(9), at(17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps = %v, want %v", got, tt.want)
			}
			// The test must be symmetric in its two intervals.
			if got := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); got != tt.want {
				t.Errorf("Overlaps (swapped) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestWindowContains(t *testing.T) {
	start := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)
	w := Window{Start: start, End: start.Add(24*time.Hour - time.Millisecond)}

	if !w.Contains(start.Add(12 * time.Hour)) {
		t.Error("expected noon to be inside the window")
	}
	if w.Contains(start.Add(-time.Nanosecond)) {
		t.Error("expected instant before midnight to be outside")
	}
	if w.Contains(start) {
		t.Error("expected zero-duration instant at window start to be excluded by the half-open rule")
	}
}
