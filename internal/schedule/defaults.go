package schedule

import (
	"time"

	"github.com/bilgisen/dayboard/internal/models"
)

// DefaultSchedule is the compiled-in placeholder served when every other
// stage came back empty. Entries are anchored to the window's day so the
// dashboard always shows a plausible agenda.
func DefaultSchedule(w Window) []models.ScheduleItem {
	at := func(hour, min int) time.Time {
		d := w.Start
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, d.Location())
	}

	return []models.ScheduleItem{
		{
			Title:    "Morning stand-up",
			StartAt:  at(9, 0),
			EndAt:    at(9, 30),
			Location: "Online",
		},
		{
			Title:    "Lunch meeting",
			StartAt:  at(12, 0),
			EndAt:    at(13, 0),
			Location: "Shibuya office",
		},
		{
			Title:    "Deck preparation",
			StartAt:  at(15, 0),
			EndAt:    at(17, 30),
			Location: "Home",
		},
	}
}
