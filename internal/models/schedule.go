package models

import "time"

// ScheduleItem is one entry of today's schedule, normalized from whichever
// source produced it. Immutable once returned to a caller.
type ScheduleItem struct {
	Title    string    `json:"title"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
	Location string    `json:"location,omitempty"`
	AllDay   bool      `json:"all_day"`
}

// CreateScheduleRequest is the payload for creating a calendar event.
// Validated with go-playground/validator before any remote call.
type CreateScheduleRequest struct {
	Title    string    `json:"title" validate:"required"`
	StartAt  time.Time `json:"start_at" validate:"required"`
	EndAt    time.Time `json:"end_at" validate:"required,gtefield=StartAt"`
	Location string    `json:"location,omitempty"`
	AllDay   bool      `json:"all_day,omitempty"`
}
