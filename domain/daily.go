package domain

import (
	"context"
	"time"
)

// DateLayout is the format of Sentence.Date and the submission gate
const DateLayout = "2006-01-02"

// Clock provides the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock in Location, or the process local zone
// when Location is nil.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}
	return time.Now().In(c.Location)
}

// DayStatus tells whether the profile may still submit today
type DayStatus struct {
	Today     string `json:"today"`
	Submitted bool   `json:"submitted"`
}

// GateRepository persists the submission gate
type GateRepository interface {
	// Get returns the gate date, or "" when absent.
	Get(ctx context.Context, profile string) (string, error)
	Set(ctx context.Context, profile, date string) error
	Clear(ctx context.Context, profile string) error
}

// DailyPolicy owns the notion of "today" and the one-per-day gate
type DailyPolicy interface {
	Today() string

	// Normalize seeds a first-run collection, or clears the gate when no
	// sentence is dated today.
	Normalize(ctx context.Context, profile string) error

	HasSubmitted(ctx context.Context, profile string) (bool, error)
	MarkSubmitted(ctx context.Context, profile, date string) error
}
