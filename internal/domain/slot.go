package domain

import (
	"time"

	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// Slot represents one offerable appointment start time.
// Slots are derived from the profile and the day's active bookings on every
// read; they are never persisted.
type Slot struct {
	Time     types.TimeString // "10:00"
	Label    string           // "10:00 AM"
	IsBooked bool
}

// DaySchedule is one local calendar day of the rendered availability calendar
type DaySchedule struct {
	Date     time.Time
	DayLabel string // "Tuesday"
	IsDayOff bool
	Slots    []Slot
}

// Service is one bookable service offered by an artist
type Service struct {
	ID              int64
	ArtistID        int64
	Name            string
	DurationMinutes int
	Price           float64
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveDuration returns the service duration, defaulting when unset
func (s *Service) EffectiveDuration() int {
	if s.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return s.DurationMinutes
}
