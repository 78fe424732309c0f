package domain

import "time"

// Default availability profile values, applied by ResolveSettings when the
// stored settings blob is missing a field. The 10:00-20:00 window is the
// authoritative one; the legacy admin calendar carried a stale copy.
const (
	DefaultStartHour              = 10
	DefaultEndHour                = 20
	DefaultSessionIntervalMinutes = 60
	DefaultServiceDurationMinutes = 60
)

// DefaultWorkingDays Tue-Sat; Sunday and Monday are the designated days off
var DefaultWorkingDays = []time.Weekday{
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
	time.Saturday,
}

// Business validation constants
const (
	MinSessionIntervalMinutes   = 5
	MaxSessionIntervalMinutes   = 240
	MaxCalendarDays             = 31
	DefaultCalendarDays         = 7
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, занимающие слоты в календаре
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses терминальные статусы, освобождающие слот
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
