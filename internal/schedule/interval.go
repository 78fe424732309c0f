package schedule

import (
	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// Interval is a half-open [Start, End) range in local minutes-of-day.
// It is the single representation both the calendar read path and the booking
// write path use for conflict detection; comparing formatted time strings for
// equality is NOT an overlap check and must never reappear.
type Interval struct {
	Start int
	End   int
}

// NewInterval builds the interval occupied by something starting at start and
// lasting durationMinutes
func NewInterval(start types.TimeString, durationMinutes int) Interval {
	s := start.MinutesOfDay()
	return Interval{Start: s, End: s + durationMinutes}
}

// Overlaps reports whether the two half-open intervals intersect.
// Touching intervals (a.End == b.Start) do not overlap.
func (a Interval) Overlaps(b Interval) bool {
	return !(a.End <= b.Start || a.Start >= b.End)
}

// BookingInterval returns the interval occupied by a booking, using its
// frozen duration (defaulted when the stored value is unusable)
func BookingInterval(b *domain.Booking) Interval {
	return NewInterval(b.StartTime, b.EffectiveDuration())
}
