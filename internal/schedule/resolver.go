package schedule

import (
	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// IsBooked reports whether a candidate slot [start, start+sessionInterval)
// overlaps any active booking of the day. Completed and cancelled bookings
// never block a slot.
func IsBooked(start types.TimeString, sessionIntervalMinutes int, bookings []*domain.Booking) bool {
	candidate := NewInterval(start, sessionIntervalMinutes)
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if candidate.Overlaps(BookingInterval(booking)) {
			return true
		}
	}
	return false
}

// HasConflict reports whether a proposed appointment [start, start+duration)
// overlaps any active booking of the day. This is the write-path counterpart
// of IsBooked; both reduce to Interval.Overlaps so the calendar and the
// validator can never disagree.
func HasConflict(start types.TimeString, durationMinutes int, bookings []*domain.Booking) bool {
	proposed := NewInterval(start, durationMinutes)
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if proposed.Overlaps(BookingInterval(booking)) {
			return true
		}
	}
	return false
}
