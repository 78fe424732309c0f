package domain

import (
	"time"

	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// transitions is the booking lifecycle: pending -> confirmed -> completed,
// with cancelled reachable from pending and confirmed.
// completed and cancelled are terminal and release the slot.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ParseBookingStatus validates a raw status string
func ParseBookingStatus(s string) (BookingStatus, bool) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), true
	}
	return "", false
}

// CanTransitionTo reports whether the status change from s to next is legal
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true for statuses that no longer occupy the calendar
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// Booking represents one appointment with an artist.
//
// BookingDate and StartTime are local wall-clock values in the platform
// operating timezone. DurationMinutes is frozen at acceptance time from the
// requested service; later edits to the service must not change the occupied
// interval of existing bookings.
type Booking struct {
	ID              int64
	ArtistID        int64
	UserID          int64
	ServiceID       int64
	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized service data for history
	ServiceName  string
	ServicePrice float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking occupies the calendar
// (only pending and confirmed bookings block slots)
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status.CanTransitionTo(StatusCancelled)
}

// EffectiveDuration returns the frozen duration, falling back to the default
// session length when the stored value is missing or invalid
func (b *Booking) EffectiveDuration() int {
	if b.DurationMinutes <= 0 {
		return DefaultServiceDurationMinutes
	}
	return b.DurationMinutes
}

// ArtistBookingsFilter фильтр для получения бронирований мастера
type ArtistBookingsFilter struct {
	ArtistID        int64          // Обязательный параметр
	StartDate       *time.Time     // Начало периода (опционально)
	EndDate         *time.Time     // Конец периода (опционально)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли завершенные и отмененные бронирования
}
