package create_booking

import (
	"fmt"
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.RequestedInstant.IsZero() {
		return fmt.Errorf("%w: requested start time is required", ErrInvalidInput)
	}

	if req.Status != "" {
		status := domain.BookingStatus(req.Status)
		if status != domain.StatusPending && status != domain.StatusConfirmed {
			return fmt.Errorf("%w: status must be %q or %q", ErrInvalidInput,
				domain.StatusPending, domain.StatusConfirmed)
		}
	}

	return nil
}

// validateAgainstProfile проверяет запрошенный слот против профиля доступности
// мастера. Проверки выполняются в фиксированном порядке: прием записей,
// выходной день, рабочее окно, выход за окно, выравнивание по интервалу.
func validateAgainstProfile(profile domain.AvailabilityProfile, bookingDate time.Time, startTime types.TimeString, durationMinutes int) error {
	if !profile.IsAccepting {
		return ErrNotAcceptingBookings
	}

	if !profile.IsWorkingDay(bookingDate.Weekday()) {
		return ErrDayOff
	}

	startMinutes := startTime.MinutesOfDay()
	windowStart := profile.StartHour * 60
	windowEnd := profile.EndHour * 60

	if startMinutes < windowStart || startMinutes >= windowEnd {
		return ErrOutsideWorkingHours
	}

	if startMinutes+durationMinutes > windowEnd {
		return ErrExceedsWorkingHours
	}

	// Слоты генерируются внутри каждого часа, поэтому выравнивание
	// проверяется по минуте часа, а не по началу окна
	if (startMinutes%60)%profile.SessionIntervalMinutes != 0 {
		return ErrMisalignedInterval
	}

	return nil
}
