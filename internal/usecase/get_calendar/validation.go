package get_calendar

import (
	"fmt"

	"github.com/glamspot/ArtistBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ArtistID <= 0 {
		return fmt.Errorf("%w: artistID must be positive", ErrInvalidInput)
	}

	if req.Days < 0 || req.Days > domain.MaxCalendarDays {
		return fmt.Errorf("%w: days must be between 1 and %d", ErrInvalidInput, domain.MaxCalendarDays)
	}

	return nil
}
