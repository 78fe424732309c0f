package get_calendar

import (
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
)

// Request модель запроса календаря доступности
type Request struct {
	ArtistID  int64      // ID мастера
	StartDate *time.Time // Первый день календаря (nil = сегодня в зоне платформы)
	Days      int        // Количество дней (0 = по умолчанию)
}

// Response модель ответа с календарем доступности
type Response struct {
	ArtistID    int64
	IsAccepting bool
	Days        []domain.DaySchedule
}
