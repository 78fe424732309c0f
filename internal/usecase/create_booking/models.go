package create_booking

import (
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID           int64     // ID клиента
	ArtistID         int64     // ID мастера
	ServiceID        int64     // ID услуги
	RequestedInstant time.Time // Запрошенный момент начала (абсолютный instant)
	Status           string    // Начальный статус: "pending" или "confirmed" (пусто = confirmed)
	Notes            *string   // Дополнительные заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID               int64
	UserID           int64
	ArtistID         int64
	ServiceID        int64
	BookingDate      time.Time        // Локальная календарная дата
	StartTime        types.TimeString // Локальное время начала
	RequestedInstant time.Time        // Абсолютный instant начала
	DurationMinutes  int              // Замороженная длительность услуги
	Status           domain.BookingStatus

	ServiceName  string
	ServicePrice float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
