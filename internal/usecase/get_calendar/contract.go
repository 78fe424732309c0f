package get_calendar

import (
	"context"
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistSettings, error)
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetArtist(ctx context.Context, artistID int64) (*accountservice.Artist, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
