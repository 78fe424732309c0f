package create_booking

import (
	"context"
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistSettings, error)
}

// ServicesRepository интерфейс репозитория каталога услуг
type ServicesRepository interface {
	GetByID(ctx context.Context, artistID, serviceID int64) (*domain.Service, error)
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetArtist(ctx context.Context, artistID int64) (*accountservice.Artist, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
