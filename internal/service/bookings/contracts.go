package bookings

import (
	"context"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByArtistWithFilter(ctx context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
	Cancel(ctx context.Context, id int64, reason string) error
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetArtist(ctx context.Context, artistID int64) (*accountservice.Artist, error)
}

// LedgerServiceClient интерфейс клиента сервиса расчетов
type LedgerServiceClient interface {
	RecordCompletion(ctx context.Context, bookingID, artistID int64, amount float64) error
	ReverseCompletion(ctx context.Context, bookingID, artistID int64, amount float64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
