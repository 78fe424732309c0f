package schedulecfg

import (
	"context"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
)

// SettingsRepository интерфейс репозитория настроек расписания
type SettingsRepository interface {
	GetByArtistID(ctx context.Context, artistID int64) (*domain.ArtistSettings, error)
	Upsert(ctx context.Context, artistID int64, raw *domain.ArtistSettings) error
}

// AccountServiceClient интерфейс клиента сервиса аккаунтов
type AccountServiceClient interface {
	GetArtist(ctx context.Context, artistID int64) (*accountservice.Artist, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
