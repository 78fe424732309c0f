package get_artist_schedule

import (
	"context"

	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg/models"
)

type ScheduleService interface {
	Get(ctx context.Context, artistID int64) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
