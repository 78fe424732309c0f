package update_artist_schedule

import (
	"context"

	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg/models"
)

type ScheduleService interface {
	Update(ctx context.Context, artistID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
