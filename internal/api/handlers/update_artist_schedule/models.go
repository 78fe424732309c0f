package update_artist_schedule

import (
	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg/models"
)

// UpdateScheduleRequest HTTP request model
// Все поля опциональны - обновляются только переданные значения
type UpdateScheduleRequest struct {
	IsAccepting            *bool   `json:"isAccepting,omitempty"`
	WorkingDays            []int   `json:"workingDays,omitempty"` // 0=Sunday .. 6=Saturday
	StartTime              *string `json:"startTime,omitempty"`   // "HH:MM"
	EndTime                *string `json:"endTime,omitempty"`     // "HH:MM"
	SessionIntervalMinutes *int    `json:"sessionIntervalMinutes,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateScheduleRequest) ToServiceRequest(userID int64) *models.UpdateScheduleRequest {
	return &models.UpdateScheduleRequest{
		UserID:                 userID,
		IsAccepting:            r.IsAccepting,
		WorkingDays:            r.WorkingDays,
		StartTime:              r.StartTime,
		EndTime:                r.EndTime,
		SessionIntervalMinutes: r.SessionIntervalMinutes,
	}
}
