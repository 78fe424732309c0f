package models

import (
	"github.com/glamspot/ArtistBookingService/internal/domain"
)

// Request модели

// UpdateScheduleRequest запрос на обновление настроек расписания
// Все поля опциональны - обновляются только переданные значения
type UpdateScheduleRequest struct {
	UserID                 int64   `json:"userId"`
	IsAccepting            *bool   `json:"isAccepting,omitempty"`
	WorkingDays            []int   `json:"workingDays,omitempty"` // 0=Sunday .. 6=Saturday
	StartTime              *string `json:"startTime,omitempty"`   // "HH:MM"
	EndTime                *string `json:"endTime,omitempty"`     // "HH:MM"
	SessionIntervalMinutes *int    `json:"sessionIntervalMinutes,omitempty"`
}

// ApplyToSettings применяет обновления к существующему raw блобу настроек
// Обновляются только непустые (not nil) поля из request
func (r *UpdateScheduleRequest) ApplyToSettings(raw *domain.ArtistSettings) {
	if r.IsAccepting != nil {
		raw.IsAccepting = r.IsAccepting
	}
	if r.WorkingDays != nil {
		raw.WorkingDays = r.WorkingDays
	}
	if r.StartTime != nil {
		raw.StartTime = r.StartTime
	}
	if r.EndTime != nil {
		raw.EndTime = r.EndTime
	}
	if r.SessionIntervalMinutes != nil {
		raw.SessionIntervalMinutes = r.SessionIntervalMinutes
	}
}

// Response модели

// ScheduleResponse ответ с резолвленным профилем доступности мастера.
// Наружу всегда отдается резолвленный профиль, а не raw блоб.
type ScheduleResponse struct {
	ArtistID               int64  `json:"artistId"`
	IsAccepting            bool   `json:"isAccepting"`
	WorkingDays            []int  `json:"workingDays"` // 0=Sunday .. 6=Saturday
	StartTime              string `json:"startTime"`   // "HH:MM"
	EndTime                string `json:"endTime"`     // "HH:MM"
	SessionIntervalMinutes int    `json:"sessionIntervalMinutes"`
}

// FromProfile конвертирует резолвленный профиль в DTO
func FromProfile(artistID int64, p domain.AvailabilityProfile) *ScheduleResponse {
	return &ScheduleResponse{
		ArtistID:               artistID,
		IsAccepting:            p.IsAccepting,
		WorkingDays:            p.WorkingDayNumbers(),
		StartTime:              p.StartTimeString().String(),
		EndTime:                p.EndTimeString().String(),
		SessionIntervalMinutes: p.SessionIntervalMinutes,
	}
}
