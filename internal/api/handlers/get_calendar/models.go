package get_calendar

import (
	"github.com/glamspot/ArtistBookingService/internal/domain"
	getCalendar "github.com/glamspot/ArtistBookingService/internal/usecase/get_calendar"
)

// SlotResponse HTTP модель одного слота
type SlotResponse struct {
	Time     string `json:"time"`  // "10:00"
	Label    string `json:"label"` // "10:00 AM"
	IsBooked bool   `json:"isBooked"`
}

// DayResponse HTTP модель одного дня календаря
type DayResponse struct {
	Date     string         `json:"date"`     // "2026-03-15"
	DayLabel string         `json:"dayLabel"` // "Monday"
	IsDayOff bool           `json:"isDayOff"`
	Slots    []SlotResponse `json:"slots"`
}

// CalendarResponse HTTP модель календаря доступности
type CalendarResponse struct {
	ArtistID    int64         `json:"artistId"`
	IsAccepting bool          `json:"isAccepting"`
	Days        []DayResponse `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]DayResponse, 0, len(resp.Days))
	for _, day := range resp.Days {
		slots := make([]SlotResponse, 0, len(day.Slots))
		for _, slot := range day.Slots {
			slots = append(slots, SlotResponse{
				Time:     slot.Time.String(),
				Label:    slot.Label,
				IsBooked: slot.IsBooked,
			})
		}
		days = append(days, DayResponse{
			Date:     day.Date.Format(domain.DateFormat),
			DayLabel: day.DayLabel,
			IsDayOff: day.IsDayOff,
			Slots:    slots,
		})
	}

	return &CalendarResponse{
		ArtistID:    resp.ArtistID,
		IsAccepting: resp.IsAccepting,
		Days:        days,
	}
}
