package schedule

import (
	"time"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// dayLabelFormat weekday label for the rendered calendar
const dayLabelFormat = "Monday"

// DaySlots generates every candidate slot start for one local calendar date.
//
// Candidates run hour by hour from StartHour up to but excluding EndHour,
// stepping minutes inside each hour by the session interval. When the
// interval does not divide the hour (e.g. 45 minutes), no trailing partial
// slot is emitted even if one would fit before EndHour; that asymmetry is
// deliberate and keeps slot labels on predictable hour offsets.
//
// date and now must be local wall-clock values from the same Normalizer.
// Slots strictly in the past are dropped, including partially within today.
func DaySlots(profile domain.AvailabilityProfile, date time.Time, now time.Time) []types.TimeString {
	if !profile.IsWorkingDay(date.Weekday()) {
		return nil
	}

	dateOnly := truncateToDay(date)
	nowDay := truncateToDay(now)
	if dateOnly.Before(nowDay) {
		return nil
	}

	isToday := dateOnly.Equal(nowDay)
	nowMinutes := now.Hour()*60 + now.Minute()

	slots := make([]types.TimeString, 0)
	for hour := profile.StartHour; hour < profile.EndHour; hour++ {
		for minute := 0; minute < 60; minute += profile.SessionIntervalMinutes {
			startMinutes := hour*60 + minute
			if isToday && startMinutes < nowMinutes {
				continue
			}
			slot, err := types.NewTimeStringFromMinutes(startMinutes)
			if err != nil {
				continue
			}
			slots = append(slots, slot)
		}
	}
	return slots
}

// BuildDay renders one calendar day: candidate slots plus their booked state
// against the day's active bookings.
func BuildDay(profile domain.AvailabilityProfile, date time.Time, now time.Time, bookings []*domain.Booking) domain.DaySchedule {
	day := domain.DaySchedule{
		Date:     truncateToDay(date),
		DayLabel: date.Format(dayLabelFormat),
		Slots:    []domain.Slot{},
	}

	if !profile.IsWorkingDay(date.Weekday()) {
		day.IsDayOff = true
		return day
	}

	for _, start := range DaySlots(profile, date, now) {
		day.Slots = append(day.Slots, domain.Slot{
			Time:     start,
			Label:    start.Label(),
			IsBooked: IsBooked(start, profile.SessionIntervalMinutes, bookings),
		})
	}
	return day
}

// BuildCalendar renders the calendar for [startDate, startDate+days) local
// days. bookingsByDate returns the day's bookings keyed by "2006-01-02".
func BuildCalendar(
	profile domain.AvailabilityProfile,
	startDate time.Time,
	days int,
	now time.Time,
	bookingsByDate map[string][]*domain.Booking,
) []domain.DaySchedule {
	calendar := make([]domain.DaySchedule, 0, days)
	for i := 0; i < days; i++ {
		date := truncateToDay(startDate).AddDate(0, 0, i)
		calendar = append(calendar, BuildDay(profile, date, now, bookingsByDate[date.Format(domain.DateFormat)]))
	}
	return calendar
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
