package domain

import (
	"time"

	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// ArtistSettings is the raw persisted schedule settings blob.
// Every field is optional; legacy rows may carry any subset. Raw settings are
// never consumed directly: all readers go through ResolveSettings.
type ArtistSettings struct {
	IsAccepting            *bool    `json:"isAccepting,omitempty"`
	WorkingDays            []int    `json:"workingDays,omitempty"` // 0=Sunday .. 6=Saturday
	StartTime              *string  `json:"startTime,omitempty"`   // "HH:MM"
	EndTime                *string  `json:"endTime,omitempty"`     // "HH:MM"
	SessionIntervalMinutes *int     `json:"sessionIntervalMinutes,omitempty"`
}

// AvailabilityProfile is the fully-resolved, immutable recurring schedule of
// an artist. Working hours are the half-open local interval [StartHour, EndHour).
type AvailabilityProfile struct {
	IsAccepting            bool
	WorkingDays            [7]bool // indexed by time.Weekday
	StartHour              int
	EndHour                int
	SessionIntervalMinutes int
}

// ResolveSettings applies defaulting rules, in order, to a raw settings blob:
//
//  1. isAccepting defaults to true;
//  2. workingDays defaults to Tue-Sat (invalid day numbers are dropped, an
//     empty result falls back to the default);
//  3. start/end hours are parsed from "HH:MM", defaulting on absent or
//     unparsable values; a window that is not strictly increasing falls back
//     to the default window entirely;
//  4. sessionInterval defaults to 60 when absent or non-positive.
//
// A nil blob resolves to the all-defaults profile.
func ResolveSettings(raw *ArtistSettings) AvailabilityProfile {
	profile := AvailabilityProfile{
		IsAccepting:            true,
		StartHour:              DefaultStartHour,
		EndHour:                DefaultEndHour,
		SessionIntervalMinutes: DefaultSessionIntervalMinutes,
	}
	for _, day := range DefaultWorkingDays {
		profile.WorkingDays[day] = true
	}

	if raw == nil {
		return profile
	}

	if raw.IsAccepting != nil {
		profile.IsAccepting = *raw.IsAccepting
	}

	if days, ok := resolveWorkingDays(raw.WorkingDays); ok {
		profile.WorkingDays = days
	}

	startHour, startOK := parseHour(raw.StartTime)
	endHour, endOK := parseHour(raw.EndTime)
	if !startOK {
		startHour = DefaultStartHour
	}
	if !endOK {
		endHour = DefaultEndHour
	}
	// The window invariant is startHour < endHour; a degenerate stored window
	// falls back to the default window rather than producing an empty calendar.
	if startHour < endHour {
		profile.StartHour = startHour
		profile.EndHour = endHour
	}

	if raw.SessionIntervalMinutes != nil && *raw.SessionIntervalMinutes > 0 {
		profile.SessionIntervalMinutes = *raw.SessionIntervalMinutes
	}

	return profile
}

func resolveWorkingDays(raw []int) ([7]bool, bool) {
	var days [7]bool
	any := false
	for _, d := range raw {
		if d >= 0 && d <= 6 {
			days[d] = true
			any = true
		}
	}
	return days, any
}

func parseHour(raw *string) (int, bool) {
	if raw == nil {
		return 0, false
	}
	ts, err := types.NewTimeStringFromString(*raw)
	if err != nil {
		return 0, false
	}
	return ts.MinutesOfDay() / 60, true
}

// IsWorkingDay reports whether the artist works on the given weekday
func (p AvailabilityProfile) IsWorkingDay(day time.Weekday) bool {
	return p.WorkingDays[day]
}

// DaysOff returns the weekdays the artist does not work
func (p AvailabilityProfile) DaysOff() []time.Weekday {
	var off []time.Weekday
	for d := time.Sunday; d <= time.Saturday; d++ {
		if !p.WorkingDays[d] {
			off = append(off, d)
		}
	}
	return off
}

// WorkingDayNumbers returns working days as 0..6 numbers for serialization
func (p AvailabilityProfile) WorkingDayNumbers() []int {
	nums := make([]int, 0, 7)
	for d := 0; d < 7; d++ {
		if p.WorkingDays[d] {
			nums = append(nums, d)
		}
	}
	return nums
}

// StartTimeString returns the window start as "HH:MM"
func (p AvailabilityProfile) StartTimeString() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(p.StartHour * 60)
	return ts
}

// EndTimeString returns the window end as "HH:MM"
func (p AvailabilityProfile) EndTimeString() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(p.EndHour * 60)
	return ts
}
