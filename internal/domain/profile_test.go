package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/glamspot/ArtistBookingService/pkg/ptr"
)

func TestResolveSettings_NilBlob(t *testing.T) {
	profile := ResolveSettings(nil)

	assert.True(t, profile.IsAccepting)
	assert.Equal(t, DefaultStartHour, profile.StartHour)
	assert.Equal(t, DefaultEndHour, profile.EndHour)
	assert.Equal(t, DefaultSessionIntervalMinutes, profile.SessionIntervalMinutes)

	// Вт-Сб рабочие, Вс и Пн выходные
	assert.False(t, profile.IsWorkingDay(time.Sunday))
	assert.False(t, profile.IsWorkingDay(time.Monday))
	for d := time.Tuesday; d <= time.Saturday; d++ {
		assert.True(t, profile.IsWorkingDay(d), "weekday %s", d)
	}
}

func TestResolveSettings_EmptyBlob(t *testing.T) {
	// Пустой блоб и nil резолвятся одинаково
	assert.Equal(t, ResolveSettings(nil), ResolveSettings(&ArtistSettings{}))
}

func TestResolveSettings_FullBlob(t *testing.T) {
	profile := ResolveSettings(&ArtistSettings{
		IsAccepting:            ptr.Ptr(false),
		WorkingDays:            []int{1, 2, 3},
		StartTime:              ptr.Ptr("09:00"),
		EndTime:                ptr.Ptr("18:00"),
		SessionIntervalMinutes: ptr.Ptr(30),
	})

	assert.False(t, profile.IsAccepting)
	assert.Equal(t, []int{1, 2, 3}, profile.WorkingDayNumbers())
	assert.Equal(t, 9, profile.StartHour)
	assert.Equal(t, 18, profile.EndHour)
	assert.Equal(t, 30, profile.SessionIntervalMinutes)
}

func TestResolveSettings_InvalidWorkingDaysDropped(t *testing.T) {
	profile := ResolveSettings(&ArtistSettings{WorkingDays: []int{-1, 3, 9}})
	assert.Equal(t, []int{3}, profile.WorkingDayNumbers())

	// Если после фильтрации не осталось ни одного дня - дефолт
	profile = ResolveSettings(&ArtistSettings{WorkingDays: []int{-1, 7}})
	assert.Equal(t, []int{2, 3, 4, 5, 6}, profile.WorkingDayNumbers())
}

func TestResolveSettings_DegenerateWindowFallsBack(t *testing.T) {
	// Окно, где start >= end, целиком заменяется дефолтным
	profile := ResolveSettings(&ArtistSettings{
		StartTime: ptr.Ptr("18:00"),
		EndTime:   ptr.Ptr("09:00"),
	})
	assert.Equal(t, DefaultStartHour, profile.StartHour)
	assert.Equal(t, DefaultEndHour, profile.EndHour)

	profile = ResolveSettings(&ArtistSettings{
		StartTime: ptr.Ptr("12:00"),
		EndTime:   ptr.Ptr("12:00"),
	})
	assert.Equal(t, DefaultStartHour, profile.StartHour)
	assert.Equal(t, DefaultEndHour, profile.EndHour)
}

func TestResolveSettings_UnparsableTimesDefaulted(t *testing.T) {
	profile := ResolveSettings(&ArtistSettings{
		StartTime: ptr.Ptr("not-a-time"),
		EndTime:   ptr.Ptr("19:00"),
	})
	assert.Equal(t, DefaultStartHour, profile.StartHour)
	assert.Equal(t, 19, profile.EndHour)
}

func TestResolveSettings_NonPositiveIntervalDefaulted(t *testing.T) {
	profile := ResolveSettings(&ArtistSettings{SessionIntervalMinutes: ptr.Ptr(0)})
	assert.Equal(t, DefaultSessionIntervalMinutes, profile.SessionIntervalMinutes)

	profile = ResolveSettings(&ArtistSettings{SessionIntervalMinutes: ptr.Ptr(-15)})
	assert.Equal(t, DefaultSessionIntervalMinutes, profile.SessionIntervalMinutes)
}

func TestAvailabilityProfile_DaysOff(t *testing.T) {
	profile := ResolveSettings(nil)
	assert.Equal(t, []time.Weekday{time.Sunday, time.Monday}, profile.DaysOff())
}

func TestAvailabilityProfile_WindowStrings(t *testing.T) {
	profile := ResolveSettings(nil)
	assert.Equal(t, "10:00", profile.StartTimeString().String())
	assert.Equal(t, "20:00", profile.EndTimeString().String())
}
