package schedulecfg

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg/models"
	"github.com/glamspot/ArtistBookingService/pkg/ptr"
)

type fakeSettingsRepo struct {
	settings *domain.ArtistSettings
	upserted *domain.ArtistSettings
}

func (f *fakeSettingsRepo) GetByArtistID(_ context.Context, _ int64) (*domain.ArtistSettings, error) {
	if f.settings == nil {
		return nil, settingsRepo.ErrSettingsNotFound
	}
	return f.settings, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, _ int64, raw *domain.ArtistSettings) error {
	f.upserted = raw
	return nil
}

type fakeAccountClient struct {
	err error
}

func (f *fakeAccountClient) GetArtist(_ context.Context, artistID int64) (*accountservice.Artist, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &accountservice.Artist{ID: artistID, DisplayName: "Test Artist", Active: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	svc      *Service
	settings *fakeSettingsRepo
	account  *fakeAccountClient
}

func newTestEnv() *testEnv {
	env := &testEnv{
		settings: &fakeSettingsRepo{},
		account:  &fakeAccountClient{},
	}
	env.svc = NewService(env.settings, env.account, nopLogger{})
	return env
}

func TestGet_DefaultsWhenNoSettingsStored(t *testing.T) {
	env := newTestEnv()

	resp, err := env.svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ArtistID)
	assert.True(t, resp.IsAccepting)
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, "20:00", resp.EndTime)
	assert.Equal(t, domain.DefaultSessionIntervalMinutes, resp.SessionIntervalMinutes)
	// Вторник-суббота по умолчанию
	assert.Equal(t, []int{2, 3, 4, 5, 6}, resp.WorkingDays)
}

func TestGet_ResolvesStoredSettings(t *testing.T) {
	env := newTestEnv()
	env.settings.settings = &domain.ArtistSettings{
		IsAccepting:            ptr.Ptr(false),
		WorkingDays:            []int{1, 3, 5},
		StartTime:              ptr.Ptr("09:00"),
		EndTime:                ptr.Ptr("15:00"),
		SessionIntervalMinutes: ptr.Ptr(30),
	}

	resp, err := env.svc.Get(context.Background(), 7)
	require.NoError(t, err)

	assert.False(t, resp.IsAccepting)
	assert.Equal(t, []int{1, 3, 5}, resp.WorkingDays)
	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, "15:00", resp.EndTime)
	assert.Equal(t, 30, resp.SessionIntervalMinutes)
}

func TestGet_ArtistNotFound(t *testing.T) {
	env := newTestEnv()
	env.account.err = accountservice.ErrArtistNotFound

	_, err := env.svc.Get(context.Background(), 7)
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestUpdate_OnlyArtistItself(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{UserID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Nil(t, env.settings.upserted)
}

func TestUpdate_PartialMergePreservesOtherFields(t *testing.T) {
	env := newTestEnv()
	env.settings.settings = &domain.ArtistSettings{
		WorkingDays:            []int{1, 2, 3},
		SessionIntervalMinutes: ptr.Ptr(30),
	}

	resp, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{
		UserID:    7,
		StartTime: ptr.Ptr("09:00"),
	})
	require.NoError(t, err)

	// Обновилось только время начала; остальные поля блоба сохранились
	require.NotNil(t, env.settings.upserted)
	assert.Equal(t, []int{1, 2, 3}, env.settings.upserted.WorkingDays)
	assert.Equal(t, 30, *env.settings.upserted.SessionIntervalMinutes)
	assert.Equal(t, "09:00", *env.settings.upserted.StartTime)

	assert.Equal(t, "09:00", resp.StartTime)
	assert.Equal(t, 30, resp.SessionIntervalMinutes)
}

func TestUpdate_FirstUpdateStartsFromEmptyBlob(t *testing.T) {
	env := newTestEnv()

	resp, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{
		UserID:      7,
		IsAccepting: ptr.Ptr(false),
	})
	require.NoError(t, err)

	assert.False(t, resp.IsAccepting)
	// Незаданные поля резолвятся в значения по умолчанию
	assert.Equal(t, "10:00", resp.StartTime)
	assert.Equal(t, domain.DefaultSessionIntervalMinutes, resp.SessionIntervalMinutes)
}

func TestUpdate_Validation(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		name string
		req  *models.UpdateScheduleRequest
	}{
		{"empty working days", &models.UpdateScheduleRequest{UserID: 7, WorkingDays: []int{}}},
		{"day out of range", &models.UpdateScheduleRequest{UserID: 7, WorkingDays: []int{7}}},
		{"negative day", &models.UpdateScheduleRequest{UserID: 7, WorkingDays: []int{-1}}},
		{"bad start time", &models.UpdateScheduleRequest{UserID: 7, StartTime: ptr.Ptr("9am")}},
		{"bad end time", &models.UpdateScheduleRequest{UserID: 7, EndTime: ptr.Ptr("25:00")}},
		{"start after end", &models.UpdateScheduleRequest{UserID: 7, StartTime: ptr.Ptr("18:00"), EndTime: ptr.Ptr("09:00")}},
		{"start equals end", &models.UpdateScheduleRequest{UserID: 7, StartTime: ptr.Ptr("12:00"), EndTime: ptr.Ptr("12:00")}},
		{"interval too small", &models.UpdateScheduleRequest{UserID: 7, SessionIntervalMinutes: ptr.Ptr(domain.MinSessionIntervalMinutes - 1)}},
		{"interval too large", &models.UpdateScheduleRequest{UserID: 7, SessionIntervalMinutes: ptr.Ptr(domain.MaxSessionIntervalMinutes + 1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := env.svc.Update(context.Background(), 7, tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}

	assert.Nil(t, env.settings.upserted)
}

func TestUpdate_ArtistNotFound(t *testing.T) {
	env := newTestEnv()
	env.account.err = accountservice.ErrArtistNotFound

	_, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{UserID: 7})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

// Резолв обновленного блоба совпадает с тем, что увидит календарь
func TestUpdate_ResponseMatchesResolvedProfile(t *testing.T) {
	env := newTestEnv()

	resp, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{
		UserID:                 7,
		WorkingDays:            []int{0, 6},
		StartTime:              ptr.Ptr("08:00"),
		EndTime:                ptr.Ptr("12:00"),
		SessionIntervalMinutes: ptr.Ptr(60),
	})
	require.NoError(t, err)

	profile := domain.ResolveSettings(env.settings.upserted)
	assert.Equal(t, profile.WorkingDayNumbers(), resp.WorkingDays)
	assert.Equal(t, profile.StartTimeString().String(), resp.StartTime)
	assert.Equal(t, profile.EndTimeString().String(), resp.EndTime)
	assert.True(t, profile.IsWorkingDay(time.Sunday))
	assert.False(t, profile.IsWorkingDay(time.Monday))
}

// "24:00" не является валидным временем начала окна
func TestUpdate_MidnightEndRejected(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Update(context.Background(), 7, &models.UpdateScheduleRequest{
		UserID:    7,
		StartTime: ptr.Ptr("24:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
