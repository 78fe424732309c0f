package get_calendar

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
	"github.com/glamspot/ArtistBookingService/pkg/ptr"
)

type fakeBookingRepo struct {
	bookings   []*domain.Booking
	lastFilter domain.ArtistBookingsFilter
}

func (f *fakeBookingRepo) GetByArtistWithFilter(_ context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.bookings, nil
}

type fakeSettingsRepo struct {
	settings *domain.ArtistSettings
	err      error
}

func (f *fakeSettingsRepo) GetByArtistID(_ context.Context, _ int64) (*domain.ArtistSettings, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.settings, nil
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

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func dhaka(t *testing.T, y int, m time.Month, d, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("Asia/Dhaka")
	require.NoError(t, err)
	return time.Date(y, m, d, hour, min, 0, 0, loc)
}

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	settings *fakeSettingsRepo
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	n, err := schedule.NewNormalizer("Asia/Dhaka")
	require.NoError(t, err)

	env := &testEnv{
		bookings: &fakeBookingRepo{},
		settings: &fakeSettingsRepo{},
	}
	env.uc = NewUseCase(env.bookings, env.settings, &fakeAccountClient{}, n, nopLogger{})
	// Вторник 2026-03-10, 09:00 локально
	env.uc.timeProvider = &fixedTimeProvider{now: dhaka(t, 2026, time.March, 10, 9, 0)}
	return env
}

func TestExecute_DefaultsToSevenDaysFromToday(t *testing.T) {
	env := newTestEnv(t)

	resp, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7})
	require.NoError(t, err)

	require.Len(t, resp.Days, domain.DefaultCalendarDays)
	assert.Equal(t, "2026-03-10", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-16", resp.Days[6].Date.Format(domain.DateFormat))
	assert.True(t, resp.IsAccepting)

	// Репозиторий запрашивается одним диапазоном без неактивных записей
	require.NotNil(t, env.bookings.lastFilter.StartDate)
	require.NotNil(t, env.bookings.lastFilter.EndDate)
	assert.Equal(t, "2026-03-10", env.bookings.lastFilter.StartDate.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-16", env.bookings.lastFilter.EndDate.Format(domain.DateFormat))
	assert.False(t, env.bookings.lastFilter.IncludeInactive)
}

func TestExecute_ExplicitRange(t *testing.T) {
	env := newTestEnv(t)

	start := dhaka(t, 2026, time.March, 15, 0, 0)
	resp, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7, StartDate: &start, Days: 3})
	require.NoError(t, err)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2026-03-15", resp.Days[0].Date.Format(domain.DateFormat))
	assert.Equal(t, "2026-03-17", resp.Days[2].Date.Format(domain.DateFormat))

	// Воскресенье и понедельник выходные по умолчанию, вторник рабочий
	assert.True(t, resp.Days[0].IsDayOff)
	assert.True(t, resp.Days[1].IsDayOff)
	assert.False(t, resp.Days[2].IsDayOff)
	assert.Empty(t, resp.Days[0].Slots)
	assert.Len(t, resp.Days[2].Slots, 10)
}

func TestExecute_MarksBookedSlots(t *testing.T) {
	env := newTestEnv(t)

	// Запись на 90 минут занимает свой слот и пересекает следующий
	env.bookings.bookings = []*domain.Booking{
		{
			BookingDate:     dhaka(t, 2026, time.March, 17, 0, 0),
			StartTime:       "11:00",
			DurationMinutes: 90,
			Status:          domain.StatusConfirmed,
		},
	}

	start := dhaka(t, 2026, time.March, 17, 0, 0)
	resp, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7, StartDate: &start, Days: 1})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	booked := map[string]bool{}
	for _, slot := range resp.Days[0].Slots {
		booked[slot.Time.String()] = slot.IsBooked
	}

	assert.False(t, booked["10:00"])
	assert.True(t, booked["11:00"])
	assert.True(t, booked["12:00"])
	assert.False(t, booked["13:00"])
}

func TestExecute_MissingSettingsUseDefaults(t *testing.T) {
	env := newTestEnv(t)
	env.settings.err = settingsRepo.ErrSettingsNotFound

	start := dhaka(t, 2026, time.March, 17, 0, 0)
	resp, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7, StartDate: &start, Days: 1})
	require.NoError(t, err)

	require.Len(t, resp.Days, 1)
	assert.Len(t, resp.Days[0].Slots, 10)
	assert.Equal(t, "10:00", resp.Days[0].Slots[0].Time.String())
}

func TestExecute_NotAcceptingStillRendersCalendar(t *testing.T) {
	env := newTestEnv(t)
	env.settings.settings = &domain.ArtistSettings{IsAccepting: ptr.Ptr(false)}

	resp, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7})
	require.NoError(t, err)

	assert.False(t, resp.IsAccepting)
	assert.Len(t, resp.Days, domain.DefaultCalendarDays)
}

func TestExecute_ArtistNotFound(t *testing.T) {
	env := newTestEnv(t)
	env.uc.accountClient = &fakeAccountClient{err: accountservice.ErrArtistNotFound}

	_, err := env.uc.Execute(context.Background(), &Request{ArtistID: 7})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.uc.Execute(context.Background(), &Request{ArtistID: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = env.uc.Execute(context.Background(), &Request{ArtistID: 7, Days: domain.MaxCalendarDays + 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

// Повторный рендер с теми же входами дает тот же календарь
func TestExecute_Idempotent(t *testing.T) {
	env := newTestEnv(t)
	env.bookings.bookings = []*domain.Booking{
		{
			BookingDate:     dhaka(t, 2026, time.March, 17, 0, 0),
			StartTime:       "10:00",
			DurationMinutes: 60,
			Status:          domain.StatusConfirmed,
		},
	}

	start := dhaka(t, 2026, time.March, 15, 0, 0)
	req := &Request{ArtistID: 7, StartDate: &start, Days: 7}

	first, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	second, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
