package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
	getCalendar "github.com/glamspot/ArtistBookingService/internal/usecase/get_calendar"
)

type fakeBookingRepo struct{}

func (fakeBookingRepo) GetByArtistWithFilter(_ context.Context, _ domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	return nil, nil
}

type fakeSettingsRepo struct{}

func (fakeSettingsRepo) GetByArtistID(_ context.Context, _ int64) (*domain.ArtistSettings, error) {
	return nil, settingsRepo.ErrSettingsNotFound
}

type fakeAccountClient struct{}

func (fakeAccountClient) GetArtist(_ context.Context, artistID int64) (*accountservice.Artist, error) {
	return &accountservice.Artist{ID: artistID, DisplayName: "Test Artist", Active: true}, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newRouter(t *testing.T, tz string) *mux.Router {
	t.Helper()
	normalizer, err := schedule.NewNormalizer(tz)
	require.NoError(t, err)

	useCase := getCalendar.NewUseCase(fakeBookingRepo{}, fakeSettingsRepo{}, fakeAccountClient{}, normalizer, nopLogger{})
	h := NewHandler(useCase, normalizer, nopLogger{})

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/artists/{artistId}/calendar", h.Handle).Methods(http.MethodGet)
	return r
}

func getCalendarDays(t *testing.T, router *mux.Router, url string) *CalendarResponse {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return &resp
}

// start_date трактуется как локальная дата платформы независимо от смещения
// зоны относительно UTC
func TestHandle_StartDateIsPlatformLocal(t *testing.T) {
	for _, tz := range []string{"Asia/Dhaka", "America/New_York", "UTC"} {
		t.Run(tz, func(t *testing.T) {
			router := newRouter(t, tz)

			resp := getCalendarDays(t, router, "/api/v1/artists/7/calendar?start_date=2026-03-17&days=3")

			require.Len(t, resp.Days, 3)
			assert.Equal(t, "2026-03-17", resp.Days[0].Date)
			assert.Equal(t, "Tuesday", resp.Days[0].DayLabel)
			assert.Equal(t, "2026-03-19", resp.Days[2].Date)
		})
	}
}

func TestHandle_InvalidQueryParams(t *testing.T) {
	router := newRouter(t, "Asia/Dhaka")

	cases := []struct {
		name string
		url  string
	}{
		{"bad artist id", "/api/v1/artists/seven/calendar"},
		{"bad start date", "/api/v1/artists/7/calendar?start_date=17.03.2026"},
		{"bad days", "/api/v1/artists/7/calendar?days=week"},
		{"days out of range", "/api/v1/artists/7/calendar?days=100"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tc.url, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}
