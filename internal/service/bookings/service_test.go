package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	bookingRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/booking"
	"github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/service/bookings/models"
)

// Фейки зависимостей сервиса

type fakeBookingRepo struct {
	byID            map[int64]*domain.Booking
	userBookings    []*domain.Booking
	artistBookings  []*domain.Booking
	updateStatusErr error
	cancelErr       error

	updatedID     int64
	updatedStatus domain.BookingStatus
	cancelledID   int64
	cancelReason  string
	lastFilter    domain.ArtistBookingsFilter
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{byID: map[int64]*domain.Booking{}}
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.byID[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, _ int64, _ *domain.BookingStatus) ([]*domain.Booking, error) {
	return f.userBookings, nil
}

func (f *fakeBookingRepo) GetByArtistWithFilter(_ context.Context, filter domain.ArtistBookingsFilter) ([]*domain.Booking, error) {
	f.lastFilter = filter
	return f.artistBookings, nil
}

func (f *fakeBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	if f.updateStatusErr != nil {
		return f.updateStatusErr
	}
	f.updatedID = id
	f.updatedStatus = status
	return nil
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64, reason string) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelledID = id
	f.cancelReason = reason
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

type fakeLedgerClient struct {
	recordErr    error
	recordCalls  int
	reverseCalls int

	lastBookingID int64
	lastArtistID  int64
	lastAmount    float64
}

func (f *fakeLedgerClient) RecordCompletion(_ context.Context, bookingID, artistID int64, amount float64) error {
	f.recordCalls++
	f.lastBookingID = bookingID
	f.lastArtistID = artistID
	f.lastAmount = amount
	return f.recordErr
}

func (f *fakeLedgerClient) ReverseCompletion(_ context.Context, bookingID, artistID int64, amount float64) error {
	f.reverseCalls++
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	svc     *Service
	repo    *fakeBookingRepo
	account *fakeAccountClient
	ledger  *fakeLedgerClient
}

func newTestEnv() *testEnv {
	env := &testEnv{
		repo:    newFakeBookingRepo(),
		account: &fakeAccountClient{},
		ledger:  &fakeLedgerClient{},
	}
	env.svc = NewService(env.repo, env.account, env.ledger, nopLogger{})
	return env
}

func testBooking(status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:              100,
		UserID:          42,
		ArtistID:        7,
		ServiceID:       5,
		BookingDate:     time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC),
		StartTime:       "10:00",
		DurationMinutes: 90,
		Status:          status,
		ServiceName:     "Bridal Makeup",
		ServicePrice:    150,
	}
}

func TestGetByID_OwnerAndArtistAccess(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)

	// Владелец видит бронирование
	resp, err := env.svc.GetByID(context.Background(), 100, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(100), resp.ID)
	assert.Equal(t, "2026-03-17", resp.BookingDate)
	assert.Equal(t, "10:00", resp.StartTime)

	// Мастер тоже видит
	_, err = env.svc.GetByID(context.Background(), 100, 7)
	assert.NoError(t, err)

	// Посторонний не видит
	_, err = env.svc.GetByID(context.Background(), 100, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.GetByID(context.Background(), 100, 42)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings(t *testing.T) {
	env := newTestEnv()
	env.repo.userBookings = []*domain.Booking{testBooking(domain.StatusConfirmed)}

	resp, err := env.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "confirmed", resp.Bookings[0].Status)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	env := newTestEnv()
	bad := "in_progress"

	_, err := env.svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{UserID: 42, Status: &bad})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetArtistBookings_OnlyArtistItself(t *testing.T) {
	env := newTestEnv()

	// Запрашивает не мастер
	_, err := env.svc.GetArtistBookings(context.Background(), &models.GetArtistBookingsRequest{ArtistID: 7, UserID: 42})
	assert.ErrorIs(t, err, ErrAccessDenied)

	// Мастер получает список, фильтр прокидывается в репозиторий
	env.repo.artistBookings = []*domain.Booking{testBooking(domain.StatusPending)}
	status := "pending"
	resp, err := env.svc.GetArtistBookings(context.Background(), &models.GetArtistBookingsRequest{
		ArtistID:        7,
		UserID:          7,
		Status:          &status,
		IncludeInactive: true,
	})
	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	require.NotNil(t, env.repo.lastFilter.Status)
	assert.Equal(t, domain.StatusPending, *env.repo.lastFilter.Status)
	assert.True(t, env.repo.lastFilter.IncludeInactive)
}

func TestGetArtistBookings_ArtistNotFound(t *testing.T) {
	env := newTestEnv()
	env.account.err = accountservice.ErrArtistNotFound

	_, err := env.svc.GetArtistBookings(context.Background(), &models.GetArtistBookingsRequest{ArtistID: 7, UserID: 7})
	assert.ErrorIs(t, err, ErrArtistNotFound)
}

func TestCancel_ByOwner(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)

	err := env.svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{
		UserID:             42,
		CancellationReason: "plans changed",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(100), env.repo.cancelledID)
	assert.Equal(t, "plans changed", env.repo.cancelReason)
}

func TestCancel_ByArtist(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusPending)

	err := env.svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 7})
	assert.NoError(t, err)
}

func TestCancel_AccessDenied(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)

	err := env.svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 99})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_TerminalStatusesRejected(t *testing.T) {
	env := newTestEnv()

	for _, status := range []domain.BookingStatus{domain.StatusCompleted, domain.StatusCancelled} {
		env.repo.byID[100] = testBooking(status)

		err := env.svc.Cancel(context.Background(), 100, &models.CancelBookingRequest{UserID: 42})
		assert.ErrorIs(t, err, ErrCannotCancel, "status %s", status)
	}
}

func TestUpdateStatus_ConfirmedToCompleted(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)

	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusCompleted, env.repo.updatedStatus)

	// Завершение записано в сервис расчетов ровно один раз с ценой услуги
	assert.Equal(t, 1, env.ledger.recordCalls)
	assert.Equal(t, 0, env.ledger.reverseCalls)
	assert.Equal(t, int64(100), env.ledger.lastBookingID)
	assert.Equal(t, int64(7), env.ledger.lastArtistID)
	assert.Equal(t, float64(150), env.ledger.lastAmount)
}

func TestUpdateStatus_PendingToConfirmedSkipsLedger(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusPending)

	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: "confirmed"})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusConfirmed, env.repo.updatedStatus)
	assert.Equal(t, 0, env.ledger.recordCalls)
}

func TestUpdateStatus_IllegalTransitions(t *testing.T) {
	env := newTestEnv()

	cases := []struct {
		from domain.BookingStatus
		to   string
	}{
		{domain.StatusPending, "completed"},
		{domain.StatusCompleted, "cancelled"},
		{domain.StatusCancelled, "confirmed"},
		{domain.StatusConfirmed, "pending"},
	}

	for _, tc := range cases {
		env.repo.byID[100] = testBooking(tc.from)

		err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: tc.to})
		assert.ErrorIs(t, err, ErrInvalidTransition, "%s -> %s", tc.from, tc.to)
	}

	assert.Equal(t, 0, env.ledger.recordCalls)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusPending)

	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: "done"})
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_OnlyArtist(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)

	// Владелец бронирования не может менять статус
	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 42, Status: "completed"})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Equal(t, 0, env.ledger.recordCalls)
}

func TestUpdateStatus_LedgerFailureAbortsUpdate(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)
	env.ledger.recordErr = errors.New("ledger unavailable")

	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})
	assert.ErrorIs(t, err, ErrInternal)

	// Статус в БД не обновлялся
	assert.Equal(t, int64(0), env.repo.updatedID)
}

func TestUpdateStatus_DBFailureReversesCompletion(t *testing.T) {
	env := newTestEnv()
	env.repo.byID[100] = testBooking(domain.StatusConfirmed)
	env.repo.updateStatusErr = errors.New("connection reset")

	err := env.svc.UpdateStatus(context.Background(), 100, &models.UpdateStatusRequest{UserID: 7, Status: "completed"})
	assert.ErrorIs(t, err, ErrInternal)

	// Записанное завершение откатывается парным вызовом
	assert.Equal(t, 1, env.ledger.recordCalls)
	assert.Equal(t, 1, env.ledger.reverseCalls)
}
