package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	accountClient "github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
)

// UseCase use case построения календаря доступности мастера.
//
// Путь чтения stateless: читает закоммиченные бронирования и считает слоты
// чистой арифметикой, поэтому любое число параллельных запросов по одному
// мастеру не требует координации.
type UseCase struct {
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	accountClient AccountServiceClient
	normalizer    *schedule.Normalizer
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	accountClient AccountServiceClient,
	normalizer *schedule.Normalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		accountClient: accountClient,
		normalizer:    normalizer,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: artist=%d, startDate=%v, days=%d", req.ArtistID, req.StartDate, req.Days)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время в зоне платформы
	now := uc.normalizer.ToLocal(uc.timeProvider.Now())

	// 3. Проверяем существование мастера
	if _, err := uc.accountClient.GetArtist(ctx, req.ArtistID); err != nil {
		if errors.Is(err, accountClient.ErrArtistNotFound) {
			uc.logger.Warn("GetCalendar: artist id=%d not found", req.ArtistID)
			return nil, ErrArtistNotFound
		}
		uc.logger.Error("GetCalendar: failed to get artist id=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get artist: %v", ErrInternal, err)
	}

	// 4. Резолвим профиль доступности из raw настроек
	profile, err := uc.resolveProfile(ctx, req.ArtistID)
	if err != nil {
		return nil, err
	}

	// 5. Определяем диапазон дат (локальные календарные дни)
	days := req.Days
	if days == 0 {
		days = domain.DefaultCalendarDays
	}

	startDate := uc.normalizer.LocalDate(now)
	if req.StartDate != nil {
		startDate = uc.normalizer.LocalDate(*req.StartDate)
	}
	endDate := startDate.AddDate(0, 0, days-1)

	// 6. Читаем активные бронирования диапазона одним запросом
	filter := domain.ArtistBookingsFilter{
		ArtistID:        req.ArtistID,
		StartDate:       &startDate,
		EndDate:         &endDate,
		IncludeInactive: false,
	}

	bookings, err := uc.bookingRepo.GetByArtistWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Генерируем календарь
	calendar := schedule.BuildCalendar(profile, startDate, days, now, groupByDate(bookings))

	uc.logger.Info("GetCalendar: rendered %d days for artist=%d starting %s",
		len(calendar), req.ArtistID, startDate.Format(domain.DateFormat))

	return &Response{
		ArtistID:    req.ArtistID,
		IsAccepting: profile.IsAccepting,
		Days:        calendar,
	}, nil
}

func (uc *UseCase) resolveProfile(ctx context.Context, artistID int64) (domain.AvailabilityProfile, error) {
	raw, err := uc.settingsRepo.GetByArtistID(ctx, artistID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		uc.logger.Error("GetCalendar: failed to get settings for artist=%d: %v", artistID, err)
		return domain.AvailabilityProfile{}, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	// Отсутствующие настройки резолвятся в профиль по умолчанию
	return domain.ResolveSettings(raw), nil
}

func groupByDate(bookings []*domain.Booking) map[string][]*domain.Booking {
	byDate := make(map[string][]*domain.Booking, len(bookings))
	for _, b := range bookings {
		key := b.BookingDate.Format(domain.DateFormat)
		byDate[key] = append(byDate[key], b)
	}
	return byDate
}
