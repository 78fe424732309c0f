package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	bookingRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/booking"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	servicesRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/services"
	accountClient "github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
)

// UseCase use case создания бронирования.
// Проверка пересечений и вставка выполняются в одной SERIALIZABLE транзакции
// с чтением дня FOR UPDATE, поэтому из двух одновременных запросов на один
// слот создается ровно одно бронирование.
type UseCase struct {
	bookingRepo   BookingRepository
	settingsRepo  SettingsRepository
	servicesRepo  ServicesRepository
	accountClient AccountServiceClient
	txManager     TransactionManager
	normalizer    *schedule.Normalizer
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	servicesRepo ServicesRepository,
	accountClient AccountServiceClient,
	txManager TransactionManager,
	normalizer *schedule.Normalizer,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		settingsRepo:  settingsRepo,
		servicesRepo:  servicesRepo,
		accountClient: accountClient,
		txManager:     txManager,
		normalizer:    normalizer,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, artist=%d, service=%d, instant=%s",
		req.UserID, req.ArtistID, req.ServiceID, req.RequestedInstant.Format("2006-01-02T15:04:05Z07:00"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Нормализуем запрошенный instant в локальные дату и время
	localStart := uc.normalizer.ToLocal(req.RequestedInstant)
	bookingDate := uc.normalizer.LocalDate(req.RequestedInstant)
	startTime := uc.normalizer.LocalTime(req.RequestedInstant)
	now := uc.normalizer.ToLocal(uc.timeProvider.Now())

	if localStart.Before(now) {
		uc.logger.Warn("CreateBooking: requested start %s is in the past", localStart)
		return nil, ErrPastStartTime
	}

	// 3. Проверяем существование мастера
	if _, err := uc.accountClient.GetArtist(ctx, req.ArtistID); err != nil {
		if errors.Is(err, accountClient.ErrArtistNotFound) {
			uc.logger.Warn("CreateBooking: artist id=%d not found", req.ArtistID)
			return nil, ErrArtistNotFound
		}
		uc.logger.Error("CreateBooking: failed to get artist id=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: failed to get artist: %v", ErrInternal, err)
	}

	// 4. Получаем услугу; ее текущая длительность замораживается в бронировании
	service, err := uc.servicesRepo.GetByID(ctx, req.ArtistID, req.ServiceID)
	if err != nil {
		if errors.Is(err, servicesRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found for artist id=%d", req.ServiceID, req.ArtistID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := service.EffectiveDuration()

	status := domain.StatusConfirmed
	if req.Status != "" {
		status = domain.BookingStatus(req.Status)
	}

	var result *domain.Booking

	// 5. Проверки профиля, пересечений и вставка выполняются атомарно.
	// При ошибке сериализации txManager повторяет весь блок целиком.
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Резолвим профиль доступности
		raw, err := uc.settingsRepo.GetByArtistID(txCtx, req.ArtistID)
		if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Error("CreateBooking: failed to get settings: %v", err)
			return fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
		}
		profile := domain.ResolveSettings(raw)

		// 5.2. Проверки валидатора, строго по порядку, первая ошибка выигрывает
		if err := validateAgainstProfile(profile, bookingDate, startTime, duration); err != nil {
			uc.logger.Warn("CreateBooking: profile validation failed for artist=%d: %v", req.ArtistID, err)
			return err
		}

		// 5.3. Читаем активные бронирования дня с блокировкой FOR UPDATE
		filter := domain.ArtistBookingsFilter{
			ArtistID:        req.ArtistID,
			StartDate:       &bookingDate,
			EndDate:         &bookingDate,
			IncludeInactive: false,
		}

		bookings, err := uc.bookingRepo.GetByArtistWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 5.4. Пересечение интервалов тем же предикатом, что и календарь
		if schedule.HasConflict(startTime, duration, bookings) {
			uc.logger.Warn("CreateBooking: slot %s conflicts for artist=%d on %s",
				startTime, req.ArtistID, bookingDate.Format(domain.DateFormat))
			return ErrSlotConflict
		}

		// 5.5. Создаем бронирование с замороженной длительностью и
		// денормализованными данными услуги
		booking := &domain.Booking{
			ArtistID:        req.ArtistID,
			UserID:          req.UserID,
			ServiceID:       req.ServiceID,
			BookingDate:     bookingDate,
			StartTime:       startTime,
			DurationMinutes: duration,
			Status:          status,
			ServiceName:     service.Name,
			ServicePrice:    service.Price,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Уникальный индекс активных слотов срабатывает при гонке вставок
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateBooking: unique index rejected slot %s for artist=%d", startTime, req.ArtistID)
				return ErrSlotConflict
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d status=%s", result.ID, result.Status)

	return &Response{
		ID:               result.ID,
		UserID:           result.UserID,
		ArtistID:         result.ArtistID,
		ServiceID:        result.ServiceID,
		BookingDate:      result.BookingDate,
		StartTime:        result.StartTime,
		RequestedInstant: uc.normalizer.FromDateAndTime(result.BookingDate, result.StartTime),
		DurationMinutes:  result.DurationMinutes,
		Status:           result.Status,
		ServiceName:      result.ServiceName,
		ServicePrice:     result.ServicePrice,
		Notes:            result.Notes,
		CreatedAt:        result.CreatedAt,
		UpdatedAt:        result.UpdatedAt,
	}, nil
}
