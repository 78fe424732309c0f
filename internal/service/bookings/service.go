package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	bookingRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/booking"
	accountClient "github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo   BookingRepository
	accountClient AccountServiceClient
	ledgerClient  LedgerServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	accountClient AccountServiceClient,
	ledgerClient LedgerServiceClient,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo:   bookingRepo,
		accountClient: accountClient,
		ledgerClient:  ledgerClient,
		logger:        logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является мастером, к которому сделана запись
func (s *Service) GetByID(ctx context.Context, id int64, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%d", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetArtistBookings получает бронирования мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только самому мастеру
//
// Примеры использования:
// - Все активные бронирования: GetArtistBookings(ctx, &GetArtistBookingsRequest{ArtistID: 123, UserID: 123})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отмененные: IncludeInactive = true
func (s *Service) GetArtistBookings(ctx context.Context, req *models.GetArtistBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetArtistBookings: fetching bookings for artist=%d, user=%d", req.ArtistID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа мастера
	if err := s.checkArtistAccess(ctx, req.ArtistID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetArtistBookings: invalid filter for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetByArtistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetArtistBookings: repository error for artist=%d: %v", req.ArtistID, err)
		return nil, fmt.Errorf("%w: GetArtistBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetArtistBookings: successfully fetched %d bookings for artist=%d", len(bookings), req.ArtistID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить только своё бронирование,
// мастер может отменить любую запись к себе
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%d", req.UserID, bookingID)
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return nil
}

// UpdateStatus обновляет статус бронирования
// Доступно только мастеру, к которому сделана запись.
// Допустимы только переходы pending→confirmed, pending→cancelled,
// confirmed→completed, confirmed→cancelled. Переход в completed ровно один
// раз записывает завершение в сервис расчетов.
func (s *Service) UpdateStatus(ctx context.Context, bookingID int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating booking id=%d to status=%s by user=%d",
		bookingID, req.Status, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа (только мастер)
	if err := s.checkArtistAccess(ctx, booking.ArtistID, req.UserID); err != nil {
		return err
	}

	// Валидируем и конвертируем статус
	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%d", req.Status, bookingID)
		return fmt.Errorf("%w: invalid status", ErrInvalidStatus)
	}

	// Проверяем допустимость перехода
	if !booking.Status.CanTransitionTo(newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, newStatus, bookingID)
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
	}

	// Переход в completed записывает завершение в сервис расчетов до
	// обновления статуса; при ошибке обновления запись откатывается парным
	// вызовом ReverseCompletion
	recordedCompletion := false
	if newStatus == domain.StatusCompleted {
		if err := s.ledgerClient.RecordCompletion(ctx, booking.ID, booking.ArtistID, booking.ServicePrice); err != nil {
			s.logger.Error("UpdateStatus: failed to record completion for booking id=%d: %v", bookingID, err)
			return fmt.Errorf("%w: UpdateStatus - ledger error: %v", ErrInternal, err)
		}
		recordedCompletion = true
	}

	// Обновляем статус
	if err := s.bookingRepo.UpdateStatus(ctx, bookingID, newStatus); err != nil {
		if recordedCompletion {
			if revErr := s.ledgerClient.ReverseCompletion(ctx, booking.ID, booking.ArtistID, booking.ServicePrice); revErr != nil {
				s.logger.Error("UpdateStatus: failed to reverse completion for booking id=%d: %v", bookingID, revErr)
			}
		}
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found during update", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", bookingID, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated booking id=%d to status=%s", bookingID, newStatus)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Доступ есть у владельца бронирования и у мастера, к которому сделана запись
func (s *Service) checkUserAccess(booking *domain.Booking, userID int64) error {
	if booking.UserID == userID {
		return nil
	}

	if booking.ArtistID == userID {
		return nil
	}

	return ErrAccessDenied
}

// checkArtistAccess проверяет, что пользователь является мастером
// с указанным ID и что такой мастер существует
func (s *Service) checkArtistAccess(ctx context.Context, artistID int64, userID int64) error {
	if userID != artistID {
		s.logger.Warn("checkArtistAccess: user=%d is not artist=%d", userID, artistID)
		return ErrAccessDenied
	}

	if _, err := s.accountClient.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, accountClient.ErrArtistNotFound) {
			s.logger.Warn("checkArtistAccess: artist id=%d not found", artistID)
			return ErrArtistNotFound
		}
		s.logger.Error("checkArtistAccess: failed to get artist id=%d: %v", artistID, err)
		return fmt.Errorf("%w: checkArtistAccess - failed to get artist: %v", ErrInternal, err)
	}

	return nil
}
