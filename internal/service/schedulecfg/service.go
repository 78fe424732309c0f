package schedulecfg

import (
	"context"
	"errors"
	"fmt"

	"github.com/glamspot/ArtistBookingService/internal/domain"
	settingsRepo "github.com/glamspot/ArtistBookingService/internal/infra/storage/settings"
	accountClient "github.com/glamspot/ArtistBookingService/internal/integrations/accountservice"
	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg/models"
	"github.com/glamspot/ArtistBookingService/pkg/types"
)

// Service сервис для работы с настройками расписания мастера
type Service struct {
	settingsRepo  SettingsRepository
	accountClient AccountServiceClient
	logger        Logger
}

// NewService создает новый экземпляр сервиса настроек расписания
func NewService(
	settingsRepo SettingsRepository,
	accountClient AccountServiceClient,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo:  settingsRepo,
		accountClient: accountClient,
		logger:        logger,
	}
}

// Get возвращает резолвленный профиль доступности мастера
// Публичный метод - raw блоб наружу не отдается
func (s *Service) Get(ctx context.Context, artistID int64) (*models.ScheduleResponse, error) {
	s.logger.Info("Get: fetching schedule for artist=%d", artistID)

	if _, err := s.accountClient.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, accountClient.ErrArtistNotFound) {
			s.logger.Warn("Get: artist id=%d not found", artistID)
			return nil, ErrArtistNotFound
		}
		s.logger.Error("Get: failed to get artist id=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: failed to get artist: %v", ErrInternal, err)
	}

	raw, err := s.settingsRepo.GetByArtistID(ctx, artistID)
	if err != nil && !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
		s.logger.Error("Get: repository error for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	// Отсутствие сохраненных настроек резолвится в профиль по умолчанию
	profile := domain.ResolveSettings(raw)

	s.logger.Info("Get: successfully fetched schedule for artist=%d", artistID)
	return models.FromProfile(artistID, profile), nil
}

// Update обновляет настройки расписания мастера
// Доступно только самому мастеру
// Поддерживает частичное обновление - обновляются только указанные поля
func (s *Service) Update(ctx context.Context, artistID int64, req *models.UpdateScheduleRequest) (*models.ScheduleResponse, error) {
	s.logger.Info("Update: updating schedule for artist=%d by user=%d", artistID, req.UserID)

	// 1. Проверяем права доступа (только сам мастер)
	if req.UserID != artistID {
		s.logger.Warn("Update: user=%d is not artist=%d", req.UserID, artistID)
		return nil, ErrAccessDenied
	}

	// 2. Проверяем существование мастера
	if _, err := s.accountClient.GetArtist(ctx, artistID); err != nil {
		if errors.Is(err, accountClient.ErrArtistNotFound) {
			s.logger.Warn("Update: artist id=%d not found", artistID)
			return nil, ErrArtistNotFound
		}
		s.logger.Error("Update: failed to get artist id=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: failed to get artist: %v", ErrInternal, err)
	}

	// 3. Валидируем переданные поля
	if err := s.validateUpdate(req); err != nil {
		s.logger.Warn("Update: validation failed for artist=%d: %v", artistID, err)
		return nil, err
	}

	// 4. Получаем текущий raw блоб и применяем частичное обновление
	raw, err := s.settingsRepo.GetByArtistID(ctx, artistID)
	if err != nil {
		if !errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			s.logger.Error("Update: repository error for artist=%d: %v", artistID, err)
			return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		raw = &domain.ArtistSettings{}
	}
	req.ApplyToSettings(raw)

	// 5. Сохраняем обновленный блоб
	if err := s.settingsRepo.Upsert(ctx, artistID, raw); err != nil {
		s.logger.Error("Update: failed to upsert settings for artist=%d: %v", artistID, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	profile := domain.ResolveSettings(raw)

	s.logger.Info("Update: successfully updated schedule for artist=%d", artistID)
	return models.FromProfile(artistID, profile), nil
}

// validateUpdate валидирует переданные поля запроса на обновление
func (s *Service) validateUpdate(req *models.UpdateScheduleRequest) error {
	if req.WorkingDays != nil {
		if len(req.WorkingDays) == 0 {
			return fmt.Errorf("%w: workingDays must not be empty", ErrInvalidInput)
		}
		for _, d := range req.WorkingDays {
			if d < 0 || d > 6 {
				return fmt.Errorf("%w: working day must be between 0 and 6", ErrInvalidInput)
			}
		}
	}

	var startMinutes, endMinutes int
	if req.StartTime != nil {
		ts, err := types.NewTimeStringFromString(*req.StartTime)
		if err != nil {
			return fmt.Errorf("%w: startTime must be in HH:MM format", ErrInvalidInput)
		}
		startMinutes = ts.MinutesOfDay()
	}
	if req.EndTime != nil {
		ts, err := types.NewTimeStringFromString(*req.EndTime)
		if err != nil {
			return fmt.Errorf("%w: endTime must be in HH:MM format", ErrInvalidInput)
		}
		endMinutes = ts.MinutesOfDay()
	}
	if req.StartTime != nil && req.EndTime != nil && startMinutes >= endMinutes {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidInput)
	}

	if req.SessionIntervalMinutes != nil {
		interval := *req.SessionIntervalMinutes
		if interval < domain.MinSessionIntervalMinutes || interval > domain.MaxSessionIntervalMinutes {
			return fmt.Errorf("%w: sessionIntervalMinutes must be between %d and %d",
				ErrInvalidInput, domain.MinSessionIntervalMinutes, domain.MaxSessionIntervalMinutes)
		}
	}

	return nil
}
