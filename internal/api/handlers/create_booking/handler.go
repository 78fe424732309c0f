package create_booking

import (
	"errors"
	"net/http"

	"github.com/glamspot/ArtistBookingService/internal/api/handlers"
	"github.com/glamspot/ArtistBookingService/internal/api/middleware"
	createBooking "github.com/glamspot/ArtistBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidStartAt     = "некорректный формат времени начала, ожидается RFC 3339"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgArtistNotFound     = "мастер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgNotAccepting       = "мастер не принимает записи"
	msgDayOff             = "выбранный день является выходным мастера"
	msgOutsideHours       = "время начала вне рабочих часов мастера"
	msgExceedsHours       = "услуга не успевает закончиться до конца рабочего дня"
	msgMisaligned         = "время начала не совпадает с сеткой слотов"
	msgSlotConflict       = "выбранный временной слот уже занят"
	msgPastStartTime      = "время начала уже прошло"
	msgInvalidInput       = "некорректные параметры запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом instant)
	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse start time: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStartAt)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrArtistNotFound):
			h.logger.Warn("POST /bookings - Artist not found: artist_id=%d", req.ArtistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: artist_id=%d, service_id=%d", req.ArtistID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrNotAcceptingBookings):
			h.logger.Warn("POST /bookings - Artist not accepting: artist_id=%d", req.ArtistID)
			handlers.RespondBadRequest(w, msgNotAccepting)

		case errors.Is(err, createBooking.ErrDayOff):
			h.logger.Warn("POST /bookings - Day off: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondBadRequest(w, msgDayOff)

		case errors.Is(err, createBooking.ErrOutsideWorkingHours):
			h.logger.Warn("POST /bookings - Outside working hours: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrExceedsWorkingHours):
			h.logger.Warn("POST /bookings - Exceeds working hours: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondBadRequest(w, msgExceedsHours)

		case errors.Is(err, createBooking.ErrMisalignedInterval):
			h.logger.Warn("POST /bookings - Misaligned start time: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondBadRequest(w, msgMisaligned)

		case errors.Is(err, createBooking.ErrPastStartTime):
			h.logger.Warn("POST /bookings - Start time in the past: user_id=%d, artist_id=%d", userID, req.ArtistID)
			handlers.RespondBadRequest(w, msgPastStartTime)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, artist_id=%d, error=%v",
				userID, req.ArtistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, artist_id=%d",
		result.ID, userID, req.ArtistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
