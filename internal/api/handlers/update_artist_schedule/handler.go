package update_artist_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamspot/ArtistBookingService/internal/api/handlers"
	"github.com/glamspot/ArtistBookingService/internal/api/middleware"
	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg"
)

const (
	msgInvalidArtistID    = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "доступ запрещен"
	msgArtistNotFound     = "мастер не найден"
	msgInvalidSettings    = "некорректные настройки расписания"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/artists/{artistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем artistId из URL
	vars := mux.Vars(r)
	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("PUT /artists/{artistId}/schedule - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /artists/{artistId}/schedule - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /artists/{artistId}/schedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), artistID, req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, schedulecfg.ErrAccessDenied):
			h.logger.Warn("PUT /artists/{artistId}/schedule - Access denied: artist_id=%d, user_id=%d",
				artistID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, schedulecfg.ErrArtistNotFound):
			h.logger.Warn("PUT /artists/{artistId}/schedule - Artist not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, schedulecfg.ErrInvalidInput):
			h.logger.Warn("PUT /artists/{artistId}/schedule - Invalid settings: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondBadRequest(w, msgInvalidSettings)

		default:
			h.logger.Error("PUT /artists/{artistId}/schedule - Failed to update schedule: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /artists/{artistId}/schedule - Schedule updated successfully: artist_id=%d", artistID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
