package get_artist_schedule

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/glamspot/ArtistBookingService/internal/api/handlers"
	"github.com/glamspot/ArtistBookingService/internal/service/schedulecfg"
)

const (
	msgInvalidArtistID = "некорректный ID мастера"
	msgArtistNotFound  = "мастер не найден"
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

// Handle GET /api/v1/artists/{artistId}/schedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем artistId из URL
	vars := mux.Vars(r)
	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{artistId}/schedule - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	schedule, err := h.service.Get(r.Context(), artistID)
	if err != nil {
		switch {
		case errors.Is(err, schedulecfg.ErrArtistNotFound):
			h.logger.Warn("GET /artists/{artistId}/schedule - Artist not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		default:
			h.logger.Error("GET /artists/{artistId}/schedule - Failed to get schedule: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{artistId}/schedule - Schedule retrieved successfully: artist_id=%d", artistID)
	handlers.RespondJSON(w, http.StatusOK, schedule)
}
