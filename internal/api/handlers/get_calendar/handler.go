package get_calendar

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/glamspot/ArtistBookingService/internal/api/handlers"
	"github.com/glamspot/ArtistBookingService/internal/domain"
	"github.com/glamspot/ArtistBookingService/internal/schedule"
	getCalendar "github.com/glamspot/ArtistBookingService/internal/usecase/get_calendar"
)

const (
	msgInvalidArtistID  = "некорректный ID мастера"
	msgInvalidStartDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidDays      = "некорректное количество дней"
	msgArtistNotFound   = "мастер не найден"
	msgInvalidRequest   = "некорректные параметры запроса"
)

type Handler struct {
	useCase    GetCalendarUseCase
	normalizer *schedule.Normalizer
	logger     Logger
}

func NewHandler(useCase GetCalendarUseCase, normalizer *schedule.Normalizer, logger Logger) *Handler {
	return &Handler{
		useCase:    useCase,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Handle GET /api/v1/artists/{artistId}/calendar
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем artistId из URL
	vars := mux.Vars(r)
	artistID, err := strconv.ParseInt(vars["artistId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /artists/{artistId}/calendar - Invalid artist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidArtistID)
		return
	}

	// Опциональные query параметры: start_date и days.
	// Дата интерпретируется как локальная дата платформы, поэтому парсится
	// в зоне платформы, а не в UTC.
	var startDate *time.Time
	if raw := r.URL.Query().Get("start_date"); raw != "" {
		parsed, err := time.ParseInLocation(domain.DateFormat, raw, h.normalizer.Location())
		if err != nil {
			h.logger.Warn("GET /artists/{artistId}/calendar - Invalid start date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStartDate)
			return
		}
		startDate = &parsed
	}

	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.logger.Warn("GET /artists/{artistId}/calendar - Invalid days: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDays)
			return
		}
		days = parsed
	}

	result, err := h.useCase.Execute(r.Context(), &getCalendar.Request{
		ArtistID:  artistID,
		StartDate: startDate,
		Days:      days,
	})
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrArtistNotFound):
			h.logger.Warn("GET /artists/{artistId}/calendar - Artist not found: artist_id=%d", artistID)
			handlers.RespondNotFound(w, msgArtistNotFound)

		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /artists/{artistId}/calendar - Invalid input: artist_id=%d, error=%v", artistID, err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /artists/{artistId}/calendar - Failed to build calendar: artist_id=%d, error=%v",
				artistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /artists/{artistId}/calendar - Calendar built successfully: artist_id=%d, days=%d",
		artistID, len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
